package model

type ViewRequestBody struct {
	Selection []SelectionItem `json:"selection"`
}

type TriadsResponse struct {
	Root   Note               `json:"root"`
	Triads map[Quality][]Note `json:"triads"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
