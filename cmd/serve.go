package cmd

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gorilla/mux"
	"github.com/jsphweid/fretdex/logger"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/render"
	"github.com/jsphweid/fretdex/theory"
	"github.com/jsphweid/fretdex/view"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	cobra.CheckErr(v.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr")))
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves triad views over http",
	Long: `Serves the triad engine over http:

  GET  /api/notes
  GET  /api/triads/{root}
  POST /api/view          {"selection":[{"root":"C","quality":"major"}]}
  GET  /api/view.png?s=C&s=Am`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(config.Server.Addr)
	},
}

type server struct {
	pngWidth int
}

func NewRouter(pngWidth int) *mux.Router {
	s := &server{pngWidth: pngWidth}
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/api/notes", s.handleNotes).Methods("GET")
	router.HandleFunc("/api/triads/{root}", s.handleTriads).Methods("GET")
	router.HandleFunc("/api/view", s.handleView).Methods("POST")
	router.HandleFunc("/api/view.png", s.handleViewPNG).Methods("GET")
	return router
}

func (s *server) handleNotes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, theory.Notes())
}

func (s *server) handleTriads(w http.ResponseWriter, r *http.Request) {
	root := model.Note(mux.Vars(r)["root"])
	triads, err := theory.TriadsFor(root)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, model.TriadsResponse{Root: root, Triads: triads})
}

func (s *server) handleView(w http.ResponseWriter, r *http.Request) {
	var input model.ViewRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Could not unmarshal request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	v, err := view.Compute(input.Selection)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, v)
}

func (s *server) handleViewPNG(w http.ResponseWriter, r *http.Request) {
	sel, err := theory.ParseSelection(r.URL.Query()["s"])
	if err != nil {
		writeError(w, err)
		return
	}

	// compute first so a bad selection still gets a json error
	v, err := view.Compute(sel)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if err := (render.PNG{W: w, Width: s.pngWidth}).Render(v); err != nil {
		logger.Logger.Errorw("Could not write png", "error", err)
	}
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Logger.Errorw("Could not encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.IsAny(err, theory.ErrInvalidNote, theory.ErrInvalidQuality) {
		status = http.StatusBadRequest
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

func serve(addr string) error {
	c := cors.New(cors.Options{
		AllowedOrigins: config.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})
	srv := &http.Server{
		Addr:              addr,
		Handler:           c.Handler(NewRouter(config.PNG.Width)),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Logger.Infow("Serving", "addr", addr)
	return srv.ListenAndServe()
}
