//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/jsphweid/fretdex/cmd"
	"github.com/jsphweid/fretdex/model"
	"github.com/stretchr/testify/assert"
)

var srv *httptest.Server

func TestMain(m *testing.M) {
	srv = httptest.NewServer(cmd.NewRouter(0))
	exitVal := m.Run()
	srv.Close()
	os.Exit(exitVal)
}

func createViewReqBody(sel model.Selection) io.Reader {
	data, err := json.Marshal(model.ViewRequestBody{Selection: sel})
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func postView(t *testing.T, sel model.Selection) model.View {
	resp, err := http.Post(srv.URL+"/api/view", "application/json", createViewReqBody(sel))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)

	var v model.View
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatal(err)
	}
	return v
}

func TestCMajorE2E(t *testing.T) {
	v := postView(t, model.Selection{{Root: "C", Quality: model.Major}})

	assert := assert.New(t)
	assert.Equal([][]model.Note{{"C", "E", "G"}}, v.Triads)
	assert.Equal([]model.LegendEntry{{Label: "C", ColorSlot: 0, Color: "orange"}}, v.Legend)
	for _, m := range v.Markers {
		assert.Equal(model.MarkerSolid, m.Kind)
		assert.Equal([]int{0}, m.Slots)
	}
}

func TestSameSelectionTwiceIsIdenticalE2E(t *testing.T) {
	sel := model.Selection{
		{Root: "C", Quality: model.Major},
		{Root: "A", Quality: model.Minor},
		{Root: "C", Quality: model.Major},
	}

	first, err := json.Marshal(postView(t, sel))
	assert.NoError(t, err)
	second, err := json.Marshal(postView(t, sel))
	assert.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestPNGE2E(t *testing.T) {
	resp, err := http.Get(srv.URL + "/api/view.png?s=C%7Cmajor&s=Am")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
}
