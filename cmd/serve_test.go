package cmd

import (
	"bytes"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsphweid/fretdex/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func do(t *testing.T, method, target string, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	w := httptest.NewRecorder()
	NewRouter(0).ServeHTTP(w, req)
	return w
}

func TestHandleNotes(t *testing.T) {
	w := do(t, http.MethodGet, "/api/notes", "")
	require.Equal(t, http.StatusOK, w.Code)

	var notes []model.Note
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &notes))
	assert.Len(t, notes, 12)
	assert.Equal(t, model.Note("C#"), notes[1])
}

func TestHandleTriads(t *testing.T) {
	w := do(t, http.MethodGet, "/api/triads/A", "")
	require.Equal(t, http.StatusOK, w.Code)

	var res model.TriadsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))

	assert := assert.New(t)
	assert.Equal(model.Note("A"), res.Root)
	assert.Equal([]model.Note{"A", "C#", "E"}, res.Triads[model.Major])
	assert.Equal([]model.Note{"A", "C", "E"}, res.Triads[model.Minor])
}

func TestHandleTriadsInvalidRoot(t *testing.T) {
	w := do(t, http.MethodGet, "/api/triads/H", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var res model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Contains(t, res.Error, "invalid note")
}

func TestHandleView(t *testing.T) {
	body := `{"selection":[{"root":"C","quality":"major"},{"root":"A","quality":"minor"}]}`
	w := do(t, http.MethodPost, "/api/view", body)
	require.Equal(t, http.StatusOK, w.Code)

	var v model.View
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))

	assert := assert.New(t)
	assert.Len(v.Legend, 2)
	assert.Equal("Am", v.Legend[1].Label)
	for _, m := range v.Markers {
		if m.Note == "E" {
			assert.Equal(model.MarkerSplit, m.Kind)
		}
	}
}

func TestHandleViewEmptySelection(t *testing.T) {
	w := do(t, http.MethodPost, "/api/view", `{"selection":[]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var v model.View
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	assert.True(t, v.Chromatic)
	assert.Empty(t, v.Legend)
	assert.Len(t, v.Markers, 150)
}

func TestHandleViewErrors(t *testing.T) {
	assert := assert.New(t)

	w := do(t, http.MethodPost, "/api/view", `{"selection":[{"root":"C","quality":"sus4"}]}`)
	assert.Equal(http.StatusBadRequest, w.Code)

	w = do(t, http.MethodPost, "/api/view", `not json`)
	assert.Equal(http.StatusBadRequest, w.Code)
}

func TestHandleViewPNG(t *testing.T) {
	w := do(t, http.MethodGet, "/api/view.png?s=G&s=Em", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))

	_, err := png.Decode(bytes.NewReader(w.Body.Bytes()))
	assert.NoError(t, err)
}

func TestHandleViewPNGInvalid(t *testing.T) {
	w := do(t, http.MethodGet, "/api/view.png?s=Xm", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
