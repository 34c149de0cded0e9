// SPDX-License-Identifier: MIT

package httpapi

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// brokenWriter accepts headers but fails every body write.
type brokenWriter struct {
	*httptest.ResponseRecorder
}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestWriteJSON_LogsEncodeFailure(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	w := brokenWriter{httptest.NewRecorder()}
	writeJSON(w, http.StatusOK, Team{Name: "Brazil"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Contains(t, buf.String(), "httpapi: encode httpapi.Team response: connection reset")
}

func TestWriteJSON_Success(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	w := httptest.NewRecorder()
	writeJSON(w, http.StatusNotFound, NotFound{Error: "team not found: Atlantis"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"team not found: Atlantis"}`, w.Body.String())
	assert.Empty(t, buf.String())
}
