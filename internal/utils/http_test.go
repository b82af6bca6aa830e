package utils

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteJSON(w, map[string]bool{"pong": true}, http.StatusOK)

	require.NoError(t, err)
	assert.Positive(t, n)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"pong":true}`, w.Body.String())
}

func TestWriteJSON_CustomStatusCode(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, map[string]string{"error": "moved"}, http.StatusMovedPermanently)

	require.NoError(t, err)
	assert.Equal(t, http.StatusMovedPermanently, w.Code)
}

func TestWriteJSON_MarshalError(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteJSON(w, math.Inf(1), http.StatusOK)

	require.Error(t, err)
	assert.Zero(t, n)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, "state not found", http.StatusNotFound)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"state not found"}`, w.Body.String())
}

func TestUnixSeconds(t *testing.T) {
	ts := time.Unix(1700000000, 500_000_000)
	assert.InDelta(t, 1700000000.5, UnixSeconds(ts), 1e-6)
}
