package common

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRespondJSONShape(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusOK, map[string]string{"k": "v"})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var env map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Equal(t, true, env["success"])
	require.NotNil(t, env["data"])
	require.NotContains(t, env, "error")
	require.NotEmpty(t, env["timestamp"])
}

func TestRespondErrorShape(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, http.StatusInternalServerError, "boom")

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var env map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Equal(t, false, env["success"])
	require.Equal(t, "boom", env["error"])
	require.NotContains(t, env, "data")
	require.NotEmpty(t, env["timestamp"])
}

func TestRespondNotFoundEchoesPath(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondNotFound(rec, "/api/missing")

	require.Equal(t, http.StatusNotFound, rec.Code)

	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.False(t, env.Success)
	require.Equal(t, "Endpoint not found", env.Error)
	require.Equal(t, "/api/missing", env.Path)
}
