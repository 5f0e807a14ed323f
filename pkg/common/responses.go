package common

import (
	"encoding/json"
	"net/http"

	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/pkg/utils"
)

// Envelope is the uniform response shape returned by every route. Exactly one
// of Data/Error is populated; Timestamp is always present.
type Envelope struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	Path      string      `json:"path,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// RespondJSON sends a success envelope
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	writeEnvelope(w, status, Envelope{
		Success:   true,
		Data:      data,
		Timestamp: utils.NowRFC3339(),
	})
}

// RespondError sends an error envelope
func RespondError(w http.ResponseWriter, status int, message string) {
	writeEnvelope(w, status, Envelope{
		Success:   false,
		Error:     message,
		Timestamp: utils.NowRFC3339(),
	})
}

// RespondNotFound sends the 404 envelope for an unmatched route, echoing the
// path that missed.
func RespondNotFound(w http.ResponseWriter, path string) {
	writeEnvelope(w, http.StatusNotFound, Envelope{
		Success:   false,
		Error:     "Endpoint not found",
		Path:      path,
		Timestamp: utils.NowRFC3339(),
	})
}

func writeEnvelope(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(env)
}
