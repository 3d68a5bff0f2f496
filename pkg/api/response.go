package api

import (
	"encoding/json"
	"net/http"
)

// errorResponse is the envelope for every failed request.
type errorResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// writeJSON writes a success payload. Every success struct carries its own
// ok:true field so the envelope stays flat.
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a structured {ok:false, message} failure. Internal error
// detail stays in the logs; message is safe for clients.
func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, errorResponse{OK: false, Message: message})
}
