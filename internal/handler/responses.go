package handler

import (
	"encoding/json"
	"net/http"

	"github.com/secureform/signupd/pkg/validator"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeFieldErrors renders the full per-field error map so a client can show
// every problem in one round trip.
func writeFieldErrors(w http.ResponseWriter, verrs validator.ValidationErrors) {
	fields := make(map[string]string, len(verrs))
	for _, e := range verrs {
		if _, ok := fields[e.Field]; !ok {
			fields[e.Field] = e.Message
		}
	}
	writeJSON(w, http.StatusBadRequest, map[string]any{"errors": fields})
}
