// Package handlers wires the dashboard and player APIs onto the router.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"lab4/internal/viewmodel"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, viewmodel.APIError{Error: msg})
}

func writeSSE(w http.ResponseWriter, event string, data string) {
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
}
