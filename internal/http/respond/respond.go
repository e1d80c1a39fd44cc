// Package respond writes the JSON bodies shared by all handlers.
package respond

import (
	"encoding/json"
	"log"
	"net/http"
)

// errorBody is the shape of every failure response. It carries a
// caller-facing message only; internal detail stays in the server log.
type errorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// JSON writes an arbitrary payload with the given status.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("respond: encode payload failed: %v", err)
	}
}

// Error writes a failure response with the shared shape.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, errorBody{Success: false, Message: message})
}
