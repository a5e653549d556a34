// Package respond writes JSON responses for the API handlers.
package respond

import (
	"encoding/json"
	"log"
	"net/http"
)

// JSON encodes payload with the given status code.
func JSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// Error writes {"error": message}.
func Error(w http.ResponseWriter, code int, message string) {
	JSON(w, code, map[string]string{"error": message})
}

// Message writes {"message": message}.
func Message(w http.ResponseWriter, code int, message string) {
	JSON(w, code, map[string]string{"message": message})
}
