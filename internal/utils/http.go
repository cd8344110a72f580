package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals data and writes it as the HTTP response body with
// the given status code. The "Content-Type" header is set to
// "application/json" before the status line goes out.
//
// Marshaling failures are answered with 500 Internal Server Error and
// reported back as a wrapped error; nothing of the intended body is
// written in that case.
//
// Returns the number of body bytes written.
//
// Example usage:
//
//	WriteJSON(w, student, http.StatusOK)
//	WriteJSON(w, map[string]string{"detail": "Deleted successfully"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}
