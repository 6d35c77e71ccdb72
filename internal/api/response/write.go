package response

import (
	"encoding/json"
	"net/http"
)

// JSON writes data as the response body. Game state changes with every
// action, so responses are never cached.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// OK writes data with a 200 status
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

// Created writes data with a 201 status
func Created(w http.ResponseWriter, data any) {
	JSON(w, http.StatusCreated, data)
}
