package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/mohamed566-11/sqrew/internal/api/apierr"
)

// maxBodyBytes bounds request bodies; the largest is a 12-player score map
const maxBodyBytes = 64 << 10

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// decodeBody decodes a JSON body into dst. An empty body leaves dst untouched.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return apierr.NewInvalidRequestError("request body too large")
		}
		return apierr.NewInvalidRequestError("invalid request body")
	}
	return nil
}
