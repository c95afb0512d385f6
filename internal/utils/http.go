package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const contentTypeJSON = "application/json"

// WriteContent sends body with status 200, tagged with [ContentETag] and
// marked for revalidation. A request whose If-None-Match carries the tag is
// answered with 304 Not Modified and no body.
//
// Returns the number of body bytes written.
func WriteContent(w http.ResponseWriter, r *http.Request, body []byte, contentType string) (int, error) {
	etag := ContentETag(body)
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")

	if ETagMatches(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return 0, nil
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	return w.Write(body)
}

// WriteJSON serializes data to JSON and writes it with statusCode.
//
// A 200 response goes through [WriteContent], so listings and status carry an
// ETag like documents do. Any other status is written as is and marked
// no-store, so error bodies are never revalidated against a cached copy.
//
// If marshaling fails, it responds with 500 Internal Server Error and returns
// a wrapped error.
func WriteJSON(w http.ResponseWriter, r *http.Request, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	if statusCode == http.StatusOK {
		return WriteContent(w, r, jsonData, contentTypeJSON)
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(statusCode)
	return w.Write(jsonData)
}
