package server

import (
	"encoding/json"
	"net/http"
)

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeJSON = "application/json; charset=utf-8"
)

// responseFormat is how a request expects to be answered.
type responseFormat int

const (
	formatHTML responseFormat = iota
	formatJSON
)

// negotiateFormat decides the response format for r. Browsers follow the
// provider redirect with GET; every other method, HEAD included, is a
// programmatic caller and must never trigger the single-use code exchange.
func negotiateFormat(r *http.Request) responseFormat {
	if r.Method == http.MethodGet {
		return formatHTML
	}
	return formatJSON
}

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorBody{Error: message})
}
