// internal/app/system/httpjson/httpjson.go
//
// Package httpjson is the single place handlers encode JSON responses.
// Every API response body goes through Write or Message so that the
// Content-Type header and encoding behavior stay uniform.
package httpjson

import (
	"encoding/json"
	"net/http"
)

// Write encodes v as the JSON response body with the given status code.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Message writes the conventional {"message": ...} body used for both
// errors and simple confirmations.
func Message(w http.ResponseWriter, status int, msg string) {
	Write(w, status, map[string]string{"message": msg})
}

// Decode decodes the request body into dst. Unknown fields are allowed,
// matching the permissive intake of the rest of the API.
func Decode(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
