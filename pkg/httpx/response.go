package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// MaxBodyBytes caps request bodies. Posts are short text; anything near this
// limit is abuse, not content.
const MaxBodyBytes = 1 << 20

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// NoCache sets headers preventing caching, required for token responses.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

// ErrDecode reports an unparseable or oversized JSON request body.
var ErrDecode = errors.New("httpx: invalid request body")

// DecodeJSON decodes a JSON request body into dst, enforcing the size cap
// and rejecting trailing garbage.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return ErrDecode
	}
	if dec.More() {
		return ErrDecode
	}
	return nil
}
