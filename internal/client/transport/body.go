package transport

import (
	"encoding/json"
	"net/url"
)

// ShapeBody serializes a descriptor body once per call, identically for
// every backend:
//
//   - nil          → empty body
//   - string       → sent as-is
//   - url.Values   → form encoding
//   - anything else → JSON text
//
// The returned content type is a default only; an explicit Content-Type
// header on the descriptor wins.
func ShapeBody(data any) (body string, contentType string, err error) {
	switch v := data.(type) {
	case nil:
		return "", "", nil
	case string:
		return v, "", nil
	case url.Values:
		return v.Encode(), "application/x-www-form-urlencoded", nil
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return "", "", err
		}
		return string(b), "application/json", nil
	}
}
