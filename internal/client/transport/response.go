package transport

import "net/http"

// Response is the single normalized shape every backend produces,
// regardless of native origin quirks (base64 bodies, header iterables,
// pre-parsed JSON).
type Response struct {
	Data       any
	Status     int
	StatusText string
	Headers    map[string]string
}

// Blob is a normalized binary payload with its declared content type.
type Blob struct {
	ContentType string
	Bytes       []byte
}

// WireRequest is the fully shaped request handed to a backend: resolved
// URL, final headers, and an already-serialized body.
type WireRequest struct {
	Method       string
	URL          string
	Headers      map[string]string
	Body         string
	ResponseType ResponseType
}

func statusText(code int) string {
	if t := http.StatusText(code); t != "" {
		return t
	}
	return ""
}

// headerValue performs a case-insensitive lookup in a normalized header map.
func headerValue(headers map[string]string, name string) string {
	if v, ok := headers[name]; ok {
		return v
	}
	canonical := http.CanonicalHeaderKey(name)
	for k, v := range headers {
		if http.CanonicalHeaderKey(k) == canonical {
			return v
		}
	}
	return ""
}
