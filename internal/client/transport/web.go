package transport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

// WebBackend executes requests over the plain Go HTTP stack. This is the
// browser-equivalent environment and the default backend.
type WebBackend struct {
	hc *http.Client
}

func NewWebBackend(timeout time.Duration) *WebBackend {
	return &WebBackend{hc: &http.Client{Timeout: timeout}}
}

func (b *WebBackend) Execute(ctx context.Context, req *WireRequest) (*Response, error) {
	var body io.Reader
	if req.Body != "" {
		body = strings.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, newDispatchError(err)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	httpResp, err := b.hc.Do(httpReq)
	if err != nil {
		return nil, newDispatchError(err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, newDispatchError(err)
	}

	headers := flattenHeader(httpResp.Header)
	return &Response{
		Data:       materialize(raw, req.ResponseType, headers),
		Status:     httpResp.StatusCode,
		StatusText: statusText(httpResp.StatusCode),
		Headers:    headers,
	}, nil
}

// materialize converts a raw body into the shape the caller asked for:
// blob with declared content type, raw bytes, or JSON with raw-text
// fallback when parsing fails.
func materialize(raw []byte, rt ResponseType, headers map[string]string) any {
	switch rt {
	case ResponseBlob:
		ct := headerValue(headers, "Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}
		return &Blob{ContentType: ct, Bytes: raw}
	case ResponseBytes:
		return raw
	default:
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err != nil {
			return string(raw)
		}
		return parsed
	}
}

// flattenHeader collapses an http.Header into the normalized single-value
// header map.
func flattenHeader(h http.Header) map[string]string {
	headers := make(map[string]string, len(h))
	for k, vs := range h {
		if len(vs) > 0 {
			headers[k] = vs[0]
		}
	}
	return headers
}
