package transport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

// BridgeBResponse is the fetch-like response object the desktop shell hands
// back. The body is materialized lazily, at most once.
type BridgeBResponse interface {
	Status() int
	// Headers returns the header iterable as name/value pairs.
	Headers() [][2]string
	Text(ctx context.Context) (string, error)
	Bytes(ctx context.Context) ([]byte, error)
	Blob(ctx context.Context) (*Blob, error)
}

// BridgeBInvoker performs one request inside the desktop shell.
type BridgeBInvoker func(ctx context.Context, req *WireRequest) (BridgeBResponse, error)

// BridgeBBackend normalizes the desktop-shell bridge: the header iterable
// becomes a plain map and the body is materialized according to the
// requested response type, with a JSON-parse-then-raw-text fallback for
// textual bodies.
type BridgeBBackend struct {
	invoke BridgeBInvoker
}

func NewBridgeBBackend(invoke BridgeBInvoker) *BridgeBBackend {
	return &BridgeBBackend{invoke: invoke}
}

func (b *BridgeBBackend) Execute(ctx context.Context, req *WireRequest) (*Response, error) {
	r, err := b.invoke(ctx, req)
	if err != nil {
		return nil, newDispatchError(err)
	}

	headers := make(map[string]string)
	for _, pair := range r.Headers() {
		headers[pair[0]] = pair[1]
	}

	var data any
	switch req.ResponseType {
	case ResponseBlob:
		blob, err := r.Blob(ctx)
		if err != nil {
			return nil, newDispatchError(err)
		}
		data = blob
	case ResponseBytes:
		raw, err := r.Bytes(ctx)
		if err != nil {
			return nil, newDispatchError(err)
		}
		data = raw
	default:
		text, err := r.Text(ctx)
		if err != nil {
			return nil, newDispatchError(err)
		}
		var parsed any
		if jsonErr := json.Unmarshal([]byte(text), &parsed); jsonErr != nil {
			data = text
		} else {
			data = parsed
		}
	}

	return &Response{
		Data:       data,
		Status:     r.Status(),
		StatusText: statusText(r.Status()),
		Headers:    headers,
	}, nil
}

// httpBridgeBResponse adapts an already-read *http.Response to the
// fetch-like bridge contract.
type httpBridgeBResponse struct {
	status  int
	headers [][2]string
	raw     []byte
}

func (r *httpBridgeBResponse) Status() int          { return r.status }
func (r *httpBridgeBResponse) Headers() [][2]string { return r.headers }

func (r *httpBridgeBResponse) Text(ctx context.Context) (string, error) {
	return string(r.raw), nil
}

func (r *httpBridgeBResponse) Bytes(ctx context.Context) ([]byte, error) {
	return r.raw, nil
}

func (r *httpBridgeBResponse) Blob(ctx context.Context) (*Blob, error) {
	ct := ""
	for _, pair := range r.headers {
		if http.CanonicalHeaderKey(pair[0]) == "Content-Type" {
			ct = pair[1]
			break
		}
	}
	if ct == "" {
		ct = "application/octet-stream"
	}
	return &Blob{ContentType: ct, Bytes: r.raw}, nil
}

// NewHTTPBridgeBInvoker builds the production invoker for the desktop
// shell's fetch-like bridge.
func NewHTTPBridgeBInvoker(timeout time.Duration) BridgeBInvoker {
	hc := &http.Client{Timeout: timeout}

	return func(ctx context.Context, req *WireRequest) (BridgeBResponse, error) {
		var body io.Reader
		if req.Body != "" {
			body = strings.NewReader(req.Body)
		}

		httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
		if err != nil {
			return nil, err
		}
		for k, v := range req.Headers {
			httpReq.Header.Set(k, v)
		}

		httpResp, err := hc.Do(httpReq)
		if err != nil {
			return nil, err
		}
		defer httpResp.Body.Close()

		raw, err := io.ReadAll(httpResp.Body)
		if err != nil {
			return nil, err
		}

		pairs := make([][2]string, 0, len(httpResp.Header))
		for k, vs := range httpResp.Header {
			if len(vs) > 0 {
				pairs = append(pairs, [2]string{k, vs[0]})
			}
		}
		return &httpBridgeBResponse{status: httpResp.StatusCode, headers: pairs, raw: raw}, nil
	}
}
