package transport

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

// BridgeAEnvelope is the shape the mobile application shell hands back for
// every call: the status, an already-decoded data value (binary bodies
// arrive as base64 strings), and a plain header map.
type BridgeAEnvelope struct {
	Status  int               `json:"status"`
	Data    any               `json:"data"`
	Headers map[string]string `json:"headers"`
}

// BridgeAInvoker performs one request inside the mobile shell.
type BridgeAInvoker func(ctx context.Context, req *WireRequest) (*BridgeAEnvelope, error)

// BridgeABackend normalizes the mobile-shell bridge. Its one quirk is the
// base64 encoding of binary bodies, which the backend decodes into a Blob.
type BridgeABackend struct {
	invoke BridgeAInvoker
}

func NewBridgeABackend(invoke BridgeAInvoker) *BridgeABackend {
	return &BridgeABackend{invoke: invoke}
}

func (b *BridgeABackend) Execute(ctx context.Context, req *WireRequest) (*Response, error) {
	env, err := b.invoke(ctx, req)
	if err != nil {
		return nil, newDispatchError(err)
	}

	data := env.Data
	if req.ResponseType == ResponseBlob {
		if s, ok := data.(string); ok {
			decoded, decErr := base64.StdEncoding.DecodeString(s)
			if decErr == nil {
				ct := headerValue(env.Headers, "Content-Type")
				if ct == "" {
					ct = "application/octet-stream"
				}
				data = &Blob{ContentType: ct, Bytes: decoded}
			}
			// Decode failure keeps the raw string instead of failing the call.
		}
	}

	return &Response{
		Data:       data,
		Status:     env.Status,
		StatusText: statusText(env.Status),
		Headers:    env.Headers,
	}, nil
}

// NewHTTPBridgeAInvoker builds the production invoker: it performs the call
// over HTTP and reproduces the shell's envelope semantics, including the
// base64 encoding of binary bodies.
func NewHTTPBridgeAInvoker(timeout time.Duration) BridgeAInvoker {
	hc := &http.Client{Timeout: timeout}

	return func(ctx context.Context, req *WireRequest) (*BridgeAEnvelope, error) {
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

		env := &BridgeAEnvelope{
			Status:  httpResp.StatusCode,
			Headers: flattenHeader(httpResp.Header),
		}
		if req.ResponseType == ResponseBlob || req.ResponseType == ResponseBytes {
			env.Data = base64.StdEncoding.EncodeToString(raw)
			return env, nil
		}

		var parsed any
		if err := json.Unmarshal(raw, &parsed); err != nil {
			env.Data = string(raw)
		} else {
			env.Data = parsed
		}
		return env, nil
	}
}
