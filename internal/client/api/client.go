// Package api implements the authenticated API client: the interceptor
// chain that shapes outgoing requests, the dispatch path through the
// transport backends, and the 401 recovery driver.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pliablepixels/zmng/internal/client/sanitize"
	"github.com/pliablepixels/zmng/internal/client/session"
	"github.com/pliablepixels/zmng/internal/client/transport"
	"github.com/pliablepixels/zmng/internal/logging"
)

// DefaultTimeout is the fixed ceiling applied to every request issued by a
// client.
const DefaultTimeout = 15 * time.Second

// DevProxy routes requests through a local reverse proxy during
// host-browser development. Never active on the packaged shells.
type DevProxy struct {
	Enabled bool
	Addr    string
}

// RequestInterceptor mutates an outbound descriptor before dispatch.
// Interceptors run in a fixed, documented order.
type RequestInterceptor func(d *transport.Descriptor) error

// Client issues authenticated requests against one server's API base URL.
// Construction is pure; process-wide registration happens via Registry.
type Client struct {
	baseURL  string
	timeout  time.Duration
	session  *session.Session
	selector transport.Selector
	log      logging.Logger
	reLogin  session.ReLoginFunc
	devProxy DevProxy

	// interceptors run in order: dev-proxy rewrite, then auth injection.
	interceptors []RequestInterceptor
}

// Option configures a Client at construction time.
type Option func(*Client)

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.timeout = timeout }
}

func WithLogger(log logging.Logger) Option {
	return func(c *Client) { c.log = log }
}

func WithSession(s *session.Session) Option {
	return func(c *Client) { c.session = s }
}

func WithSelector(sel transport.Selector) Option {
	return func(c *Client) { c.selector = sel }
}

// WithReLogin supplies the credential-based re-login used as the second
// recovery step after a failed token refresh.
func WithReLogin(f session.ReLoginFunc) Option {
	return func(c *Client) { c.reLogin = f }
}

func WithDevProxy(p DevProxy) Option {
	return func(c *Client) { c.devProxy = p }
}

// New builds a client bound to baseURL. It has no side effect on any
// process-wide state.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		timeout: DefaultTimeout,
		log:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.session == nil {
		c.session = session.New()
	}
	if c.selector == nil {
		c.selector = transport.NewSelector(c.timeout)
	}
	c.interceptors = []RequestInterceptor{c.proxyInterceptor, c.authInterceptor}
	return c
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Session exposes the client's session state.
func (c *Client) Session() *session.Session { return c.session }

// Do dispatches a descriptor and, when the response is a 401 on an
// ordinary request, runs the recovery sequence and redispatches the
// original call exactly once. Every other failure passes through
// unmodified.
func (c *Client) Do(ctx context.Context, d *transport.Descriptor) (*transport.Response, error) {
	if d.RequestID == "" {
		d = d.Clone()
		d.RequestID = uuid.NewString()
	}

	observedGen := c.session.Generation()

	resp, err := c.dispatch(ctx, d)
	if err == nil {
		return resp, nil
	}

	te, ok := transport.AsError(err)
	if !ok || te.Status != http.StatusUnauthorized {
		return nil, err
	}
	if d.SkipAuth || d.Retried || isLoginPath(d.Path) {
		return nil, err
	}

	if recErr := c.session.Recover(ctx, observedGen, c.refreshGrant, c.reLogin); recErr != nil {
		// Recovery failed irrecoverably; the caller gets the original error.
		return nil, err
	}

	return c.dispatch(ctx, d.WithRetry())
}

// dispatch runs one descriptor through the interceptor chain and the
// currently selected backend. It maps failure statuses (>= 400) to a
// *transport.Error uniformly for all backends.
func (c *Client) dispatch(ctx context.Context, d *transport.Descriptor) (*transport.Response, error) {
	dd := d.Clone()
	if dd.BaseURL == "" {
		dd.BaseURL = c.baseURL
	}

	for _, interceptor := range c.interceptors {
		if err := interceptor(dd); err != nil {
			return nil, fmt.Errorf("request interceptor: %w", err)
		}
	}

	body, contentType, err := transport.ShapeBody(dd.Data)
	if err != nil {
		return nil, fmt.Errorf("shaping request body: %w", err)
	}
	if contentType != "" && dd.Headers["Content-Type"] == "" {
		dd.SetHeader("Content-Type", contentType)
	}

	wire := &transport.WireRequest{
		Method:       dd.Method,
		URL:          transport.BuildURL(dd.BaseURL, dd.Path, dd.Params),
		Headers:      dd.Headers,
		Body:         body,
		ResponseType: dd.ResponseType,
	}

	c.safeLog(func() {
		c.log.Debug(ctx, "request",
			"id", dd.RequestID,
			"env", transport.DetectEnv().String(),
			"method", wire.Method,
			"url", sanitize.URL(wire.URL),
			"body", sanitize.Form(wire.Body),
			"retried", dd.Retried,
		)
	})

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.selector().Execute(callCtx, wire)
	if err != nil {
		c.safeLog(func() {
			c.log.Error(ctx, "request error", "id", dd.RequestID, "error", err.Error())
		})
		return nil, err
	}

	if resp.Status >= http.StatusBadRequest {
		statusErr := transport.NewStatusError(resp)
		c.safeLog(func() {
			c.log.Warn(ctx, "response error",
				"id", dd.RequestID,
				"status", resp.Status,
				"data", sanitize.Value(resp.Data),
			)
		})
		return nil, statusErr
	}

	c.safeLog(func() {
		c.log.Debug(ctx, "response", "id", dd.RequestID, "status", resp.Status)
	})
	return resp, nil
}

// safeLog shields the request path from the log sink: diagnostics must
// never fail or block a network call.
func (c *Client) safeLog(f func()) {
	defer func() {
		_ = recover()
	}()
	f()
}

// Get issues a GET request for a JSON response.
func (c *Client) Get(ctx context.Context, path string, params map[string]string) (*transport.Response, error) {
	return c.Do(ctx, &transport.Descriptor{Method: http.MethodGet, Path: path, Params: params})
}

// Post issues a POST request with the given body.
func (c *Client) Post(ctx context.Context, path string, data any) (*transport.Response, error) {
	return c.Do(ctx, &transport.Descriptor{Method: http.MethodPost, Path: path, Data: data})
}

// Put issues a PUT request with the given body.
func (c *Client) Put(ctx context.Context, path string, data any) (*transport.Response, error) {
	return c.Do(ctx, &transport.Descriptor{Method: http.MethodPut, Path: path, Data: data})
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, params map[string]string) (*transport.Response, error) {
	return c.Do(ctx, &transport.Descriptor{Method: http.MethodDelete, Path: path, Params: params})
}
