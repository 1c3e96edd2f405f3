// Package transport normalizes the three network backends the client can
// run on (the plain Go HTTP stack, the mobile application-shell bridge and
// the desktop application-shell bridge) behind a single request/response
// contract.
package transport

// ResponseType selects how a backend materializes the response body.
type ResponseType string

const (
	// ResponseJSON parses the body as JSON, falling back to the raw text.
	ResponseJSON ResponseType = "json"
	// ResponseBlob materializes the body as a Blob with a content type.
	ResponseBlob ResponseType = "blob"
	// ResponseBytes materializes the body as raw bytes.
	ResponseBytes ResponseType = "bytes"
)

// Descriptor is the logical, backend-agnostic representation of one
// outbound call. It is immutable once dispatched: the retry machinery
// derives a new descriptor via WithRetry instead of mutating a dispatched
// one.
type Descriptor struct {
	Method  string
	Path    string
	BaseURL string // optional override of the client's configured base URL
	Params  map[string]string
	Data    any
	Headers map[string]string

	ResponseType ResponseType

	// SkipAuth suppresses token injection for this call.
	SkipAuth bool

	// Retried marks a descriptor redispatched after 401 recovery. A retried
	// descriptor is never retried again.
	Retried bool

	// RequestID tags the call in diagnostic logs.
	RequestID string
}

// Clone returns a deep copy of the descriptor (params and headers included)
// so interceptors never mutate the caller's value.
func (d *Descriptor) Clone() *Descriptor {
	c := *d
	if d.Params != nil {
		c.Params = make(map[string]string, len(d.Params))
		for k, v := range d.Params {
			c.Params[k] = v
		}
	}
	if d.Headers != nil {
		c.Headers = make(map[string]string, len(d.Headers))
		for k, v := range d.Headers {
			c.Headers[k] = v
		}
	}
	return &c
}

// WithRetry derives the descriptor used for the single post-recovery
// redispatch.
func (d *Descriptor) WithRetry() *Descriptor {
	c := d.Clone()
	c.Retried = true
	return c
}

// SetParam sets a single query parameter, allocating the map on first use.
func (d *Descriptor) SetParam(key, value string) {
	if d.Params == nil {
		d.Params = make(map[string]string, 1)
	}
	d.Params[key] = value
}

// SetHeader sets a single header, allocating the map on first use.
func (d *Descriptor) SetHeader(key, value string) {
	if d.Headers == nil {
		d.Headers = make(map[string]string, 1)
	}
	d.Headers[key] = value
}
