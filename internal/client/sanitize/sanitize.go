// Package sanitize redacts credentials and tokens from values before they
// reach a log line. Full secret values must never be logged; URLs are logged
// with their host truncated.
package sanitize

import (
	"net/url"
	"strings"
)

// sensitiveKeys are query/form/body keys whose values are always masked.
var sensitiveKeys = map[string]struct{}{
	"token":         {},
	"user":          {},
	"pass":          {},
	"username":      {},
	"password":      {},
	"access_token":  {},
	"refresh_token": {},
}

func isSensitive(key string) bool {
	_, ok := sensitiveKeys[strings.ToLower(key)]
	return ok
}

// Token masks a secret, keeping a short prefix and suffix for correlation.
func Token(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 8 {
		return "***"
	}
	return s[:4] + "***" + s[len(s)-4:]
}

// Host truncates a host name so a log never discloses the full server
// address.
func Host(h string) string {
	if len(h) <= 3 {
		return "***"
	}
	return h[:3] + "***"
}

// URL redacts a full request URL: the host is truncated and the values of
// sensitive query keys are masked. Unparseable input is masked wholesale.
func URL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return Token(raw)
	}

	if u.Host != "" {
		u.Host = Host(u.Hostname())
	}

	q := u.Query()
	for key, values := range q {
		if !isSensitive(key) {
			continue
		}
		for i, v := range values {
			values[i] = Token(v)
		}
		q[key] = values
	}
	u.RawQuery = q.Encode()

	return u.String()
}

// Form redacts the sensitive fields of a form-encoded body. Bodies that do
// not parse as a form are masked wholesale.
func Form(body string) string {
	if body == "" {
		return ""
	}
	values, err := url.ParseQuery(body)
	if err != nil {
		return Token(body)
	}
	for key, vs := range values {
		if !isSensitive(key) {
			continue
		}
		for i, v := range vs {
			vs[i] = Token(v)
		}
		values[key] = vs
	}
	return values.Encode()
}

// Params returns a copy of a query-parameter map with sensitive values
// masked.
func Params(params map[string]string) map[string]string {
	if params == nil {
		return nil
	}
	out := make(map[string]string, len(params))
	for k, v := range params {
		if isSensitive(k) {
			out[k] = Token(v)
		} else {
			out[k] = v
		}
	}
	return out
}

// Value walks a decoded payload (maps, slices) and masks the values of
// sensitive keys. Scalars pass through unchanged.
func Value(v any) any {
	switch value := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(value))
		for k, item := range value {
			if isSensitive(k) {
				if s, ok := item.(string); ok {
					out[k] = Token(s)
					continue
				}
				out[k] = "***"
				continue
			}
			out[k] = Value(item)
		}
		return out
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = Value(item)
		}
		return out
	default:
		return v
	}
}
