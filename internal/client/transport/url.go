package transport

import (
	"net/url"
	"sort"
	"strings"
)

// BuildURL resolves a descriptor path against a base URL and appends query
// parameters.
//
// Rules:
//   - A path that already carries a scheme is used verbatim, ignoring base.
//   - Otherwise path is concatenated with base (a single '/' in between).
//   - Params are URL-encoded key=value pairs joined with '&', appended
//     after '?', merged with any pre-existing query string using '&'.
func BuildURL(base, path string, params map[string]string) string {
	target := path
	if !isAbsolute(path) {
		target = strings.TrimSuffix(base, "/")
		if !strings.HasPrefix(path, "/") && path != "" {
			target += "/"
		}
		target += path
	}

	if len(params) == 0 {
		return target
	}

	query := encodeParams(params)
	if strings.Contains(target, "?") {
		return target + "&" + query
	}
	return target + "?" + query
}

// isAbsolute reports whether the path begins with a URL scheme.
func isAbsolute(path string) bool {
	u, err := url.Parse(path)
	return err == nil && u.Scheme != ""
}

// encodeParams serializes params deterministically (sorted keys).
func encodeParams(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, url.QueryEscape(k)+"="+url.QueryEscape(params[k]))
	}
	return strings.Join(pairs, "&")
}
