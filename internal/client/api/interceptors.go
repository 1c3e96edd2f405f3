package api

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/pliablepixels/zmng/internal/client/transport"
	"github.com/pliablepixels/zmng/internal/common"
)

// isLoginPath reports whether a descriptor targets the token-issuing
// endpoint.
func isLoginPath(path string) bool {
	return strings.HasSuffix(path, common.LoginEndpoint)
}

// proxyInterceptor rewrites the effective base URL to the local development
// reverse proxy and records the original target host in a header, so the
// proxy can forward the request. Active only for host-browser development:
// never on the packaged shells.
func (c *Client) proxyInterceptor(d *transport.Descriptor) error {
	if !c.devProxy.Enabled || transport.DetectEnv() != transport.EnvWeb {
		return nil
	}

	original, err := url.Parse(d.BaseURL)
	if err != nil {
		return fmt.Errorf("parsing base url for proxy rewrite: %w", err)
	}

	d.SetHeader(common.ProxyHostHeader, original.Host)
	d.BaseURL = c.devProxy.Addr
	return nil
}

// authInterceptor injects the token query parameter.
//
// Ordinary requests get the access token as ?token=..., uniformly for every
// method, merged into existing params without touching unrelated keys.
// Login requests never get the access token; when a still-valid refresh
// token exists it is injected instead. SkipAuth suppresses injection
// entirely.
func (c *Client) authInterceptor(d *transport.Descriptor) error {
	if d.SkipAuth {
		return nil
	}

	if isLoginPath(d.Path) {
		if c.session.RefreshTokenValid() {
			refreshToken, _ := c.session.RefreshToken()
			d.SetParam(common.TokenParamName, refreshToken)
		}
		// Otherwise the caller is expected to have put credentials in the
		// body; the interceptor never fabricates them.
		return nil
	}

	if accessToken := c.session.AccessToken(); accessToken != "" {
		d.SetParam(common.TokenParamName, accessToken)
	}
	return nil
}
