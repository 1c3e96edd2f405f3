package common

const (
	// TokenParamName is the query parameter that carries the access (or
	// refresh) token on authenticated requests.
	TokenParamName = "token"

	// LoginEndpoint is the API path of the token-issuing endpoint.
	LoginEndpoint = "/host/login.json"

	// LogoutEndpoint invalidates the current session server-side.
	LogoutEndpoint = "/host/logout.json"

	// FormContentType is the body encoding of login and refresh requests.
	FormContentType = "application/x-www-form-urlencoded"

	// ProxyHostHeader carries the original target host when requests are
	// routed through the local development reverse proxy.
	ProxyHostHeader = "X-Proxy-Host"
)
