package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pliablepixels/zmng/internal/client/session"
	"github.com/pliablepixels/zmng/internal/client/transport"
	"github.com/pliablepixels/zmng/internal/common"
)

// Login authenticates with username/password and installs the resulting
// grant in the session. Wire shape: POST <base>/host/login.json with a
// form-encoded user=...&pass=... body. Field order is part of the wire
// contract, so the body is built by hand rather than via url.Values (which
// sorts keys).
func (c *Client) Login(ctx context.Context, username, password string) (*session.Grant, error) {
	body := "user=" + url.QueryEscape(username) + "&pass=" + url.QueryEscape(password)

	grant, err := c.requestGrant(ctx, body)
	if err != nil {
		return nil, err
	}

	c.session.Apply(grant)
	return grant, nil
}

// refreshGrant exchanges a refresh token for a new grant. It performs the
// wire call only; applying the grant is the recovery machine's job.
func (c *Client) refreshGrant(ctx context.Context, refreshToken string) (*session.Grant, error) {
	return c.requestGrant(ctx, common.TokenParamName+"="+url.QueryEscape(refreshToken))
}

// requestGrant posts a form body to the login endpoint and decodes the
// token payload. Login requests are excluded from 401 recovery by the
// dispatch path, so a failed grant request surfaces directly.
func (c *Client) requestGrant(ctx context.Context, formBody string) (*session.Grant, error) {
	d := &transport.Descriptor{
		Method:  http.MethodPost,
		Path:    common.LoginEndpoint,
		Data:    formBody,
		Headers: map[string]string{"Content-Type": common.FormContentType},
	}

	resp, err := c.Do(ctx, d)
	if err != nil {
		return nil, err
	}

	grant, err := parseGrant(resp.Data)
	if err != nil {
		return nil, err
	}
	if grant.AccessToken == "" {
		return nil, fmt.Errorf("login response carried no access token: %w", common.ErrUnauthorized)
	}
	return grant, nil
}

// Logout invalidates the session server-side and clears the local token
// state regardless of the call's outcome.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.Do(ctx, &transport.Descriptor{Method: http.MethodGet, Path: common.LogoutEndpoint})
	c.session.Clear()
	return err
}

// parseGrant decodes an already-normalized response body into a Grant.
func parseGrant(data any) (*session.Grant, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encoding grant payload: %w", err)
	}
	grant := &session.Grant{}
	if err := json.Unmarshal(raw, grant); err != nil {
		return nil, fmt.Errorf("decoding grant payload: %w", err)
	}
	return grant, nil
}
