// Package session owns the token pair issued by the surveillance server and
// the recovery state machine that runs when a request comes back 401.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pliablepixels/zmng/internal/common"
)

// Grant is the token payload of a successful login or refresh response.
// Field names are part of the wire contract. Expiries are in seconds.
type Grant struct {
	AccessToken         string  `json:"access_token"`
	AccessTokenExpires  float64 `json:"access_token_expires"`
	RefreshToken        string  `json:"refresh_token"`
	RefreshTokenExpires float64 `json:"refresh_token_expires"`
}

// State is the auth lifecycle position of a session.
type State int

const (
	Anonymous State = iota
	Authenticated
	Recovering
)

func (s State) String() string {
	switch s {
	case Authenticated:
		return "authenticated"
	case Recovering:
		return "recovering"
	default:
		return "anonymous"
	}
}

// RefreshFunc exchanges a refresh token for a new grant. Supplied by the
// API client, which owns the wire call.
type RefreshFunc func(ctx context.Context, refreshToken string) (*Grant, error)

// ReLoginFunc re-authenticates with stored credentials after a failed
// refresh. Optional.
type ReLoginFunc func(ctx context.Context) error

// Session holds the access/refresh token pair and their expiries. All four
// fields move together: a grant sets them atomically, Clear nulls them
// atomically. One instance exists per active connection profile.
type Session struct {
	mu               sync.Mutex
	state            State
	accessToken      string
	accessExpiresAt  time.Time
	refreshToken     string
	refreshExpiresAt time.Time

	// generation counts applied grants. Recovery uses it to tell whether a
	// concurrent recovery already produced a fresh token.
	generation uint64

	// recoveryMu serializes recoveries: concurrent 401s coalesce on the
	// first one instead of issuing duplicate refresh calls.
	recoveryMu sync.Mutex

	now func() time.Time
}

func New() *Session {
	return &Session{now: time.Now}
}

// AccessToken returns the current access token, empty when anonymous.
func (s *Session) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken
}

// RefreshToken returns the current refresh token and its expiry.
func (s *Session) RefreshToken() (string, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshToken, s.refreshExpiresAt
}

// RefreshTokenValid reports whether a refresh token exists and has not
// passed its advisory expiry.
func (s *Session) RefreshTokenValid() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshToken != "" && s.refreshExpiresAt.After(s.now())
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Generation returns the count of grants applied so far.
func (s *Session) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Apply installs a grant: all four token fields are updated under one lock
// acquisition, so no reader ever observes a half-updated session. When the
// grant omits an expiry and the token is a JWT, the token's exp claim is
// used instead.
func (s *Session) Apply(g *Grant) {
	now := s.now()

	accessExp := expiryFrom(now, g.AccessTokenExpires, g.AccessToken)
	refreshExp := expiryFrom(now, g.RefreshTokenExpires, g.RefreshToken)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = g.AccessToken
	s.accessExpiresAt = accessExp
	s.refreshToken = g.RefreshToken
	s.refreshExpiresAt = refreshExp
	s.state = Authenticated
	s.generation++
}

// Clear nulls every token field and forces the anonymous state. Used on
// logout and on irrecoverable refresh failure.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = ""
	s.accessExpiresAt = time.Time{}
	s.refreshToken = ""
	s.refreshExpiresAt = time.Time{}
	s.state = Anonymous
}

// Recover runs the 401 recovery sequence:
//
//  1. refresh, when a refresh token is present;
//  2. the re-login callback, when supplied;
//  3. force anonymous and report failure.
//
// observedGen is the generation the caller saw when its request was
// dispatched. Concurrent recoveries serialize on an internal lock; a caller
// that acquires it after another recovery already produced a new grant
// returns immediately without issuing a second refresh.
//
// Recover never retries its own steps: a failed refresh moves on to
// re-login, never to a second refresh.
func (s *Session) Recover(ctx context.Context, observedGen uint64, refresh RefreshFunc, reLogin ReLoginFunc) error {
	s.recoveryMu.Lock()
	defer s.recoveryMu.Unlock()

	// A concurrent recovery finished while this one waited for the lock.
	if s.Generation() != observedGen {
		return nil
	}

	s.setState(Recovering)

	token, _ := s.RefreshToken()
	if token != "" && refresh != nil {
		grant, err := refresh(ctx, token)
		if err == nil {
			s.Apply(grant)
			return nil
		}
	}

	if reLogin != nil {
		if err := reLogin(ctx); err == nil {
			return nil
		}
	}

	s.Clear()
	return common.ErrUnauthorized
}

func (s *Session) setState(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}

// expiryFrom resolves a token expiry: the explicit seconds value wins; a
// JWT exp claim is the fallback; otherwise the zero time (advisory only).
func expiryFrom(now time.Time, seconds float64, token string) time.Time {
	if seconds > 0 {
		return now.Add(time.Duration(seconds * float64(time.Second)))
	}
	if exp, ok := jwtExpiry(token); ok {
		return exp
	}
	return time.Time{}
}

// jwtExpiry extracts the exp claim of a JWT without verifying its
// signature. Verification is the server's job; the client only needs the
// advisory expiry.
func jwtExpiry(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
