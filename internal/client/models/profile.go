// Package models defines the client-side data shapes: connection profiles
// and the API entities consumed from the surveillance server.
package models

import "time"

// Profile is one saved server connection. APIBaseURL is read at
// client-construction time; PortalURL only for diagnostic URL
// reconstruction; CGIBaseURL for streaming/snapshot endpoints.
type Profile struct {
	ID         int64
	Name       string
	PortalURL  string
	APIBaseURL string
	CGIBaseURL string
	Username   string
	Password   string
	CreatedAt  time.Time
}
