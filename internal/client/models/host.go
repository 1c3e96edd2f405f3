package models

// Version is the server software/API version pair.
type Version struct {
	Version    string `json:"version"`
	APIVersion string `json:"apiversion"`
}

// DaemonStatus reports whether the server's capture daemon is running.
type DaemonStatus struct {
	Result int `json:"result"`
}
