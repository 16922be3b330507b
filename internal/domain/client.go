// Package domain contains entities without logic, just meta-data.
package domain

import "unicode/utf8"

const (
	MaxUsernameLen = 36

	// AnonymousName is used when a join carries no display name.
	AnonymousName = "Anonymous"
)

// Client is one participant's profile as the rest of a room sees it.
// ID is the transport session id; Peer is the opaque address used to
// route call-setup payloads to this participant.
type Client struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Peer     string `json:"peer,omitempty"`
}

// NewClient is a tiny helper to avoid ad-hoc struct literals in adapters.
func NewClient(id string) *Client {
	return &Client{ID: id, Username: AnonymousName}
}

// NormalizeUsername maps an absent name to AnonymousName and clamps
// oversized ones. The cut lands on a rune boundary so a clamped name
// is still valid UTF-8.
func NormalizeUsername(name string) string {
	if name == "" {
		return AnonymousName
	}
	if len(name) <= MaxUsernameLen {
		return name
	}
	cut := MaxUsernameLen
	for cut > 0 && !utf8.RuneStart(name[cut]) {
		cut--
	}
	return name[:cut]
}
