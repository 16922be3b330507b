package domain

// CodeSnapshot is the whole document state: three named text blobs.
// The server relays snapshots verbatim and never merges, diffs or
// retains them; the last write wins everywhere.
type CodeSnapshot struct {
	Markup string `json:"markup"`
	Style  string `json:"style"`
	Script string `json:"script"`
}
