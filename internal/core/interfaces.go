package core

import "github.com/rahul22112003/Collaborative-Coding/internal/domain"

// Frame is a raw wire payload, already encoded for the transport.
type Frame []byte

type SessionID string

// SignalConnection abstracts a system messaging transport.
// Owned by the adapter; the adapter must Close() it.
type SignalConnection interface {
	TrySend(Frame) error
	Close()
}

// MemberSession binds domain.Client and its transport endpoint.
// This is what the registry stores and fan-outs address.
type MemberSession interface {
	Meta() *domain.Client
	Signal() SignalConnection
}

// PublishResult reports delivery stats/backpressure after a fan-out.
type PublishResult struct {
	SentTo  int
	Dropped []MemberSession
}

type RoomInfo struct {
	Name        domain.RoomID `json:"name"`
	MemberCount int           `json:"client_count"`
}
