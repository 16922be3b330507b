package orch

import (
	"github.com/rahul22112003/Collaborative-Coding/internal/core"
	"github.com/rahul22112003/Collaborative-Coding/internal/domain"
)

// CodeRecipients returns the sessions a document snapshot from sid
// must reach: every member of the room except the sender. An empty
// result is normal, not an error.
func (o *Orchestrator) CodeRecipients(sid core.SessionID, room domain.RoomID) []core.MemberSession {
	var out []core.MemberSession
	for _, m := range o.Rooms.MembersOf(room) {
		if m == sid {
			continue
		}
		if s, ok := o.Registry.Session(m); ok {
			out = append(out, s)
		}
	}
	return out
}

// SyncTarget resolves the single connection a courtesy post-join sync
// is addressed to. A vanished target is a benign race; the caller
// drops the delivery.
func (o *Orchestrator) SyncTarget(target core.SessionID) (core.MemberSession, bool) {
	return o.Registry.Session(target)
}
