package orch

import "github.com/rahul22112003/Collaborative-Coding/internal/core"

// ResolvePeer finds the live session owning a signaling address. The
// relay never interprets payloads; it only routes them. A missing
// peer means the target already disconnected: logged by the caller,
// never retried, nothing delivered to anyone.
func (o *Orchestrator) ResolvePeer(addr string) (core.MemberSession, bool) {
	return o.Registry.ResolvePeer(addr)
}
