package app

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/rahul22112003/Collaborative-Coding/internal/core"
	"github.com/rahul22112003/Collaborative-Coding/internal/domain"
)

// Registry owns every live connection's profile and its transport
// session, plus the reverse index from signaling peer address to
// session id used by the call-setup relay.
type Registry struct {
	mu     sync.RWMutex
	bySID  map[core.SessionID]core.MemberSession
	byPeer map[string]core.SessionID
}

func NewRegistry() *Registry {
	return &Registry{
		bySID:  make(map[core.SessionID]core.MemberSession),
		byPeer: make(map[string]core.SessionID),
	}
}

// Bind creates or overwrites the entry for sid. Idempotent.
func (r *Registry) Bind(sid core.SessionID, sess core.MemberSession) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if old, ok := r.bySID[sid]; ok && old.Meta().Peer != "" {
		delete(r.byPeer, old.Meta().Peer)
	}
	r.bySID[sid] = sess
	if p := sess.Meta().Peer; p != "" {
		r.byPeer[p] = sid
	}
	log.Debug().Str("module", "app.registry").Str("sid", string(sid)).Msg("session bound")
}

// SetUsername updates the display name for sid. Unknown sid is a
// benign no-op: a stale message racing a disconnect.
func (r *Registry) SetUsername(sid core.SessionID, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sess, ok := r.bySID[sid]
	if !ok {
		log.Warn().Str("module", "app.registry").Str("sid", string(sid)).Msg("set username for unknown session")
		return
	}
	sess.Meta().Username = domain.NormalizeUsername(name)
}

// SetPeerAddr attaches or updates the address used to reach sid for
// call setup. Unknown sid is a benign no-op.
func (r *Registry) SetPeerAddr(sid core.SessionID, addr string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sess, ok := r.bySID[sid]
	if !ok {
		log.Warn().Str("module", "app.registry").Str("sid", string(sid)).Msg("set peer addr for unknown session")
		return
	}
	if old := sess.Meta().Peer; old != "" && old != addr {
		delete(r.byPeer, old)
	}
	sess.Meta().Peer = addr
	if addr != "" {
		r.byPeer[addr] = sid
	}
}

// Lookup returns a copy of sid's profile.
func (r *Registry) Lookup(sid core.SessionID) (domain.Client, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sess, ok := r.bySID[sid]
	if !ok {
		return domain.Client{}, false
	}
	return *sess.Meta(), true
}

func (r *Registry) Session(sid core.SessionID) (core.MemberSession, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sess, ok := r.bySID[sid]
	return sess, ok
}

// ResolvePeer finds the live session holding a signaling address.
func (r *Registry) ResolvePeer(addr string) (core.MemberSession, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sid, ok := r.byPeer[addr]
	if !ok {
		return nil, false
	}
	sess, ok := r.bySID[sid]
	return sess, ok
}

// Remove deletes the profile and its peer index entry. Removing twice
// is not an error.
func (r *Registry) Remove(sid core.SessionID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sess, ok := r.bySID[sid]
	if !ok {
		return
	}
	if p := sess.Meta().Peer; p != "" && r.byPeer[p] == sid {
		delete(r.byPeer, p)
	}
	delete(r.bySID, sid)
	log.Debug().Str("module", "app.registry").Str("sid", string(sid)).Msg("session removed")
}
