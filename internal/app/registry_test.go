package app

import (
	"testing"

	"github.com/rahul22112003/Collaborative-Coding/internal/core"
	"github.com/rahul22112003/Collaborative-Coding/internal/domain"
)

type nopConn struct{}

func (nopConn) TrySend(core.Frame) error { return nil }
func (nopConn) Close()                   {}

func newSession(id string) core.MemberSession {
	return core.NewMemberSession(domain.NewClient(id), nopConn{})
}

func TestBindAndLookup(t *testing.T) {
	r := NewRegistry()
	r.Bind("c1", newSession("c1"))

	c, ok := r.Lookup("c1")
	if !ok {
		t.Fatal("Lookup(c1) not found after Bind")
	}
	if c.Username != domain.AnonymousName {
		t.Fatalf("fresh profile username = %q, want %q", c.Username, domain.AnonymousName)
	}

	// Bind is create-or-overwrite.
	r.Bind("c1", newSession("c1"))
	if _, ok := r.Lookup("c1"); !ok {
		t.Fatal("Lookup(c1) not found after rebind")
	}
}

func TestSetUsernameNormalizes(t *testing.T) {
	r := NewRegistry()
	r.Bind("c1", newSession("c1"))

	r.SetUsername("c1", "Alice")
	if c, _ := r.Lookup("c1"); c.Username != "Alice" {
		t.Fatalf("username = %q, want Alice", c.Username)
	}

	r.SetUsername("c1", "")
	if c, _ := r.Lookup("c1"); c.Username != domain.AnonymousName {
		t.Fatalf("empty rename -> %q, want %q", c.Username, domain.AnonymousName)
	}

	// Stale message after disconnect is a benign no-op.
	r.SetUsername("ghost", "Bob")
	if _, ok := r.Lookup("ghost"); ok {
		t.Fatal("SetUsername must not create entries")
	}
}

func TestPeerAddressIndex(t *testing.T) {
	r := NewRegistry()
	r.Bind("c1", newSession("c1"))
	r.SetPeerAddr("c1", "peer-1")

	sess, ok := r.ResolvePeer("peer-1")
	if !ok || sess.Meta().ID != "c1" {
		t.Fatalf("ResolvePeer(peer-1) = %v, %v; want c1", sess, ok)
	}

	// Address change retires the old mapping.
	r.SetPeerAddr("c1", "peer-2")
	if _, ok := r.ResolvePeer("peer-1"); ok {
		t.Fatal("old peer address still resolves after change")
	}
	if _, ok := r.ResolvePeer("peer-2"); !ok {
		t.Fatal("new peer address does not resolve")
	}

	r.SetPeerAddr("ghost", "peer-3")
	if _, ok := r.ResolvePeer("peer-3"); ok {
		t.Fatal("SetPeerAddr for unknown session must be a no-op")
	}
}

func TestRemoveIsIdempotentAndClearsIndex(t *testing.T) {
	r := NewRegistry()
	r.Bind("c1", newSession("c1"))
	r.SetPeerAddr("c1", "peer-1")

	r.Remove("c1")
	r.Remove("c1") // removing twice is not an error

	if _, ok := r.Lookup("c1"); ok {
		t.Fatal("Lookup(c1) found after Remove")
	}
	if _, ok := r.ResolvePeer("peer-1"); ok {
		t.Fatal("peer address resolves after Remove")
	}
}
