package app

import "github.com/rahul22112003/Collaborative-Coding/internal/core"

type BackpressureAction int

const (
	NoAction BackpressureAction = iota
	DropFrame
	Disconnect
)

// Policy decides what happens to a member whose send buffer is full
// during a fan-out. Delivery to the rest of the room always continues.
type Policy interface {
	OnBackPressure(member core.MemberSession) BackpressureAction
}

// SimplePolicy closes slow consumers; the close surfaces as a normal
// transport disconnect and the room sees an ordinary member-left.
type SimplePolicy struct{}

func (SimplePolicy) OnBackPressure(member core.MemberSession) BackpressureAction {
	return Disconnect
}
