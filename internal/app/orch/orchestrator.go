// Package orch coordinates presence, document fan-out and call-setup
// routing on top of the registry and the room directory. It computes
// which sessions must receive which events; the transport adapter does
// the actual delivery, so per-recipient ordering is the adapter's FIFO.
package orch

import "github.com/rahul22112003/Collaborative-Coding/internal/app"

type Orchestrator struct {
	Registry *app.Registry
	Rooms    *app.RoomDirectory
	Policy   app.Policy
}
