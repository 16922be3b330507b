package orch

import (
	"github.com/rs/zerolog/log"

	"github.com/rahul22112003/Collaborative-Coding/internal/core"
	"github.com/rahul22112003/Collaborative-Coding/internal/domain"
)

// JoinResult carries everything the adapter must deliver after a join:
// the membership snapshot for the joiner and the sessions owed a
// member-joined notification.
type JoinResult struct {
	Client  domain.Client
	Clients []domain.Client
	Others  []core.MemberSession
}

// Departure is one room's view of a connection going away. Client is
// the last-known profile, captured before the registry entry dies.
type Departure struct {
	Room      domain.RoomID
	Client    domain.Client
	Remaining []core.MemberSession
}

// Join registers the profile and membership and computes the join
// fan-out. A rejoin of the same room is a refresh: the profile is
// updated, the member list stays put and the announcement repeats.
func (o *Orchestrator) Join(sid core.SessionID, sess core.MemberSession, room domain.RoomID, username, peer string) (*JoinResult, error) {
	if room == "" {
		return nil, domain.ErrRoomRequired
	}

	o.Registry.Bind(sid, sess)
	o.Registry.SetUsername(sid, username)
	if peer != "" {
		o.Registry.SetPeerAddr(sid, peer)
	}
	o.Rooms.Join(room, sid)

	client, _ := o.Registry.Lookup(sid)
	res := &JoinResult{Client: client}
	for _, m := range o.Rooms.MembersOf(room) {
		c, ok := o.Registry.Lookup(m)
		if !ok {
			// Member disconnected mid-join; teardown will drop it.
			continue
		}
		res.Clients = append(res.Clients, c)
		if m == sid {
			continue
		}
		if s, ok := o.Registry.Session(m); ok {
			res.Others = append(res.Others, s)
		}
	}

	log.Info().Str("module", "orch").Str("sid", string(sid)).Str("room", string(room)).
		Str("username", client.Username).Int("members", len(res.Clients)).Msg("join")
	return res, nil
}

// Leave removes sid from one room. The departure event carries the
// name looked up before the registry entry is removed; a leave for a
// connection not in the room is a benign no-op with no events and no
// profile mutation. The profile itself goes only once the connection
// belongs to no room at all.
func (o *Orchestrator) Leave(sid core.SessionID, room domain.RoomID) []Departure {
	out := o.depart(sid, []domain.RoomID{room})
	if len(out) > 0 && len(o.Rooms.RoomsOf(sid)) == 0 {
		o.Registry.Remove(sid)
	}
	return out
}

// Disconnect tears sid down from every room it is in. The profile is
// always removed here: the connection is gone regardless of rooms.
func (o *Orchestrator) Disconnect(sid core.SessionID) []Departure {
	out := o.depart(sid, o.Rooms.RoomsOf(sid))
	o.Registry.Remove(sid)
	return out
}

func (o *Orchestrator) depart(sid core.SessionID, rooms []domain.RoomID) []Departure {
	client, _ := o.Registry.Lookup(sid)

	var out []Departure
	for _, room := range rooms {
		members := o.Rooms.MembersOf(room)
		present := false
		for _, m := range members {
			if m == sid {
				present = true
				break
			}
		}
		if !present {
			continue
		}
		o.Rooms.Leave(room, sid)

		dep := Departure{Room: room, Client: client}
		for _, m := range members {
			if m == sid {
				continue
			}
			if s, ok := o.Registry.Session(m); ok {
				dep.Remaining = append(dep.Remaining, s)
			}
		}
		out = append(out, dep)
		log.Info().Str("module", "orch").Str("sid", string(sid)).Str("room", string(room)).Msg("departure")
	}
	return out
}
