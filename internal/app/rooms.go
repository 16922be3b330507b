package app

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/rahul22112003/Collaborative-Coding/internal/core"
	"github.com/rahul22112003/Collaborative-Coding/internal/domain"
)

// RoomDirectory maps room ids to join-ordered member lists. A room
// materializes on first join and vanishes when its last member leaves;
// an empty room and a room that never existed are indistinguishable.
type RoomDirectory struct {
	mu       sync.RWMutex
	rooms    map[domain.RoomID][]core.SessionID
	byMember map[core.SessionID]map[domain.RoomID]struct{}
}

func NewRoomDirectory() *RoomDirectory {
	return &RoomDirectory{
		rooms:    make(map[domain.RoomID][]core.SessionID),
		byMember: make(map[core.SessionID]map[domain.RoomID]struct{}),
	}
}

// Join adds sid to the room, creating it if absent. Rejoining a room
// one is already in leaves the member list unchanged.
func (d *RoomDirectory) Join(room domain.RoomID, sid core.SessionID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if rs, ok := d.byMember[sid]; ok {
		if _, in := rs[room]; in {
			return
		}
	}
	d.rooms[room] = append(d.rooms[room], sid)
	if d.byMember[sid] == nil {
		d.byMember[sid] = make(map[domain.RoomID]struct{})
	}
	d.byMember[sid][room] = struct{}{}
	log.Info().Str("module", "app.rooms").Str("room", string(room)).Str("sid", string(sid)).Msg("member added")
}

// Leave removes sid from the room and deletes the room once empty.
func (d *RoomDirectory) Leave(room domain.RoomID, sid core.SessionID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	members, ok := d.rooms[room]
	if !ok {
		return
	}
	for i, m := range members {
		if m == sid {
			d.rooms[room] = append(members[:i], members[i+1:]...)
			break
		}
	}
	if len(d.rooms[room]) == 0 {
		delete(d.rooms, room)
	}
	if rs, ok := d.byMember[sid]; ok {
		delete(rs, room)
		if len(rs) == 0 {
			delete(d.byMember, sid)
		}
	}
	log.Info().Str("module", "app.rooms").Str("room", string(room)).Str("sid", string(sid)).Msg("member removed")
}

// MembersOf returns the room's members in join order. Unknown rooms
// yield an empty slice, never an error.
func (d *RoomDirectory) MembersOf(room domain.RoomID) []core.SessionID {
	d.mu.RLock()
	defer d.mu.RUnlock()
	members := d.rooms[room]
	out := make([]core.SessionID, len(members))
	copy(out, members)
	return out
}

// RoomsOf returns every room sid is currently in. Used during
// disconnect teardown.
func (d *RoomDirectory) RoomsOf(sid core.SessionID) []domain.RoomID {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]domain.RoomID, 0, len(d.byMember[sid]))
	for room := range d.byMember[sid] {
		out = append(out, room)
	}
	return out
}

func (d *RoomDirectory) List() []core.RoomInfo {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]core.RoomInfo, 0, len(d.rooms))
	for room, members := range d.rooms {
		out = append(out, core.RoomInfo{Name: room, MemberCount: len(members)})
	}
	return out
}
