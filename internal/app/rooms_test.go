package app

import (
	"reflect"
	"testing"

	"github.com/rahul22112003/Collaborative-Coding/internal/core"
	"github.com/rahul22112003/Collaborative-Coding/internal/domain"
)

func TestJoinOrderAndIdempotency(t *testing.T) {
	d := NewRoomDirectory()

	d.Join("r1", "c1")
	d.Join("r1", "c2")
	d.Join("r1", "c1") // rejoin must not duplicate

	got := d.MembersOf("r1")
	want := []core.SessionID{"c1", "c2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("MembersOf(r1) = %v, want %v", got, want)
	}
}

func TestLeaveDeletesEmptyRoom(t *testing.T) {
	d := NewRoomDirectory()

	d.Join("r1", "c1")
	d.Leave("r1", "c1")

	if got := d.MembersOf("r1"); len(got) != 0 {
		t.Fatalf("MembersOf after last leave = %v, want empty", got)
	}
	if got := d.List(); len(got) != 0 {
		t.Fatalf("List after last leave = %v, want empty", got)
	}
}

func TestEmptyRoomIndistinguishableFromUnknown(t *testing.T) {
	d := NewRoomDirectory()

	d.Join("r1", "c1")
	d.Leave("r1", "c1")

	emptied := d.MembersOf("r1")
	never := d.MembersOf("r2")
	if len(emptied) != 0 || len(never) != 0 {
		t.Fatalf("emptied = %v, never-existed = %v, want both empty", emptied, never)
	}
}

func TestLeaveUnknownIsNoOp(t *testing.T) {
	d := NewRoomDirectory()

	d.Leave("r1", "c1") // room never existed
	d.Join("r1", "c1")
	d.Leave("r1", "c2") // member never joined

	if got := d.MembersOf("r1"); !reflect.DeepEqual(got, []core.SessionID{"c1"}) {
		t.Fatalf("MembersOf(r1) = %v, want [c1]", got)
	}
}

func TestRoomsOfTracksEveryRoom(t *testing.T) {
	d := NewRoomDirectory()

	d.Join("r1", "c1")
	d.Join("r2", "c1")
	d.Join("r1", "c2")

	rooms := d.RoomsOf("c1")
	if len(rooms) != 2 {
		t.Fatalf("RoomsOf(c1) = %v, want 2 rooms", rooms)
	}
	seen := map[domain.RoomID]bool{}
	for _, r := range rooms {
		seen[r] = true
	}
	if !seen["r1"] || !seen["r2"] {
		t.Fatalf("RoomsOf(c1) = %v, want r1 and r2", rooms)
	}

	d.Leave("r1", "c1")
	d.Leave("r2", "c1")
	if got := d.RoomsOf("c1"); len(got) != 0 {
		t.Fatalf("RoomsOf after leaving all = %v, want empty", got)
	}
}

func TestListCounts(t *testing.T) {
	d := NewRoomDirectory()

	d.Join("r1", "c1")
	d.Join("r1", "c2")
	d.Join("r2", "c3")

	byName := map[domain.RoomID]int{}
	for _, info := range d.List() {
		byName[info.Name] = info.MemberCount
	}
	if byName["r1"] != 2 || byName["r2"] != 1 {
		t.Fatalf("List counts = %v, want r1:2 r2:1", byName)
	}
}
