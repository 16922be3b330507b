package domain

import "errors"

type RoomID string

// ErrRoomRequired rejects a join without a room id. A room is never
// created server-side; it exists exactly while it has members.
var ErrRoomRequired = errors.New("room required")
