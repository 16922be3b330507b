package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/rahul22112003/Collaborative-Coding/internal/core"
	"github.com/rahul22112003/Collaborative-Coding/internal/domain"
)

// handleCodeUpdate relays a whole-document snapshot to everyone in the
// room except the sender. The snapshot is never inspected or retained;
// whoever writes last wins on every screen.
func (ctl *SignalWSController) handleCodeUpdate(
	sid core.SessionID,
	conn *wsSignalConn,
	data []byte,
) {
	type codePayload struct {
		Type string              `json:"type"`
		Room string              `json:"room"`
		Code domain.CodeSnapshot `json:"code"`
	}
	var p codePayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad code-update payload")
		ctl.sendError(conn, "bad_payload")
		return
	}
	if p.Room == "" {
		ctl.sendError(conn, "room required")
		return
	}

	recipients := ctl.Orch.CodeRecipients(sid, domain.RoomID(p.Room))
	ctl.fanOut(recipients, struct {
		Type string              `json:"type"`
		Code domain.CodeSnapshot `json:"code"`
	}{"code-update", p.Code})
}

// handleSyncRequest pushes the requester's own current snapshot to one
// just-joined connection, so a late joiner starts from the room's live
// state instead of a blank document. If the target vanished in the
// meantime the delivery is dropped silently.
func (ctl *SignalWSController) handleSyncRequest(
	sid core.SessionID,
	conn *wsSignalConn,
	data []byte,
) {
	type syncPayload struct {
		Type string              `json:"type"`
		To   string              `json:"to"`
		Code domain.CodeSnapshot `json:"code"`
	}
	var p syncPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad sync-request payload")
		ctl.sendError(conn, "bad_payload")
		return
	}
	if p.To == "" {
		ctl.sendError(conn, "target required")
		return
	}

	target, ok := ctl.Orch.SyncTarget(core.SessionID(p.To))
	if !ok {
		log.Debug().Str("module", "signal").Str("sid", string(sid)).Str("to", p.To).Msg("sync target gone")
		return
	}
	ctl.trySendJSON(target.Signal(), struct {
		Type string              `json:"type"`
		Code domain.CodeSnapshot `json:"code"`
	}{"code-update", p.Code})
}
