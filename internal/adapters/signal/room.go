package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/rahul22112003/Collaborative-Coding/internal/core"
	"github.com/rahul22112003/Collaborative-Coding/internal/domain"
)

func (ctl *SignalWSController) handleJoin(
	sid core.SessionID,
	sess core.MemberSession,
	conn *wsSignalConn,
	data []byte,
) {
	type joinPayload struct {
		Type     string `json:"type"`
		Room     string `json:"room" validate:"required"`
		Username string `json:"username"`
		Peer     string `json:"peer"`
	}
	var p joinPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad join payload")
		ctl.sendError(conn, "bad_payload")
		return
	}
	if err := ctl.validate.Struct(p); err != nil {
		ctl.sendError(conn, "room required")
		return
	}
	if !ctl.limiter.Allow(sid) {
		log.Warn().Str("module", "signal").Str("sid", string(sid)).Msg("join rate limited")
		ctl.sendError(conn, "too many join attempts")
		return
	}

	res, err := ctl.Orch.Join(sid, sess, domain.RoomID(p.Room), p.Username, p.Peer)
	if err != nil {
		ctl.sendError(conn, err.Error())
		return
	}

	// Snapshot only to the joiner; the announcement only to the others.
	ctl.sendJSON(conn, struct {
		Type    string          `json:"type"`
		Room    string          `json:"room"`
		Clients []domain.Client `json:"clients"`
	}{"joined", p.Room, res.Clients})

	ctl.fanOut(res.Others, struct {
		Type   string        `json:"type"`
		Client domain.Client `json:"client"`
	}{"member-joined", res.Client})
}

func (ctl *SignalWSController) handleLeave(
	sid core.SessionID,
	conn *wsSignalConn,
	data []byte,
) {
	type leavePayload struct {
		Type string `json:"type"`
		Room string `json:"room"`
	}
	var p leavePayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad leave payload")
		ctl.sendError(conn, "bad_payload")
		return
	}
	if p.Room == "" {
		ctl.sendError(conn, "room required")
		return
	}

	log.Info().Str("module", "signal").Str("sid", string(sid)).Str("room", p.Room).Msg("leave")
	for _, dep := range ctl.Orch.Leave(sid, domain.RoomID(p.Room)) {
		ctl.fanOut(dep.Remaining, struct {
			Type     string `json:"type"`
			ID       string `json:"id"`
			Username string `json:"username"`
		}{"member-left", dep.Client.ID, dep.Client.Username})
	}
	ctl.sendJSON(conn, map[string]any{
		"type": "left",
	})
}
