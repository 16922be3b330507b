package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/rahul22112003/Collaborative-Coding/internal/core"
)

// handleRelay forwards an opaque call-setup payload to the connection
// owning the target signaling address, tagged with the sender's id so
// the recipient knows which peer to answer. No peer at that address
// means the target already disconnected: logged, not retried, nothing
// delivered to anyone.
func (ctl *SignalWSController) handleRelay(
	sid core.SessionID,
	conn *wsSignalConn,
	data []byte,
) {
	type signalPayload struct {
		Type    string          `json:"type"`
		To      string          `json:"to"`
		Payload json.RawMessage `json:"payload"`
	}
	var p signalPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad signal payload")
		ctl.sendError(conn, "bad_payload")
		return
	}
	if p.To == "" {
		ctl.sendError(conn, "target required")
		return
	}

	peer, ok := ctl.Orch.ResolvePeer(p.To)
	if !ok {
		log.Warn().Str("module", "signal").Str("sid", string(sid)).Str("to", p.To).Msg("no such peer")
		return
	}
	ctl.trySendJSON(peer.Signal(), struct {
		Type    string          `json:"type"`
		From    string          `json:"from"`
		Payload json.RawMessage `json:"payload"`
	}{"signal", string(sid), p.Payload})
}
