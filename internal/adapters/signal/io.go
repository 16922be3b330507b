package signal

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/rahul22112003/Collaborative-Coding/internal/app"
	"github.com/rahul22112003/Collaborative-Coding/internal/core"
)

const writeWait = 5 * time.Second

func (ctl *SignalWSController) writePump(ctx context.Context, c *wsSignalConn) {
	ticker := time.NewTicker(ctl.cfg.PingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case data, ok := <-c.send:
			if !ok {
				return
			}
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump set deadline")
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump write error")
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (ctl *SignalWSController) readPump(ctx context.Context, cancel context.CancelFunc, sid core.SessionID, sess core.MemberSession, c *wsSignalConn) {
	defer func() {
		log.Info().Str("module", "signal").Str("sid", string(sid)).Msg("readPump closing")
		ctl.teardown(sid)
		c.Close()
		cancel()
	}()

	c.conn.SetReadLimit(ctl.cfg.ReadLimit)
	pongWait := ctl.cfg.PingPeriod * 10 / 9
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		select {
		case <-ctx.Done():
			return
		default:
			_, data, err := c.conn.ReadMessage()
			if err != nil {
				log.Debug().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("readPump read error")
				return
			}
			ctl.handleMessage(sid, sess, c, data)
		}
	}
}

func (ctl *SignalWSController) handleMessage(sid core.SessionID, sess core.MemberSession, c *wsSignalConn, data []byte) {
	var env struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad json")
		ctl.sendError(c, "bad_payload")
		return
	}

	switch env.Type {
	case "join":
		ctl.handleJoin(sid, sess, c, data)
	case "leave":
		ctl.handleLeave(sid, c, data)
	case "code-update":
		ctl.handleCodeUpdate(sid, c, data)
	case "sync-request":
		ctl.handleSyncRequest(sid, c, data)
	case "signal":
		ctl.handleRelay(sid, c, data)
	case "ping":
		ctl.handlePing(c)
	default:
		log.Warn().Str("module", "signal").Str("type", env.Type).Msg("unknown message")
	}
}

func (ctl *SignalWSController) handlePing(c *wsSignalConn) {
	resp := struct {
		Type string `json:"type"`
	}{
		Type: "pong",
	}
	ctl.sendJSON(c, resp)
}

// teardown runs once per connection, on pump exit. Departure events
// are fanned out before the registry forgets the profile, so they
// still carry the last-known display name.
func (ctl *SignalWSController) teardown(sid core.SessionID) {
	ctl.limiter.Forget(sid)
	for _, dep := range ctl.Orch.Disconnect(sid) {
		ctl.fanOut(dep.Remaining, struct {
			Type     string `json:"type"`
			ID       string `json:"id"`
			Username string `json:"username"`
		}{"member-left", dep.Client.ID, dep.Client.Username})
	}
}

func (ctl *SignalWSController) sendJSON(c *wsSignalConn, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("sendJSON marshal")
		return
	}
	_ = c.TrySend(b)
}

func (ctl *SignalWSController) sendError(c *wsSignalConn, msg string) {
	ctl.sendJSON(c, map[string]any{
		"type":  "error",
		"error": msg,
	})
}

func (ctl *SignalWSController) trySendJSON(s core.SignalConnection, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("trySendJSON marshal")
		return
	}
	_ = s.TrySend(b)
}

// fanOut delivers one message to many members. A full send buffer
// drops that member only; delivery to the rest always continues, and
// the backpressure policy decides what happens to the slow one.
func (ctl *SignalWSController) fanOut(members []core.MemberSession, v any) core.PublishResult {
	res := core.PublishResult{}
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("fanOut marshal")
		return res
	}
	for _, m := range members {
		if err := m.Signal().TrySend(b); err != nil {
			res.Dropped = append(res.Dropped, m)
			continue
		}
		res.SentTo++
	}
	for _, slow := range res.Dropped {
		if ctl.Orch.Policy == nil {
			break
		}
		if ctl.Orch.Policy.OnBackPressure(slow) == app.Disconnect {
			slow.Signal().Close()
		}
	}
	if len(res.Dropped) > 0 {
		log.Warn().Str("module", "signal").Int("sent_to", res.SentTo).Int("dropped", len(res.Dropped)).Msg("fanOut dropped members")
	}
	return res
}
