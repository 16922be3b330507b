package signal

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/rahul22112003/Collaborative-Coding/internal/app/orch"
	"github.com/rahul22112003/Collaborative-Coding/internal/config"
	"github.com/rahul22112003/Collaborative-Coding/internal/core"
	"github.com/rahul22112003/Collaborative-Coding/internal/domain"
)

var ErrBackpressure = errors.New("backpressure")

// SignalWSController is the lifecycle handler: it wires an incoming
// WebSocket to the orchestrator and converts an abrupt close into the
// same teardown as an explicit leave.
type SignalWSController struct {
	Orch     *orch.Orchestrator
	cfg      *config.Config
	limiter  *JoinRateLimiter
	validate *validator.Validate
}

func NewSignalWSController(o *orch.Orchestrator, cfg *config.Config) *SignalWSController {
	return &SignalWSController{
		Orch:     o,
		cfg:      cfg,
		limiter:  NewJoinRateLimiter(cfg.JoinLimit, cfg.JoinInterval),
		validate: validator.New(),
	}
}

type wsSignalConn struct {
	conn *websocket.Conn
	send chan core.Frame

	mu     sync.RWMutex
	closed bool
}

func (c *wsSignalConn) TrySend(f core.Frame) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return errors.New("connection closed")
	}
	select {
	case c.send <- f:
	default:
		return ErrBackpressure
	}
	return nil
}

func (c *wsSignalConn) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.send)
	_ = c.conn.Close()
	c.mu.Unlock()
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func (ctl *SignalWSController) HandleSignal(ctx context.Context, c *gin.Context) {
	sid := core.SessionID(c.GetString("client_token"))
	log.Info().Str("module", "signal").Str("sid", string(sid)).Msg("new WS connection")

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Msg("ws upgrade")
		return
	}

	conn := &wsSignalConn{
		conn: ws,
		send: make(chan core.Frame, ctl.cfg.SendBuffer),
	}
	sess := core.NewMemberSession(domain.NewClient(string(sid)), conn)
	ctl.Orch.Registry.Bind(sid, sess)

	ctx, cancel := context.WithCancel(ctx)
	go ctl.writePump(ctx, conn)
	go ctl.readPump(ctx, cancel, sid, sess, conn)
}
