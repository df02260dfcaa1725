package realtime

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/janhq/chat-server/internal/infrastructure/metrics"
	"github.com/janhq/chat-server/pkg/observability/session"
)

const (
	sessionKind = "echo"
	writeWait   = 10 * time.Second

	// MaxMessageSize caps a single inbound frame; larger frames close the session with 1009.
	MaxMessageSize = 64 << 10
)

// EchoHandler upgrades GET /ws to a websocket that sends every text or binary
// frame back to the client and answers pings with pongs.
type EchoHandler struct {
	upgrader websocket.Upgrader
	sessions *session.Instrumenter
	log      zerolog.Logger
}

// NewEchoHandler constructs the handler. sessions may be nil.
func NewEchoHandler(sessions *session.Instrumenter, log zerolog.Logger) *EchoHandler {
	return &EchoHandler{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		sessions: sessions,
		log:      log.With().Str("component", "realtime-echo").Logger(),
	}
}

// Handle is the gin entrypoint for GET /ws.
func (h *EchoHandler) Handle(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// the upgrader already replied with an HTTP error
		h.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	metrics.WebsocketSessions.Inc()
	defer metrics.WebsocketSessions.Dec()

	sessionID := uuid.NewString()
	log := h.log.With().Str("session_id", sessionID).Logger()
	log.Debug().Msg("websocket session opened")

	run := func(_ context.Context, frame func(direction string)) error {
		return h.echo(conn, frame)
	}

	if h.sessions != nil {
		err = h.sessions.Track(c.Request.Context(), sessionKind, sessionID, run)
	} else {
		err = run(c.Request.Context(), func(string) {})
	}
	if err != nil {
		log.Warn().Err(err).Msg("websocket session ended with error")
		return
	}
	log.Debug().Msg("websocket session closed")
}

func (h *EchoHandler) echo(conn *websocket.Conn, frame func(direction string)) error {
	conn.SetReadLimit(MaxMessageSize)
	conn.SetPingHandler(func(appData string) error {
		frame("ping")
		err := conn.WriteControl(websocket.PongMessage, []byte(appData), time.Now().Add(writeWait))
		if err == websocket.ErrCloseSent {
			return nil
		}
		return err
	})

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) {
				return nil
			}
			return err
		}
		frame("in")

		if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			return err
		}
		if err := conn.WriteMessage(messageType, data); err != nil {
			return err
		}
		frame("out")
	}
}
