package realtime

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/janhq/chat-server/pkg/observability/session"
)

func newEchoServer(t *testing.T, sessions *session.Instrumenter) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws", NewEchoHandler(sessions, zerolog.Nop()).Handle)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestEcho_TextAndBinary(t *testing.T) {
	conn := dial(t, newEchoServer(t, nil))

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("winter is coming")))
	mt, data, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, websocket.TextMessage, mt)
	assert.Equal(t, "winter is coming", string(data))

	require.NoError(t, conn.WriteMessage(websocket.BinaryMessage, []byte{0x01, 0x02, 0x03}))
	mt, data, err = conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, websocket.BinaryMessage, mt)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, data)
}

func TestEcho_PingAnswered(t *testing.T) {
	sessions, err := session.NewInstrumenter(tracenoop.NewTracerProvider().Tracer("test"), noop.NewMeterProvider().Meter("test"), "chat_server")
	require.NoError(t, err)
	conn := dial(t, newEchoServer(t, sessions))

	pong := make(chan string, 1)
	conn.SetPongHandler(func(appData string) error {
		pong <- appData
		return nil
	})
	require.NoError(t, conn.WriteControl(websocket.PingMessage, []byte("hodor"), time.Now().Add(time.Second)))

	// pong frames are only processed while reading, so trigger a read with an echo
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("hold the door")))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "hold the door", string(data))

	select {
	case got := <-pong:
		assert.Equal(t, "hodor", got)
	case <-time.After(2 * time.Second):
		t.Fatal("pong not received")
	}
}

func TestEcho_RejectsPlainHTTP(t *testing.T) {
	srv := newEchoServer(t, nil)

	resp, err := http.Get(srv.URL + "/ws")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestEcho_OversizedFrameClosesSession(t *testing.T) {
	conn := dial(t, newEchoServer(t, nil))

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(strings.Repeat("x", MaxMessageSize))))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Len(t, data, MaxMessageSize)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(strings.Repeat("x", MaxMessageSize+1))))
	_, _, err = conn.ReadMessage()
	require.Error(t, err)
	assert.True(t, websocket.IsCloseError(err, websocket.CloseMessageTooBig), "got %v", err)
}
