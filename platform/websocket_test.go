package platform_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"zaplib.dev/core/platform"
	"zaplib.dev/core/zap"
)

// newEchoServer starts a websocket endpoint that writes back whatever the
// test sends it, and returns the dialed client connection plus a closer.
func newEchoServer(t *testing.T) (*websocket.Conn, func()) {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		for {
			mt, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if err := conn.WriteMessage(mt, data); err != nil {
				return
			}
		}
	}))

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)

	return client, func() {
		client.Close()
		srv.Close()
	}
}

func TestWebSocketTransportReadPumpPostsEachMessage(t *testing.T) {
	client, closeAll := newEchoServer(t)
	defer closeAll()

	var q platform.Queue
	transport := platform.NewWebSocketTransport(client)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- transport.ReadPump(ctx, &q) }()

	require.NoError(t, client.WriteMessage(websocket.TextMessage, []byte("hello")))

	ev := q.NextEvent().(zap.WebSocketMessageEvent)
	require.Equal(t, []byte("hello"), ev.Data)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("ReadPump did not stop after context cancellation")
	}
}
