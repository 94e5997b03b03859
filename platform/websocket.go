package platform

import (
	"context"

	"github.com/gorilla/websocket"

	"zaplib.dev/core/zap"
)

// WebSocketTransport reads messages off an already-established
// *websocket.Conn and posts each as a zap.WebSocketMessageEvent onto a
// Queue — the one plausible transport for the original's
// Event::WebSocketMessage now that there's no WASM/JS host supplying it.
// Establishing and reconnecting the connection is an application concern;
// this type only owns the read-pump loop.
type WebSocketTransport struct {
	conn *websocket.Conn
}

// NewWebSocketTransport wraps an already-dialed connection.
func NewWebSocketTransport(conn *websocket.Conn) *WebSocketTransport {
	return &WebSocketTransport{conn: conn}
}

// ReadPump is a SignalPump worker: it reads messages until the connection
// closes or ctx is cancelled, posting each one onto q.
func (t *WebSocketTransport) ReadPump(ctx context.Context, q *Queue) error {
	done := make(chan struct{})
	go func() {
		<-ctx.Done()
		_ = t.conn.Close()
		close(done)
	}()

	for {
		_, data, err := t.conn.ReadMessage()
		if err != nil {
			select {
			case <-done:
				return nil
			default:
				return err
			}
		}
		q.Send(zap.WebSocketMessageEvent{Data: data})
	}
}
