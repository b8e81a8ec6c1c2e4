package tdjson

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

type websocketTransport struct {
	conn *websocket.Conn

	closeOnce sync.Once
	closeErr  error
}

// NewWebsocketTransport exchanges one JSON object per text frame, for engines
// running behind a remote bridge.
func NewWebsocketTransport(conn *websocket.Conn) Transport {
	return &websocketTransport{conn: conn}
}

// DialWebsocket connects to a bridge and wraps the connection in a Transport.
func DialWebsocket(ctx context.Context, url string, header http.Header) (Transport, error) {
	conn, res, err := websocket.DefaultDialer.DialContext(ctx, url, header)
	if err != nil {
		if res != nil {
			return nil, errors.Wrapf(err, "dialing %s (HTTP %d)", url, res.StatusCode)
		}
		return nil, errors.Wrapf(err, "dialing %s", url)
	}
	return NewWebsocketTransport(conn), nil
}

func (wt *websocketTransport) Read() ([]byte, error) {
	for {
		typ, msg, err := wt.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil, io.EOF
			}
			return nil, err
		}
		if typ != websocket.TextMessage {
			continue
		}
		return msg, nil
	}
}

func (wt *websocketTransport) Write(msg []byte) error {
	return wt.conn.WriteMessage(websocket.TextMessage, msg)
}

func (wt *websocketTransport) Close() error {
	wt.closeOnce.Do(func() {
		// WriteControl may run concurrently with WriteMessage
		_ = wt.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		wt.closeErr = wt.conn.Close()
	})
	return wt.closeErr
}
