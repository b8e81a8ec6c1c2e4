package tdjson_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdkit/tdkit/tdapi/tdjson"
	"github.com/tidwall/sjson"
)

// bridge answers every function with "ok" and starts with an update.
func bridge(t *testing.T) *httptest.Server {
	upgrader := websocket.Upgrader{}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer ws.Close()

		// binary frames are not part of the protocol and must be skipped
		_ = ws.WriteMessage(websocket.BinaryMessage, []byte{1, 2, 3})
		_ = ws.WriteMessage(websocket.TextMessage, []byte(`{"@type":"updateOption","name":"version"}`))

		for {
			_, msg, err := ws.ReadMessage()
			if err != nil {
				return
			}
			env, err := tdjson.ParseEnvelope(msg)
			if err != nil {
				continue
			}
			answer, _ := sjson.SetBytes([]byte(`{"@type":"ok"}`), `\@extra`, env.Extra)
			if err := ws.WriteMessage(websocket.TextMessage, answer); err != nil {
				return
			}
		}
	}))
}

func Test_WebsocketTransport(t *testing.T) {
	server := bridge(t)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	transport, err := tdjson.DialWebsocket(ctx, url, nil)
	require.NoError(t, err)

	updates := make(chan tdjson.Envelope, 1)
	conn := tdjson.NewConn(ctx, transport, tdjson.Opts{
		Handler: tdjson.HandlerFunc(func(conn *tdjson.Conn, update tdjson.Envelope) {
			updates <- update
		}),
	})
	defer func() {
		conn.Close()
		<-conn.Done()
	}()

	select {
	case u := <-updates:
		assert.Equal(t, "updateOption", u.Type)
	case <-ctx.Done():
		t.Fatal("no update received")
	}

	res, err := conn.Call(ctx, json.RawMessage(`{"@type":"getMe"}`))
	require.NoError(t, err)
	assert.Contains(t, string(res), `"@type":"ok"`)
}

func Test_DialWebsocketFails(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	_, err := tdjson.DialWebsocket(context.Background(), url, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}
