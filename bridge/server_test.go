package bridge_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdkit/tdkit/bridge"
	"github.com/tdkit/tdkit/tdapi"
	"github.com/tdkit/tdkit/tdapi/messages"
	"github.com/tdkit/tdkit/tdapi/mockengine"
	"github.com/tdkit/tdkit/tdapi/tdjson"
)

type engines struct {
	lock sync.Mutex
	list []*mockengine.Engine
}

func (es *engines) open(c context.Context) (tdjson.Transport, func() error, error) {
	engine, transport := mockengine.New()
	mockengine.InstallAuthFlow(engine, mockengine.AuthFlowOpts{})

	es.lock.Lock()
	es.list = append(es.list, engine)
	es.lock.Unlock()

	return transport, func() error {
		<-engine.Done()
		return nil
	}, nil
}

func (es *engines) count() int {
	es.lock.Lock()
	defer es.lock.Unlock()
	return len(es.list)
}

func wsURL(server *httptest.Server) string {
	return "ws" + strings.TrimPrefix(server.URL, "http") + "/"
}

func Test_ServerGivesEachClientAnEngine(t *testing.T) {
	es := &engines{}
	s := &bridge.Server{Open: es.open}
	server := httptest.NewServer(s.Handler())
	defer server.Close()

	c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for i := 0; i < 2; i++ {
		transport, err := tdjson.DialWebsocket(c, wsURL(server), nil)
		require.NoError(t, err)

		client, err := tdapi.NewClient(c, tdapi.ClientOpts{Transport: transport})
		require.NoError(t, err)

		me, err := messages.GetMe.Call(c, client, &tdapi.GetMe{})
		require.NoError(t, err)
		assert.EqualValues(t, 42, me.ID)

		client.Close()
		<-client.Done()
	}

	assert.Eventually(t, func() bool { return es.count() == 2 }, time.Second, 10*time.Millisecond)
}

func Test_ServerHealth(t *testing.T) {
	s := &bridge.Server{Open: (&engines{}).open}
	server := httptest.NewServer(s.Handler())
	defer server.Close()

	res, err := http.Get(server.URL + "/healthz")
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "ok\n", string(body))

	res2, err := http.Get(server.URL + "/")
	require.NoError(t, err)
	res2.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res2.StatusCode, "plain requests are not upgraded")
}

func Test_ServerEngineFailure(t *testing.T) {
	s := &bridge.Server{Open: func(context.Context) (tdjson.Transport, func() error, error) {
		return nil, nil, errors.New("no engine here")
	}}
	server := httptest.NewServer(s.Handler())
	defer server.Close()

	c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	transport, err := tdjson.DialWebsocket(c, wsURL(server), nil)
	require.NoError(t, err)
	defer transport.Close()

	_, err = transport.Read()
	require.Error(t, err)
}

func Test_ServeStopsWithContext(t *testing.T) {
	es := &engines{}
	s := &bridge.Server{Open: es.open}

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	c, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.Serve(c, l)
	}()

	dc, dcancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer dcancel()
	transport, err := tdjson.DialWebsocket(dc, "ws://"+l.Addr().String()+"/", nil)
	require.NoError(t, err)
	defer transport.Close()

	require.NoError(t, transport.Write([]byte(`{"@type":"getMe","@extra":"1"}`)))
	_, err = transport.Read()
	require.NoError(t, err)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return")
	}

	es.lock.Lock()
	defer es.lock.Unlock()
	require.Len(t, es.list, 1)
	assert.Contains(t, es.list[0].ReceivedTypes(), tdapi.TypeClose)
}
