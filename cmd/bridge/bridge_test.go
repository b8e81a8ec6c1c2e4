package bridge

import (
	"bufio"
	"context"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdkit/tdkit/mansion/mansiontest"
	"github.com/tdkit/tdkit/tdapi"
	"github.com/tdkit/tdkit/tdapi/messages"
	"github.com/tdkit/tdkit/tdapi/tdjson"
	"github.com/tidwall/gjson"
)

func Test_BridgeStdio(t *testing.T) {
	h := mansiontest.New(t, nil)

	stdinR, stdinW := io.Pipe()
	stdoutR, stdoutW := io.Pipe()

	lines := make(chan string, 16)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(stdoutR)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	done := make(chan error, 1)
	go func() {
		done <- Do(context.Background(), h.Ctx, Opts{Stdin: stdinR, Stdout: stdoutW})
	}()

	_, err := stdinW.Write([]byte(`{"@type":"getMe","@extra":"a"}` + "\n"))
	require.NoError(t, err)

	select {
	case line := <-lines:
		assert.Equal(t, "user", gjson.Get(line, `\@type`).String())
		assert.Equal(t, "a", gjson.Get(line, `\@extra`).String())
	case <-time.After(5 * time.Second):
		t.Fatal("no answer")
	}

	require.NoError(t, stdinW.Close())
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("bridge did not return")
	}

	assert.Equal(t, []string{tdapi.TypeGetMe, tdapi.TypeClose}, h.Engine().ReceivedTypes())
}

func Test_BridgeWebsocket(t *testing.T) {
	h := mansiontest.New(t, nil)

	c, cancel := context.WithCancel(context.Background())
	defer cancel()

	addrs := make(chan net.Addr, 1)
	done := make(chan error, 1)
	go func() {
		done <- Do(c, h.Ctx, Opts{
			Listen:      "127.0.0.1:0",
			OnListening: func(addr net.Addr) { addrs <- addr },
		})
	}()

	var addr net.Addr
	select {
	case addr = <-addrs:
	case err := <-done:
		t.Fatalf("bridge returned early: %+v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("bridge is not listening")
	}

	dc, dcancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer dcancel()
	transport, err := tdjson.DialWebsocket(dc, "ws://"+addr.String()+"/", nil)
	require.NoError(t, err)

	client, err := tdapi.NewClient(dc, tdapi.ClientOpts{Transport: transport})
	require.NoError(t, err)
	me, err := messages.GetMe.Call(dc, client, &tdapi.GetMe{})
	require.NoError(t, err)
	assert.EqualValues(t, 42, me.ID)
	client.Close()
	<-client.Done()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("bridge did not stop")
	}
}

func Test_EngineConfigIgnoresTransport(t *testing.T) {
	h := mansiontest.New(t, nil)
	h.Config.Transport.Kind = "stdio"
	h.Config.Transport.Command = []string{"tdcli", "bridge"}

	cfg, err := engineConfig(h.Ctx)
	require.NoError(t, err)
	assert.Equal(t, "native", cfg.Transport.Kind)
	assert.Empty(t, cfg.Transport.Command)
	assert.Equal(t, "stdio", h.Config.Transport.Kind, "the shared configuration is untouched")
}
