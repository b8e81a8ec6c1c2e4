package bridge_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdkit/tdkit/bridge"
	"github.com/tdkit/tdkit/tdapi"
	"github.com/tdkit/tdkit/tdapi/mockengine"
	"github.com/tdkit/tdkit/tdapi/tdjson"
	"github.com/tidwall/gjson"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type pumpRun struct {
	engine *mockengine.Engine
	remote tdjson.Transport
	done   chan error
}

func startPump(t *testing.T, c context.Context, withAuth bool, opts bridge.PumpOpts) *pumpRun {
	t.Helper()

	engine, engineTransport := mockengine.New()
	if withAuth {
		mockengine.InstallAuthFlow(engine, mockengine.AuthFlowOpts{})
	}
	t.Cleanup(func() {
		engine.Close()
		<-engine.Done()
	})

	local, remote := net.Pipe()
	run := &pumpRun{
		engine: engine,
		remote: tdjson.NewRwcTransport(remote),
		done:   make(chan error, 1),
	}
	t.Cleanup(func() { run.remote.Close() })

	go func() {
		run.done <- bridge.Pump(c, tdjson.NewRwcTransport(local), engineTransport, opts)
	}()
	return run
}

func (run *pumpRun) wait(t *testing.T) error {
	t.Helper()
	select {
	case err := <-run.done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("pump did not return")
		return nil
	}
}

func readType(t *testing.T, tr tdjson.Transport) gjson.Result {
	t.Helper()
	msg, err := tr.Read()
	require.NoError(t, err)
	return gjson.ParseBytes(msg)
}

func Test_PumpRelaysAndClosesEngineWhenClientLeaves(t *testing.T) {
	run := startPump(t, context.Background(), true, bridge.PumpOpts{})

	require.NoError(t, run.remote.Write([]byte(`{"@type":"getMe","@extra":"7"}`)))
	answer := readType(t, run.remote)
	assert.Equal(t, "user", answer.Get(`\@type`).String())
	assert.Equal(t, "7", answer.Get(`\@extra`).String())

	require.NoError(t, run.remote.Close())
	require.NoError(t, run.wait(t))

	assert.Equal(t, []string{tdapi.TypeGetMe, tdapi.TypeClose}, run.engine.ReceivedTypes())
}

func Test_PumpReturnsOnceEngineClosed(t *testing.T) {
	run := startPump(t, context.Background(), true, bridge.PumpOpts{})

	require.NoError(t, run.remote.Write([]byte(`{"@type":"close","@extra":"1"}`)))
	assert.Equal(t, "ok", readType(t, run.remote).Get(`\@type`).String())
	assert.Equal(t, tdapi.TypeAuthorizationStateClosing,
		readType(t, run.remote).Get(`authorization_state.\@type`).String())
	assert.Equal(t, tdapi.TypeAuthorizationStateClosed,
		readType(t, run.remote).Get(`authorization_state.\@type`).String())

	require.NoError(t, run.wait(t))

	_, err := run.remote.Read()
	assert.Error(t, err, "the client is disconnected")
	assert.Equal(t, []string{tdapi.TypeClose}, run.engine.ReceivedTypes())
}

func Test_PumpCancelled(t *testing.T) {
	c, cancel := context.WithCancel(context.Background())
	run := startPump(t, c, true, bridge.PumpOpts{})

	cancel()
	require.NoError(t, run.wait(t))
	assert.Contains(t, run.engine.ReceivedTypes(), tdapi.TypeClose)
}

func Test_PumpGivesUpOnStuckEngine(t *testing.T) {
	run := startPump(t, context.Background(), false, bridge.PumpOpts{CloseTimeout: 100 * time.Millisecond})

	require.NoError(t, run.remote.Close())
	require.NoError(t, run.wait(t))
	assert.Equal(t, []string{tdapi.TypeClose}, run.engine.ReceivedTypes())
}

// crashingEngine fails every read and write once crash is closed.
type crashingEngine struct {
	crash chan struct{}
}

func (e *crashingEngine) Read() ([]byte, error) {
	<-e.crash
	return nil, errors.New("engine crashed")
}

func (e *crashingEngine) Write(msg []byte) error {
	<-e.crash
	return errors.New("engine crashed")
}

func (e *crashingEngine) Close() error { return nil }

func Test_PumpEngineFailsBothWays(t *testing.T) {
	engine := &crashingEngine{crash: make(chan struct{})}

	local, remote := net.Pipe()
	client := tdjson.NewRwcTransport(remote)
	defer client.Close()

	done := make(chan error, 1)
	go func() {
		done <- bridge.Pump(context.Background(), tdjson.NewRwcTransport(local), engine, bridge.PumpOpts{})
	}()

	// the relay is now stuck writing to the engine while another read is pending
	require.NoError(t, client.Write([]byte(`{"@type":"getMe"}`)))
	close(engine.crash)

	select {
	case err := <-done:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading from engine")
	case <-time.After(5 * time.Second):
		t.Fatal("pump did not return")
	}
}
