package tdjson_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdkit/tdkit/tdapi/tdjson"
	"github.com/tidwall/sjson"
	"go.uber.org/goleak"
)

// peer is the engine side of a pipe, scripted by each test.
type peer struct {
	t         *testing.T
	transport tdjson.Transport
}

func newPair(t *testing.T, opts tdjson.Opts) (*tdjson.Conn, *peer) {
	t.Helper()

	engineSide, clientSide := net.Pipe()
	conn := tdjson.NewConn(context.Background(), tdjson.NewRwcTransport(clientSide), opts)
	p := &peer{t: t, transport: tdjson.NewRwcTransport(engineSide)}
	t.Cleanup(func() {
		conn.Close()
		p.transport.Close()
		<-conn.Done()
	})
	return conn, p
}

func (p *peer) read() tdjson.Envelope {
	p.t.Helper()
	msg, err := p.transport.Read()
	require.NoError(p.t, err)
	env, err := tdjson.ParseEnvelope(msg)
	require.NoError(p.t, err)
	return env
}

func (p *peer) answer(req tdjson.Envelope, answer string) {
	p.t.Helper()
	bs, err := sjson.SetBytes([]byte(answer), `\@extra`, req.Extra)
	require.NoError(p.t, err)
	require.NoError(p.t, p.transport.Write(bs))
}

func (p *peer) push(update string) {
	p.t.Helper()
	require.NoError(p.t, p.transport.Write([]byte(update)))
}

func Test_CallsAreMatchedByExtra(t *testing.T) {
	t.Cleanup(func() { goleak.VerifyNone(t) })

	conn, p := newPair(t, tdjson.Opts{})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	results := make([]string, 2)
	var wg sync.WaitGroup
	for i, tag := range []string{"getMe", "getOption"} {
		wg.Add(1)
		go func(i int, tag string) {
			defer wg.Done()
			res, err := conn.Call(ctx, json.RawMessage(fmt.Sprintf(`{"@type":%q}`, tag)))
			assert.NoError(t, err)
			results[i] = string(res)
		}(i, tag)
	}

	first, second := p.read(), p.read()
	assert.NotEmpty(t, first.Extra)
	assert.NotEqual(t, first.Extra, second.Extra)

	// answered out of order
	p.answer(second, fmt.Sprintf(`{"@type":"ok","for":%q}`, second.Type))
	p.answer(first, fmt.Sprintf(`{"@type":"ok","for":%q}`, first.Type))
	wg.Wait()

	assert.Contains(t, results[0], `"for":"getMe"`)
	assert.Contains(t, results[1], `"for":"getOption"`)
}

func Test_ErrorAnswer(t *testing.T) {
	conn, p := newPair(t, tdjson.Opts{})

	go func() {
		req := p.read()
		p.answer(req, `{"@type":"error","code":400,"message":"CHAT_NOT_FOUND"}`)
	}()

	_, err := conn.Call(context.Background(), map[string]interface{}{"@type": "getChat", "chat_id": 1})
	require.Error(t, err)
	te, ok := err.(*tdjson.Error)
	require.True(t, ok)
	assert.EqualValues(t, 400, te.Code)
	assert.Equal(t, "CHAT_NOT_FOUND", te.Message)
}

func Test_UpdatesKeepTheirOrder(t *testing.T) {
	const count = 200

	var lock sync.Mutex
	var seen []int64
	done := make(chan struct{})
	_, p := newPair(t, tdjson.Opts{
		Handler: tdjson.HandlerFunc(func(conn *tdjson.Conn, update tdjson.Envelope) {
			var u struct {
				N int64 `json:"n"`
			}
			assert.NoError(t, json.Unmarshal(update.Raw, &u))
			assert.True(t, update.IsUpdate())

			lock.Lock()
			seen = append(seen, u.N)
			if len(seen) == count {
				close(done)
			}
			lock.Unlock()
		}),
	})

	for i := 0; i < count; i++ {
		p.push(fmt.Sprintf(`{"@type":"updateOption","n":%d}`, i))
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("not every update was dispatched")
	}
	for i, n := range seen {
		assert.EqualValues(t, i, n)
	}
}

func Test_HandlerMayCall(t *testing.T) {
	answered := make(chan string, 1)
	_, p := newPair(t, tdjson.Opts{
		Handler: tdjson.HandlerFunc(func(conn *tdjson.Conn, update tdjson.Envelope) {
			res, err := conn.Call(context.Background(), json.RawMessage(`{"@type":"getMe"}`))
			assert.NoError(t, err)
			answered <- string(res)
		}),
	})

	p.push(`{"@type":"updateOption"}`)
	req := p.read()
	assert.Equal(t, "getMe", req.Type)
	p.answer(req, `{"@type":"user","id":1}`)

	select {
	case res := <-answered:
		assert.Contains(t, res, `"@type":"user"`)
	case <-time.After(5 * time.Second):
		t.Fatal("a handler waiting on an answer must not block the receive loop")
	}
}

func Test_CallCancelled(t *testing.T) {
	conn, p := newPair(t, tdjson.Opts{})

	ctx, cancel := context.WithCancel(context.Background())
	errs := make(chan error, 1)
	go func() {
		_, err := conn.Call(ctx, json.RawMessage(`{"@type":"getMe"}`))
		errs <- err
	}()

	req := p.read()
	cancel()
	assert.ErrorIs(t, <-errs, context.Canceled)

	// a late answer is dropped, the connection keeps working
	p.answer(req, `{"@type":"user"}`)
	go func() {
		req := p.read()
		p.answer(req, `{"@type":"ok"}`)
	}()
	res, err := conn.Call(context.Background(), json.RawMessage(`{"@type":"close"}`))
	require.NoError(t, err)
	assert.Contains(t, string(res), `"ok"`)
}

func Test_CloseFailsPendingCalls(t *testing.T) {
	t.Cleanup(func() { goleak.VerifyNone(t) })

	conn, p := newPair(t, tdjson.Opts{})

	errs := make(chan error, 1)
	go func() {
		_, err := conn.Call(context.Background(), json.RawMessage(`{"@type":"getMe"}`))
		errs <- err
	}()
	p.read()

	conn.Close()
	conn.Close()
	assert.ErrorIs(t, <-errs, tdjson.ErrClosed)

	select {
	case <-conn.DisconnectNotify():
	default:
		t.Fatal("DisconnectNotify should be closed")
	}
	<-conn.Done()

	_, err := conn.Call(context.Background(), json.RawMessage(`{"@type":"getMe"}`))
	assert.ErrorIs(t, err, tdjson.ErrClosed)
	assert.ErrorIs(t, conn.Send(json.RawMessage(`{"@type":"getMe"}`)), tdjson.ErrClosed)
}

func Test_PeerHangsUp(t *testing.T) {
	conn, p := newPair(t, tdjson.Opts{})
	p.transport.Close()

	select {
	case <-conn.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("connection should close when the engine goes away")
	}
}

func Test_ParentContextClosesConn(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	engineSide, clientSide := net.Pipe()
	defer engineSide.Close()

	conn := tdjson.NewConn(ctx, tdjson.NewRwcTransport(clientSide), tdjson.Opts{})
	cancel()

	select {
	case <-conn.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("cancelling the parent context should close the connection")
	}
}

func Test_OnMessageSeesBothDirections(t *testing.T) {
	var lock sync.Mutex
	var frames []string
	conn, p := newPair(t, tdjson.Opts{
		OnMessage: func(dir tdjson.Direction, env tdjson.Envelope) {
			lock.Lock()
			defer lock.Unlock()
			frames = append(frames, string(dir)+":"+env.Type)
		},
		GenerateExtra: func() string { return "fixed" },
	})

	go func() {
		req := p.read()
		assert.Equal(t, "fixed", req.Extra)
		p.answer(req, `{"@type":"ok"}`)
	}()
	_, err := conn.Call(context.Background(), json.RawMessage(`{"@type":"setOption"}`))
	require.NoError(t, err)

	lock.Lock()
	defer lock.Unlock()
	assert.Equal(t, []string{"out:setOption", "in:ok"}, frames)
}

func Test_SendDoesNotWait(t *testing.T) {
	conn, p := newPair(t, tdjson.Opts{})

	go func() {
		assert.NoError(t, conn.Send(json.RawMessage(`{"@type":"setLogVerbosityLevel","new_verbosity_level":1,"@extra":"mine"}`)))
	}()
	req := p.read()
	assert.Equal(t, "setLogVerbosityLevel", req.Type)
	assert.Equal(t, "mine", req.Extra)
}

func Test_RequestsNeedAType(t *testing.T) {
	conn, _ := newPair(t, tdjson.Opts{})

	_, err := conn.Call(context.Background(), map[string]int{"chat_id": 1})
	assert.Error(t, err)
	assert.Error(t, conn.Send([]byte(`{"chat_id":1}`)))
}

type fakeExecutor func(request []byte) ([]byte, error)

func (fe fakeExecutor) Execute(request []byte) ([]byte, error) {
	return fe(request)
}

func Test_Execute(t *testing.T) {
	echo := fakeExecutor(func(request []byte) ([]byte, error) {
		return []byte(`{"@type":"text","text":"ok"}`), nil
	})
	res, err := tdjson.Execute(echo, json.RawMessage(`{"@type":"getTextEntities","text":"x"}`))
	require.NoError(t, err)
	assert.Contains(t, string(res), `"text":"ok"`)

	failing := fakeExecutor(func(request []byte) ([]byte, error) {
		return []byte(`{"@type":"error","code":400,"message":"Function can't be executed synchronously"}`), nil
	})
	_, err = tdjson.Execute(failing, json.RawMessage(`{"@type":"getMe"}`))
	var te *tdjson.Error
	assert.ErrorAs(t, err, &te)
}
