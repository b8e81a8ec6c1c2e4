package mansion

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/itchio/headway/state"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdkit/tdkit/config"
	"github.com/tdkit/tdkit/database"
	"github.com/tdkit/tdkit/handlers/auth"
	"github.com/tdkit/tdkit/tdapi"
	"github.com/tdkit/tdkit/tdapi/messages"
	"github.com/tdkit/tdkit/tdapi/mockengine"
	"github.com/tdkit/tdkit/tdapi/tdjson"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

const testBotToken = "123456:AAE-test"

func testConfig(t *testing.T) *config.Config {
	cfg := config.Default()
	cfg.Tdlib.APIID = 94575
	cfg.Tdlib.APIHash = "a3406de8d171bb422bb6ddf3bbd800e2"
	cfg.Tdlib.DatabaseDirectory = t.TempDir()
	cfg.Auth.BotToken = testBotToken
	cfg.Journal.Enabled = true
	cfg.Journal.Path = filepath.Join(t.TempDir(), "journal.db")
	return cfg
}

func mockContext(t *testing.T, cfg *config.Config, opts mockengine.AuthFlowOpts) *Context {
	ctx := NewContext(kingpin.New("tdcli", "test"))
	ctx.Version = "test"
	ctx.SetConfig(cfg)
	ctx.Dial = func(c context.Context, cfg *config.Config, userAgent string) (*Endpoint, error) {
		assert.Equal(t, "tdcli/test", userAgent)

		engine, transport := mockengine.New()
		mockengine.InstallAuthFlow(engine, opts)
		return &Endpoint{
			Transport: transport,
			Executor:  engine,
			cleanup: func() error {
				engine.Close()
				<-engine.Done()
				return nil
			},
		}, nil
	}
	return ctx
}

func Test_SessionBotLogin(t *testing.T) {
	cfg := testConfig(t)
	ctx := mockContext(t, cfg, mockengine.AuthFlowOpts{BotToken: testBotToken})

	c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var setupCalled bool
	s, err := ctx.OpenSession(c, SessionOpts{
		Authorize: true,
		Consumer:  &state.Consumer{},
		Setup: func(s *Session) {
			setupCalled = true
			assert.NotNil(t, s.Cache)
		},
	})
	require.NoError(t, err)
	assert.True(t, setupCalled)
	assert.Equal(t, tdapi.TypeAuthorizationStateReady, s.Auth.State())

	me, err := messages.GetMe.Call(c, s.Client, &tdapi.GetMe{})
	require.NoError(t, err)
	assert.EqualValues(t, 42, me.ID)

	require.NoError(t, s.Close())

	db, err := database.Open(nil, cfg.Journal.Path)
	require.NoError(t, err)
	defer db.Close()

	frames, err := db.ListFrames(database.FrameFilter{Type: tdapi.TypeGetMe})
	require.NoError(t, err)
	require.Len(t, frames, 1)
	assert.Equal(t, "out", frames[0].Direction)

	frames, err = db.ListFrames(database.FrameFilter{Type: tdapi.TypeCheckAuthenticationBotToken})
	require.NoError(t, err)
	assert.Len(t, frames, 1)
}

func Test_SessionRejectedToken(t *testing.T) {
	cfg := testConfig(t)
	cfg.Journal.Enabled = false
	ctx := mockContext(t, cfg, mockengine.AuthFlowOpts{BotToken: "something else"})

	c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := ctx.OpenSession(c, SessionOpts{Authorize: true, Consumer: &state.Consumer{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "authorizing")
	assert.True(t, tdapi.IsCode(err, 401))
}

func Test_SessionWithoutAuthorize(t *testing.T) {
	cfg := testConfig(t)
	cfg.Auth.BotToken = ""
	ctx := mockContext(t, cfg, mockengine.AuthFlowOpts{Code: "12345"})

	c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s, err := ctx.OpenSession(c, SessionOpts{
		Consumer: &state.Consumer{},
		Authenticator: &auth.StaticAuthenticator{
			PhoneNumber: "+15550100",
			LoginCode:   "12345",
		},
	})
	require.NoError(t, err)
	assert.NotNil(t, s.Journal)

	require.NoError(t, s.Auth.Wait(c))
	require.NoError(t, s.Close())
}

func Test_SessionDialError(t *testing.T) {
	cfg := testConfig(t)
	ctx := NewContext(kingpin.New("tdcli", "test"))
	ctx.SetConfig(cfg)
	ctx.Dial = func(c context.Context, cfg *config.Config, userAgent string) (*Endpoint, error) {
		return nil, errors.New("no engine here")
	}

	_, err := ctx.OpenSession(context.Background(), SessionOpts{Consumer: &state.Consumer{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connecting to engine: no engine here")

	// the journal was released
	db, err := database.Open(nil, cfg.Journal.Path)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}

func Test_ContextConfig(t *testing.T) {
	t.Setenv("TDKIT_API_ID", "94575")
	t.Setenv("TDKIT_API_HASH", "a3406de8d171bb422bb6ddf3bbd800e2")

	ctx := NewContext(kingpin.New("tdcli", "test"))
	ctx.ConfigPath = filepath.Join(t.TempDir(), "missing.yaml")
	ctx.TransportKind = "carrier-pigeon"
	_, err := ctx.Config()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transport")

	ctx.TransportKind = config.TransportWebsocket
	ctx.Version = "v1.2.0"
	_, err = ctx.Config()
	require.Error(t, err, "websocket without url")

	ctx.TransportKind = ""
	cfg, err := ctx.Config()
	require.NoError(t, err)
	assert.Equal(t, "v1.2.0", cfg.Tdlib.ApplicationVersion)

	again, err := ctx.Config()
	require.NoError(t, err)
	assert.Same(t, cfg, again)
}

func Test_DefaultAuthenticator(t *testing.T) {
	cfg := config.Default()
	cfg.Auth.BotToken = testBotToken

	a := defaultAuthenticator(cfg)
	sa, ok := a.(*auth.StaticAuthenticator)
	require.True(t, ok)
	assert.Equal(t, testBotToken, sa.BotToken)
}

func Test_ConfigureEngineLog(t *testing.T) {
	engine, _ := mockengine.New()
	defer engine.Close()

	var streams []string
	engine.Handle(tdapi.TypeSetLogStream, func(e *mockengine.Engine, req tdjson.Envelope) (tdapi.Object, error) {
		var p tdapi.SetLogStream
		if err := json.Unmarshal(req.Raw, &p); err != nil {
			return nil, err
		}
		streams = append(streams, p.LogStream.ObjectType())
		return nil, nil
	})
	engine.HandleWith(tdapi.TypeSetLogVerbosityLevel, &tdapi.Ok{})

	require.NoError(t, configureEngineLog(engine, config.LogConfig{Verbosity: 2}))
	require.NoError(t, configureEngineLog(engine, config.LogConfig{Verbosity: 2, File: "td.log"}))
	assert.Equal(t, []string{tdapi.TypeLogStreamEmpty, tdapi.TypeLogStreamFile}, streams)

	engine.Handle(tdapi.TypeSetLogVerbosityLevel, func(e *mockengine.Engine, req tdjson.Envelope) (tdapi.Object, error) {
		return nil, &tdapi.Error{Code: 400, Message: "Wrong new verbosity level specified"}
	})
	err := configureEngineLog(engine, config.LogConfig{Verbosity: 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "verbosity")
}
