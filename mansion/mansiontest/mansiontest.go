// Package mansiontest runs tdcli commands against a mock engine.
package mansiontest

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/tdkit/tdkit/config"
	"github.com/tdkit/tdkit/mansion"
	"github.com/tdkit/tdkit/tdapi/mockengine"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

const (
	BotToken = "123456:AAE-test"
	APIHash  = "a3406de8d171bb422bb6ddf3bbd800e2"
)

type Harness struct {
	Ctx    *mansion.Context
	Config *config.Config

	lock    sync.Mutex
	engines []*mockengine.Engine
}

// New returns a context whose sessions log in as a bot on a fresh mock
// engine. setup, when given, runs on every engine before it serves.
func New(t testing.TB, setup func(e *mockengine.Engine)) *Harness {
	cfg := config.Default()
	cfg.Tdlib.APIID = 94575
	cfg.Tdlib.APIHash = APIHash
	cfg.Tdlib.DatabaseDirectory = t.TempDir()
	cfg.Auth.BotToken = BotToken
	cfg.Journal.Enabled = true
	cfg.Journal.Path = filepath.Join(t.TempDir(), "journal.db")

	h := &Harness{
		Ctx:    mansion.NewContext(kingpin.New("tdcli", "test")),
		Config: cfg,
	}
	h.Ctx.Version = "test"
	h.Ctx.SetConfig(cfg)
	h.Ctx.Dial = func(c context.Context, cfg *config.Config, userAgent string) (*mansion.Endpoint, error) {
		engine, transport := mockengine.New()
		mockengine.InstallAuthFlow(engine, mockengine.AuthFlowOpts{BotToken: BotToken})
		if setup != nil {
			setup(engine)
		}

		h.lock.Lock()
		h.engines = append(h.engines, engine)
		h.lock.Unlock()

		return mansion.NewEndpoint(transport, engine, func() error {
			engine.Close()
			<-engine.Done()
			return nil
		}), nil
	}
	return h
}

// Engine returns the engine behind the most recent session, or nil.
func (h *Harness) Engine() *mockengine.Engine {
	h.lock.Lock()
	defer h.lock.Unlock()
	if len(h.engines) == 0 {
		return nil
	}
	return h.engines[len(h.engines)-1]
}
