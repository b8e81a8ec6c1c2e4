package mansion

import (
	"context"
	"time"

	"github.com/itchio/headway/state"
	"github.com/pkg/errors"
	"github.com/tdkit/tdkit/comm"
	"github.com/tdkit/tdkit/config"
	"github.com/tdkit/tdkit/database"
	"github.com/tdkit/tdkit/handlers/auth"
	"github.com/tdkit/tdkit/handlers/cache"
	"github.com/tdkit/tdkit/handlers/downloads"
	"github.com/tdkit/tdkit/handlers/journal"
	"github.com/tdkit/tdkit/tdapi"
	"github.com/tdkit/tdkit/tdapi/tdjson"
)

const shutdownTimeout = 10 * time.Second

type SessionOpts struct {
	// Runs the authorization flow before OpenSession returns.
	Authorize bool

	// Answers the engine's questions during authorization. Defaults to
	// whatever the configuration and the terminal allow.
	Authenticator auth.Authenticator

	// Handlers registered before any update can arrive.
	Setup func(s *Session)

	Consumer *state.Consumer
}

// Session is a connected client along with the handlers tdcli keeps on it.
type Session struct {
	Client    *tdapi.Client
	Router    *tdapi.Router
	Auth      *auth.Flow
	Cache     *cache.Cache
	Downloads *downloads.Manager

	// nil unless the journal is enabled
	Journal *journal.Journal

	endpoint *Endpoint
	db       *database.DB
	consumer *state.Consumer
}

func (ctx *Context) OpenSession(c context.Context, opts SessionOpts) (*Session, error) {
	cfg, err := ctx.Config()
	if err != nil {
		return nil, err
	}

	consumer := opts.Consumer
	if consumer == nil {
		consumer = comm.NewStateConsumer()
	}

	s := &Session{consumer: consumer}
	success := false
	defer func() {
		if !success {
			s.release()
		}
	}()

	var onMessage func(dir tdjson.Direction, env tdjson.Envelope)
	if cfg.Journal.Enabled {
		s.db, err = database.Open(consumer, cfg.Journal.Path)
		if err != nil {
			return nil, errors.WithMessage(err, "opening journal")
		}
		s.Journal = journal.New(s.db, journal.Opts{
			Skip:     cfg.Journal.Skip,
			Consumer: comm.NewPrefixedConsumer("[journal]"),
		})
		onMessage = s.Journal.OnMessage
	}

	dial := ctx.Dial
	if dial == nil {
		dial = DialConfigured
	}
	s.endpoint, err = dial(c, cfg, ctx.UserAgent())
	if err != nil {
		return nil, errors.WithMessage(err, "connecting to engine")
	}

	s.Router = tdapi.NewRouter(comm.NewPrefixedConsumer("[router]"))

	s.Downloads = downloads.NewManager(consumer)
	s.Downloads.Register(s.Router)

	authenticator := opts.Authenticator
	if authenticator == nil {
		authenticator = defaultAuthenticator(cfg)
	}
	s.Auth = auth.NewFlow(cfg.TdlibParameters(), authenticator)
	s.Auth.Register(s.Router)

	// c only bounds opening the session, Close ends the client. The engine
	// stays quiet until it gets its first request, so handlers registered
	// before Auth.Start see every update.
	s.Client, err = tdapi.NewClient(context.Background(), tdapi.ClientOpts{
		Transport: s.endpoint.Transport,
		Executor:  s.endpoint.Executor,
		Router:    s.Router,
		Consumer:  consumer,
		OnMessage: onMessage,
	})
	if err != nil {
		return nil, err
	}

	s.Cache, err = cache.New(cache.Opts{
		Caller:   s.Client,
		Users:    cfg.Cache.Users,
		Chats:    cfg.Cache.Chats,
		Consumer: consumer,
	})
	if err != nil {
		return nil, err
	}
	s.Cache.Register(s.Router)

	if opts.Setup != nil {
		opts.Setup(s)
	}

	if err := s.Auth.Start(c, s.Client); err != nil {
		return nil, errors.WithMessage(err, "starting authorization")
	}
	if opts.Authorize {
		if err := s.Auth.Wait(c); err != nil {
			return nil, errors.WithMessage(err, "authorizing")
		}
	}

	success = true
	return s, nil
}

// Close asks the engine to close, then releases the journal and the
// endpoint. It gives up waiting after a few seconds.
func (s *Session) Close() error {
	c, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := s.Client.Shutdown(c)
	if rerr := s.release(); err == nil {
		err = rerr
	}
	return err
}

func (s *Session) release() error {
	var err error
	if s.Client != nil {
		s.Client.Close()
		<-s.Client.Done()
	} else if s.endpoint != nil && s.endpoint.Transport != nil {
		s.endpoint.Transport.Close()
	}
	if s.endpoint != nil {
		if cerr := s.endpoint.Close(); cerr != nil {
			err = cerr
		}
	}
	if s.Journal != nil {
		s.Journal.Close()
		if n := s.Journal.Dropped(); n > 0 {
			s.consumer.Warnf("Journal dropped %d frames", n)
		}
	}
	if s.db != nil {
		if cerr := s.db.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

func defaultAuthenticator(cfg *config.Config) auth.Authenticator {
	sa := auth.StaticAuthenticator{
		PhoneNumber: cfg.Auth.Phone,
		BotToken:    cfg.Auth.BotToken,
	}
	if sa.BotToken != "" || (!IsTerminal() && !comm.JsonEnabled()) {
		return &sa
	}
	return &auth.PromptAuthenticator{StaticAuthenticator: sa}
}
