package bridge

import (
	"context"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/tdkit/tdkit/bridge"
	"github.com/tdkit/tdkit/comm"
	"github.com/tdkit/tdkit/config"
	"github.com/tdkit/tdkit/mansion"
	"github.com/tdkit/tdkit/tdapi/tdjson"
)

var args = struct {
	listen *string
}{}

func Register(ctx *mansion.Context) {
	cmd := ctx.App.Command("bridge", "Serve the engine linked into this binary, for clients using the stdio or websocket transport")
	ctx.Register(cmd, do)

	args.listen = cmd.Flag("listen", "Accept websocket clients on this address instead of serving stdin/stdout, e.g. 127.0.0.1:8765").String()
}

type Opts struct {
	// Accept websocket clients here. Stdio is used when empty.
	Listen string

	// Where the websocket listener is handed once it is bound.
	OnListening func(addr net.Addr)

	Stdin  io.Reader
	Stdout io.WriteCloser
}

func do(ctx *mansion.Context) {
	c, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ctx.Must(Do(c, ctx, Opts{
		Listen: *args.listen,
		OnListening: func(addr net.Addr) {
			comm.Logf("Serving engines on ws://%s/", addr)
		},
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	}))
}

// Do relays engines until c is done or, on stdio, until the client hangs
// up.
func Do(c context.Context, ctx *mansion.Context, opts Opts) error {
	cfg, err := engineConfig(ctx)
	if err != nil {
		return err
	}

	open := func(oc context.Context) (tdjson.Transport, func() error, error) {
		ep, err := ctx.Dial(oc, cfg, ctx.UserAgent())
		if err != nil {
			return nil, nil, err
		}
		return ep.Transport, ep.Close, nil
	}

	if opts.Listen == "" {
		if comm.JsonEnabled() {
			return errors.New("--json cannot be used with the stdio bridge, stdout carries engine frames")
		}
		engine, release, err := open(c)
		if err != nil {
			return err
		}
		client := tdjson.NewRwcTransport(&stdio{Reader: opts.Stdin, WriteCloser: opts.Stdout})
		err = bridge.Pump(c, client, engine, bridge.PumpOpts{Consumer: comm.NewPrefixedConsumer("[bridge]")})
		if rerr := release(); err == nil {
			err = rerr
		}
		return err
	}

	l, err := net.Listen("tcp", opts.Listen)
	if err != nil {
		return errors.WithStack(err)
	}
	if opts.OnListening != nil {
		opts.OnListening(l.Addr())
	}

	s := &bridge.Server{
		Open:     open,
		Consumer: comm.NewPrefixedConsumer("[bridge]"),
		ErrorLog: slog.NewLogLogger(comm.NewSlogHandler(slog.LevelWarn), slog.LevelWarn),
	}
	return s.Serve(c, l)
}

// engineConfig always serves the linked engine. Following a stdio
// transport here could start this very command again.
func engineConfig(ctx *mansion.Context) (*config.Config, error) {
	cfg, err := ctx.LoadConfig()
	if err != nil {
		return nil, err
	}
	engineCfg := *cfg
	engineCfg.Transport = config.TransportConfig{Kind: config.TransportNative}
	return &engineCfg, nil
}

type stdio struct {
	io.Reader
	io.WriteCloser
}

// Close also closes the reader when it can, so that a blocked read returns.
func (s *stdio) Close() error {
	err := s.WriteCloser.Close()
	if rc, ok := s.Reader.(io.Closer); ok {
		rc.Close()
	}
	return err
}
