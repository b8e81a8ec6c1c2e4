package mansion

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
	"github.com/tdkit/tdkit/comm"
	"github.com/tdkit/tdkit/config"
	"github.com/tdkit/tdkit/tdapi"
	"github.com/tdkit/tdkit/tdapi/messages"
	"github.com/tdkit/tdkit/tdapi/tdjson"
	"github.com/tdkit/tdkit/tdapi/tdjson/native"
)

// Endpoint is an engine a session can talk to.
type Endpoint struct {
	Transport tdjson.Transport

	// nil when the engine cannot answer synchronous functions
	Executor tdjson.Executor

	// run once the client is torn down
	cleanup func() error
}

// NewEndpoint wraps an engine started elsewhere. cleanup may be nil.
func NewEndpoint(transport tdjson.Transport, executor tdjson.Executor, cleanup func() error) *Endpoint {
	return &Endpoint{
		Transport: transport,
		Executor:  executor,
		cleanup:   cleanup,
	}
}

// Close releases whatever the endpoint started besides the transport.
func (ep *Endpoint) Close() error {
	if ep.cleanup == nil {
		return nil
	}
	return ep.cleanup()
}

type Dialer func(c context.Context, cfg *config.Config, userAgent string) (*Endpoint, error)

// DialConfigured connects to the engine cfg.Transport describes.
func DialConfigured(c context.Context, cfg *config.Config, userAgent string) (*Endpoint, error) {
	switch cfg.Transport.Kind {
	case config.TransportNative:
		return dialNative(cfg.Log)
	case config.TransportStdio:
		return dialStdio(cfg.Transport.Command)
	case config.TransportWebsocket:
		header := http.Header{}
		header.Set("User-Agent", userAgent)
		t, err := tdjson.DialWebsocket(c, cfg.Transport.URL, header)
		if err != nil {
			return nil, err
		}
		return &Endpoint{Transport: t}, nil
	default:
		return nil, errors.Errorf("unknown transport %q", cfg.Transport.Kind)
	}
}

func dialNative(lc config.LogConfig) (*Endpoint, error) {
	if lc.File == "" {
		logger := comm.NewLogger(comm.LevelFromVerbosity(int(lc.Verbosity))).With("source", "td")
		err := native.SetLogHandler(int(lc.Verbosity), func(verbosity int, message string) {
			logger.Log(context.Background(), comm.LevelFromVerbosity(verbosity), strings.TrimSpace(message))
		})
		if err != nil {
			return nil, err
		}
	}

	ep := &Endpoint{Executor: native.Executor{}}
	if err := configureEngineLog(ep.Executor, lc); err != nil {
		return nil, err
	}

	t, err := native.NewTransport()
	if err != nil {
		return nil, err
	}
	ep.Transport = t
	return ep, nil
}

// configureEngineLog sends the engine's own log to lc.File, or nowhere when
// a log handler already relays it.
func configureEngineLog(e tdjson.Executor, lc config.LogConfig) error {
	var stream tdapi.LogStream = &tdapi.LogStreamEmpty{}
	if lc.File != "" {
		stream = &tdapi.LogStreamFile{
			Path:        lc.File,
			MaxFileSize: 10 * 1024 * 1024,
		}
	}
	if _, err := messages.SetLogStream.Execute(e, tdapi.NewSetLogStream(stream)); err != nil {
		return errors.WithMessage(err, "setting engine log stream")
	}

	level := tdapi.NewSetLogVerbosityLevel().WithNewVerbosityLevel(lc.Verbosity)
	if _, err := messages.SetLogVerbosityLevel.Execute(e, level); err != nil {
		return errors.WithMessage(err, "setting engine log verbosity")
	}
	return nil
}

// bridgeProcess is a child speaking newline-delimited JSON on stdin/stdout.
type bridgeProcess struct {
	io.Reader
	io.WriteCloser

	cmd *exec.Cmd
}

func (bp *bridgeProcess) Close() error {
	return bp.WriteCloser.Close()
}

func dialStdio(command []string) (*Endpoint, error) {
	if len(command) == 0 {
		return nil, errors.New("stdio transport: empty command")
	}

	cmd := exec.Command(command[0], command[1:]...)
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if err := cmd.Start(); err != nil {
		return nil, errors.Wrapf(err, "starting %s", command[0])
	}

	bp := &bridgeProcess{Reader: stdout, WriteCloser: stdin, cmd: cmd}
	return &Endpoint{
		Transport: tdjson.NewRwcTransport(bp),
		cleanup: func() error {
			// the bridge exits once its stdin is closed
			err := cmd.Wait()
			if _, ok := err.(*exec.ExitError); ok {
				comm.Debugf("bridge exited: %s", err)
				return nil
			}
			return errors.WithStack(err)
		},
	}, nil
}
