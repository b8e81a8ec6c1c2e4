package mansion

import (
	"fmt"

	"github.com/tdkit/tdkit/comm"
	"github.com/tdkit/tdkit/config"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

type DoCommand func(ctx *Context)

type Context struct {
	App      *kingpin.Application
	Commands map[string]DoCommand

	// VersionString is the complete version string
	VersionString string

	// Version is just the version number, as a string
	Version string

	// The git commit hash
	Commit string

	// Quiet silences all output
	Quiet bool

	// Verbose enables chatty output
	Verbose bool

	// JSON enables JSON output
	JSON bool

	// Path to the YAML configuration file
	ConfigPath string

	// Overrides transport.kind from the configuration when set
	TransportKind string

	// Dial connects sessions to the engine. Defaults to DialConfigured.
	Dial Dialer

	config *config.Config
}

func NewContext(app *kingpin.Application) *Context {
	return &Context{
		App:      app,
		Commands: make(map[string]DoCommand),
		Dial:     DialConfigured,
	}
}

func (ctx *Context) Register(clause *kingpin.CmdClause, do DoCommand) {
	ctx.Commands[clause.FullCommand()] = do
}

func (ctx *Context) Must(err error) {
	if err != nil {
		if ctx.Verbose || ctx.JSON {
			comm.Dief("%+v", err)
		} else {
			comm.Dief("%s", err)
		}
	}
}

func (ctx *Context) UserAgent() string {
	version := ctx.Version
	if version == "head" && ctx.Commit != "" {
		version = ctx.Commit
	}
	return fmt.Sprintf("tdcli/%s", version)
}

// LoadConfig reads the configuration with the command-line overrides
// applied, without validating it. Commands that never log in use it.
func (ctx *Context) LoadConfig() (*config.Config, error) {
	if ctx.config != nil {
		return ctx.config, nil
	}

	cfg, err := config.Load(ctx.ConfigPath)
	if err != nil {
		return nil, err
	}
	if ctx.TransportKind != "" {
		cfg.Transport.Kind = ctx.TransportKind
	}
	if cfg.Tdlib.ApplicationVersion == "head" && ctx.Version != "" {
		cfg.Tdlib.ApplicationVersion = ctx.Version
	}
	return cfg, nil
}

// Config loads and validates the configuration once, then hands out the
// same copy.
func (ctx *Context) Config() (*config.Config, error) {
	if ctx.config != nil {
		return ctx.config, nil
	}

	cfg, err := ctx.LoadConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ctx.config = cfg
	return cfg, nil
}

// SetConfig bypasses loading, for tests and embedders.
func (ctx *Context) SetConfig(cfg *config.Config) {
	ctx.config = cfg
}
