package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/tdkit/tdkit/buildinfo"
	"github.com/tdkit/tdkit/comm"
	"github.com/tdkit/tdkit/database"
	"github.com/tdkit/tdkit/mansion"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("tdcli", "Talk to Telegram through TDLib's JSON interface")
)

var appArgs = struct {
	json       *bool
	quiet      *bool
	verbose    *bool
	timestamps *bool
	noProgress *bool
	config     *string
	transport  *string
}{
	app.Flag("json", "Enable machine-readable JSON-lines output").Short('j').Bool(),
	app.Flag("quiet", "Hide progress indicators & other extra info").Short('q').Bool(),
	app.Flag("verbose", "Display as much extra info as possible").Short('v').Bool(),
	app.Flag("timestamps", "Prefix all output by timestamps (for logging purposes)").Bool(),
	app.Flag("no-progress", "Doesn't show progress bars").Bool(),
	app.Flag("config", "Configuration file, YAML or TOML").Short('c').Envar("TDKIT_CONFIG").Default(defaultConfigPath()).String(),
	app.Flag("transport", "Override transport.kind from the configuration").Enum("native", "stdio", "websocket"),
}

func defaultConfigPath() string {
	dir, err := database.GetAppDataPath("tdkit")
	if err != nil {
		return "tdcli.yaml"
	}
	return filepath.Join(dir, "tdcli.yaml")
}

func main() {
	ctx := mansion.NewContext(app)
	registerCommands(ctx)

	app.UsageTemplate(kingpin.CompactUsageTemplate)
	app.HelpFlag.Short('h')
	if buildinfo.BuiltAt != "" {
		app.Version(buildinfo.VersionString)
	} else {
		app.Version(buildinfo.Version)
	}
	app.VersionFlag.Short('V')
	app.Author("tdkit authors")

	cmd, err := app.Parse(os.Args[1:])
	if err != nil {
		pc, _ := app.ParseContext(os.Args[1:])
		if pc != nil {
			app.FatalUsageContext(pc, "%s\n", err.Error())
		} else {
			app.FatalUsage("%s\n", err.Error())
		}
	}

	if *appArgs.timestamps {
		log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	} else {
		log.SetFlags(0)
	}
	if *appArgs.quiet {
		*appArgs.noProgress = true
	}

	ctx.Quiet = *appArgs.quiet
	ctx.Verbose = *appArgs.verbose
	ctx.JSON = *appArgs.json
	ctx.ConfigPath = *appArgs.config
	ctx.TransportKind = *appArgs.transport
	ctx.Version = buildinfo.Version
	ctx.VersionString = buildinfo.VersionString
	ctx.Commit = buildinfo.Commit

	comm.Configure(*appArgs.noProgress, *appArgs.quiet, *appArgs.verbose, *appArgs.json, false)
	if !mansion.IsTerminal() {
		comm.Debug("Not a terminal, disabling progress indicator")
		comm.Configure(true, *appArgs.quiet, *appArgs.verbose, *appArgs.json, false)
	}

	do := ctx.Commands[cmd]
	if do == nil {
		kingpin.Fatalf("unknown command %s", cmd)
	}
	do(ctx)
}
