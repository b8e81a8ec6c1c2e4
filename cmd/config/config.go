package config

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/tdkit/tdkit/comm"
	"github.com/tdkit/tdkit/config"
	"github.com/tdkit/tdkit/mansion"
	"gopkg.in/yaml.v3"
)

var initArgs = struct {
	force   *bool
	apiID   *int32
	apiHash *string
}{}

func Register(ctx *mansion.Context) {
	cmd := ctx.App.Command("config", "Manage the configuration file")

	initCmd := cmd.Command("init", "Write a configuration file with the defaults, YAML or TOML depending on its extension")
	initArgs.force = initCmd.Flag("force", "Overwrite an existing file").Bool()
	initArgs.apiID = initCmd.Flag("api-id", "Application identifier from my.telegram.org").Int32()
	initArgs.apiHash = initCmd.Flag("api-hash", "Application hash from my.telegram.org").String()
	ctx.Register(initCmd, doInit)

	show := cmd.Command("show", "Print the configuration in effect, with secrets masked")
	ctx.Register(show, doShow)

	check := cmd.Command("check", "Validate the configuration in effect")
	ctx.Register(check, doCheck)
}

func doInit(ctx *mansion.Context) {
	cfg, err := Init(ctx.ConfigPath, *initArgs.apiID, *initArgs.apiHash, *initArgs.force)
	ctx.Must(err)

	comm.ResultOrPrint(Redacted(cfg), func() {
		comm.Statf("Wrote %s", ctx.ConfigPath)
		if cfg.Tdlib.APIID == 0 {
			comm.Logf("Set tdlib.api_id and tdlib.api_hash before logging in")
		}
	})
}

// Init writes the defaults to path, refusing to replace an existing file
// unless force is set.
func Init(path string, apiID int32, apiHash string, force bool) (*config.Config, error) {
	if path == "" {
		return nil, errors.New("no configuration path, use --config")
	}
	if _, err := os.Stat(path); err == nil && !force {
		return nil, errors.Errorf("%s already exists, use --force to overwrite it", path)
	}

	cfg := config.Default()
	cfg.Tdlib.APIID = apiID
	cfg.Tdlib.APIHash = apiHash
	if err := cfg.Save(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

func doShow(ctx *mansion.Context) {
	cfg, err := ctx.LoadConfig()
	ctx.Must(err)

	redacted := Redacted(cfg)
	comm.ResultOrPrint(redacted, func() {
		out, err := yaml.Marshal(redacted)
		ctx.Must(errors.WithStack(err))
		fmt.Print(string(out))
	})
}

func doCheck(ctx *mansion.Context) {
	_, err := ctx.Config()
	ctx.Must(err)
	comm.Statf("Configuration is valid")
}

const mask = "********"

// Redacted returns a copy of cfg that can be shown to anyone.
func Redacted(cfg *config.Config) *config.Config {
	res := *cfg
	hide := func(s *string) {
		if *s != "" {
			*s = mask
		}
	}
	hide(&res.Tdlib.APIHash)
	hide(&res.Tdlib.EncryptionKey)
	hide(&res.Auth.BotToken)
	return &res
}
