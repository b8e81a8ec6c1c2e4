// Package config loads tdcli settings from a YAML or TOML file, an optional
// .env file and TDKIT_* environment variables, in that order of precedence.
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/dchest/safefile"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/joho/godotenv"
	shellquote "github.com/kballard/go-shellquote"
	"github.com/pkg/errors"
	"github.com/tdkit/tdkit/database"
	"github.com/tdkit/tdkit/tdapi"
	"gopkg.in/yaml.v3"
)

// Transport kinds
const (
	TransportNative    = "native"
	TransportStdio     = "stdio"
	TransportWebsocket = "websocket"
)

var websocketURL = regexp.MustCompile(`^wss?://`)

type Config struct {
	Tdlib     TdlibConfig     `yaml:"tdlib" toml:"tdlib"`
	Auth      AuthConfig      `yaml:"auth" toml:"auth"`
	Transport TransportConfig `yaml:"transport" toml:"transport"`
	Log       LogConfig       `yaml:"log" toml:"log"`
	Cache     CacheConfig     `yaml:"cache" toml:"cache"`
	Journal   JournalConfig   `yaml:"journal" toml:"journal"`
}

type TdlibConfig struct {
	APIID   int32  `yaml:"api_id" toml:"api_id"`
	APIHash string `yaml:"api_hash" toml:"api_hash"`

	UseTestDC         bool   `yaml:"use_test_dc" toml:"use_test_dc"`
	DatabaseDirectory string `yaml:"database_directory" toml:"database_directory"`
	FilesDirectory    string `yaml:"files_directory" toml:"files_directory"`
	EncryptionKey     string `yaml:"encryption_key" toml:"encryption_key"`

	UseFileDatabase        bool `yaml:"use_file_database" toml:"use_file_database"`
	UseChatInfoDatabase    bool `yaml:"use_chat_info_database" toml:"use_chat_info_database"`
	UseMessageDatabase     bool `yaml:"use_message_database" toml:"use_message_database"`
	UseSecretChats         bool `yaml:"use_secret_chats" toml:"use_secret_chats"`
	EnableStorageOptimizer bool `yaml:"enable_storage_optimizer" toml:"enable_storage_optimizer"`

	SystemLanguageCode string `yaml:"system_language_code" toml:"system_language_code"`
	DeviceModel        string `yaml:"device_model" toml:"device_model"`
	SystemVersion      string `yaml:"system_version" toml:"system_version"`
	ApplicationVersion string `yaml:"application_version" toml:"application_version"`
}

// AuthConfig holds credentials. Leave both empty to be prompted.
type AuthConfig struct {
	Phone    string `yaml:"phone" toml:"phone"`
	BotToken string `yaml:"bot_token" toml:"bot_token"`
}

type TransportConfig struct {
	// one of native, stdio or websocket
	Kind string `yaml:"kind" toml:"kind"`

	// websocket bridge address, e.g. ws://localhost:8765/td
	URL string `yaml:"url" toml:"url"`

	// bridge process speaking newline-delimited JSON on stdin/stdout
	Command []string `yaml:"command" toml:"command"`
}

type LogConfig struct {
	// engine log verbosity, 0 (fatal only) to 5 (debug)
	Verbosity int32 `yaml:"verbosity" toml:"verbosity"`

	// engine log file; empty means the engine's log goes through tdcli's output
	File string `yaml:"file" toml:"file"`
}

type CacheConfig struct {
	Users int `yaml:"users" toml:"users"`
	Chats int `yaml:"chats" toml:"chats"`
}

type JournalConfig struct {
	Enabled bool     `yaml:"enabled" toml:"enabled"`
	Path    string   `yaml:"path" toml:"path"`
	Skip    []string `yaml:"skip" toml:"skip"`
}

// Default returns a configuration that only lacks API credentials.
func Default() *Config {
	dataDir, err := database.GetAppDataPath("tdkit")
	if err != nil {
		dataDir = ".tdkit"
	}

	return &Config{
		Tdlib: TdlibConfig{
			DatabaseDirectory:   filepath.Join(dataDir, "tdlib"),
			UseFileDatabase:     true,
			UseChatInfoDatabase: true,
			UseMessageDatabase:  true,
			SystemLanguageCode:  "en",
			DeviceModel:         "tdcli",
			ApplicationVersion:  "head",
		},
		Transport: TransportConfig{
			Kind: TransportNative,
		},
		Log: LogConfig{
			Verbosity: 1,
		},
		Cache: CacheConfig{
			Users: 1024,
			Chats: 512,
		},
		Journal: JournalConfig{
			Path: filepath.Join(dataDir, "journal.db"),
			Skip: []string{tdapi.TypeUpdateOption},
		},
	}
}

// Load reads path on top of the defaults. A missing file is not an error,
// everything can come from the environment. A .env file next to path, or
// in the working directory, is loaded first without overriding variables
// that are already set.
func Load(path string) (*Config, error) {
	for _, envFile := range dotenvCandidates(path) {
		err := godotenv.Load(envFile)
		if err != nil && !os.IsNotExist(errors.Cause(err)) {
			return nil, errors.Wrapf(err, "loading %s", envFile)
		}
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := unmarshal(path, data, cfg); err != nil {
				return nil, errors.Wrapf(err, "parsing %s", path)
			}
		case os.IsNotExist(err):
			// defaults + environment
		default:
			return nil, errors.Wrapf(err, "reading %s", path)
		}
	}

	if err := cfg.applyEnvOverrides(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func unmarshal(path string, data []byte, cfg *Config) error {
	if isTOML(path) {
		return toml.Unmarshal(data, cfg)
	}
	return yaml.Unmarshal(data, cfg)
}

func dotenvCandidates(path string) []string {
	var res []string
	if path != "" {
		res = append(res, filepath.Join(filepath.Dir(path), ".env"))
	}
	if len(res) == 0 || res[0] != ".env" {
		res = append(res, ".env")
	}
	return res
}

func (c *Config) applyEnvOverrides(lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get("TDKIT_API_ID"); ok {
		id, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return errors.Wrap(err, "parsing TDKIT_API_ID")
		}
		c.Tdlib.APIID = int32(id)
	}
	if v, ok := get("TDKIT_API_HASH"); ok {
		c.Tdlib.APIHash = v
	}
	if v, ok := get("TDKIT_DATABASE_DIRECTORY"); ok {
		c.Tdlib.DatabaseDirectory = v
	}
	if v, ok := get("TDKIT_PHONE"); ok {
		c.Auth.Phone = v
	}
	if v, ok := get("TDKIT_BOT_TOKEN"); ok {
		c.Auth.BotToken = v
	}
	if v, ok := get("TDKIT_TRANSPORT"); ok {
		c.Transport.Kind = v
	}
	if v, ok := get("TDKIT_TRANSPORT_URL"); ok {
		c.Transport.URL = v
	}
	if v, ok := get("TDKIT_TRANSPORT_COMMAND"); ok {
		words, err := shellquote.Split(v)
		if err != nil {
			return errors.Wrap(err, "parsing TDKIT_TRANSPORT_COMMAND")
		}
		c.Transport.Command = words
	}
	return nil
}

func (c *Config) Validate() error {
	err := validation.ValidateStruct(&c.Tdlib,
		validation.Field(&c.Tdlib.APIID, validation.Required, validation.Min(1)),
		validation.Field(&c.Tdlib.APIHash, validation.Required, validation.Length(32, 32)),
		validation.Field(&c.Tdlib.SystemLanguageCode, validation.Required),
		validation.Field(&c.Tdlib.DeviceModel, validation.Required),
		validation.Field(&c.Tdlib.ApplicationVersion, validation.Required),
	)
	if err != nil {
		return errors.Wrap(err, "tdlib")
	}

	transportRules := []*validation.FieldRules{
		validation.Field(&c.Transport.Kind, validation.Required, validation.In(TransportNative, TransportStdio, TransportWebsocket)),
	}
	switch c.Transport.Kind {
	case TransportWebsocket:
		transportRules = append(transportRules,
			validation.Field(&c.Transport.URL, validation.Required, validation.Match(websocketURL)))
	case TransportStdio:
		transportRules = append(transportRules,
			validation.Field(&c.Transport.Command, validation.Required))
	}
	if err := validation.ValidateStruct(&c.Transport, transportRules...); err != nil {
		return errors.Wrap(err, "transport")
	}

	err = validation.ValidateStruct(&c.Log,
		validation.Field(&c.Log.Verbosity, validation.Min(0), validation.Max(1023)),
	)
	if err != nil {
		return errors.Wrap(err, "log")
	}

	err = validation.ValidateStruct(&c.Cache,
		validation.Field(&c.Cache.Users, validation.Min(0)),
		validation.Field(&c.Cache.Chats, validation.Min(0)),
	)
	if err != nil {
		return errors.Wrap(err, "cache")
	}

	if c.Auth.Phone != "" && c.Auth.BotToken != "" {
		return errors.New("auth: set either phone or bot_token, not both")
	}
	return nil
}

// TdlibParameters builds the setTdlibParameters call the engine asks for
// before anything else.
func (c *Config) TdlibParameters() *tdapi.SetTdlibParameters {
	t := c.Tdlib
	p := tdapi.NewSetTdlibParameters(t.APIID, t.APIHash, t.SystemLanguageCode, t.DeviceModel, t.ApplicationVersion).
		WithUseTestDc(t.UseTestDC).
		WithDatabaseDirectory(t.DatabaseDirectory).
		WithFilesDirectory(t.FilesDirectory).
		WithUseFileDatabase(t.UseFileDatabase).
		WithUseChatInfoDatabase(t.UseChatInfoDatabase).
		WithUseMessageDatabase(t.UseMessageDatabase).
		WithUseSecretChats(t.UseSecretChats).
		WithEnableStorageOptimizer(t.EnableStorageOptimizer).
		WithSystemVersion(t.SystemVersion)
	if t.EncryptionKey != "" {
		p.WithDatabaseEncryptionKey([]byte(t.EncryptionKey))
	}
	return p
}

// Save writes the configuration as TOML or YAML depending on the extension
// of path, creating parent directories. The file is replaced atomically.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "creating config directory")
	}

	var data []byte
	if isTOML(path) {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return errors.Wrap(err, "marshalling config")
		}
		data = buf.Bytes()
	} else {
		var err error
		data, err = yaml.Marshal(c)
		if err != nil {
			return errors.Wrap(err, "marshalling config")
		}
	}
	return errors.WithStack(safefile.WriteFile(path, data, 0600))
}
