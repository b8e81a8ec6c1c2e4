package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdkit/tdkit/tdapi"
)

const apiHash = "0123456789abcdef0123456789abcdef"

func noEnv(string) (string, bool) { return "", false }

func writeFile(t *testing.T, path string, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
}

func Test_DefaultsNeedCredentials(t *testing.T) {
	cfg := Default()
	assert.Equal(t, TransportNative, cfg.Transport.Kind)
	assert.Equal(t, 1024, cfg.Cache.Users)
	assert.Equal(t, []string{tdapi.TypeUpdateOption}, cfg.Journal.Skip)

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APIID")

	cfg.Tdlib.APIID = 12345
	cfg.Tdlib.APIHash = apiHash
	assert.NoError(t, cfg.Validate())
}

func Test_LoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tdcli.yaml")
	writeFile(t, path, `
tdlib:
  api_id: 94575
  api_hash: `+apiHash+`
  use_test_dc: true
  device_model: laptop
transport:
  kind: websocket
  url: ws://localhost:8765/td
cache:
  users: 10
journal:
  enabled: true
  skip: []
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.EqualValues(t, 94575, cfg.Tdlib.APIID)
	assert.True(t, cfg.Tdlib.UseTestDC)
	assert.Equal(t, "laptop", cfg.Tdlib.DeviceModel)
	// untouched keys keep their defaults
	assert.Equal(t, "en", cfg.Tdlib.SystemLanguageCode)
	assert.Equal(t, 512, cfg.Cache.Chats)
	assert.Equal(t, 10, cfg.Cache.Users)
	assert.Equal(t, TransportWebsocket, cfg.Transport.Kind)
	assert.True(t, cfg.Journal.Enabled)
	assert.Empty(t, cfg.Journal.Skip)
}

func Test_LoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, TransportNative, cfg.Transport.Kind)
}

func Test_LoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, path, "tdlib: [1, 2")

	_, err := Load(path)
	assert.Error(t, err)
}

func Test_DotenvAndOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tdcli.yaml")
	writeFile(t, path, "tdlib:\n  api_id: 1\n")
	writeFile(t, filepath.Join(dir, ".env"), "TDKIT_API_ID=777\nTDKIT_API_HASH="+apiHash+"\nTDKIT_PHONE=+15550000\n")

	t.Setenv("TDKIT_API_ID", "")
	t.Setenv("TDKIT_API_HASH", "")
	t.Setenv("TDKIT_PHONE", "")
	os.Unsetenv("TDKIT_API_ID")
	os.Unsetenv("TDKIT_API_HASH")
	os.Unsetenv("TDKIT_PHONE")
	t.Setenv("TDKIT_DATABASE_DIRECTORY", "/tmp/td-db")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.EqualValues(t, 777, cfg.Tdlib.APIID)
	assert.Equal(t, apiHash, cfg.Tdlib.APIHash)
	assert.Equal(t, "+15550000", cfg.Auth.Phone)
	assert.Equal(t, "/tmp/td-db", cfg.Tdlib.DatabaseDirectory)
}

func Test_EnvOverrideErrors(t *testing.T) {
	cfg := Default()
	err := cfg.applyEnvOverrides(func(key string) (string, bool) {
		if key == "TDKIT_API_ID" {
			return "lots", true
		}
		return "", false
	})
	assert.Error(t, err)

	cfg = Default()
	require.NoError(t, cfg.applyEnvOverrides(func(key string) (string, bool) {
		switch key {
		case "TDKIT_BOT_TOKEN":
			return " 123:abc ", true
		case "TDKIT_TRANSPORT":
			return "stdio", true
		case "TDKIT_TRANSPORT_COMMAND":
			return `tdjson-bridge --db "/tmp/my db"`, true
		}
		return "", false
	}))
	assert.Equal(t, "123:abc", cfg.Auth.BotToken)
	assert.Equal(t, TransportStdio, cfg.Transport.Kind)
	assert.Equal(t, []string{"tdjson-bridge", "--db", "/tmp/my db"}, cfg.Transport.Command)

	cfg = Default()
	err = cfg.applyEnvOverrides(func(key string) (string, bool) {
		if key == "TDKIT_TRANSPORT_COMMAND" {
			return `bridge "unterminated`, true
		}
		return "", false
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TDKIT_TRANSPORT_COMMAND")
}

func Test_ValidateTransport(t *testing.T) {
	valid := func() *Config {
		cfg := Default()
		require.NoError(t, cfg.applyEnvOverrides(noEnv))
		cfg.Tdlib.APIID = 1
		cfg.Tdlib.APIHash = apiHash
		return cfg
	}

	cfg := valid()
	cfg.Transport.Kind = "carrier-pigeon"
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Transport.Kind = TransportWebsocket
	assert.Error(t, cfg.Validate())
	cfg.Transport.URL = "http://example.org"
	assert.Error(t, cfg.Validate())
	cfg.Transport.URL = "wss://example.org/td"
	assert.NoError(t, cfg.Validate())

	cfg = valid()
	cfg.Transport.Kind = TransportStdio
	assert.Error(t, cfg.Validate())
	cfg.Transport.Command = []string{"tdjson-bridge", "--stdio"}
	assert.NoError(t, cfg.Validate())

	cfg = valid()
	cfg.Auth.Phone = "+1555"
	cfg.Auth.BotToken = "1:x"
	assert.Error(t, cfg.Validate())
}

func Test_TdlibParameters(t *testing.T) {
	cfg := Default()
	cfg.Tdlib.APIID = 42
	cfg.Tdlib.APIHash = apiHash
	cfg.Tdlib.EncryptionKey = "hunter2"
	cfg.Tdlib.UseTestDC = true

	p := cfg.TdlibParameters()
	require.NoError(t, p.Validate())
	assert.EqualValues(t, 42, p.APIID)
	assert.Equal(t, apiHash, p.APIHash)
	assert.True(t, p.UseTestDc)
	assert.True(t, p.UseMessageDatabase)
	assert.Equal(t, []byte("hunter2"), p.DatabaseEncryptionKey)
	assert.Equal(t, cfg.Tdlib.DatabaseDirectory, p.DatabaseDirectory)
}

func Test_SaveRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Tdlib.APIID = 42
	cfg.Transport.Command = []string{"bridge"}

	path := filepath.Join(t.TempDir(), "nested", "tdcli.yaml")
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.EqualValues(t, 42, loaded.Tdlib.APIID)
	assert.Equal(t, []string{"bridge"}, loaded.Transport.Command)
}

func Test_LoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tdcli.toml")
	writeFile(t, path, `
[tdlib]
api_id = 94575
api_hash = "`+apiHash+`"

[transport]
kind = "stdio"
command = ["tdjson-bridge", "--verbose"]

[log]
verbosity = 3
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.EqualValues(t, 94575, cfg.Tdlib.APIID)
	assert.Equal(t, []string{"tdjson-bridge", "--verbose"}, cfg.Transport.Command)
	assert.EqualValues(t, 3, cfg.Log.Verbosity)
	// untouched sections keep their defaults
	assert.Equal(t, 512, cfg.Cache.Chats)

	cfg.Auth.Phone = "+15550100"
	out := filepath.Join(t.TempDir(), "saved.toml")
	require.NoError(t, cfg.Save(out))

	loaded, err := Load(out)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
