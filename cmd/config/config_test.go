package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdkit/tdkit/config"
)

func Test_Init(t *testing.T) {
	for _, name := range []string{"tdcli.yaml", "tdcli.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)

			cfg, err := Init(path, 94575, "a3406de8d171bb422bb6ddf3bbd800e2", false)
			require.NoError(t, err)
			assert.EqualValues(t, 94575, cfg.Tdlib.APIID)

			loaded, err := config.Load(path)
			require.NoError(t, err)
			assert.Equal(t, cfg.Tdlib, loaded.Tdlib)
			require.NoError(t, loaded.Validate())

			_, err = Init(path, 1, "", false)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "already exists")

			_, err = Init(path, 1, "", true)
			require.NoError(t, err)
			loaded, err = config.Load(path)
			require.NoError(t, err)
			assert.EqualValues(t, 1, loaded.Tdlib.APIID)
		})
	}
}

func Test_InitPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tdcli.yaml")
	_, err := Init(path, 1, "", false)
	require.NoError(t, err)

	st, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), st.Mode().Perm())
}

func Test_Redacted(t *testing.T) {
	cfg := config.Default()
	cfg.Tdlib.APIHash = "a3406de8d171bb422bb6ddf3bbd800e2"
	cfg.Auth.BotToken = "123456:AAE-test"

	res := Redacted(cfg)
	assert.Equal(t, mask, res.Tdlib.APIHash)
	assert.Equal(t, mask, res.Auth.BotToken)
	assert.Empty(t, res.Tdlib.EncryptionKey)

	assert.Equal(t, "a3406de8d171bb422bb6ddf3bbd800e2", cfg.Tdlib.APIHash, "the original is untouched")
}
