package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "sqlite", c.Backend)
	assert.Equal(t, "records", c.StoreKey)
	assert.Equal(t, "id", c.KeyField)
	assert.Equal(t, "json", c.Codec)
	assert.Equal(t, "slots", c.BoltBucket)
	assert.Equal(t, "info", c.LogLevel)
	assert.Empty(t, c.S3BaseEndpoint, "S3 must target AWS unless an endpoint is set")
}

func TestLoadConfig_UsesDefaultsWithoutArgs(t *testing.T) {
	cfg, err := LoadConfig(nil)

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "sqlite", cfg.Backend)
	assert.Equal(t, "blobkeeper.db", cfg.SQLitePath)
}

func TestLoadConfig_FlagsOverrideJson(t *testing.T) {
	path := writeConfig(t, `{"backend":"bolt","store_key":"from-json","bolt":"x.bolt"}`)

	cfg, err := LoadConfig([]string{"-c", path, "-k", "from-flag", "list"})

	require.NoError(t, err)
	assert.Equal(t, "bolt", cfg.Backend)
	assert.Equal(t, "x.bolt", cfg.BoltPath)
	assert.Equal(t, "from-flag", cfg.StoreKey)
}

func TestLoadConfig_BadJson(t *testing.T) {
	path := writeConfig(t, `{"backend":`)

	_, err := LoadConfig([]string{"--config", path})
	require.Error(t, err)
}
