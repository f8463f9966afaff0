package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LUCKY_DATA_DIR", dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, filepath.Join(dir, "theme_preference.json"), cfg.PreferenceFile)
	assert.Equal(t, filepath.Join(dir, "app.log"), cfg.LogFile)
	assert.Equal(t, 100*time.Millisecond, cfg.SlotInterval)
	assert.Equal(t, time.Second, cfg.CoinInterval)
	assert.Equal(t, 50*time.Millisecond, cfg.FrameInterval)
	assert.Equal(t, 9, cfg.Diamonds)
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LUCKY_DATA_DIR", dir)
	t.Setenv("LUCKY_SLOT_INTERVAL", "250ms")
	t.Setenv("LUCKY_DIAMONDS", "3")
	t.Setenv("LUCKY_LOG_FILE", "/tmp/lucky-test.log")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.SlotInterval)
	assert.Equal(t, 3, cfg.Diamonds)
	assert.Equal(t, "/tmp/lucky-test.log", cfg.LogFile)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LUCKY_DATA_DIR", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lucky.yaml"),
		[]byte("coin_interval: 2s\npreference_file: prefs.json\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.CoinInterval)
	assert.Equal(t, filepath.Join(dir, "prefs.json"), cfg.PreferenceFile)
}

func TestLoadMalformedConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LUCKY_DATA_DIR", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lucky.yaml"), []byte("coin_interval: [\n"), 0o644))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("LUCKY_DATA_DIR", t.TempDir())
	t.Setenv("LUCKY_FRAME_INTERVAL", "0s")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "frame_interval")
}

func TestValidateDiamonds(t *testing.T) {
	cfg := Config{
		DataDir:       "/data",
		SlotInterval:  time.Millisecond,
		CoinInterval:  time.Millisecond,
		FrameInterval: time.Millisecond,
		Diamonds:      33,
	}
	require.Error(t, cfg.Validate())

	cfg.Diamonds = 0
	require.NoError(t, cfg.Validate())
}
