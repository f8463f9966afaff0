// Package config loads runtime settings from defaults, an optional
// lucky.yaml in the data directory and LUCKY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	appName = "lucky"

	defaultPreferenceFile = "theme_preference.json"
	defaultLogFile        = "app.log"
	defaultSlotInterval   = 100 * time.Millisecond
	defaultCoinInterval   = time.Second
	defaultFrameInterval  = 50 * time.Millisecond
	defaultDiamonds       = 9
	maximumDiamonds       = 32
)

// Config captures startup settings for the game.
type Config struct {
	DataDir        string
	PreferenceFile string
	LogFile        string
	SlotInterval   time.Duration
	CoinInterval   time.Duration
	FrameInterval  time.Duration
	Diamonds       int
}

// Load resolves the configuration. Relative file names are placed in DataDir.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(appName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	dataDir, err := defaultDataDir()
	if err != nil {
		return Config{}, err
	}
	v.SetDefault("data_dir", dataDir)
	v.SetDefault("preference_file", defaultPreferenceFile)
	v.SetDefault("log_file", defaultLogFile)
	v.SetDefault("slot_interval", defaultSlotInterval)
	v.SetDefault("coin_interval", defaultCoinInterval)
	v.SetDefault("frame_interval", defaultFrameInterval)
	v.SetDefault("diamonds", defaultDiamonds)

	v.SetConfigName(appName)
	v.SetConfigType("yaml")
	v.AddConfigPath(v.GetString("data_dir"))
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		DataDir:        filepath.Clean(v.GetString("data_dir")),
		PreferenceFile: v.GetString("preference_file"),
		LogFile:        v.GetString("log_file"),
		SlotInterval:   v.GetDuration("slot_interval"),
		CoinInterval:   v.GetDuration("coin_interval"),
		FrameInterval:  v.GetDuration("frame_interval"),
		Diamonds:       v.GetInt("diamonds"),
	}
	cfg.PreferenceFile = cfg.resolve(cfg.PreferenceFile)
	cfg.LogFile = cfg.resolve(cfg.LogFile)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the game cannot run with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" || c.DataDir == "." {
		return fmt.Errorf("data_dir must not be empty")
	}
	for name, d := range map[string]time.Duration{
		"slot_interval":  c.SlotInterval,
		"coin_interval":  c.CoinInterval,
		"frame_interval": c.FrameInterval,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %s", name, d)
		}
	}
	if c.Diamonds < 0 || c.Diamonds > maximumDiamonds {
		return fmt.Errorf("diamonds must be between 0 and %d, got %d", maximumDiamonds, c.Diamonds)
	}
	return nil
}

func (c Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

func defaultDataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config dir: %w", err)
	}
	return filepath.Join(base, appName), nil
}
