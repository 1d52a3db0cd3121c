package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".coursecupid"
	envPrefix  = "CUPID"

	BaseURLKey           = "api.base_url"
	TimeoutKey           = "api.timeout"
	StateDirKey          = "state.dir"
	DraftsPathKey        = "drafts.path"
	PollIntervalKey      = "poll.interval"
	HeartbeatIntervalKey = "heartbeat.interval"
	LogLevelKey          = "log.level"
	LogPrettyKey         = "log.pretty"
)

type Config struct {
	BaseURL           string
	Timeout           time.Duration
	StateDir          string
	DraftsPath        string
	PollInterval      time.Duration
	HeartbeatInterval time.Duration
	LogLevel          string
	LogPretty         bool
}

// Load reads ~/.coursecupid/config.toml when present and lets CUPID_*
// environment variables override any key (CUPID_API_BASE_URL, ...).
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	root := filepath.Join(homeDir, configDir)

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(root)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(BaseURLKey, "http://localhost:8000")
	v.SetDefault(TimeoutKey, 12*time.Second)
	v.SetDefault(StateDirKey, filepath.Join(root, "state"))
	v.SetDefault(DraftsPathKey, filepath.Join(root, "profiles.toml"))
	v.SetDefault(PollIntervalKey, 5*time.Second)
	v.SetDefault(HeartbeatIntervalKey, 20*time.Second)
	v.SetDefault(LogLevelKey, "warn")
	v.SetDefault(LogPrettyKey, true)

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		BaseURL:           strings.TrimSpace(v.GetString(BaseURLKey)),
		Timeout:           v.GetDuration(TimeoutKey),
		StateDir:          v.GetString(StateDirKey),
		DraftsPath:        v.GetString(DraftsPathKey),
		PollInterval:      v.GetDuration(PollIntervalKey),
		HeartbeatInterval: v.GetDuration(HeartbeatIntervalKey),
		LogLevel:          v.GetString(LogLevelKey),
		LogPretty:         v.GetBool(LogPrettyKey),
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	parsed, err := url.Parse(c.BaseURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("invalid %s %q: must be an http(s) url", BaseURLKey, c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("invalid %s: must be positive", TimeoutKey)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("invalid %s: must be positive", PollIntervalKey)
	}
	if c.HeartbeatInterval <= 0 {
		return fmt.Errorf("invalid %s: must be positive", HeartbeatIntervalKey)
	}
	if strings.TrimSpace(c.StateDir) == "" {
		return fmt.Errorf("%s is empty", StateDirKey)
	}

	return nil
}
