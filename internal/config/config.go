package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Storage   StorageConfig `yaml:"storage"`
	Timing    TimingConfig  `yaml:"timing"`
	Log       LogConfig     `yaml:"log"`
	GuidePath string        `yaml:"guide_path,omitempty"`
}

type StorageConfig struct {
	Backend string `yaml:"backend"`
	DataDir string `yaml:"data_dir,omitempty"`
}

// TimingConfig holds the delays used to pace the conversation.
type TimingConfig struct {
	TypingBase       time.Duration `yaml:"typing_base"`
	TypingJitter     time.Duration `yaml:"typing_jitter"`
	QuickReplyBase   time.Duration `yaml:"quick_reply_base"`
	QuickReplyJitter time.Duration `yaml:"quick_reply_jitter"`
	LearnDelay       time.Duration `yaml:"learn_delay"`
	GreetingDelay    time.Duration `yaml:"greeting_delay"`
	TipDelay         time.Duration `yaml:"tip_delay"`
	NoticeDelay      time.Duration `yaml:"notice_delay"`
	ToastDuration    time.Duration `yaml:"toast_duration"`
	PollInterval     time.Duration `yaml:"poll_interval"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: "file",
		},
		Timing: TimingConfig{
			TypingBase:       600 * time.Millisecond,
			TypingJitter:     500 * time.Millisecond,
			QuickReplyBase:   500 * time.Millisecond,
			QuickReplyJitter: 400 * time.Millisecond,
			LearnDelay:       1500 * time.Millisecond,
			GreetingDelay:    1500 * time.Millisecond,
			TipDelay:         800 * time.Millisecond,
			NoticeDelay:      500 * time.Millisecond,
			ToastDuration:    3 * time.Second,
			PollInterval:     2 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "itabs"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func Exists() bool {
	path, err := ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Load reads the config file at the default path. It returns nil, nil when
// no config file exists.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config file at path over the defaults. It returns
// nil, nil when the file does not exist.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Resolve loads the config at path (the default path when empty), falls back
// to the defaults when there is none, then applies .env and ITABS_*
// environment overrides.
func Resolve(path string) (*Config, error) {
	var (
		cfg *Config
		err error
	)
	if path == "" {
		cfg, err = Load()
	} else {
		cfg, err = LoadFrom(path)
	}
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}

	// A missing .env is the common case.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	cfg.ApplyEnv()

	return cfg, nil
}

// ApplyEnv overrides file values with ITABS_* environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("ITABS_STORAGE"); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv("ITABS_DATA_DIR"); v != "" {
		c.Storage.DataDir = v
	}
	if v := os.Getenv("ITABS_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("ITABS_GUIDE"); v != "" {
		c.GuidePath = v
	}
}

// DataDir returns the directory holding the profile and log, defaulting to
// ~/.local/share/itabs.
func (c *Config) DataDir() (string, error) {
	if c.Storage.DataDir != "" {
		return c.Storage.DataDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", "itabs"), nil
}

// Guide returns the path of the guide draft, defaulting to guide.yaml in the
// data directory.
func (c *Config) Guide() (string, error) {
	if c.GuidePath != "" {
		return c.GuidePath, nil
	}
	dir, err := c.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "guide.yaml"), nil
}

// LogLevel parses Log.Level, defaulting to info.
func (c *Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.Log.Level))); err != nil {
		return slog.LevelInfo
	}
	return level
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
