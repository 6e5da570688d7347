package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Storage  StorageConfig
	Splitter SplitterConfig
	Studio   StudioConfig
	Log      LogConfig
}

// StorageConfig selects where splitter state is persisted.
type StorageConfig struct {
	Backend       string // sqlite, file, redis or memory
	Path          string `mapstructure:"path"`
	File          string `mapstructure:"file"`
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`
	KeyPrefix     string `mapstructure:"key_prefix"`
	Debounce      time.Duration
}

// SplitterConfig holds the toolbar splitter and gesture settings.
type SplitterConfig struct {
	ID                  string
	Orientation         string        `mapstructure:"orientation"`
	DefaultFlex         float64       `mapstructure:"default_flex"`
	MinFlex             float64       `mapstructure:"min_flex"`
	MaxFlex             float64       `mapstructure:"max_flex"`
	AutoCollapse        bool          `mapstructure:"auto_collapse"`
	SnapThreshold       float64       `mapstructure:"snap_threshold"`
	AllowCollapse       string        `mapstructure:"allow_collapse"`
	DoubleClickInterval time.Duration `mapstructure:"double_click"`
	RenderQueueMinWidth int           `mapstructure:"render_queue_min_width"`
}

// StudioConfig holds host features resolved once at startup.
type StudioConfig struct {
	AskAI             bool   `mapstructure:"ask_ai"`
	KeyboardShortcuts bool   `mapstructure:"keyboard_shortcuts"`
	Version           string `mapstructure:"version"`
	LatestVersion     string `mapstructure:"latest_version"`
	Compositions      []string
}

// LogConfig holds logger settings. File is used while the TUI owns the
// terminal.
type LogConfig struct {
	Level string
	File  string
}

func home() string {
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	return os.Getenv("HOME")
}

// Path returns the config file location honoring SPLITPANE_CONFIG.
func Path() string {
	if p := os.Getenv("SPLITPANE_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(home(), ".config", "splitpane", "config.toml")
}

func setDefaults(v *viper.Viper) {
	share := filepath.Join(home(), ".local", "share", "splitpane")
	v.SetDefault("storage.backend", "sqlite")
	v.SetDefault("storage.path", filepath.Join(share, "splitpane.db"))
	v.SetDefault("storage.file", filepath.Join(home(), ".config", "splitpane", "layouts.toml"))
	v.SetDefault("storage.redis_addr", "localhost:6379")
	v.SetDefault("storage.redis_password", "")
	v.SetDefault("storage.redis_db", 0)
	v.SetDefault("storage.key_prefix", "splitter:")
	v.SetDefault("storage.debounce", 250*time.Millisecond)

	v.SetDefault("splitter.id", "sidebar-to-main")
	v.SetDefault("splitter.orientation", "horizontal")
	v.SetDefault("splitter.default_flex", 0.15)
	v.SetDefault("splitter.min_flex", 0.15)
	v.SetDefault("splitter.max_flex", 0.3)
	v.SetDefault("splitter.auto_collapse", true)
	v.SetDefault("splitter.snap_threshold", 0.02)
	v.SetDefault("splitter.allow_collapse", "left")
	v.SetDefault("splitter.double_click", 400*time.Millisecond)
	v.SetDefault("splitter.render_queue_min_width", 24)

	v.SetDefault("studio.ask_ai", false)
	v.SetDefault("studio.keyboard_shortcuts", true)
	v.SetDefault("studio.version", "4.0.0")
	v.SetDefault("studio.latest_version", "4.0.0")
	v.SetDefault("studio.compositions", []string{"Main", "Intro", "Outro", "Thumbnail"})

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", filepath.Join(home(), ".local", "state", "splitpane", "splitpane.log"))
}

// Load reads configuration from path (or Path() when empty) and env.
// Env var overrides use prefix SPLITPANE_.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	if path == "" {
		path = Path()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix("SPLITPANE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

func isNotFound(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf) || errors.Is(err, fs.ErrNotExist)
}

// EffectiveSnapThreshold is the auto-collapse threshold; zero disables it.
func (s SplitterConfig) EffectiveSnapThreshold() float64 {
	if !s.AutoCollapse {
		return 0
	}
	return s.SnapThreshold
}

// Save writes the provided config to path, creating the config directory if
// needed.
func Save(path string, cfg Config) error {
	if path == "" {
		path = Path()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("storage.backend", cfg.Storage.Backend)
	v.Set("storage.path", cfg.Storage.Path)
	v.Set("storage.file", cfg.Storage.File)
	v.Set("storage.redis_addr", cfg.Storage.RedisAddr)
	v.Set("storage.redis_db", cfg.Storage.RedisDB)
	v.Set("storage.key_prefix", cfg.Storage.KeyPrefix)
	v.Set("storage.debounce", cfg.Storage.Debounce.String())
	v.Set("splitter.id", cfg.Splitter.ID)
	v.Set("splitter.orientation", cfg.Splitter.Orientation)
	v.Set("splitter.default_flex", cfg.Splitter.DefaultFlex)
	v.Set("splitter.min_flex", cfg.Splitter.MinFlex)
	v.Set("splitter.max_flex", cfg.Splitter.MaxFlex)
	v.Set("splitter.auto_collapse", cfg.Splitter.AutoCollapse)
	v.Set("splitter.snap_threshold", cfg.Splitter.SnapThreshold)
	v.Set("splitter.allow_collapse", cfg.Splitter.AllowCollapse)
	v.Set("splitter.double_click", cfg.Splitter.DoubleClickInterval.String())
	v.Set("splitter.render_queue_min_width", cfg.Splitter.RenderQueueMinWidth)
	v.Set("studio.ask_ai", cfg.Studio.AskAI)
	v.Set("studio.keyboard_shortcuts", cfg.Studio.KeyboardShortcuts)
	v.Set("studio.version", cfg.Studio.Version)
	v.Set("studio.latest_version", cfg.Studio.LatestVersion)
	v.Set("studio.compositions", cfg.Studio.Compositions)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
