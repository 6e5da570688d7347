package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	require.Equal(t, "sqlite", cfg.Storage.Backend)
	require.Equal(t, 250*time.Millisecond, cfg.Storage.Debounce)
	require.Equal(t, "sidebar-to-main", cfg.Splitter.ID)
	require.Equal(t, "horizontal", cfg.Splitter.Orientation)
	require.Equal(t, 0.15, cfg.Splitter.DefaultFlex)
	require.Equal(t, 0.3, cfg.Splitter.MaxFlex)
	require.Equal(t, "left", cfg.Splitter.AllowCollapse)
	require.Equal(t, 400*time.Millisecond, cfg.Splitter.DoubleClickInterval)
	require.Equal(t, 0.02, cfg.Splitter.EffectiveSnapThreshold())
	require.False(t, cfg.Studio.AskAI)
	require.NotEmpty(t, cfg.Studio.Compositions)
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[storage]
backend = "file"
debounce = "1s"

[splitter]
orientation = "vertical"
max_flex = 0.4
auto_collapse = false

[studio]
ask_ai = true
compositions = ["A", "B"]
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	t.Setenv("SPLITPANE_STORAGE_BACKEND", "memory")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "memory", cfg.Storage.Backend)
	require.Equal(t, time.Second, cfg.Storage.Debounce)
	require.Equal(t, 0.4, cfg.Splitter.MaxFlex)
	require.Equal(t, "vertical", cfg.Splitter.Orientation)
	require.Equal(t, 0.0, cfg.Splitter.EffectiveSnapThreshold())
	require.True(t, cfg.Studio.AskAI)
	require.Equal(t, []string{"A", "B"}, cfg.Studio.Compositions)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[storage\nbackend ="), 0o644))
	_, err := Load(path)
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg, err := Load(path)
	require.NoError(t, err)
	cfg.Storage.Backend = "redis"
	cfg.Splitter.MinFlex = 0.1
	cfg.Studio.LatestVersion = "4.1.0"
	require.NoError(t, Save(path, cfg))

	again, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "redis", again.Storage.Backend)
	require.Equal(t, 0.1, again.Splitter.MinFlex)
	require.Equal(t, "4.1.0", again.Studio.LatestVersion)
	require.Equal(t, cfg.Splitter.DoubleClickInterval, again.Splitter.DoubleClickInterval)
}
