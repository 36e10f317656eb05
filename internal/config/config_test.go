package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/require"

	"github.com/nnaakkaaii/minimax2048/internal/domain"
)

func useTempXDG(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func TestLoadDefault(t *testing.T) {
	useTempXDG(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, domain.DefaultDepth, cfg.Search.Depth)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, int32(0xedc22e), cfg.Theme.TileColors[2048])
}

func TestLoadOverlay(t *testing.T) {
	dir := useTempXDG(t)

	path := filepath.Join(dir, "config", "minimax2048", "config.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(`{
		"search": {"depth": 4},
		"autoplay": {"seed": 99},
		"theme": {"tile_colors": {"4096": 3355443}}
	}`), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Search.Depth)
	require.Equal(t, uint64(99), cfg.ResolveSeed())
	require.Equal(t, int32(0x333333), cfg.Theme.TileColors[4096])
	// 指定していないキーはデフォルトのまま
	require.Equal(t, int32(0xeee4da), cfg.Theme.TileColors[2])
	require.Equal(t, 1, cfg.AutoPlay.Games)
}

func TestLoadInvalid(t *testing.T) {
	dir := useTempXDG(t)

	path := filepath.Join(dir, "config", "minimax2048", "config.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))

	require.NoError(t, os.WriteFile(path, []byte(`{"search": {"depth": 0}}`), 0o644))
	_, err := Load()
	var invalid *InvalidConfig
	require.ErrorAs(t, err, &invalid)

	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))
	_, err = Load()
	require.ErrorAs(t, err, &invalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"games", func(c *Config) { c.AutoPlay.Games = 0 }},
		{"workers", func(c *Config) { c.AutoPlay.Workers = -1 }},
		{"delay", func(c *Config) { c.AutoPlay.DelayMillis = -5 }},
		{"tile key", func(c *Config) { c.Theme.TileColors[3] = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.modify(&c)
			require.Error(t, c.Validate())
		})
	}

	c := Default()
	require.NoError(t, c.Validate())
}

func TestDefaultIsolated(t *testing.T) {
	c := Default()
	c.Theme.TileColors[2] = 0
	require.Equal(t, int32(0xeee4da), Default().Theme.TileColors[2])
}

func TestResolveSeedRandom(t *testing.T) {
	c := Default()
	require.NotZero(t, c.ResolveSeed())
}

func TestSave(t *testing.T) {
	dir := useTempXDG(t)

	c := Default()
	c.Search.Depth = 5
	path, err := c.Save()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "config", "minimax2048", "config.json"), path)

	loaded, err := Load()
	require.NoError(t, err)
	require.Equal(t, 5, loaded.Search.Depth)

	logPath, err := LogFilePath()
	require.NoError(t, err)
	require.Equal(t, "minimax2048.log", filepath.Base(logPath))
}
