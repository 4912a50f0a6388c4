package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("PWFIELD_CONFIG", "")
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, "•", cfg.UI.MaskChar)
	require.Equal(t, 40, cfg.UI.Width)
	require.False(t, cfg.UI.StartRevealed)
	require.Equal(t, []string{"ctrl+r"}, cfg.Keys.Reveal)
	require.Equal(t, []string{"esc", "ctrl+c"}, cfg.Keys.Quit)
	require.Equal(t, filepath.Join(home, ".local", "state", "pwfield", "pwfield.log"), cfg.Log.Path)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFileAndEnv(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "pw.toml")
	data := `
[ui]
title = "Vault passphrase"
mask_char = "*"
width = 50

[keys]
reveal = ["ctrl+v", "f2"]

[log]
level = "debug"
format = "console"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	t.Setenv("PWFIELD_CONFIG", path)
	t.Setenv("PWFIELD_UI_WIDTH", "60")

	cfg, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, "Vault passphrase", cfg.UI.Title)
	require.Equal(t, "*", cfg.UI.MaskChar)
	require.Equal(t, 60, cfg.UI.Width)
	require.Equal(t, []string{"ctrl+v", "f2"}, cfg.Keys.Reveal)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "console", cfg.Log.Format)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)
	t.Setenv("PWFIELD_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))

	_, err := Load(nil)
	require.Error(t, err)
}

func TestLoadFlagsOverride(t *testing.T) {
	isolate(t)
	fs := pflag.NewFlagSet("pwfield", pflag.ContinueOnError)
	BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"--reveal", "--title", "Root password", "--log-path", ""}))

	cfg, err := Load(fs)
	require.NoError(t, err)
	require.True(t, cfg.UI.StartRevealed)
	require.Equal(t, "Root password", cfg.UI.Title)
	require.Equal(t, "", cfg.Log.Path)
}

func TestValidate(t *testing.T) {
	isolate(t)
	base, err := Load(nil)
	require.NoError(t, err)
	require.NoError(t, base.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty mask", func(c *Config) { c.UI.MaskChar = "" }},
		{"long mask", func(c *Config) { c.UI.MaskChar = "**" }},
		{"narrow", func(c *Config) { c.UI.Width = MinWidth - 1 }},
		{"level", func(c *Config) { c.Log.Level = "trace" }},
		{"format", func(c *Config) { c.Log.Format = "xml" }},
		{"no submit key", func(c *Config) { c.Keys.Submit = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			require.Error(t, c.Validate())
		})
	}
}
