package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI   UIConfig
	Keys KeysConfig
	Log  LogConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title         string
	MaskChar      string `mapstructure:"mask_char"`
	StartRevealed bool   `mapstructure:"start_revealed"`
	Width         int
}

// KeysConfig maps actions to key strings as reported by tea.KeyMsg.String.
type KeysConfig struct {
	Reveal []string
	Submit []string
	Clear  []string
	Kill   []string
	Quit   []string
}

// LogConfig holds file logging settings. An empty Path disables logging.
type LogConfig struct {
	Path       string
	Level      string
	Format     string
	MaxSizeMB  int `mapstructure:"max_size_mb"`
	MaxBackups int `mapstructure:"max_backups"`
}

// MinWidth is the narrowest text box the field can draw.
const MinWidth = 32

func setDefaults(v *viper.Viper) {
	v.SetDefault("ui.title", "If your password is weak, you'll know")
	v.SetDefault("ui.mask_char", "•")
	v.SetDefault("ui.start_revealed", false)
	v.SetDefault("ui.width", 40)
	v.SetDefault("keys.reveal", []string{"ctrl+r"})
	v.SetDefault("keys.submit", []string{"enter"})
	v.SetDefault("keys.clear", []string{"ctrl+u"})
	v.SetDefault("keys.kill", []string{"ctrl+k"})
	v.SetDefault("keys.quit", []string{"esc", "ctrl+c"})
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "state", "pwfield", "pwfield.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.max_size_mb", 5)
	v.SetDefault("log.max_backups", 3)
}

// Load reads configuration from file and env. Env var overrides use prefix
// PWFIELD_. Flags in fs, when non-nil, override both; see BindFlags.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("PWFIELD_CONFIG")
	if fs != nil {
		if f := fs.Lookup("config"); f != nil && f.Changed {
			cfgPath = f.Value.String()
		}
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "pwfield"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PWFIELD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// a missing default file is fine; an explicit one must exist
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if fs != nil {
		if err := bindFlags(v, fs); err != nil {
			return Config{}, err
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// BindFlags registers the command line flags Load understands.
func BindFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a TOML config file")
	fs.String("title", "", "label shown above the field")
	fs.Bool("reveal", false, "start with the password visible")
	fs.String("log-path", "", "log file (empty keeps the configured path)")
	fs.String("log-level", "", "debug, info, warn or error")
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	pairs := map[string]string{
		"ui.title":          "title",
		"ui.start_revealed": "reveal",
		"log.path":          "log-path",
		"log.level":         "log-level",
	}
	for key, name := range pairs {
		f := fs.Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Validate reports settings the field cannot work with.
func (c Config) Validate() error {
	if utf8.RuneCountInString(c.UI.MaskChar) != 1 {
		return fmt.Errorf("ui.mask_char must be a single character, got %q", c.UI.MaskChar)
	}
	if c.UI.Width < MinWidth {
		return fmt.Errorf("ui.width must be at least %d, got %d", MinWidth, c.UI.Width)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q not recognised", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("log.format %q not recognised", c.Log.Format)
	}
	for name, keys := range map[string][]string{
		"reveal": c.Keys.Reveal,
		"submit": c.Keys.Submit,
		"quit":   c.Keys.Quit,
	} {
		if len(keys) == 0 {
			return fmt.Errorf("keys.%s needs at least one key", name)
		}
	}
	return nil
}
