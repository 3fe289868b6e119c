package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI     UIConfig     `mapstructure:"ui"`
	Thread ThreadConfig `mapstructure:"thread"`
	Log    LogConfig    `mapstructure:"log"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	NarrowWidth       int    `mapstructure:"narrow_width"`
	TimeFormat        string `mapstructure:"time_format"`
	SearchFilter      bool   `mapstructure:"search_filter"`
	SearchMaxDistance int    `mapstructure:"search_max_distance"`
}

// ThreadConfig selects how messages are stored.
type ThreadConfig struct {
	PerConversation bool `mapstructure:"per_conversation"`
}

// LogConfig holds debug log settings.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Debug bool   `mapstructure:"debug"`
}

const envPrefix = "PARLEY"

// Dir returns the directory holding config.toml, honoring XDG_CONFIG_HOME.
func Dir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "parley"), nil
}

// Load reads configuration from file and env. An explicit path wins over
// PARLEY_CONFIG, which wins over the default config dir. A missing file at the
// default location is not an error. Env var overrides use prefix PARLEY_.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("ui.narrow_width", 80)
	v.SetDefault("ui.time_format", "15:04")
	v.SetDefault("ui.search_filter", false)
	v.SetDefault("ui.search_max_distance", 2)
	v.SetDefault("thread.per_conversation", false)
	v.SetDefault("log.path", filepath.Join(os.TempDir(), "parley-debug.log"))
	v.SetDefault("log.debug", false)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv(envPrefix + "_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else if dir, err := Dir(); err == nil {
		v.AddConfigPath(dir)
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
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

// Validate rejects settings the screen cannot render with.
func (c Config) Validate() error {
	if c.UI.NarrowWidth <= 0 {
		return fmt.Errorf("ui.narrow_width must be positive, got %d", c.UI.NarrowWidth)
	}
	if strings.TrimSpace(c.UI.TimeFormat) == "" {
		return errors.New("ui.time_format must not be empty")
	}
	if c.UI.SearchMaxDistance < 0 {
		return fmt.Errorf("ui.search_max_distance must not be negative, got %d", c.UI.SearchMaxDistance)
	}
	return nil
}
