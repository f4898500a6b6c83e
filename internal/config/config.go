// Package config loads application settings from an optional YAML file
// and CRAWLER_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/samdwyer/crawler/internal/game"
	"github.com/samdwyer/crawler/internal/world"
)

// EnvPrefix prefixes every environment override, e.g. CRAWLER_GAME_PLAYER_NAME.
const EnvPrefix = "CRAWLER"

// Config is the full application configuration.
type Config struct {
	Game      GameConfig      `mapstructure:"game"`
	Log       LogConfig       `mapstructure:"log"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// GameConfig sets up every new run.
type GameConfig struct {
	PlayerName  string   `mapstructure:"player_name" validate:"required,max=32"`
	MapWidth    int      `mapstructure:"map_width" validate:"gt=0"`
	MapHeight   int      `mapstructure:"map_height" validate:"gt=0"`
	RoomWidth   int      `mapstructure:"room_width" validate:"gt=0"`
	RoomHeight  int      `mapstructure:"room_height" validate:"gt=0"`
	StartingKit []string `mapstructure:"starting_kit" validate:"dive,required"` // Catalog item IDs
}

// LogConfig selects zap's level, encoding and output file.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Format string `mapstructure:"format" validate:"omitempty,oneof=json console text"`
	File   string `mapstructure:"file"`  // The terminal belongs to the UI, so logs go to a file
	Debug  bool   `mapstructure:"debug"` // Development encoder and caller info
}

// TelemetryConfig controls OTLP trace export.
type TelemetryConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint" validate:"omitempty,url"`
	APIKey   string `mapstructure:"api_key" validate:"required_if=Enabled true"`
	Dataset  string `mapstructure:"dataset"`
}

// Load reads config from the given YAML file path. An empty path, or a
// path that does not exist, yields defaults plus environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	defaults := game.DefaultConfig()
	v.SetDefault("game.player_name", defaults.PlayerName)
	v.SetDefault("game.map_width", world.DefaultWidth)
	v.SetDefault("game.map_height", world.DefaultHeight)
	v.SetDefault("game.room_width", world.DefaultRoomWidth)
	v.SetDefault("game.room_height", world.DefaultRoomHeight)
	v.SetDefault("game.starting_kit", []string{})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.file", "crawler.log")
	v.SetDefault("log.debug", false)
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.endpoint", "https://api.honeycomb.io")
	v.SetDefault("telemetry.api_key", "")
	v.SetDefault("telemetry.dataset", "crawler")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every section against its validate tags.
func (c *Config) Validate() error {
	err := newValidator().Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validate config: %w", err)
	}
	problems := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		problems = append(problems, describe(e))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
}

// newValidator reports fields by their YAML keys, e.g. game.map_width.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func describe(e validator.FieldError) string {
	// Namespace starts with the root type name.
	_, key, _ := strings.Cut(e.Namespace(), ".")
	switch e.Tag() {
	case "required", "required_if":
		return key + " is required"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", key, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", key, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", key, e.Param())
	case "url":
		return key + " must be a URL"
	default:
		return key + " is invalid"
	}
}

// GameConfig converts the game section into the game package's settings.
func (c *Config) GameConfig() game.Config {
	kit := make([]string, len(c.Game.StartingKit))
	copy(kit, c.Game.StartingKit)
	return game.Config{
		PlayerName:  c.Game.PlayerName,
		MapWidth:    c.Game.MapWidth,
		MapHeight:   c.Game.MapHeight,
		RoomWidth:   c.Game.RoomWidth,
		RoomHeight:  c.Game.RoomHeight,
		StartingKit: kit,
	}
}

// ExportHeaders returns the OTLP headers for the configured Honeycomb dataset.
func (t TelemetryConfig) ExportHeaders() map[string]string {
	if t.APIKey == "" {
		return nil
	}
	return map[string]string{
		"x-honeycomb-team":    t.APIKey,
		"x-honeycomb-dataset": t.Dataset,
	}
}
