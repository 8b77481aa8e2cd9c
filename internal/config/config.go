package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"reflect"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const EnvPrefix = "CHEFS_MENU"

// Window is the initial window size.
type Window struct {
	Width  float32 `mapstructure:"width"`
	Height float32 `mapstructure:"height"`
}

// Colors holds the brand palette applied by the theme.
type Colors struct {
	Primary    color.NRGBA `mapstructure:"primary"`
	Secondary  color.NRGBA `mapstructure:"secondary"`
	Background color.NRGBA `mapstructure:"background"`
}

// Config is the merged application configuration.
type Config struct {
	Title    string `mapstructure:"title"`
	LogLevel string `mapstructure:"log_level"`
	JSONLogs bool   `mapstructure:"json_logs"`
	SeedDemo int    `mapstructure:"seed_demo"`
	LogoPath string `mapstructure:"logo_path"`
	Window   Window `mapstructure:"window"`
	Colors   Colors `mapstructure:"colors"`
}

// SetDefaults registers the built-in values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("title", "Chef's Menu")
	v.SetDefault("log_level", "info")
	v.SetDefault("json_logs", false)
	v.SetDefault("seed_demo", 0)
	v.SetDefault("logo_path", "")
	v.SetDefault("window.width", 480)
	v.SetDefault("window.height", 720)
	v.SetDefault("colors.primary", "#820b33")
	v.SetDefault("colors.secondary", "#6fa287")
	v.SetDefault("colors.background", "#0b8e70")
}

// BindEnv makes CHEFS_MENU_* variables override file values, e.g.
// CHEFS_MENU_COLORS_PRIMARY for colors.primary.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// LoadDotEnv reads KEY=VALUE pairs from the given files into the process
// environment. Missing files are skipped.
func LoadDotEnv(files ...string) error {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", file, err)
		}
	}
	return nil
}

// Load decodes the merged viper state into a Config.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	err := v.Unmarshal(&cfg, viper.DecodeHook(HexColorHookFunc()))
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if cfg.SeedDemo < 0 {
		return nil, fmt.Errorf("seed_demo must not be negative, got %d", cfg.SeedDemo)
	}
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return nil, fmt.Errorf("window size must be positive, got %.0fx%.0f", cfg.Window.Width, cfg.Window.Height)
	}

	return &cfg, nil
}

// HexColorHookFunc decodes "#rrggbb" or "#rrggbbaa" strings into
// color.NRGBA fields.
func HexColorHookFunc() mapstructure.DecodeHookFuncType {
	target := reflect.TypeOf(color.NRGBA{})
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String || to != target {
			return data, nil
		}
		return ParseHexColor(data.(string))
	}
}

// ParseHexColor parses a "#rrggbb" or "#rrggbbaa" string.
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: want #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}

	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	return color.NRGBA{
		R: uint8(value >> 24),
		G: uint8(value >> 16),
		B: uint8(value >> 8),
		A: uint8(value),
	}, nil
}
