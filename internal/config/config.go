package config

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bytesize/bytesize"
	"bytesize/internal/dirs"
)

// EnvPrefix prefixes every environment variable the tool reads.
const EnvPrefix = "BYTESIZE"

// flagKeys maps Viper keys to the flag names that may override them.
// --limit is not bound: Viper reads unknown flag types through their
// rounded String form, so the sum command consults that flag itself.
var flagKeys = map[string]string{
	"format":     "format",
	"align":      "align",
	"width":      "width",
	"fill":       "fill",
	"log.level":  "log-level",
	"log.format": "log-format",
}

type Config struct {
	Format bytesize.Format   `mapstructure:"format"`
	Align  bytesize.Align    `mapstructure:"align"`
	Width  int               `mapstructure:"width"`
	Fill   string            `mapstructure:"fill"`
	Limit  bytesize.ByteSize `mapstructure:"limit"`
	Log    Log               `mapstructure:"log"`
}

type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func (c *Config) ToDict() *zerolog.Event {
	return zerolog.Dict().
		Str("format", c.Format.String()).
		Str("align", c.Align.String()).
		Int("width", c.Width).
		Str("fill", c.Fill).
		Uint64("limit", c.Limit.Uint64()).
		Dict("log", zerolog.Dict().Str("level", c.Log.Level).Str("format", c.Log.Format))
}

// Settings returns c keyed the way a config file spells it.
func (c *Config) Settings() map[string]any {
	return map[string]any{
		"format": c.Format.String(),
		"align":  c.Align.String(),
		"width":  c.Width,
		"fill":   c.Fill,
		"limit":  c.Limit.String(),
		"log": map[string]any{
			"level":  c.Log.Level,
			"format": c.Log.Format,
		},
	}
}

// FillRune returns the padding character.
func (c *Config) FillRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Fill)
	return r
}

func (c *Config) validate() error {
	if c.Width < 0 || c.Width > 256 {
		return fmt.Errorf("width must be between 0 and 256, got %d", c.Width)
	}

	if utf8.RuneCountInString(c.Fill) != 1 {
		return fmt.Errorf("fill must be a single character, got %q", c.Fill)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log config validation failed: %v", err)
	}

	return nil
}

func (c *Log) validate() error {
	if _, err := zerolog.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("invalid level %q", c.Level)
	}

	switch strings.ToLower(c.Format) {
	case "json", "pretty":
	default:
		return fmt.Errorf("invalid format %q (valid: json|pretty)", c.Format)
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("format", bytesize.FormatBinary.String())
	v.SetDefault("align", "right")
	v.SetDefault("width", 0)
	v.SetDefault("fill", " ")
	v.SetDefault("limit", 0)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "pretty")
}

// Defaults returns the configuration used when nothing overrides it.
func Defaults() Config {
	v := viper.New()
	setDefaults(v)
	c, err := Load(v)
	if err != nil {
		panic(fmt.Sprintf("invalid default config: %v", err))
	}
	return c
}

// Init wires v with defaults, the config file, a local .env file, BYTESIZE_*
// environment variables and the flags of cmd, in increasing precedence.
// A missing config file is not an error unless it was named explicitly
// with --config.
func Init(v *viper.Viper, cmd *cobra.Command) error {
	// Variables already set in the environment win over .env.
	_ = godotenv.Load()

	setDefaults(v)

	explicit := ""
	if f := cmd.Flags().Lookup("config"); f != nil {
		explicit = f.Value.String()
	}
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		if cfgDir, err := dirs.ConfigDir(); err == nil {
			v.AddConfigPath(cfgDir)
		}
		v.SetConfigName("config") // supports config.{yaml|yml|json|toml}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	for key, name := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	return nil
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		DecodeHook(),
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if err := v.Unmarshal(&c, hook); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := c.validate(); err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}

	return c, nil
}

var (
	byteSizeType = reflect.TypeOf(bytesize.ByteSize(0))
	formatType   = reflect.TypeOf(bytesize.Format(0))
	alignType    = reflect.TypeOf(bytesize.Align(0))
)

// DecodeHook converts config values into ByteSize, Format and Align. Sizes
// accept anything bytesize.Parse does as well as non-negative integers.
func DecodeHook() mapstructure.DecodeHookFuncType {
	return func(_ reflect.Type, to reflect.Type, data any) (any, error) {
		switch to {
		case byteSizeType:
			return decodeByteSize(data)
		case formatType:
			if s, ok := data.(string); ok {
				return bytesize.ParseFormat(s)
			}
		case alignType:
			if s, ok := data.(string); ok {
				return bytesize.ParseAlign(s)
			}
		}
		return data, nil
	}
}

func decodeByteSize(data any) (any, error) {
	switch v := data.(type) {
	case string:
		return bytesize.Parse(v)
	case int:
		return signedSize(int64(v))
	case int32:
		return signedSize(int64(v))
	case int64:
		return signedSize(v)
	case uint:
		return bytesize.ByteSize(v), nil
	case uint32:
		return bytesize.ByteSize(v), nil
	case uint64:
		return bytesize.ByteSize(v), nil
	case float64:
		// JSON config files decode every number as float64.
		if v < 0 || v != math.Trunc(v) || v >= 1<<64 {
			return nil, fmt.Errorf("size %v: %w", v, bytesize.ErrTypeMismatch)
		}
		return bytesize.ByteSize(v), nil
	case bytesize.ByteSize:
		return v, nil
	default:
		return nil, fmt.Errorf("%T: %w", data, bytesize.ErrTypeMismatch)
	}
}

func signedSize(n int64) (bytesize.ByteSize, error) {
	if n < 0 {
		return 0, fmt.Errorf("negative size %d: %w", n, bytesize.ErrTypeMismatch)
	}
	return bytesize.ByteSize(n), nil
}
