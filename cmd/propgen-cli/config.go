package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/goliatone/go-propgen/pkg/render"
)

const (
	formatText = "text"
	formatJSON = "json"

	rendererAll = "all"
)

// Config is the resolved CLI configuration: flags override PROPGEN_*
// environment variables, which override the config file.
type Config struct {
	Source   string         `mapstructure:"source"`
	Renderer string         `mapstructure:"renderer"`
	Format   string         `mapstructure:"format"`
	Preset   string         `mapstructure:"preset"`
	Sanitize bool           `mapstructure:"sanitize"`
	Settings SettingsConfig `mapstructure:"settings"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Log      LogConfig      `mapstructure:"log"`
}

type SettingsConfig struct {
	ShowDefaults    bool `mapstructure:"showDefaults"`
	ExplicitBoolean bool `mapstructure:"explicitBoolean"`
	OptionsAPI      bool `mapstructure:"optionsApi"`
}

type HTTPConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// flagKeys binds flag names onto configuration keys.
var flagKeys = map[string]string{
	"source":           "source",
	"renderer":         "renderer",
	"format":           "format",
	"preset":           "preset",
	"sanitize":         "sanitize",
	"show-defaults":    "settings.showDefaults",
	"explicit-boolean": "settings.explicitBoolean",
	"options-api":      "settings.optionsApi",
	"http":             "http.enabled",
	"http-timeout":     "http.timeout",
	"log-level":        "log.level",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("renderer", "react")
	v.SetDefault("format", formatText)
	v.SetDefault("settings.showDefaults", false)
	v.SetDefault("settings.explicitBoolean", false)
	v.SetDefault("settings.optionsApi", false)
	v.SetDefault("http.enabled", false)
	v.SetDefault("http.timeout", 10*time.Second)
	v.SetDefault("log.level", "warn")
}

// newViper wires defaults, environment, an optional config file and flags.
// An explicit configPath must exist; the default propgen.yaml is optional.
func newViper(flags *pflag.FlagSet, configPath string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("PROPGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", configPath, err)
		}
	} else {
		v.SetConfigName("propgen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: read propgen.yaml: %w", err)
			}
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("config: bind flag %s: %w", name, err)
			}
		}
	}
	return v, nil
}

func loadConfig(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	cfg.Renderer = strings.ToLower(strings.TrimSpace(cfg.Renderer))
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	switch cfg.Format {
	case formatText, formatJSON:
	default:
		return Config{}, fmt.Errorf("config: unknown format %q", cfg.Format)
	}
	return cfg, nil
}

// InstanceSettings converts the configured toggles to renderer settings.
func (c Config) InstanceSettings() render.Settings {
	return render.Settings{
		{Key: render.SettingShowDefaults, Value: c.Settings.ShowDefaults},
		{Key: render.SettingExplicitBoolean, Value: c.Settings.ExplicitBoolean},
	}
}

// DefinitionSettings converts the configured Vue toggles.
func (c Config) DefinitionSettings() render.Settings {
	return render.Settings{
		{Key: render.SettingOptionsAPI, Value: c.Settings.OptionsAPI},
	}
}
