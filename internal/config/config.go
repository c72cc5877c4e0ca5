// Package config loads listgen settings from a YAML file and LISTGEN_*
// environment variables through viper.
package config

import (
	"errors"
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/spf13/viper"

	"github.com/goliatone/go-listgen/pkg/model"
	"github.com/goliatone/go-listgen/pkg/render"
)

// EnvPrefix prefixes every environment override (LISTGEN_ADDR, ...).
const EnvPrefix = "LISTGEN"

// Config holds the resolved CLI settings.
type Config struct {
	Addr             string      `mapstructure:"addr"`
	Dataset          string      `mapstructure:"dataset"`
	URLPrefix        string      `mapstructure:"url_prefix"`
	Role             string      `mapstructure:"role"`
	RoleHeader       string      `mapstructure:"role_header"`
	Renderer         string      `mapstructure:"renderer"`
	Document         bool        `mapstructure:"document"`
	AlignActionCells bool        `mapstructure:"align_action_cells"`
	TruncateLength   int         `mapstructure:"truncate_length"`
	Log              LogConfig   `mapstructure:"log"`
	Theme            ThemeConfig `mapstructure:"theme"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ThemeConfig feeds the document layout of the HTML renderer.
type ThemeConfig struct {
	Name           string            `mapstructure:"name"`
	Variant        string            `mapstructure:"variant"`
	Stylesheet     string            `mapstructure:"stylesheet"`
	IconStylesheet string            `mapstructure:"icon_stylesheet"`
	CSSVars        map[string]string `mapstructure:"css_vars"`
}

// New returns a viper instance with defaults and environment binding. An
// empty path searches ./listgen.yaml and tolerates its absence.
func New(path string) *viper.Viper {
	v := viper.New()
	v.SetDefault("addr", ":8080")
	v.SetDefault("dataset", "")
	v.SetDefault("url_prefix", "")
	v.SetDefault("role", "")
	v.SetDefault("role_header", "X-Listgen-Role")
	v.SetDefault("renderer", "vanilla")
	v.SetDefault("document", false)
	v.SetDefault("align_action_cells", false)
	v.SetDefault("truncate_length", render.DefaultTruncateLength)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("theme.name", "")
	v.SetDefault("theme.variant", "")
	v.SetDefault("theme.stylesheet", "")
	v.SetDefault("theme.icon_stylesheet", "")
	v.SetDefault("theme.css_vars", map[string]string{})

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("listgen")
		v.AddConfigPath(".")
	}
	return v
}

// Load reads the config file (if any) and decodes the merged settings.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		return Config{}, errors.New("config: viper instance is nil")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))
	return cfg, nil
}

// Viewer returns the configured principal.
func (c Config) Viewer() model.Viewer {
	return model.Viewer{Role: strings.TrimSpace(c.Role)}
}

// RenderOptions maps the settings onto renderer options.
func (c Config) RenderOptions() render.RenderOptions {
	return render.RenderOptions{
		Viewer:           c.Viewer(),
		TruncateLength:   c.TruncateLength,
		AlignActionCells: c.AlignActionCells,
		Document:         c.Document,
		Theme:            c.Theme.RendererConfig(),
		Stylesheet:       c.Theme.Stylesheet,
		IconStylesheet:   c.Theme.IconStylesheet,
	}
}

// RendererConfig converts the theme section into a go-theme renderer config.
// It returns nil when no theme is configured.
func (t ThemeConfig) RendererConfig() *theme.RendererConfig {
	if t.Name == "" && t.Variant == "" && len(t.CSSVars) == 0 {
		return nil
	}
	assets := map[string]string{
		"list.stylesheet":  t.Stylesheet,
		"icons.stylesheet": t.IconStylesheet,
	}
	vars := make(map[string]string, len(t.CSSVars))
	for key, value := range t.CSSVars {
		vars[key] = value
	}
	return &theme.RendererConfig{
		Theme:   t.Name,
		Variant: t.Variant,
		CSSVars: vars,
		AssetURL: func(key string) string {
			return assets[key]
		},
	}
}
