package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/goliatone/go-listgen/internal/config"
	"github.com/goliatone/go-listgen/internal/logging"
	"github.com/goliatone/go-listgen/internal/prompt"
	"github.com/goliatone/go-listgen/pkg/dataset"
	"github.com/goliatone/go-listgen/pkg/render"
	"github.com/goliatone/go-listgen/pkg/renderers/terminal"
	"github.com/goliatone/go-listgen/pkg/renderers/vanilla"
)

// app carries state shared by the subcommands.
type app struct {
	out    io.Writer
	errOut io.Writer

	configPath string
	v          *viper.Viper
	cfg        config.Config
	logger     *zap.SugaredLogger
	driver     prompt.Driver
}

func newApp(out, errOut io.Writer) *app {
	return &app{out: out, errOut: errOut, driver: prompt.NewSurveyDriver()}
}

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"dataset":     "dataset",
	"addr":        "addr",
	"url-prefix":  "url_prefix",
	"role":        "role",
	"role-header": "role_header",
	"renderer":    "renderer",
	"document":    "document",
	"align":       "align_action_cells",
	"truncate":    "truncate_length",
	"log-level":   "log.level",
	"log-format":  "log.format",
}

func (a *app) load(cmd *cobra.Command) error {
	a.v = config.New(a.configPath)
	for flag, key := range flagKeys {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := a.v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind flag %s: %w", flag, err)
			}
		}
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(a.errOut, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

func (a *app) dataset() (*dataset.Dataset, error) {
	path := strings.TrimSpace(a.cfg.Dataset)
	if path == "" {
		return nil, fmt.Errorf("a dataset is required (--dataset or LISTGEN_DATASET)")
	}
	ds, err := dataset.LoadFile(path)
	if err != nil {
		return nil, err
	}
	a.logger.Debugf("loaded dataset %s with models %v", path, ds.Models())
	return ds, nil
}

func (a *app) registry(colored bool) (*render.Registry, error) {
	var htmlOpts []vanilla.Option
	if a.cfg.Theme.Stylesheet != "" {
		htmlOpts = append(htmlOpts, vanilla.WithStylesheet(a.cfg.Theme.Stylesheet))
	}
	html, err := vanilla.New(htmlOpts...)
	if err != nil {
		return nil, err
	}

	var textOpts []terminal.Option
	if !colored {
		textOpts = append(textOpts, terminal.WithoutColor())
	}

	registry := render.NewRegistry()
	if err := registry.Register(html); err != nil {
		return nil, err
	}
	if err := registry.Register(terminal.New(textOpts...)); err != nil {
		return nil, err
	}
	return registry, nil
}

// writeOutput writes data to path, or to the command output when path is empty.
func (a *app) writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := a.out.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	a.logger.Infof("written %s (%d bytes)", path, len(data))
	return nil
}

// parseRelated splits "id:attribute".
func parseRelated(raw string) (int, string, error) {
	idText, attribute, ok := strings.Cut(strings.TrimSpace(raw), ":")
	if !ok || strings.TrimSpace(attribute) == "" {
		return 0, "", fmt.Errorf("--related must look like <id>:<attribute>, got %q", raw)
	}
	id, err := strconv.Atoi(strings.TrimSpace(idText))
	if err != nil {
		return 0, "", fmt.Errorf("--related id %q: %w", idText, err)
	}
	return id, strings.TrimSpace(attribute), nil
}
