package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	wd, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load(New(""))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8080" || cfg.Renderer != "vanilla" || cfg.TruncateLength != 50 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.Log.Format != "console" || cfg.RoleHeader != "X-Listgen-Role" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.RenderOptions().Theme != nil {
		t.Fatalf("no theme configured")
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listgen.yaml")
	body := []byte(`
dataset: garden.yaml
role: admin
document: true
log:
  level: DEBUG
  format: logfmt
theme:
  name: acme
  variant: dark
  icon_stylesheet: /static/icons.css
  css_vars:
    --brand: "#123456"
`)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("LISTGEN_ADDR", "127.0.0.1:9000")
	t.Setenv("LISTGEN_LOG_FORMAT", "json")

	cfg, err := Load(New(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != "127.0.0.1:9000" || cfg.Log.Format != "json" || cfg.Log.Level != "debug" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.Dataset != "garden.yaml" || !cfg.Viewer().IsAdmin() {
		t.Fatalf("file values not applied: %+v", cfg)
	}

	opts := cfg.RenderOptions()
	if !opts.Document || opts.Theme == nil {
		t.Fatalf("unexpected render options %+v", opts)
	}
	if opts.Theme.Theme != "acme" || opts.Theme.Variant != "dark" {
		t.Fatalf("unexpected theme %+v", opts.Theme)
	}
	if diff := cmp.Diff(map[string]string{"--brand": "#123456"}, opts.Theme.CSSVars); diff != "" {
		t.Fatalf("css vars mismatch (-want +got):\n%s", diff)
	}
	if got := opts.Theme.AssetURL("icons.stylesheet"); got != "/static/icons.css" {
		t.Fatalf("unexpected icon asset %q", got)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(New(filepath.Join(t.TempDir(), "missing.yaml"))); err == nil {
		t.Fatalf("expected error for missing explicit config file")
	}
}
