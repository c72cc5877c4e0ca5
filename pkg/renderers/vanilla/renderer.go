package vanilla

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-listgen/pkg/model"
	"github.com/goliatone/go-listgen/pkg/render"
	rendertemplate "github.com/goliatone/go-listgen/pkg/render/template"
	gotemplate "github.com/goliatone/go-listgen/pkg/render/template/gotemplate"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	templateFuncs    map[string]any
	classes          Classes
	policy           *bluemonday.Policy
	sanitize         bool
	stylesheet       string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The bundle
// must provide templates/list.tmpl and templates/document.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithTemplateFuncs registers extra helpers on the default template engine.
// Ignored when WithTemplateRenderer is used.
func WithTemplateFuncs(funcs map[string]any) Option {
	return func(cfg *config) {
		if len(funcs) == 0 {
			return
		}
		if cfg.templateFuncs == nil {
			cfg.templateFuncs = make(map[string]any, len(funcs))
		}
		for name, fn := range funcs {
			cfg.templateFuncs[name] = fn
		}
	}
}

// WithClasses overrides the chrome classes. Blank fields keep their defaults.
func WithClasses(classes Classes) Option {
	return func(cfg *config) {
		cfg.classes = classes.withDefaults()
	}
}

// WithPolicy replaces the sanitizer policy applied to list fragments.
func WithPolicy(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.policy = policy
			cfg.sanitize = true
		}
	}
}

// WithoutSanitizer disables fragment sanitization.
func WithoutSanitizer() Option {
	return func(cfg *config) {
		cfg.sanitize = false
	}
}

// WithStylesheet sets the default stylesheet linked by the document layout.
// RenderOptions.Stylesheet takes precedence.
func WithStylesheet(href string) Option {
	return func(cfg *config) {
		cfg.stylesheet = href
	}
}

// Renderer renders listings as an HTML table.
type Renderer struct {
	templates  rendertemplate.TemplateRenderer
	classes    Classes
	policy     *bluemonday.Policy
	stylesheet string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS: TemplatesFS(),
		classes:    DefaultClasses(),
		sanitize:   true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
			gotemplate.WithTemplateFunc(cfg.templateFuncs),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	r := &Renderer{
		templates:  renderer,
		classes:    cfg.classes,
		stylesheet: cfg.stylesheet,
	}
	if cfg.sanitize {
		r.policy = cfg.policy
		if r.policy == nil {
			r.policy = DefaultPolicy()
		}
	}
	return r, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the table markup for listing. With opts.Document set the
// fragment is wrapped in a standalone page.
func (r *Renderer) Render(ctx context.Context, listing model.Listing, opts render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, errors.New("vanilla renderer: template renderer is nil")
	}
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	localized := render.LocalizeListing(listing, opts)
	view := buildListView(localized, opts, r.classes)

	fragment, err := r.templates.RenderTemplate(listTemplate, view)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	if r.policy != nil {
		fragment = r.policy.Sanitize(fragment)
	}
	if !opts.Document {
		return []byte(fragment), nil
	}

	if opts.Stylesheet == "" {
		opts.Stylesheet = r.stylesheet
	}
	page, err := r.templates.RenderTemplate(documentTemplate, buildDocumentView(localized.Title, fragment, opts, r.classes))
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render document: %w", err)
	}
	return []byte(page), nil
}
