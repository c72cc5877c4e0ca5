// Package gotemplate backs template.TemplateRenderer with a pongo2 template
// set. Templates are looked up by path, parsed once and cached.
package gotemplate

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-listgen/pkg/render/template"
)

var errNilEngine = errors.New("gotemplate: engine is nil")

// Option configures an Engine.
type Option func(*settings)

type settings struct {
	dir     string
	files   fs.FS
	ext     string
	funcs   map[string]any
	globals map[string]any
}

// WithBaseDir loads templates from a directory on disk. It may be combined
// with WithFS; the directory is searched first.
func WithBaseDir(dir string) Option {
	return func(s *settings) { s.dir = strings.TrimSpace(dir) }
}

// WithFS loads templates from files.
func WithFS(files fs.FS) Option {
	return func(s *settings) { s.files = files }
}

// WithExtension sets the suffix appended to template names that lack it.
// Defaults to ".tpl".
func WithExtension(ext string) Option {
	return func(s *settings) {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			return
		}
		s.ext = "." + strings.TrimPrefix(ext, ".")
	}
}

// WithTemplateFunc exposes funcs to templates. pongo2 filter functions are
// registered as filters; any other func becomes a callable global.
func WithTemplateFunc(funcs map[string]any) Option {
	return func(s *settings) { s.funcs = mergeInto(s.funcs, funcs) }
}

// WithGlobalData seeds values visible to every template.
func WithGlobalData(data map[string]any) Option {
	return func(s *settings) { s.globals = mergeInto(s.globals, data) }
}

// WithGoTemplateOptions accepts go-template engine options so callers written
// against that engine keep compiling. The pongo2 set ignores them.
func WithGoTemplateOptions(_ ...gotemplatepkg.Option) Option {
	return func(*settings) {}
}

// Engine implements template.TemplateRenderer.
type Engine struct {
	set *pongo2.TemplateSet
	ext string

	// mu guards cache and set.Globals.
	mu    sync.RWMutex
	cache map[string]*pongo2.Template
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New builds an Engine. At least one of WithBaseDir or WithFS is required.
func New(options ...Option) (*Engine, error) {
	s := settings{ext: ".tpl"}
	for _, opt := range options {
		if opt != nil {
			opt(&s)
		}
	}

	var loaders []pongo2.TemplateLoader
	if s.dir != "" {
		local, err := pongo2.NewLocalFileSystemLoader(s.dir)
		if err != nil {
			return nil, fmt.Errorf("gotemplate: template dir %q: %w", s.dir, err)
		}
		loaders = append(loaders, local)
	}
	if s.files != nil {
		loaders = append(loaders, pongo2.NewFSLoader(s.files))
	}
	if len(loaders) == 0 {
		return nil, errors.New("gotemplate: need to provide either base dir or fs.FS")
	}

	registerBuiltinFilters()

	e := &Engine{
		set:   pongo2.NewSet("listgen", loaders...),
		ext:   s.ext,
		cache: map[string]*pongo2.Template{},
	}
	if err := e.GlobalContext(s.globals); err != nil {
		return nil, fmt.Errorf("gotemplate: global data: %w", err)
	}
	for name, fn := range s.funcs {
		if err := e.addFunc(name, fn); err != nil {
			return nil, fmt.Errorf("gotemplate: template func %q: %w", name, err)
		}
	}
	return e, nil
}

// Render executes name as inline template source when it contains template
// tags, and as a template path otherwise.
func (e *Engine) Render(name string, data any, out ...io.Writer) (string, error) {
	if strings.Contains(name, "{{") || strings.Contains(name, "{%") {
		return e.RenderString(name, data, out...)
	}
	return e.RenderTemplate(name, data, out...)
}

// RenderTemplate executes the template at name. The engine extension is
// appended when name does not already end with it.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errNilEngine
	}
	if !strings.HasSuffix(name, e.ext) {
		name += e.ext
	}
	tmpl, err := e.lookup(name)
	if err != nil {
		return "", err
	}
	result, err := e.exec(tmpl, data)
	if err != nil {
		return "", fmt.Errorf("gotemplate: execute template %q: %w", name, err)
	}
	return result, copyTo(out, result)
}

// RenderString parses and executes source. The parsed template is not cached.
func (e *Engine) RenderString(source string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errNilEngine
	}
	tmpl, err := e.set.FromString(source)
	if err != nil {
		return "", fmt.Errorf("gotemplate: parse template string: %w", err)
	}
	result, err := e.exec(tmpl, data)
	if err != nil {
		return "", fmt.Errorf("gotemplate: execute template string: %w", err)
	}
	return result, copyTo(out, result)
}

// RegisterFilter adds a filter. pongo2 filters are process wide, so a name
// that is already taken is an error.
func (e *Engine) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	name = strings.TrimSpace(name)
	if name == "" || fn == nil {
		return errors.New("gotemplate: filter name and function required")
	}
	if pongo2.FilterExists(name) {
		return fmt.Errorf("gotemplate: filter %q already exists", name)
	}
	return pongo2.RegisterFilter(name, adaptFilter(name, fn))
}

// GlobalContext merges data into the values visible to every template.
func (e *Engine) GlobalContext(data any) error {
	if e == nil || e.set == nil {
		return errNilEngine
	}
	if data == nil {
		return nil
	}
	values, err := toContext(data)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.set.Globals == nil {
		e.set.Globals = pongo2.Context{}
	}
	e.set.Globals.Update(values)
	return nil
}

func (e *Engine) addFunc(name string, fn any) error {
	name = strings.TrimSpace(name)
	if name == "" || fn == nil {
		return nil
	}
	if filter, ok := fn.(pongo2.FilterFunction); ok {
		if pongo2.FilterExists(name) {
			return nil
		}
		return pongo2.RegisterFilter(name, filter)
	}
	if !isFunc(fn) {
		return fmt.Errorf("expected a function, got %T", fn)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.set.Globals == nil {
		e.set.Globals = pongo2.Context{}
	}
	e.set.Globals[name] = fn
	return nil
}

func (e *Engine) lookup(path string) (*pongo2.Template, error) {
	e.mu.RLock()
	tmpl := e.cache[path]
	e.mu.RUnlock()
	if tmpl != nil {
		return tmpl, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if tmpl := e.cache[path]; tmpl != nil {
		return tmpl, nil
	}
	tmpl, err := e.set.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: load template %q: %w", path, err)
	}
	e.cache[path] = tmpl
	return tmpl, nil
}

func (e *Engine) exec(tmpl *pongo2.Template, data any) (string, error) {
	ctx, err := toContext(data)
	if err != nil {
		return "", fmt.Errorf("convert data: %w", err)
	}

	var buf bytes.Buffer
	e.mu.RLock()
	err = tmpl.ExecuteWriter(ctx, &buf)
	e.mu.RUnlock()
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func copyTo(out []io.Writer, result string) error {
	for _, w := range out {
		if w == nil {
			continue
		}
		if _, err := io.WriteString(w, result); err != nil {
			return err
		}
	}
	return nil
}

func mergeInto(dst, src map[string]any) map[string]any {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for key, value := range src {
		dst[strings.TrimSpace(key)] = value
	}
	return dst
}
