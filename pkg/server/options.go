package server

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-listgen/pkg/model"
	"github.com/goliatone/go-listgen/pkg/render"
)

// Logger is the logging surface used by the handler. *zap.SugaredLogger
// satisfies it.
type Logger interface {
	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})
}

// ViewerFunc resolves the principal a request renders for.
type ViewerFunc func(r *http.Request) model.Viewer

// GuardFunc rejects requests by returning an error. Errors implementing
// HTTPError pick the response status; anything else answers 403.
type GuardFunc func(r *http.Request) error

type Options struct {
	// URLPrefix overrides the dataset url_prefix as the route root.
	URLPrefix       string
	DefaultRenderer string
	FormatParam     string
	Viewer          ViewerFunc
	Guard           GuardFunc
	Logger          Logger
	// Render seeds every render call; Viewer is replaced per request.
	Render render.RenderOptions
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		DefaultRenderer: "vanilla",
		FormatParam:     "format",
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if strings.TrimSpace(opts.DefaultRenderer) == "" {
		opts.DefaultRenderer = "vanilla"
	}
	if strings.TrimSpace(opts.FormatParam) == "" {
		opts.FormatParam = "format"
	}
	if opts.Viewer == nil {
		opts.Viewer = AnonymousViewer
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop().Sugar()
	}
	return opts
}

func WithURLPrefix(prefix string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.URLPrefix = prefix
	}
}

func WithDefaultRenderer(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DefaultRenderer = name
	}
}

func WithFormatParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.FormatParam = name
	}
}

func WithViewer(fn ViewerFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Viewer = fn
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithLogger(logger Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}

func WithRenderOptions(opts render.RenderOptions) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Render = opts
	}
}

// AnonymousViewer renders every request for the anonymous principal.
func AnonymousViewer(*http.Request) model.Viewer {
	return model.Anonymous()
}

// HeaderViewer reads the viewer role from the named request header.
func HeaderViewer(header string) ViewerFunc {
	return func(r *http.Request) model.Viewer {
		if r == nil {
			return model.Anonymous()
		}
		return model.Viewer{Role: strings.TrimSpace(r.Header.Get(header))}
	}
}

// StaticViewer renders every request for the same principal.
func StaticViewer(viewer model.Viewer) ViewerFunc {
	return func(*http.Request) model.Viewer {
		return viewer
	}
}
