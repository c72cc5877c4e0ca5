// Package listgen renders tabular list views from rows carrying optional
// headers, columns and actions.
package listgen

import (
	"context"
	"fmt"

	"github.com/goliatone/go-listgen/pkg/model"
	"github.com/goliatone/go-listgen/pkg/render"
	"github.com/goliatone/go-listgen/pkg/renderers/terminal"
	"github.com/goliatone/go-listgen/pkg/renderers/vanilla"
)

type (
	Listing       = model.Listing
	Row           = model.Row
	Cell          = model.Cell
	Action        = model.Action
	Viewer        = model.Viewer
	RenderOptions = render.RenderOptions
)

// NewRegistry returns a registry holding the HTML ("vanilla") and text
// ("terminal") renderers. options configure the HTML renderer.
func NewRegistry(options ...vanilla.Option) (*render.Registry, error) {
	html, err := vanilla.New(options...)
	if err != nil {
		return nil, err
	}
	registry := render.NewRegistry()
	if err := registry.Register(html); err != nil {
		return nil, err
	}
	if err := registry.Register(terminal.New()); err != nil {
		return nil, err
	}
	return registry, nil
}

// Render looks up rendererName in registry and renders listing with it.
func Render(ctx context.Context, registry *render.Registry, rendererName string, listing Listing, opts RenderOptions) ([]byte, error) {
	if registry == nil {
		return nil, fmt.Errorf("listgen: registry is nil")
	}
	renderer, err := registry.Get(rendererName)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, listing, opts)
}

// RenderHTML renders listing as an HTML fragment (or document when
// opts.Document is set) with the default HTML renderer.
func RenderHTML(ctx context.Context, listing Listing, opts RenderOptions) ([]byte, error) {
	html, err := vanilla.New()
	if err != nil {
		return nil, err
	}
	return html.Render(ctx, listing, opts)
}
