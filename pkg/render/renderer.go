package render

import (
	"context"

	"github.com/goliatone/go-listgen/pkg/model"
)

// Renderer converts a Listing into a byte representation (HTML, text, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, listing model.Listing, options RenderOptions) ([]byte, error)
}
