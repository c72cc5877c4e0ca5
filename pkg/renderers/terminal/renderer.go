// Package terminal renders listings as aligned plain-text tables for CLI
// output. It follows the same column gating rules as the HTML renderer.
package terminal

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/goliatone/go-listgen/pkg/model"
	"github.com/goliatone/go-listgen/pkg/render"
)

const (
	addMarker = "[+]"
	// cellTail marks a cell cut to the column width.
	cellTail = "…"
)

// Renderer implements render.Renderer for terminals.
type Renderer struct {
	separator   string
	maxColWidth uint
	plain       bool
	actionURLs  bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a terminal renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{separator: "  "}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "terminal"
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render writes the title followed by the table. Only the first row's headers
// produce a header line; admin actions are listed only for admin viewers.
func (r *Renderer) Render(ctx context.Context, listing model.Listing, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("terminal: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	listing = render.LocalizeListing(listing, opts)

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	if r.plain {
		bold.DisableColor()
		faint.DisableColor()
	}

	isAdmin := opts.Viewer.IsAdmin()
	showActions := listing.AnyActions()
	showAdmin := isAdmin && listing.AnyAdminActions()
	limit := opts.Truncation()

	tbl := uitable.New()
	tbl.Separator = r.separator

	for i, row := range listing.Rows {
		if i == 0 && row.HasHeaders() {
			head := []any{bold.Sprint("#")}
			for _, header := range row.Headers {
				head = append(head, bold.Sprint(header))
			}
			if showActions {
				head = append(head, "")
			}
			if showAdmin {
				head = append(head, "")
			}
			tbl.AddRow(head...)
		}

		cells := []any{fmt.Sprintf("%d", i+1)}
		if row.HasColumns() {
			for _, cell := range row.Columns {
				text := r.fit(render.Ellipsize(cell.Text(), limit))
				if cell.AddActionURL != "" {
					text += " " + faint.Sprint(addMarker)
				}
				cells = append(cells, text)
			}
		} else {
			cells = append(cells, r.fit(row.Text()))
		}

		switch {
		case row.HasActions():
			cells = append(cells, r.actions(row.Actions))
		case opts.AlignActionCells && showActions:
			cells = append(cells, "")
		}
		switch {
		case row.HasAdminActions() && isAdmin:
			cells = append(cells, r.actions(row.AdminActions))
		case opts.AlignActionCells && showAdmin:
			cells = append(cells, "")
		}
		tbl.AddRow(cells...)
	}

	var buf bytes.Buffer
	buf.WriteString(bold.Sprint(listing.Title))
	buf.WriteByte('\n')
	if len(listing.Rows) > 0 {
		buf.WriteString(tbl.String())
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// fit keeps a cell on one line and within the column width. Width is
// measured in terminal columns, so wide runes count twice.
func (r *Renderer) fit(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	if r.maxColWidth == 0 || ansi.PrintableRuneWidth(text) <= int(r.maxColWidth) {
		return text
	}
	return truncate.StringWithTail(text, r.maxColWidth, cellTail)
}

func (r *Renderer) actions(actions []model.Action) string {
	parts := make([]string, 0, len(actions))
	for _, action := range actions {
		if r.actionURLs {
			parts = append(parts, action.URL)
			continue
		}
		parts = append(parts, actionLabel(action))
	}
	return strings.Join(parts, " ")
}

// actionLabel turns an icon class such as "bi bi-pencil" into "pencil".
func actionLabel(action model.Action) string {
	fields := strings.Fields(action.Icon)
	if len(fields) == 0 {
		return action.URL
	}
	label := fields[len(fields)-1]
	if idx := strings.Index(label, "-"); idx >= 0 && idx < len(label)-1 {
		label = label[idx+1:]
	}
	return label
}
