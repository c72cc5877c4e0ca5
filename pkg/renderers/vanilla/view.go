package vanilla

import (
	"github.com/goliatone/go-listgen/pkg/model"
	"github.com/goliatone/go-listgen/pkg/render"
)

// listView is the template payload. Presence flags are computed here because
// the template engine cannot tell a nil slice from an empty one.
type listView struct {
	Title            string     `json:"title"`
	Rows             []rowView  `json:"rows"`
	ShowActions      bool       `json:"show_actions"`
	ShowAdminActions bool       `json:"show_admin_actions"`
	AlignActionCells bool       `json:"align_action_cells"`
	TruncateAt       int        `json:"truncate_at"`
	Viewer           viewerView `json:"viewer"`
	Classes          Classes    `json:"classes"`
}

type viewerView struct {
	ID      string `json:"id"`
	Role    string `json:"role"`
	IsAdmin bool   `json:"is_admin"`
}

type rowView struct {
	HasHeaders      bool           `json:"has_headers"`
	Headers         []string       `json:"headers"`
	HasColumns      bool           `json:"has_columns"`
	Cells           []cellView     `json:"cells"`
	Text            string         `json:"text"`
	HasActions      bool           `json:"has_actions"`
	Actions         []model.Action `json:"actions"`
	HasAdminActions bool           `json:"has_admin_actions"`
	AdminActions    []model.Action `json:"admin_actions"`
}

type cellView struct {
	Text             string `json:"text"`
	SelfReferenceURL string `json:"self_reference_url"`
	AddActionURL     string `json:"add_action_url"`
}

func buildListView(listing model.Listing, opts render.RenderOptions, classes Classes) listView {
	isAdmin := opts.Viewer.IsAdmin()
	view := listView{
		Title:            listing.Title,
		Rows:             make([]rowView, 0, len(listing.Rows)),
		ShowActions:      listing.AnyActions(),
		ShowAdminActions: isAdmin && listing.AnyAdminActions(),
		AlignActionCells: opts.AlignActionCells,
		TruncateAt:       opts.Truncation(),
		Viewer: viewerView{
			ID:      opts.Viewer.ID,
			Role:    opts.Viewer.Role,
			IsAdmin: isAdmin,
		},
		Classes: classes,
	}

	for _, row := range listing.Rows {
		rv := rowView{
			HasHeaders:      row.HasHeaders(),
			Headers:         row.Headers,
			HasColumns:      row.HasColumns(),
			Text:            row.Text(),
			HasActions:      row.HasActions(),
			Actions:         row.Actions,
			HasAdminActions: row.HasAdminActions(),
		}
		if isAdmin {
			rv.AdminActions = row.AdminActions
		}
		if row.HasColumns() {
			rv.Cells = make([]cellView, 0, len(row.Columns))
			for _, cell := range row.Columns {
				rv.Cells = append(rv.Cells, cellView{
					Text:             cell.Text(),
					SelfReferenceURL: cell.SelfReferenceURL,
					AddActionURL:     cell.AddActionURL,
				})
			}
		}
		view.Rows = append(view.Rows, rv)
	}
	return view
}

type documentView struct {
	Lang           string `json:"lang"`
	Title          string `json:"title"`
	Content        string `json:"content"`
	Stylesheet     string `json:"stylesheet"`
	IconStylesheet string `json:"icon_stylesheet"`
	ThemeName      string `json:"theme_name"`
	ThemeVariant   string `json:"theme_variant"`
	CSSVarsStyle   string `json:"css_vars_style"`
	Container      string `json:"container"`
}

func buildDocumentView(title, content string, opts render.RenderOptions, classes Classes) documentView {
	doc := documentView{
		Lang:       firstNonEmpty(opts.Locale, "en"),
		Title:      title,
		Content:    content,
		Stylesheet: opts.Stylesheet,
		Container:  classes.Container,
	}

	var themeIcons string
	if cfg := opts.Theme; cfg != nil {
		doc.ThemeName = cfg.Theme
		doc.ThemeVariant = cfg.Variant
		doc.CSSVarsStyle = cssVarsStyle(cfg.CSSVars)
		if cfg.AssetURL != nil {
			themeIcons = cfg.AssetURL("icons.stylesheet")
			if doc.Stylesheet == "" {
				doc.Stylesheet = cfg.AssetURL("list.stylesheet")
			}
		}
	}
	doc.IconStylesheet = firstNonEmpty(opts.IconStylesheet, themeIcons, DefaultIconStylesheet)
	return doc
}
