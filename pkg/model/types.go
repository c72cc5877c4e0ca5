package model

import "fmt"

// RoleAdmin is the viewer role that unlocks admin actions.
const RoleAdmin = "admin"

// Action is a (target URL, icon class) pair rendered as a clickable icon.
type Action struct {
	URL  string `json:"url" yaml:"url"`
	Icon string `json:"icon" yaml:"icon"`
}

// Cell is a single data value inside a row.
type Cell struct {
	Value any `json:"value,omitempty"`
	// SelfReferenceURL makes the cell text a link, usually to the detail view
	// of the referenced entity.
	SelfReferenceURL string `json:"selfReferenceUrl,omitempty"`
	// AddActionURL appends a small add icon linking to this target.
	AddActionURL string `json:"addActionUrl,omitempty"`
}

// Text returns the string coercion of the cell value.
func (c Cell) Text() string {
	return Stringify(c.Value)
}

// Row describes one table row. Facets left nil are treated as "not defined".
type Row struct {
	// Item is rendered through its string coercion when Columns is nil.
	Item any `json:"item,omitempty"`
	// Headers only matter on the first row of a listing.
	Headers []string `json:"headers,omitempty"`
	// HeaderKeys optionally holds translation keys parallel to Headers.
	HeaderKeys   []string `json:"headerKeys,omitempty"`
	Columns      []Cell   `json:"columns,omitempty"`
	Actions      []Action `json:"actions,omitempty"`
	AdminActions []Action `json:"adminActions,omitempty"`
}

func (r Row) HasHeaders() bool      { return r.Headers != nil }
func (r Row) HasColumns() bool      { return r.Columns != nil }
func (r Row) HasActions() bool      { return r.Actions != nil }
func (r Row) HasAdminActions() bool { return r.AdminActions != nil }

// Text returns the string coercion of the row item, used by the fallback path.
func (r Row) Text() string {
	return Stringify(r.Item)
}

// Listing is the renderer input: a title and its rows in display order.
type Listing struct {
	Title string `json:"title"`
	Rows  []Row  `json:"rows"`
}

// AnyActions reports whether at least one row defines Actions.
func (l Listing) AnyActions() bool {
	for _, row := range l.Rows {
		if row.HasActions() {
			return true
		}
	}
	return false
}

// AnyAdminActions reports whether at least one row defines AdminActions.
func (l Listing) AnyAdminActions() bool {
	for _, row := range l.Rows {
		if row.HasAdminActions() {
			return true
		}
	}
	return false
}

// Headers returns the headers attached to the first row, or nil.
func (l Listing) Headers() []string {
	if len(l.Rows) == 0 {
		return nil
	}
	return l.Rows[0].Headers
}

// Viewer is the principal a listing is rendered for.
type Viewer struct {
	ID   string `json:"id,omitempty"`
	Role string `json:"role,omitempty"`
}

// Anonymous returns the unauthenticated viewer.
func Anonymous() Viewer {
	return Viewer{}
}

// IsAdmin reports whether the viewer may see admin actions.
func (v Viewer) IsAdmin() bool {
	return v.Role == RoleAdmin
}

// Stringify coerces arbitrary values to display text. Nil becomes the empty
// string; Stringer and error values use their own representation.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	default:
		return fmt.Sprint(v)
	}
}
