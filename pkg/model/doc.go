// Package model defines the typed listing consumed by renderers. A Listing is
// a title plus an ordered slice of Rows; each Row carries optional facets
// (Headers, Columns, Actions, AdminActions) whose presence, not content,
// decides what a renderer emits. A nil facet is "not defined"; an empty but
// non-nil slice is defined and renders as an empty cell. The Viewer passed to
// renderers replaces any ambient session state: the zero Viewer is the
// anonymous, non-admin principal.
//
// The label helpers mirror the naming conventions used when listings are
// projected from records: attribute names such as `genus_id` or
// `species_list` become human headers, and the default read/update/delete
// actions point at `<prefix>/<model>/<verb>/<id>`.
package model
