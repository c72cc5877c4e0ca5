// Package dataset loads small model/record collections from YAML or JSON and
// projects them into listings following the row conventions of the list
// renderer: `<model>_id` attributes resolve to the referenced record and
// `<child>_list` attributes expand to the child records pointing back at the
// parent.
package dataset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-listgen/pkg/model"
)

// DefaultName names datasets that do not declare one.
const DefaultName = "listgen"

// Dataset is an immutable, validated collection of models.
type Dataset struct {
	Name      string
	URLPrefix string

	order  []string
	models map[string]*Model
}

// Model describes one entity type and its records.
type Model struct {
	Name string
	// Attributes lists the displayed columns in order. Names ending in `_id`
	// reference another model, names ending in `_list` are one-to-many.
	Attributes []string
	// Display selects the attribute used when a record is shown inside
	// another model's row. Empty falls back to `name`, then "<model> <id>".
	Display        string
	DefaultActions bool
	Actions        []model.Action
	AdminActions   []model.Action
	Records        []Record

	index map[int]int
}

// Record is a single row of a model.
type Record struct {
	ID     int
	Values map[string]any
}

// Value returns the raw value stored for attribute.
func (r Record) Value(attribute string) any {
	if attribute == "id" {
		return r.ID
	}
	return r.Values[attribute]
}

// Models returns the model names in declaration order.
func (d *Dataset) Models() []string {
	if d == nil {
		return nil
	}
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Model looks up a model by name (case-insensitive).
func (d *Dataset) Model(name string) (*Model, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: %q", ErrModelNotFound, name)
	}
	m, ok := d.models[normaliseName(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrModelNotFound, name)
	}
	return m, nil
}

// Record looks up a record of the named model.
func (d *Dataset) Record(name string, id int) (Record, error) {
	m, err := d.Model(name)
	if err != nil {
		return Record{}, err
	}
	return m.Record(id)
}

// Record returns the record with the given id.
func (m *Model) Record(id int) (Record, error) {
	idx, ok := m.index[id]
	if !ok {
		return Record{}, fmt.Errorf("%w: %s %d", ErrRecordNotFound, m.Name, id)
	}
	return m.Records[idx], nil
}

// HasAttribute reports whether attribute is one of the model's columns.
func (m *Model) HasAttribute(attribute string) bool {
	for _, attr := range m.Attributes {
		if attr == attribute {
			return true
		}
	}
	return false
}

// DisplayText returns the text shown for record when it is referenced from
// another model.
func (m *Model) DisplayText(record Record) string {
	if m.Display != "" {
		return model.Stringify(record.Value(m.Display))
	}
	if value, ok := record.Values["name"]; ok && value != nil {
		return model.Stringify(value)
	}
	return fmt.Sprintf("%s %d", m.Name, record.ID)
}

// children returns the records of child whose `<parent>_id` equals id.
func (d *Dataset) children(parent string, id int, child *Model) []Record {
	key := parent + model.ReferenceSuffix
	var out []Record
	for _, record := range child.Records {
		ref, ok := toInt(record.Values[key])
		if ok && ref == id {
			out = append(out, record)
		}
	}
	return out
}

func (m *Model) reindex() {
	sort.SliceStable(m.Records, func(i, j int) bool {
		return m.Records[i].ID < m.Records[j].ID
	})
	m.index = make(map[int]int, len(m.Records))
	for i, record := range m.Records {
		m.index[record.ID] = i
	}
}

func normaliseName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func referencedModel(attribute string) (string, bool) {
	if !strings.HasSuffix(attribute, model.ReferenceSuffix) || attribute == model.ReferenceSuffix {
		return "", false
	}
	return strings.TrimSuffix(attribute, model.ReferenceSuffix), true
}

func childModel(attribute string) (string, bool) {
	if !strings.HasSuffix(attribute, model.ListSuffix) || attribute == model.ListSuffix {
		return "", false
	}
	return strings.TrimSuffix(attribute, model.ListSuffix), true
}
