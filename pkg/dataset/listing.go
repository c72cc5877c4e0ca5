package dataset

import (
	"fmt"

	"github.com/goliatone/go-listgen/pkg/model"
)

// IndexTitle is the title of the model index listing.
const IndexTitle = "Models"

// Index lists the model names as plain rows.
func (d *Dataset) Index() model.Listing {
	listing := model.Listing{Title: IndexTitle}
	for _, name := range d.Models() {
		listing.Rows = append(listing.Rows, model.Row{Item: name})
	}
	return listing
}

// Listing projects every record of the named model, titled "List <model>".
func (d *Dataset) Listing(name string) (model.Listing, error) {
	m, err := d.Model(name)
	if err != nil {
		return model.Listing{}, err
	}
	listing := model.Listing{Title: "List " + m.Name}
	for _, record := range m.Records {
		listing.Rows = append(listing.Rows, d.row(m, record))
	}
	return listing, nil
}

// RelatedListing projects the children behind a one-to-many attribute of a
// record, titled like "Species_list of genus".
func (d *Dataset) RelatedListing(name string, id int, attribute string) (model.Listing, error) {
	m, err := d.Model(name)
	if err != nil {
		return model.Listing{}, err
	}
	target, ok := childModel(attribute)
	if !ok || !m.HasAttribute(attribute) {
		return model.Listing{}, fmt.Errorf("%w: %s.%s", ErrAttributeNotFound, m.Name, attribute)
	}
	if _, err := m.Record(id); err != nil {
		return model.Listing{}, err
	}
	child := d.models[target]

	listing := model.Listing{Title: model.RelatedTitle(attribute, m.Name)}
	for _, record := range d.children(m.Name, id, child) {
		listing.Rows = append(listing.Rows, d.row(child, record))
	}
	return listing, nil
}

func (d *Dataset) row(m *Model, record Record) model.Row {
	row := model.Row{
		Item:         m.DisplayText(record),
		Headers:      model.HeaderLabels(m.Attributes),
		Columns:      make([]model.Cell, 0, len(m.Attributes)),
		AdminActions: model.ExpandActions(m.AdminActions, record.ID),
	}
	for _, attr := range m.Attributes {
		row.Columns = append(row.Columns, d.cell(m, record, attr))
	}

	if m.DefaultActions {
		row.Actions = model.DefaultActions(d.URLPrefix, m.Name, record.ID)
	}
	if extra := model.ExpandActions(m.Actions, record.ID); extra != nil {
		if row.Actions == nil {
			row.Actions = extra
		} else {
			row.Actions = append(row.Actions, extra...)
		}
	}
	return row
}

func (d *Dataset) cell(m *Model, record Record, attr string) model.Cell {
	if target, ok := childModel(attr); ok {
		children := d.children(m.Name, record.ID, d.models[target])
		return model.Cell{
			Value:            len(children),
			SelfReferenceURL: model.RelatedURL(d.URLPrefix, m.Name, record.ID, attr),
			AddActionURL:     model.AddActionURL(d.URLPrefix, m.Name, record.ID, attr),
		}
	}
	if target, ok := referencedModel(attr); ok {
		ref := d.models[target]
		id, ok := toInt(record.Values[attr])
		if !ok {
			return model.Cell{}
		}
		referenced, err := ref.Record(id)
		if err != nil {
			return model.Cell{}
		}
		return model.Cell{
			Value:            ref.DisplayText(referenced),
			SelfReferenceURL: model.SelfReferenceURL(d.URLPrefix, ref.Name, referenced.ID),
		}
	}
	return model.Cell{Value: record.Values[attr]}
}
