package prompt

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-listgen/pkg/dataset"
	"github.com/goliatone/go-listgen/pkg/model"
)

// Roles offered when choosing the viewer.
var Roles = []string{"anonymous", "user", model.RoleAdmin}

// Selection is the outcome of an interactive listing choice.
type Selection struct {
	Model string
	Role  string
	// RecordID and Attribute are set when a one-to-many listing was chosen.
	RecordID  int
	Attribute string
}

// Related reports whether the selection targets a one-to-many listing.
func (s Selection) Related() bool {
	return s.Attribute != ""
}

// ChooseListing asks for the model, the viewer role and optionally a
// one-to-many attribute of one record. defaults pre-select answers.
func ChooseListing(ctx context.Context, d Driver, data *dataset.Dataset, defaults Selection) (Selection, error) {
	if d == nil {
		return Selection{}, errors.New("prompt: driver is nil")
	}
	if data == nil {
		return Selection{}, errors.New("prompt: dataset is nil")
	}

	models := data.Models()
	idx, err := d.Select(ctx, SelectConfig{
		Message:      "Model to list",
		Options:      models,
		DefaultIndex: indexOf(models, strings.ToLower(defaults.Model)),
	})
	if err != nil {
		return Selection{}, err
	}
	if idx < 0 || idx >= len(models) {
		return Selection{}, fmt.Errorf("prompt: invalid model choice %d", idx)
	}
	sel := Selection{Model: models[idx]}

	roleIdx, err := d.Select(ctx, SelectConfig{
		Message:      "View as",
		Options:      Roles,
		DefaultIndex: indexOf(Roles, defaults.Role),
		Help:         "Admin actions are only shown to the admin role.",
	})
	if err != nil {
		return Selection{}, err
	}
	if roleIdx >= 0 && roleIdx < len(Roles) && Roles[roleIdx] != "anonymous" {
		sel.Role = Roles[roleIdx]
	}

	m, err := data.Model(sel.Model)
	if err != nil {
		return Selection{}, err
	}
	lists := listAttributes(m)
	if len(lists) == 0 {
		return sel, nil
	}

	related, err := d.Confirm(ctx, ConfirmConfig{
		Message: "List a one-to-many attribute of a single " + m.Name + "?",
		Default: defaults.Related(),
	})
	if err != nil || !related {
		return sel, err
	}

	rawID, err := d.Input(ctx, InputConfig{
		Message: m.Name + " id",
		Default: defaultID(defaults),
		Validator: func(value string) error {
			id, convErr := strconv.Atoi(strings.TrimSpace(value))
			if convErr != nil {
				return fmt.Errorf("%q is not a number", value)
			}
			_, recErr := m.Record(id)
			return recErr
		},
	})
	if err != nil {
		return Selection{}, err
	}
	sel.RecordID, err = strconv.Atoi(strings.TrimSpace(rawID))
	if err != nil {
		return Selection{}, fmt.Errorf("prompt: invalid record id %q: %w", rawID, err)
	}

	attrIdx, err := d.Select(ctx, SelectConfig{
		Message:      "Attribute",
		Options:      lists,
		DefaultIndex: indexOf(lists, defaults.Attribute),
	})
	if err != nil {
		return Selection{}, err
	}
	if attrIdx < 0 || attrIdx >= len(lists) {
		return Selection{}, fmt.Errorf("prompt: invalid attribute choice %d", attrIdx)
	}
	sel.Attribute = lists[attrIdx]
	return sel, nil
}

func listAttributes(m *dataset.Model) []string {
	var out []string
	for _, attr := range m.Attributes {
		if strings.HasSuffix(attr, model.ListSuffix) {
			out = append(out, attr)
		}
	}
	return out
}

func defaultID(defaults Selection) string {
	if defaults.RecordID <= 0 {
		return ""
	}
	return strconv.Itoa(defaults.RecordID)
}
