package dataset

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-listgen/pkg/model"
)

type documentFile struct {
	Name      string      `json:"name" yaml:"name"`
	URLPrefix string      `json:"url_prefix" yaml:"url_prefix"`
	Models    []modelFile `json:"models" yaml:"models"`
}

type modelFile struct {
	Name           string           `json:"name" yaml:"name"`
	Attributes     []string         `json:"attributes" yaml:"attributes"`
	Display        string           `json:"display" yaml:"display"`
	DefaultActions *bool            `json:"default_actions" yaml:"default_actions"`
	Actions        []model.Action   `json:"actions" yaml:"actions"`
	AdminActions   []model.Action   `json:"admin_actions" yaml:"admin_actions"`
	Records        []map[string]any `json:"records" yaml:"records"`
}

// LoadFile reads a dataset from a JSON or YAML file on disk.
func LoadFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS reads a dataset stored at name inside fsys.
func LoadFS(fsys fs.FS, name string) (*Dataset, error) {
	if fsys == nil {
		return nil, fmt.Errorf("dataset: nil filesystem for %s", name)
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", name, err)
	}
	return Parse(data, name)
}

// Parse decodes a JSON or YAML document and validates it. source is only
// used in error messages.
func Parse(data []byte, source string) (*Dataset, error) {
	doc, err := parseDocument(data, source)
	if err != nil {
		return nil, err
	}
	return build(doc, source)
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("dataset: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("dataset: parse %s: invalid JSON or YAML", source)
}

func build(doc documentFile, source string) (*Dataset, error) {
	ds := &Dataset{
		Name:      strings.TrimSpace(doc.Name),
		URLPrefix: strings.TrimRight(strings.TrimSpace(doc.URLPrefix), "/"),
		models:    make(map[string]*Model, len(doc.Models)),
	}
	if ds.Name == "" {
		ds.Name = DefaultName
	}
	if len(doc.Models) == 0 {
		return nil, fmt.Errorf("dataset: file %s defines no models", source)
	}

	for idx, raw := range doc.Models {
		m, err := normaliseModel(raw, idx, source)
		if err != nil {
			return nil, err
		}
		key := normaliseName(m.Name)
		if _, exists := ds.models[key]; exists {
			return nil, fmt.Errorf("dataset: duplicate model %q (file %s)", m.Name, source)
		}
		ds.models[key] = m
		ds.order = append(ds.order, m.Name)
	}

	if err := ds.validateRelations(source); err != nil {
		return nil, err
	}
	return ds, nil
}

func normaliseModel(raw modelFile, idx int, source string) (*Model, error) {
	name := normaliseName(raw.Name)
	if name == "" {
		return nil, fmt.Errorf("dataset: file %s model at index %d has an empty name", source, idx)
	}

	m := &Model{
		Name:           name,
		Display:        strings.TrimSpace(raw.Display),
		DefaultActions: raw.DefaultActions == nil || *raw.DefaultActions,
		Actions:        cloneActions(raw.Actions),
		AdminActions:   cloneActions(raw.AdminActions),
	}

	seen := make(map[string]struct{}, len(raw.Attributes))
	for _, attr := range raw.Attributes {
		attr = strings.TrimSpace(attr)
		if attr == "" {
			return nil, fmt.Errorf("dataset: model %q (file %s) has an empty attribute", name, source)
		}
		if _, dup := seen[attr]; dup {
			return nil, fmt.Errorf("dataset: model %q (file %s) repeats attribute %q", name, source, attr)
		}
		seen[attr] = struct{}{}
		m.Attributes = append(m.Attributes, attr)
	}

	for i, values := range raw.Records {
		id, ok := toInt(values["id"])
		if !ok {
			return nil, fmt.Errorf("dataset: model %q (file %s) record %d has no integer id", name, source, i)
		}
		cloned := make(map[string]any, len(values))
		for key, value := range values {
			if key == "id" {
				continue
			}
			cloned[key] = value
		}
		m.Records = append(m.Records, Record{ID: id, Values: cloned})
	}
	m.reindex()
	if len(m.index) != len(m.Records) {
		return nil, fmt.Errorf("dataset: model %q (file %s) has duplicate record ids", name, source)
	}
	return m, nil
}

func (d *Dataset) validateRelations(source string) error {
	for _, name := range d.order {
		m := d.models[name]
		for _, attr := range m.Attributes {
			if target, ok := referencedModel(attr); ok {
				if _, exists := d.models[target]; !exists {
					return fmt.Errorf("dataset: model %q (file %s) attribute %q references unknown model %q", m.Name, source, attr, target)
				}
			}
			if target, ok := childModel(attr); ok {
				child, exists := d.models[target]
				if !exists {
					return fmt.Errorf("dataset: model %q (file %s) attribute %q lists unknown model %q", m.Name, source, attr, target)
				}
				if !child.HasAttribute(m.Name + model.ReferenceSuffix) {
					return fmt.Errorf("dataset: model %q (file %s) attribute %q needs %q on model %q", m.Name, source, attr, m.Name+model.ReferenceSuffix, child.Name)
				}
			}
		}
		if m.Display != "" && !m.HasAttribute(m.Display) && m.Display != "id" {
			return fmt.Errorf("dataset: model %q (file %s) display attribute %q is not an attribute", m.Name, source, m.Display)
		}
	}
	return nil
}

func cloneActions(in []model.Action) []model.Action {
	if in == nil {
		return nil
	}
	out := make([]model.Action, len(in))
	copy(out, in)
	return out
}

func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case uint64:
		return int(v), true
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		return n, err == nil
	default:
		return 0, false
	}
}
