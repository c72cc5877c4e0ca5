package model

import (
	"strconv"
	"strings"
	"unicode"
)

const (
	// ReferenceSuffix marks attributes holding the id of another model.
	ReferenceSuffix = "_id"
	// ListSuffix marks one-to-many attributes.
	ListSuffix = "_list"
)

// Default icon classes for the standard record actions.
const (
	IconRead   = "bi bi-zoom-in"
	IconUpdate = "bi bi-pencil"
	IconDelete = "bi bi-x-circle"
	IconAdd    = "bi bi-plus-circle"
)

// DisplayAttribute strips the reference suffix so `genus_id` displays the
// related `genus`.
func DisplayAttribute(attribute string) string {
	attribute = strings.TrimSpace(attribute)
	if strings.HasSuffix(attribute, ReferenceSuffix) && len(attribute) > len(ReferenceSuffix) {
		return strings.TrimSuffix(attribute, ReferenceSuffix)
	}
	return attribute
}

// HeaderLabel turns an attribute name into a column header: `genus_id`
// becomes "Genus" and `species_list` becomes "Species list".
func HeaderLabel(attribute string) string {
	return capitalize(strings.ReplaceAll(DisplayAttribute(attribute), "_", " "))
}

// RelatedTitle titles the listing behind a one-to-many attribute. The
// attribute keeps its underscores: "species_list" of "genus" gives
// "Species_list of genus".
func RelatedTitle(attribute, modelName string) string {
	return capitalize(attribute) + " of " + modelName
}

// HeaderLabels maps HeaderLabel over attributes.
func HeaderLabels(attributes []string) []string {
	out := make([]string, 0, len(attributes))
	for _, attribute := range attributes {
		out = append(out, HeaderLabel(attribute))
	}
	return out
}

// SnakeToCamel converts `one_to_many` into "OneToMany".
func SnakeToCamel(value string) string {
	parts := strings.Split(value, "_")
	var b strings.Builder
	for _, part := range parts {
		b.WriteString(capitalize(part))
	}
	return b.String()
}

// SnakeToLowerCamel converts `one_to_many` into "oneToMany".
func SnakeToLowerCamel(value string) string {
	parts := strings.Split(value, "_")
	if len(parts) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(parts[0])
	for _, part := range parts[1:] {
		b.WriteString(capitalize(part))
	}
	return b.String()
}

// CamelToSnake converts "OneToManyList" into "one_to_many_list" and keeps
// acronyms together ("HTTPServer" -> "http_server").
func CamelToSnake(value string) string {
	runes := []rune(value)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteRune('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// SelfReferenceURL points at the detail view of a record.
func SelfReferenceURL(prefix, modelName string, id int) string {
	return recordURL(prefix, modelName, "read", id)
}

// RelatedURL points at the listing of a one-to-many attribute of a record.
func RelatedURL(prefix, modelName string, id int, attribute string) string {
	return SelfReferenceURL(prefix, modelName, id) + "/" + attribute
}

// AddActionURL points at the form adding an item to a one-to-many attribute.
func AddActionURL(prefix, modelName string, id int, attribute string) string {
	return recordURL(prefix, modelName, "update", id) + "/add/" + attribute
}

// DefaultActions returns the read, update and delete actions of a record.
func DefaultActions(prefix, modelName string, id int) []Action {
	return []Action{
		{URL: recordURL(prefix, modelName, "read", id), Icon: IconRead},
		{URL: recordURL(prefix, modelName, "update", id), Icon: IconUpdate},
		{URL: recordURL(prefix, modelName, "delete", id), Icon: IconDelete},
	}
}

// ExpandActions resolves `{id}` placeholders in action templates.
func ExpandActions(templates []Action, id int) []Action {
	if templates == nil {
		return nil
	}
	idText := strconv.Itoa(id)
	out := make([]Action, 0, len(templates))
	for _, tpl := range templates {
		out = append(out, Action{
			URL:  strings.ReplaceAll(tpl.URL, "{id}", idText),
			Icon: tpl.Icon,
		})
	}
	return out
}

func recordURL(prefix, modelName, verb string, id int) string {
	return strings.TrimRight(prefix, "/") + "/" + modelName + "/" + verb + "/" + strconv.Itoa(id)
}

func capitalize(value string) string {
	if value == "" {
		return ""
	}
	runes := []rune(strings.ToLower(value))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
