package vanilla

import (
	"sort"
	"strings"
)

// cleanClassList collapses whitespace and drops duplicate tokens while keeping
// the first occurrence order.
func cleanClassList(value string) string {
	tokens := strings.Fields(value)
	if len(tokens) == 0 {
		return ""
	}
	keep := make([]string, 0, len(tokens))
	seen := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		keep = append(keep, token)
	}
	return strings.Join(keep, " ")
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		name := strings.TrimSpace(key)
		value := strings.TrimSpace(vars[key])
		if name == "" || value == "" {
			continue
		}
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(name + ": " + value + ";")
	}
	return b.String()
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
