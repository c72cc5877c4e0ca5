package vanilla

import (
	"regexp"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// safeHref accepts http, https and mailto URLs plus relative references: no
// colon may appear before the first '/', '?' or '#'. Leading whitespace is
// skipped the way browsers skip it. Anything else, such as javascript: or
// data:, loses its href.
var safeHref = regexp.MustCompile(`^(?s:[\x00-\x20]*(?:(?i:https?|mailto):.*|[/?#].*|[^\x00-\x20:/?#][^:/?#]*(?:[/?#].*)?))$`)

var (
	listPolicyOnce sync.Once
	listPolicy     *bluemonday.Policy
)

// DefaultPolicy returns the sanitizer applied to rendered list fragments. It
// keeps the table markup, classes and safe links, and drops everything else.
// Accepted hrefs are kept verbatim; URLs are not parsed or re-encoded.
func DefaultPolicy() *bluemonday.Policy {
	listPolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowElements(
			"h1", "table", "thead", "tbody", "tr", "th", "td", "a", "i", "span",
		)
		policy.AllowAttrs("class").Globally()
		policy.AllowAttrs("scope").OnElements("th")
		policy.AllowAttrs("href").Matching(safeHref).OnElements("a")
		policy.AllowAttrs("title", "aria-label").OnElements("a")
		policy.AllowAttrs("aria-hidden").OnElements("i")

		listPolicy = policy
	})
	return listPolicy
}
