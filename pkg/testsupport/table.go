package testsupport

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// Link is an anchor found inside a table cell.
type Link struct {
	Href  string
	Text  string
	Icons []string
}

// TableCell is a parsed <td> or <th>.
type TableCell struct {
	Text  string
	Class string
	Links []Link
}

// Table is the structural view of the first <table> in a document. Head holds
// the cells of header rows (inside <thead>); Body holds every other <tr>. The
// HTML parser implies <tbody> for bare rows, so assert on explicit wrapper
// tags against the raw markup instead.
type Table struct {
	Title   string
	HasHead bool
	Head    []TableCell
	Body    [][]TableCell
}

// HeadTexts returns the text of every header cell.
func (t Table) HeadTexts() []string {
	out := make([]string, 0, len(t.Head))
	for _, cell := range t.Head {
		out = append(out, cell.Text)
	}
	return out
}

// RowTexts returns the text of every cell in body row i.
func (t Table) RowTexts(i int) []string {
	out := make([]string, 0, len(t.Body[i]))
	for _, cell := range t.Body[i] {
		out = append(out, cell.Text)
	}
	return out
}

// MustParseTable parses rendered HTML and extracts the <h1> title plus the
// first table. Whitespace inside cells is collapsed.
func MustParseTable(t *testing.T, markup []byte) Table {
	t.Helper()

	doc, err := html.Parse(strings.NewReader(string(markup)))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}

	var out Table
	if h1 := findFirst(doc, "h1"); h1 != nil {
		out.Title = collapse(textOf(h1))
	}
	table := findFirst(doc, "table")
	if table == nil {
		t.Fatalf("no <table> in output:\n%s", markup)
	}

	walk(table, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return true
		}
		switch n.Data {
		case "thead":
			out.HasHead = true
		case "tr":
			cells := rowCells(n)
			if insideHead(n) {
				out.Head = append(out.Head, cells...)
			} else {
				out.Body = append(out.Body, cells)
			}
			return false
		}
		return true
	})
	return out
}

func rowCells(tr *html.Node) []TableCell {
	var cells []TableCell
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || (c.Data != "td" && c.Data != "th") {
			continue
		}
		cell := TableCell{Text: collapse(textOf(c)), Class: attr(c, "class")}
		walk(c, func(n *html.Node) bool {
			if n.Type == html.ElementNode && n.Data == "a" {
				link := Link{Href: attr(n, "href"), Text: collapse(textOf(n))}
				walk(n, func(inner *html.Node) bool {
					if inner.Type == html.ElementNode && inner.Data == "i" {
						link.Icons = append(link.Icons, attr(inner, "class"))
					}
					return true
				})
				cell.Links = append(cell.Links, link)
				return false
			}
			return true
		})
		cells = append(cells, cell)
	}
	return cells
}

func insideHead(n *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && p.Data == "thead" {
			return true
		}
	}
	return false
}

func findFirst(root *html.Node, tag string) *html.Node {
	var found *html.Node
	walk(root, func(n *html.Node) bool {
		if found != nil {
			return false
		}
		if n.Type == html.ElementNode && n.Data == tag {
			found = n
			return false
		}
		return true
	})
	return found
}

func walk(n *html.Node, visit func(*html.Node) bool) {
	if !visit(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

func textOf(n *html.Node) string {
	var b strings.Builder
	walk(n, func(node *html.Node) bool {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
		}
		return true
	})
	return b.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
