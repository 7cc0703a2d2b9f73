package grammar

import (
	"bytes"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// SpellingRule is the checker rule whose findings are styled as
// spelling errors; everything else is a grammar error.
const SpellingRule = "MORFOLOGIK_RULE_EN_US"

const (
	ClassSpelling = "spelling-error"
	ClassGrammar  = "grammar-error"
)

// Named entities cannot survive a strict parse/render round trip, so
// they are swapped for private placeholder tags around any DOM work
// and restored afterwards.
var entityPlaceholders = []struct {
	entity      string
	placeholder string
}{
	{"&nbsp;", "<gc-nbsp></gc-nbsp>"},
	{"&lt;", "<gc-lt></gc-lt>"},
	{"&gt;", "<gc-gt></gc-gt>"},
	{"&quot;", "<gc-quot></gc-quot>"},
	{"&amp;", "<gc-amp></gc-amp>"},
}

func protectEntities(s string) string {
	for _, e := range entityPlaceholders {
		s = strings.ReplaceAll(s, e.entity, e.placeholder)
	}
	return s
}

func restoreEntities(s string) string {
	for _, e := range entityPlaceholders {
		s = strings.ReplaceAll(s, e.placeholder, e.entity)
	}
	return s
}

// ElementID is the stable id carried by an annotation span for one
// finding.
func ElementID(errorID string) string {
	return "error-" + errorID
}

func errorClass(e CheckError) string {
	if e.Type == SpellingRule {
		return ClassSpelling
	}
	return ClassGrammar
}

// runeRange converts character offsets into byte offsets within s.
// Reports ok=false when the range falls outside the string.
func runeRange(s string, start, end int) (byteStart, byteEnd int, ok bool) {
	byteStart, byteEnd = -1, -1
	count := 0
	for i := range s {
		if count == start {
			byteStart = i
		}
		if count == end {
			byteEnd = i
		}
		count++
	}
	if start == count {
		byteStart = len(s)
	}
	if end == count {
		byteEnd = len(s)
	}
	if byteStart < 0 || byteEnd < 0 {
		return 0, 0, false
	}
	return byteStart, byteEnd, true
}

// Annotate wraps each finding's span of the stripped content in a
// classed, id-carrying span. The checker reports character positions
// relative to the content as submitted, so they are converted to byte
// offsets before splicing. Errors are applied in reverse offset order
// so earlier offsets stay valid as later insertions happen.
func Annotate(stripped string, errs []CheckError) string {
	sorted := append([]CheckError(nil), errs...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartPosition > sorted[j].StartPosition
	})

	out := stripped
	for _, e := range sorted {
		if e.StartPosition < 0 || e.StartPosition >= e.EndPosition {
			continue
		}
		bs, be, ok := runeRange(out, e.StartPosition, e.EndPosition)
		if !ok {
			continue
		}
		open := `<span id="` + ElementID(e.ID) + `" class="` + errorClass(e) + `">`
		out = out[:bs] + open + out[bs:be] + "</span>" + out[be:]
	}
	return out
}

func isAnnotationSpan(n *html.Node) bool {
	if n.Type != html.ElementNode || n.DataAtom != atom.Span {
		return false
	}
	for _, a := range n.Attr {
		if a.Key == "class" {
			return a.Val == ClassSpelling || a.Val == ClassGrammar
		}
	}
	return false
}

// StripAnnotations removes every annotation span, restoring the plain
// text it wrapped. Custom variable spans and entity-encoded characters
// pass through untouched.
func StripAnnotations(content string) (string, error) {
	root, err := parseWrapped(content)
	if err != nil {
		return "", err
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		c := n.FirstChild
		for c != nil {
			next := c.NextSibling
			walk(c)
			if isAnnotationSpan(c) {
				unwrap(n, c)
			}
			c = next
		}
	}
	walk(root)

	return renderWrapped(root), nil
}

// AcceptSuggestion replaces the one annotation span identified by
// elementID with the accepted replacement text.
func AcceptSuggestion(content, elementID, replacement string) (string, error) {
	root, err := parseWrapped(content)
	if err != nil {
		return "", err
	}

	var target *html.Node
	var find func(*html.Node)
	find = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && attrVal(c, "id") == elementID {
				target = c
				return
			}
			find(c)
			if target != nil {
				return
			}
		}
	}
	find(root)

	if target != nil {
		parent := target.Parent
		parent.InsertBefore(&html.Node{Type: html.TextNode, Data: replacement}, target)
		parent.RemoveChild(target)
	}

	return renderWrapped(root), nil
}

func attrVal(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// unwrap replaces the child element with its own children.
func unwrap(parent, child *html.Node) {
	c := child.FirstChild
	for c != nil {
		next := c.NextSibling
		child.RemoveChild(c)
		parent.InsertBefore(c, child)
		c = next
	}
	parent.RemoveChild(child)
}

// parseWrapped entity-protects the content and parses it under a
// synthetic body element.
func parseWrapped(content string) (*html.Node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(protectEntities(content)), ctx)
	if err != nil {
		return nil, err
	}
	root := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return root, nil
}

// renderWrapped renders the body's children and restores the original
// entities.
func renderWrapped(root *html.Node) string {
	var buf bytes.Buffer
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		html.Render(&buf, c)
	}
	return restoreEntities(buf.String())
}
