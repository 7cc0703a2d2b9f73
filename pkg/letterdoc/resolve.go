package letterdoc

import (
	"letter-drafting-be/pkg/barcode"
)

// Engine resolves variable tokens against a draft context. It carries
// the deployment-specific pieces (seal image location, barcode
// renderer) so resolution never reads ambient global state.
type Engine struct {
	sealImageURL string
	barcodeFn    func(text string) (string, error)
}

func NewEngine(sealImageURL string) *Engine {
	return &Engine{
		sealImageURL: sealImageURL,
		barcodeFn: func(text string) (string, error) {
			return barcode.DataURL(text, barcode.DefaultWidth, barcode.DefaultHeight)
		},
	}
}

// NewEngineWithBarcode overrides the barcode renderer.
func NewEngineWithBarcode(sealImageURL string, fn func(string) (string, error)) *Engine {
	e := NewEngine(sealImageURL)
	e.barcodeFn = fn
	return e
}

// ResolveInlineToken constructs an inline token from the draft
// context. Missing data degrades to the kind's placeholder search text
// rather than failing. editorOpen selects placeholder display so the
// raw marker stays visible and editable while the surface has focus.
func (e *Engine) ResolveInlineToken(kind Kind, d *Draft, editorOpen bool) InlineToken {
	tok := InlineToken{Kind: kind}

	switch kind {
	case KindReceiptNumber:
		if d != nil {
			tok.Value = d.Registration.ReceiptNumber
		}
	case KindAlienNumber:
		if d != nil {
			tok.Value = d.AlienNumber
		}
	case KindOrganizationName:
		if d != nil {
			tok.Value = d.Organization.Name
		}
	case KindLetterDate:
		tok.Value = d.LetterDateDisplay()
	case KindRecipientAddress:
		if c := d.Recipient(); c != nil {
			cc := *c
			tok.Contact = &cc
		}
	case KindOrganizationAddress:
		if a := d.FindOrganizationAddress(); a != nil {
			addr := a.Address
			tok.Address = &addr
		}
	}

	if editorOpen {
		tok.Display = SearchText(kind)
		return tok
	}
	tok.Display = inlineDisplay(tok)
	return tok
}

func inlineDisplay(tok InlineToken) string {
	switch tok.Kind {
	case KindRecipientAddress:
		if tok.Contact != nil {
			if s := tok.Contact.String(); s != "" {
				return s
			}
		}
	case KindOrganizationAddress:
		if tok.Address != nil {
			if s := tok.Address.String(); s != "" {
				return s
			}
		}
	default:
		if tok.Value != "" {
			return tok.Value
		}
	}
	return SearchText(tok.Kind)
}

// ResolveDecoratorToken constructs a decorator token. The image is
// rendered only when the editor is closed; generation failures leave
// the decorator empty rather than failing the resolution pass.
func (e *Engine) ResolveDecoratorToken(kind Kind, d *Draft, editorOpen bool) DecoratorToken {
	tok := DecoratorToken{Kind: kind, ShowBarcode: !editorOpen}

	switch kind {
	case KindReceiptBarcode:
		if d != nil {
			tok.Value = d.Registration.ReceiptNumber
		}
	case KindAlienBarcode:
		if d != nil {
			tok.Value = d.AlienNumber
		}
	case KindDHSSeal:
		tok.ImageSrc = e.sealImageURL
	}

	if kind != KindDHSSeal && tok.ShowBarcode && tok.Value != "" {
		if src, err := e.barcodeFn(tok.Value); err == nil {
			tok.ImageSrc = src
		}
	}
	return tok
}

func (e *Engine) newTokenNode(kind Kind, d *Draft, editorOpen bool, format int, style string) Node {
	if IsDecorator(kind) {
		return NewDecoratorTokenNode(e.ResolveDecoratorToken(kind, d, editorOpen))
	}
	return NewInlineTokenNode(e.ResolveInlineToken(kind, d, editorOpen), format, style)
}

// indexFoldASCII finds the first occurrence of needle in s under
// ASCII case folding. The search literals are pure ASCII, so folding
// byte by byte keeps every offset valid in the original string;
// uppercasing the haystack would shift offsets whenever a rune changes
// byte length under case mapping (ı → I, ſ → S).
func indexFoldASCII(s, needle string) int {
	for i := 0; i+len(needle) <= len(s); i++ {
		if equalFoldASCII(s[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}

func equalFoldASCII(s, t string) bool {
	for i := 0; i < len(t); i++ {
		c, d := s[i], t[i]
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		if 'a' <= d && d <= 'z' {
			d -= 'a' - 'A'
		}
		if c != d {
			return false
		}
	}
	return true
}

// findMatch locates the earliest case-insensitive occurrence of any
// registered search string. Offsets are byte offsets into text.
func findMatch(text string) (kind Kind, start, end int, found bool) {
	start = -1
	for _, spec := range registry {
		idx := indexFoldASCII(text, spec.searchText)
		if idx >= 0 && (start < 0 || idx < start) {
			kind = spec.kind
			start = idx
			end = idx + len(spec.searchText)
			found = true
		}
	}
	return
}

// ResolveVariables scans every plain-text node for placeholder search
// strings and substitutes token nodes built from the draft context.
// Already-resolved token nodes are skipped, so a token's own rendered
// value can never re-match. Inline formatting of the matched text is
// preserved onto the replacement.
func (e *Engine) ResolveVariables(doc *Document, d *Draft, editorOpen bool) {
	for _, p := range doc.Paragraphs() {
		// Snapshot: splicing rewrites p.Children while we iterate.
		children := append([]NodeID(nil), p.Children...)
		for _, id := range children {
			text, ok := doc.Node(id).(*TextNode)
			if !ok {
				continue
			}
			if _, _, _, found := findMatch(text.Text); !found {
				continue
			}

			var replacements []Node
			rest := text.Text
			for {
				kind, start, end, found := findMatch(rest)
				if !found {
					break
				}
				if start > 0 {
					replacements = append(replacements, NewTextNode(rest[:start], text.Format, text.Style))
				}
				replacements = append(replacements, e.newTokenNode(kind, d, editorOpen, text.Format, text.Style))
				rest = rest[end:]
			}
			if rest != "" {
				replacements = append(replacements, NewTextNode(rest, text.Format, text.Style))
			}
			doc.SpliceChildren(p, id, replacements...)
		}
	}
}

// UpdateFromDraft recomputes every token node's displayed value and
// backing structured value from the latest draft context. Node
// identity and position never change; each node is replaced in the
// arena under its existing id.
func (e *Engine) UpdateFromDraft(doc *Document, d *Draft) {
	for _, id := range doc.TokenNodeIDs() {
		switch n := doc.Node(id).(type) {
		case *InlineTokenNode:
			doc.Replace(id, n.WithToken(e.ResolveInlineToken(n.Token.Kind, d, false)))
		case *DecoratorTokenNode:
			doc.Replace(id, n.WithToken(e.ResolveDecoratorToken(n.Token.Kind, d, false)))
		}
	}
}

// ShowVariables reverts every token node to its placeholder display,
// used when an editing surface gains focus.
func (e *Engine) ShowVariables(doc *Document) {
	for _, id := range doc.TokenNodeIDs() {
		switch n := doc.Node(id).(type) {
		case *InlineTokenNode:
			doc.Replace(id, n.WithToken(n.Token.ShowVariable()))
		case *DecoratorTokenNode:
			doc.Replace(id, n.WithToken(n.Token.ShowVariable()))
		}
	}
}
