package letterdoc

import (
	"bytes"
	"errors"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CustomNodeTypeAttr identifies token spans in stored letter HTML.
// It is the wire format for round-tripping between editor sessions and
// must remain stable across releases.
const CustomNodeTypeAttr = "data-lexical-custom-node-type"

// ErrJSONImportNotImplemented guards against silent data loss: the
// letter document round-trips through HTML only.
var ErrJSONImportNotImplemented = errors.New("letterdoc: json import is not implemented, letter documents round-trip through html only")

// ImportJSON always fails. See ErrJSONImportNotImplemented.
func ImportJSON(data []byte) (*Document, error) {
	return nil, ErrJSONImportNotImplemented
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// Address-family serializers share this key set so a contact address
// and an organization address can coexist in one document under
// different namespaces (data-recipient-address-*,
// data-organization-address-*).
var addressAttrKeys = []string{
	"nickname",
	"pre-address",
	"street",
	"apt-suite-floor",
	"city",
	"state-or-province",
	"zip-code",
	"country",
	"foreign-address",
}

func setAddressAttrs(n *html.Node, ns string, a Address) {
	vals := map[string]string{
		"nickname":          a.Nickname,
		"pre-address":       a.PreAddress,
		"street":            a.Street,
		"apt-suite-floor":   a.AptSuiteFloor,
		"city":              a.City,
		"state-or-province": a.StateOrProvince,
		"zip-code":          a.ZipCode,
		"country":           a.Country,
		// Booleans coerce to strings through DOM attributes; the read
		// side keeps the stringly-typed semantics.
		"foreign-address": strconv.FormatBool(a.ForeignAddress),
	}
	for _, key := range addressAttrKeys {
		setAttr(n, "data-"+ns+"-"+key, vals[key])
	}
}

func readAddressAttrs(n *html.Node, ns string) Address {
	return Address{
		Nickname:        getAttr(n, "data-"+ns+"-nickname"),
		PreAddress:      getAttr(n, "data-"+ns+"-pre-address"),
		Street:          getAttr(n, "data-"+ns+"-street"),
		AptSuiteFloor:   getAttr(n, "data-"+ns+"-apt-suite-floor"),
		City:            getAttr(n, "data-"+ns+"-city"),
		StateOrProvince: getAttr(n, "data-"+ns+"-state-or-province"),
		ZipCode:         getAttr(n, "data-"+ns+"-zip-code"),
		Country:         getAttr(n, "data-"+ns+"-country"),
		ForeignAddress:  getAttr(n, "data-"+ns+"-foreign-address") == "true",
	}
}

func setContactAttrs(n *html.Node, ns string, c Contact) {
	setAttr(n, "data-"+ns+"-first-name", c.FirstName)
	setAttr(n, "data-"+ns+"-middle-name", c.MiddleName)
	setAttr(n, "data-"+ns+"-last-name", c.LastName)
	setAttr(n, "data-"+ns+"-firm-name", c.FirmName)
	setAttr(n, "data-"+ns+"-in-care-of", c.InCareOf)
	setAddressAttrs(n, ns, c.Address)
}

func readContactAttrs(n *html.Node, ns string) Contact {
	return Contact{
		FirstName:  getAttr(n, "data-"+ns+"-first-name"),
		MiddleName: getAttr(n, "data-"+ns+"-middle-name"),
		LastName:   getAttr(n, "data-"+ns+"-last-name"),
		FirmName:   getAttr(n, "data-"+ns+"-firm-name"),
		InCareOf:   getAttr(n, "data-"+ns+"-in-care-of"),
		Address:    readAddressAttrs(n, ns),
	}
}

func scalarAttr(k Kind) string {
	switch k {
	case KindReceiptNumber:
		return "data-receipt-number"
	case KindAlienNumber:
		return "data-alien-number"
	case KindOrganizationName:
		return "data-organization-name"
	case KindLetterDate:
		return "data-letter-date"
	}
	return ""
}

// setInnerLines sets the element's displayed content, encoding
// newlines as <br/>.
func setInnerLines(n *html.Node, text string) {
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i > 0 {
			n.AppendChild(&html.Node{Type: html.ElementNode, Data: "br", DataAtom: atom.Br})
		}
		n.AppendChild(&html.Node{Type: html.TextNode, Data: line})
	}
}

// innerText reads the displayed content back, decoding <br/> to
// newlines.
func innerText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		for ; c != nil; c = c.NextSibling {
			switch {
			case c.Type == html.TextNode:
				sb.WriteString(c.Data)
			case c.Type == html.ElementNode && c.DataAtom == atom.Br:
				sb.WriteString("\n")
			default:
				walk(c.FirstChild)
			}
		}
	}
	walk(n.FirstChild)
	return sb.String()
}

// SerializeInlineToken writes an inline token into the given span
// element: the custom-type attribute, the kind-specific data
// attributes, and the displayed inner content.
func SerializeInlineToken(n *html.Node, t InlineToken) {
	setAttr(n, CustomNodeTypeAttr, string(t.Kind))
	switch t.Kind {
	case KindRecipientAddress:
		if t.Contact != nil {
			setContactAttrs(n, string(KindRecipientAddress), *t.Contact)
		}
	case KindOrganizationAddress:
		if t.Address != nil {
			setAddressAttrs(n, string(KindOrganizationAddress), *t.Address)
		}
	default:
		if attr := scalarAttr(t.Kind); attr != "" {
			setAttr(n, attr, t.Value)
		}
	}
	setInnerLines(n, t.Display)
}

// SerializeDecoratorToken writes a decorator token into the given span
// element. The rendered image appears only when the token is not being
// edited and the backing value is present; otherwise the literal
// placeholder text is shown.
func SerializeDecoratorToken(n *html.Node, t DecoratorToken) {
	setAttr(n, CustomNodeTypeAttr, string(t.Kind))
	if t.Kind != KindDHSSeal {
		setAttr(n, "data-barcode-value", t.Value)
	}
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
	showImage := t.ShowBarcode && t.ImageSrc != ""
	if t.Kind != KindDHSSeal && t.Value == "" {
		showImage = false
	}
	if showImage {
		img := &html.Node{Type: html.ElementNode, Data: "img", DataAtom: atom.Img}
		setAttr(img, "src", t.ImageSrc)
		setAttr(img, "alt", string(t.Kind))
		n.AppendChild(img)
		return
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: SearchText(t.Kind)})
}

// DeserializeToken reads a token span back into a node. Returns false
// when the element is not a recognized token span.
func DeserializeToken(n *html.Node) (Node, bool) {
	kind := Kind(getAttr(n, CustomNodeTypeAttr))
	if kind == "" || SearchText(kind) == "" {
		return nil, false
	}

	if IsDecorator(kind) {
		tok := DecoratorToken{Kind: kind}
		if kind != KindDHSSeal {
			tok.Value = getAttr(n, "data-barcode-value")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.DataAtom == atom.Img {
				tok.ShowBarcode = true
				tok.ImageSrc = getAttr(c, "src")
			}
		}
		return NewDecoratorTokenNode(tok), true
	}

	tok := InlineToken{Kind: kind, Display: innerText(n)}
	switch kind {
	case KindRecipientAddress:
		if hasAttr(n, "data-recipient-address-first-name") || hasAttr(n, "data-recipient-address-city") {
			c := readContactAttrs(n, string(KindRecipientAddress))
			tok.Contact = &c
		}
	case KindOrganizationAddress:
		if hasAttr(n, "data-organization-address-city") || hasAttr(n, "data-organization-address-street") {
			a := readAddressAttrs(n, string(KindOrganizationAddress))
			tok.Address = &a
		}
	default:
		tok.Value = getAttr(n, scalarAttr(kind))
	}
	return NewInlineTokenNode(tok, 0, ""), true
}

// ExportHTML serializes the whole document back to the stored HTML
// form.
func ExportHTML(d *Document) string {
	var buf bytes.Buffer
	for _, p := range d.Paragraphs() {
		el := &html.Node{Type: html.ElementNode, Data: "p", DataAtom: atom.P}
		if p.Align != "" {
			setAttr(el, "style", "text-align: "+p.Align)
		}
		for _, id := range p.Children {
			child := exportInline(d, id)
			if child != nil {
				el.AppendChild(child)
			}
		}
		html.Render(&buf, el)
	}
	return buf.String()
}

func exportInline(d *Document, id NodeID) *html.Node {
	switch n := d.Node(id).(type) {
	case *TextNode:
		text := &html.Node{Type: html.TextNode, Data: n.Text}
		return wrapFormat(text, n.Format, n.Style)
	case *LineBreakNode:
		return &html.Node{Type: html.ElementNode, Data: "br", DataAtom: atom.Br}
	case *InlineTokenNode:
		span := &html.Node{Type: html.ElementNode, Data: "span", DataAtom: atom.Span}
		SerializeInlineToken(span, n.Token)
		return wrapFormat(span, n.Format, n.Style)
	case *DecoratorTokenNode:
		span := &html.Node{Type: html.ElementNode, Data: "span", DataAtom: atom.Span}
		SerializeDecoratorToken(span, n.Token)
		return span
	}
	return nil
}

// wrapFormat nests the node in formatting elements, outermost bold.
func wrapFormat(n *html.Node, format int, style string) *html.Node {
	if style != "" {
		span := &html.Node{Type: html.ElementNode, Data: "span", DataAtom: atom.Span}
		setAttr(span, "style", style)
		span.AppendChild(n)
		n = span
	}
	wrap := func(tag string, a atom.Atom, inner *html.Node) *html.Node {
		el := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: a}
		el.AppendChild(inner)
		return el
	}
	if format&FormatCode != 0 {
		n = wrap("code", atom.Code, n)
	}
	if format&FormatStrikethrough != 0 {
		n = wrap("s", atom.S, n)
	}
	if format&FormatUnderline != 0 {
		n = wrap("u", atom.U, n)
	}
	if format&FormatItalic != 0 {
		n = wrap("i", atom.I, n)
	}
	if format&FormatBold != 0 {
		n = wrap("b", atom.B, n)
	}
	return n
}

// ImportHTML parses stored letter HTML into a fresh document. Token
// spans are recognized by their custom-type attribute and rebuilt as
// typed token nodes; everything else becomes text nodes carrying the
// accumulated inline format.
func ImportHTML(raw string) (*Document, error) {
	nodes, err := parseFragment(raw)
	if err != nil {
		return nil, err
	}

	doc := NewDocument()
	var current *ParagraphNode

	flush := func() { current = nil }
	ensure := func() *ParagraphNode {
		if current == nil {
			current = NewParagraphNode("")
			doc.AppendParagraph(current)
		}
		return current
	}

	for _, n := range nodes {
		if isBlock(n) {
			flush()
			p := NewParagraphNode(alignOf(n))
			doc.AppendParagraph(p)
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				importInline(doc, p, c, 0, "")
			}
			flush()
			continue
		}
		if n.Type == html.TextNode && strings.TrimSpace(n.Data) == "" {
			continue
		}
		importInline(doc, ensure(), n, 0, "")
	}
	return doc, nil
}

func isBlock(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch n.DataAtom {
	case atom.P, atom.Div, atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return true
	}
	return false
}

func alignOf(n *html.Node) string {
	return ParseStyle(getAttr(n, "style"))["text-align"]
}

func importInline(doc *Document, p *ParagraphNode, n *html.Node, format int, style string) {
	switch n.Type {
	case html.TextNode:
		if n.Data != "" {
			doc.Append(p, NewTextNode(n.Data, format, style))
		}
		return
	case html.ElementNode:
	default:
		return
	}

	if hasAttr(n, CustomNodeTypeAttr) {
		if node, ok := DeserializeToken(n); ok {
			if t, isInline := node.(*InlineTokenNode); isInline {
				t.Format = format
				t.Style = style
			}
			doc.Append(p, node)
			return
		}
	}

	switch n.DataAtom {
	case atom.Br:
		doc.Append(p, NewLineBreakNode())
		return
	case atom.B, atom.Strong:
		format |= FormatBold
	case atom.I, atom.Em:
		format |= FormatItalic
	case atom.U:
		format |= FormatUnderline
	case atom.S, atom.Del, atom.Strike:
		format |= FormatStrikethrough
	case atom.Code:
		format |= FormatCode
	case atom.Span:
		if s := ParseStyle(getAttr(n, "style")).String(); s != "" {
			style = s
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		importInline(doc, p, c, format, style)
	}
}

func parseFragment(raw string) ([]*html.Node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	return html.ParseFragment(strings.NewReader(raw), ctx)
}
