package letterdoc

import (
	"github.com/google/uuid"
)

// NodeID is the stable identity of a node within one Document.
// Mutation is always expressed as "replace the node at this id with a
// new value"; fields of a stored node are never edited in place.
type NodeID string

func newNodeID() NodeID {
	return NodeID(uuid.NewString())
}

// Node is any addressable member of the document tree.
type Node interface {
	ID() NodeID
}

// TextNode is a run of plain text carrying the inline format bitmask
// and an optional CSS style string.
type TextNode struct {
	id     NodeID
	Text   string
	Format int
	Style  string
}

func NewTextNode(text string, format int, style string) *TextNode {
	return &TextNode{id: newNodeID(), Text: text, Format: format, Style: style}
}

func (n *TextNode) ID() NodeID { return n.id }

// LineBreakNode represents an explicit line break inside a paragraph.
type LineBreakNode struct {
	id NodeID
}

func NewLineBreakNode() *LineBreakNode {
	return &LineBreakNode{id: newNodeID()}
}

func (n *LineBreakNode) ID() NodeID { return n.id }

// InlineTokenNode is a resolved inline variable. It keeps the format
// and style of the text it replaced so substitution preserves styling.
type InlineTokenNode struct {
	id     NodeID
	Token  InlineToken
	Format int
	Style  string
}

func NewInlineTokenNode(tok InlineToken, format int, style string) *InlineTokenNode {
	return &InlineTokenNode{id: newNodeID(), Token: tok, Format: format, Style: style}
}

func (n *InlineTokenNode) ID() NodeID { return n.id }

// WithToken returns a replacement node carrying the same id, for use
// with Document.Replace.
func (n *InlineTokenNode) WithToken(tok InlineToken) *InlineTokenNode {
	return &InlineTokenNode{id: n.id, Token: tok, Format: n.Format, Style: n.Style}
}

// DecoratorTokenNode is a resolved decorator variable (barcode, seal).
// Its content is computed, never typed into.
type DecoratorTokenNode struct {
	id    NodeID
	Token DecoratorToken
}

func NewDecoratorTokenNode(tok DecoratorToken) *DecoratorTokenNode {
	return &DecoratorTokenNode{id: newNodeID(), Token: tok}
}

func (n *DecoratorTokenNode) ID() NodeID { return n.id }

// WithToken returns a replacement node carrying the same id.
func (n *DecoratorTokenNode) WithToken(tok DecoratorToken) *DecoratorTokenNode {
	return &DecoratorTokenNode{id: n.id, Token: tok}
}

// ParagraphNode groups inline children. Align carries the paragraph
// text-align value ("" means default/left).
type ParagraphNode struct {
	id       NodeID
	Children []NodeID
	Align    string
}

func NewParagraphNode(align string) *ParagraphNode {
	return &ParagraphNode{id: newNodeID(), Align: align}
}

func (n *ParagraphNode) ID() NodeID { return n.id }

// Document is an arena of nodes addressed by stable ids plus the
// ordered list of top-level paragraphs. One Document instance belongs
// to exactly one editing surface or one headless hydration call; it is
// not safe for concurrent use.
type Document struct {
	nodes      map[NodeID]Node
	paragraphs []NodeID
}

func NewDocument() *Document {
	return &Document{nodes: make(map[NodeID]Node)}
}

// Node returns the node stored at id, or nil.
func (d *Document) Node(id NodeID) Node {
	return d.nodes[id]
}

// Paragraphs returns the ordered top-level paragraph nodes.
func (d *Document) Paragraphs() []*ParagraphNode {
	out := make([]*ParagraphNode, 0, len(d.paragraphs))
	for _, id := range d.paragraphs {
		if p, ok := d.nodes[id].(*ParagraphNode); ok {
			out = append(out, p)
		}
	}
	return out
}

// AppendParagraph registers the paragraph and its position.
func (d *Document) AppendParagraph(p *ParagraphNode) {
	d.nodes[p.id] = p
	d.paragraphs = append(d.paragraphs, p.id)
}

// Append registers an inline node and attaches it to the paragraph.
func (d *Document) Append(p *ParagraphNode, n Node) {
	d.nodes[n.ID()] = n
	p.Children = append(p.Children, n.ID())
}

// Replace swaps the node stored at id for a replacement carrying the
// same id. The node keeps its position everywhere it is referenced.
func (d *Document) Replace(id NodeID, n Node) {
	if _, ok := d.nodes[id]; !ok {
		return
	}
	d.nodes[id] = n
}

// SpliceChildren replaces one child of a paragraph with a run of
// replacement nodes. Used by the resolution engine when a text node is
// split around a matched search string.
func (d *Document) SpliceChildren(p *ParagraphNode, target NodeID, replacements ...Node) {
	idx := -1
	for i, id := range p.Children {
		if id == target {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	delete(d.nodes, target)
	ids := make([]NodeID, 0, len(replacements))
	for _, n := range replacements {
		d.nodes[n.ID()] = n
		ids = append(ids, n.ID())
	}

	children := make([]NodeID, 0, len(p.Children)-1+len(ids))
	children = append(children, p.Children[:idx]...)
	children = append(children, ids...)
	children = append(children, p.Children[idx+1:]...)
	p.Children = children
}

// TokenNodeIDs returns the ids of every resolved token node in
// document order.
func (d *Document) TokenNodeIDs() []NodeID {
	var out []NodeID
	for _, p := range d.Paragraphs() {
		for _, id := range p.Children {
			switch d.nodes[id].(type) {
			case *InlineTokenNode, *DecoratorTokenNode:
				out = append(out, id)
			}
		}
	}
	return out
}

// PlainText flattens the document's text content. Token nodes
// contribute their displayed text; line breaks and paragraph boundaries
// become newlines.
func (d *Document) PlainText() string {
	var sb []byte
	for i, p := range d.Paragraphs() {
		if i > 0 {
			sb = append(sb, '\n')
		}
		for _, id := range p.Children {
			switch n := d.nodes[id].(type) {
			case *TextNode:
				sb = append(sb, n.Text...)
			case *InlineTokenNode:
				sb = append(sb, n.Token.Display...)
			case *LineBreakNode:
				sb = append(sb, '\n')
			}
		}
	}
	return string(sb)
}
