package letterdoc

import (
	"errors"
	"strings"
	"testing"
)

func TestImportJSONAlwaysFails(t *testing.T) {
	_, err := ImportJSON([]byte(`{"root":{}}`))
	if !errors.Is(err, ErrJSONImportNotImplemented) {
		t.Fatalf("err = %v, want ErrJSONImportNotImplemented", err)
	}
}

func TestExportImportRoundTripScalarToken(t *testing.T) {
	doc := NewDocument()
	p := NewParagraphNode("")
	doc.AppendParagraph(p)
	doc.Append(p, NewTextNode("Re: ", 0, ""))
	doc.Append(p, NewInlineTokenNode(InlineToken{
		Kind:    KindReceiptNumber,
		Display: "IOE1234567890",
		Value:   "IOE1234567890",
	}, 0, ""))

	out := ExportHTML(doc)
	if !strings.Contains(out, `data-lexical-custom-node-type="receipt-number"`) {
		t.Fatalf("export missing type attribute: %q", out)
	}
	if !strings.Contains(out, `data-receipt-number="IOE1234567890"`) {
		t.Fatalf("export missing value attribute: %q", out)
	}

	doc2, err := ImportHTML(out)
	if err != nil {
		t.Fatal(err)
	}
	ids := doc2.TokenNodeIDs()
	if len(ids) != 1 {
		t.Fatalf("token count = %d, want 1", len(ids))
	}
	tok := doc2.Node(ids[0]).(*InlineTokenNode).Token
	if tok.Kind != KindReceiptNumber || tok.Value != "IOE1234567890" || tok.Display != "IOE1234567890" {
		t.Errorf("round-tripped token = %+v", tok)
	}
}

func TestExportImportRoundTripRecipientAddress(t *testing.T) {
	contact := Contact{
		FirstName: "Maria",
		LastName:  "Santos",
		InCareOf:  "John Doe",
		Address: Address{
			Street:          "42 Elm St",
			City:            "Dayton",
			StateOrProvince: "OH",
			ZipCode:         "45402",
		},
	}

	doc := NewDocument()
	p := NewParagraphNode("")
	doc.AppendParagraph(p)
	doc.Append(p, NewInlineTokenNode(InlineToken{
		Kind:    KindRecipientAddress,
		Display: contact.String(),
		Contact: &contact,
	}, 0, ""))

	out := ExportHTML(doc)
	if !strings.Contains(out, `data-recipient-address-city="Dayton"`) {
		t.Fatalf("export missing namespaced address attr: %q", out)
	}
	// Multi-line display encodes newlines as <br/>.
	if !strings.Contains(out, "<br/>") {
		t.Fatalf("export missing line breaks: %q", out)
	}

	doc2, err := ImportHTML(out)
	if err != nil {
		t.Fatal(err)
	}
	ids := doc2.TokenNodeIDs()
	if len(ids) != 1 {
		t.Fatalf("token count = %d, want 1", len(ids))
	}
	tok := doc2.Node(ids[0]).(*InlineTokenNode).Token
	if tok.Contact == nil {
		t.Fatal("Contact = nil after round trip")
	}
	if *tok.Contact != contact {
		t.Errorf("Contact = %+v, want %+v", *tok.Contact, contact)
	}
	if tok.Display != contact.String() {
		t.Errorf("Display = %q, want %q", tok.Display, contact.String())
	}
}

func TestExportImportRoundTripOrganizationAddress(t *testing.T) {
	addr := Address{
		Street:          "100 Main St",
		City:            "Springfield",
		StateOrProvince: "IL",
		ZipCode:         "62701",
		ForeignAddress:  false,
	}

	doc := NewDocument()
	p := NewParagraphNode("")
	doc.AppendParagraph(p)
	doc.Append(p, NewInlineTokenNode(InlineToken{
		Kind:    KindOrganizationAddress,
		Display: addr.String(),
		Address: &addr,
	}, 0, ""))

	doc2, err := ImportHTML(ExportHTML(doc))
	if err != nil {
		t.Fatal(err)
	}
	ids := doc2.TokenNodeIDs()
	if len(ids) != 1 {
		t.Fatalf("token count = %d, want 1", len(ids))
	}
	tok := doc2.Node(ids[0]).(*InlineTokenNode).Token
	if tok.Address == nil {
		t.Fatal("Address = nil after round trip")
	}
	if *tok.Address != addr {
		t.Errorf("Address = %+v, want %+v", *tok.Address, addr)
	}
}

func TestExportImportRoundTripDecorator(t *testing.T) {
	doc := NewDocument()
	p := NewParagraphNode("")
	doc.AppendParagraph(p)
	doc.Append(p, NewDecoratorTokenNode(DecoratorToken{
		Kind:        KindReceiptBarcode,
		Value:       "IOE1234567890",
		ShowBarcode: true,
		ImageSrc:    "data:image/png;base64,FAKE",
	}))

	out := ExportHTML(doc)
	if !strings.Contains(out, `data-barcode-value="IOE1234567890"`) {
		t.Fatalf("export missing barcode value: %q", out)
	}
	if !strings.Contains(out, `<img src="data:image/png;base64,FAKE"`) {
		t.Fatalf("export missing img: %q", out)
	}

	doc2, err := ImportHTML(out)
	if err != nil {
		t.Fatal(err)
	}
	ids := doc2.TokenNodeIDs()
	if len(ids) != 1 {
		t.Fatalf("token count = %d, want 1", len(ids))
	}
	tok := doc2.Node(ids[0]).(*DecoratorTokenNode).Token
	if tok.Value != "IOE1234567890" || !tok.ShowBarcode || tok.ImageSrc != "data:image/png;base64,FAKE" {
		t.Errorf("round-tripped decorator = %+v", tok)
	}
}

func TestSerializeDecoratorPlaceholderWhenEmpty(t *testing.T) {
	doc := NewDocument()
	p := NewParagraphNode("")
	doc.AppendParagraph(p)
	// Barcode with no backing value renders its placeholder text even
	// when the editor is closed.
	doc.Append(p, NewDecoratorTokenNode(DecoratorToken{
		Kind:        KindAlienBarcode,
		ShowBarcode: true,
	}))

	out := ExportHTML(doc)
	if strings.Contains(out, "<img") {
		t.Fatalf("export rendered an image with no value: %q", out)
	}
	if !strings.Contains(out, "[[[ALIEN_NUMBER_BARCODE]]]") {
		t.Fatalf("export missing placeholder: %q", out)
	}
}

func TestImportHTMLFormatting(t *testing.T) {
	doc, err := ImportHTML(`<p style="text-align: center"><b><i>hello</i></b> world</p>`)
	if err != nil {
		t.Fatal(err)
	}

	paras := doc.Paragraphs()
	if len(paras) != 1 {
		t.Fatalf("paragraph count = %d, want 1", len(paras))
	}
	if paras[0].Align != "center" {
		t.Errorf("Align = %q, want center", paras[0].Align)
	}

	var hello *TextNode
	for _, id := range paras[0].Children {
		if tn, ok := doc.Node(id).(*TextNode); ok && tn.Text == "hello" {
			hello = tn
		}
	}
	if hello == nil {
		t.Fatal("formatted text node not found")
	}
	if hello.Format&FormatBold == 0 || hello.Format&FormatItalic == 0 {
		t.Errorf("Format = %d, want bold|italic", hello.Format)
	}
}

func TestImportHTMLLineBreaks(t *testing.T) {
	doc, err := ImportHTML("<p>line one<br/>line two</p>")
	if err != nil {
		t.Fatal(err)
	}
	want := "line one\nline two"
	if got := doc.PlainText(); got != want {
		t.Errorf("PlainText = %q, want %q", got, want)
	}
}
