package letterdoc

import (
	"strings"
	"testing"
	"time"
)

func testDraft() *Draft {
	return &Draft{
		Registration: Registration{
			ReceiptNumber: "IOE1234567890",
			FormType:      "I-485",
		},
		AlienNumber: "A123456789",
		LetterDate:  time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC),
		Organization: Organization{
			Name: "Acme Immigration Law",
			Addresses: []*OrganizationAddress{
				{
					ID:      "addr-default",
					Active:  true,
					Default: true,
					Address: Address{
						Street:          "100 Main St",
						City:            "Springfield",
						StateOrProvince: "IL",
						ZipCode:         "62701",
					},
				},
				{
					ID:     "addr-branch",
					Active: true,
					Address: Address{
						Street:          "200 Branch Ave",
						City:            "Chicago",
						StateOrProvince: "IL",
						ZipCode:         "60601",
					},
				},
			},
		},
		Applicants: []*Contact{
			{
				FirstName:       "Maria",
				LastName:        "Santos",
				Primary:         true,
				LetterRecipient: true,
				Address: Address{
					Street:          "42 Elm St",
					City:            "Dayton",
					StateOrProvince: "OH",
					ZipCode:         "45402",
				},
			},
		},
	}
}

func testEngine() *Engine {
	return NewEngineWithBarcode("/uploads/dhs-seal.png", func(text string) (string, error) {
		return "data:image/png;base64,FAKE", nil
	})
}

func TestResolveInlineToken(t *testing.T) {
	e := testEngine()
	d := testDraft()

	tests := []struct {
		name        string
		kind        Kind
		editorOpen  bool
		wantDisplay string
	}{
		{
			name:        "receipt number resolved",
			kind:        KindReceiptNumber,
			wantDisplay: "IOE1234567890",
		},
		{
			name:        "alien number resolved",
			kind:        KindAlienNumber,
			wantDisplay: "A123456789",
		},
		{
			name:        "organization name resolved",
			kind:        KindOrganizationName,
			wantDisplay: "Acme Immigration Law",
		},
		{
			name:        "letter date long form",
			kind:        KindLetterDate,
			wantDisplay: "March 14, 2026",
		},
		{
			name:        "editor open shows placeholder",
			kind:        KindReceiptNumber,
			editorOpen:  true,
			wantDisplay: "[[[RECEIPT_NUMBER]]]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := e.ResolveInlineToken(tt.kind, d, tt.editorOpen)
			if tok.Display != tt.wantDisplay {
				t.Errorf("Display = %q, want %q", tok.Display, tt.wantDisplay)
			}
		})
	}
}

func TestResolveInlineTokenMissingData(t *testing.T) {
	e := testEngine()
	d := &Draft{}

	tok := e.ResolveInlineToken(KindReceiptNumber, d, false)
	if tok.Display != SearchReceiptNumber {
		t.Errorf("Display = %q, want placeholder %q", tok.Display, SearchReceiptNumber)
	}

	tok = e.ResolveInlineToken(KindRecipientAddress, d, false)
	if tok.Display != SearchRecipientAddress {
		t.Errorf("Display = %q, want placeholder %q", tok.Display, SearchRecipientAddress)
	}
}

func TestResolveRecipientAddress(t *testing.T) {
	e := testEngine()
	d := testDraft()

	tok := e.ResolveInlineToken(KindRecipientAddress, d, false)
	if tok.Contact == nil {
		t.Fatal("Contact = nil, want resolved recipient")
	}
	if !strings.Contains(tok.Display, "Maria Santos") {
		t.Errorf("Display = %q, want name line", tok.Display)
	}
	if !strings.Contains(tok.Display, "Dayton, OH 45402") {
		t.Errorf("Display = %q, want city line", tok.Display)
	}
}

func TestResolveOrganizationAddressOverride(t *testing.T) {
	e := testEngine()
	d := testDraft()

	tok := e.ResolveInlineToken(KindOrganizationAddress, d, false)
	if !strings.Contains(tok.Display, "100 Main St") {
		t.Errorf("default Display = %q, want default address", tok.Display)
	}

	d.OrganizationAddressID = "addr-branch"
	tok = e.ResolveInlineToken(KindOrganizationAddress, d, false)
	if !strings.Contains(tok.Display, "200 Branch Ave") {
		t.Errorf("override Display = %q, want branch address", tok.Display)
	}
}

func TestResolveDecoratorToken(t *testing.T) {
	e := testEngine()
	d := testDraft()

	tok := e.ResolveDecoratorToken(KindReceiptBarcode, d, false)
	if tok.Value != "IOE1234567890" {
		t.Errorf("Value = %q, want receipt number", tok.Value)
	}
	if !tok.ShowBarcode {
		t.Error("ShowBarcode = false, want true when editor closed")
	}
	if tok.ImageSrc != "data:image/png;base64,FAKE" {
		t.Errorf("ImageSrc = %q, want rendered barcode", tok.ImageSrc)
	}

	tok = e.ResolveDecoratorToken(KindReceiptBarcode, d, true)
	if tok.ShowBarcode {
		t.Error("ShowBarcode = true, want false while editor open")
	}
	if tok.ImageSrc != "" {
		t.Errorf("ImageSrc = %q, want empty while editor open", tok.ImageSrc)
	}

	tok = e.ResolveDecoratorToken(KindDHSSeal, d, false)
	if tok.ImageSrc != "/uploads/dhs-seal.png" {
		t.Errorf("seal ImageSrc = %q, want configured URL", tok.ImageSrc)
	}
}

func TestResolveVariablesCaseInsensitive(t *testing.T) {
	e := testEngine()
	d := testDraft()

	doc, err := ImportHTML("<p>Re: [[[receipt_number]]] filed.</p>")
	if err != nil {
		t.Fatal(err)
	}
	e.ResolveVariables(doc, d, false)

	if got := len(doc.TokenNodeIDs()); got != 1 {
		t.Fatalf("token count = %d, want 1", got)
	}
	if text := doc.PlainText(); !strings.Contains(text, "IOE1234567890") {
		t.Errorf("PlainText = %q, want resolved value", text)
	}
}

func TestResolveVariablesSplitsSurroundingText(t *testing.T) {
	e := testEngine()
	d := testDraft()

	doc, err := ImportHTML("<p>Case [[[RECEIPT_NUMBER]]] and [[[ALIEN_NUMBER]]] noted.</p>")
	if err != nil {
		t.Fatal(err)
	}
	e.ResolveVariables(doc, d, false)

	if got := len(doc.TokenNodeIDs()); got != 2 {
		t.Fatalf("token count = %d, want 2", got)
	}
	want := "Case IOE1234567890 and A123456789 noted."
	if got := doc.PlainText(); got != want {
		t.Errorf("PlainText = %q, want %q", got, want)
	}
}

func TestResolveVariablesMultibyteText(t *testing.T) {
	e := testEngine()
	d := testDraft()

	// ı uppercases to the one-byte I; offsets must come from the
	// original text, not a case-mapped copy.
	doc, err := ImportHTML("<p>ınt [[[receipt_number]]] now.</p>")
	if err != nil {
		t.Fatal(err)
	}
	e.ResolveVariables(doc, d, false)

	if got := len(doc.TokenNodeIDs()); got != 1 {
		t.Fatalf("token count = %d, want 1", got)
	}
	want := "ınt IOE1234567890 now."
	if got := doc.PlainText(); got != want {
		t.Errorf("PlainText = %q, want %q", got, want)
	}
}

func TestResolveVariablesNeverRematches(t *testing.T) {
	e := testEngine()
	d := testDraft()

	// Placeholder display still contains the literal search text, but a
	// resolved token node must never match again.
	doc, err := ImportHTML("<p>[[[RECEIPT_NUMBER]]]</p>")
	if err != nil {
		t.Fatal(err)
	}
	e.ResolveVariables(doc, d, true)
	if got := len(doc.TokenNodeIDs()); got != 1 {
		t.Fatalf("token count after first pass = %d, want 1", got)
	}

	e.ResolveVariables(doc, d, true)
	if got := len(doc.TokenNodeIDs()); got != 1 {
		t.Errorf("token count after second pass = %d, want 1", got)
	}
}

func TestResolveVariablesPreservesFormatting(t *testing.T) {
	e := testEngine()
	d := testDraft()

	doc, err := ImportHTML("<p><b>[[[RECEIPT_NUMBER]]]</b></p>")
	if err != nil {
		t.Fatal(err)
	}
	e.ResolveVariables(doc, d, false)

	ids := doc.TokenNodeIDs()
	if len(ids) != 1 {
		t.Fatalf("token count = %d, want 1", len(ids))
	}
	tok, ok := doc.Node(ids[0]).(*InlineTokenNode)
	if !ok {
		t.Fatal("node is not an inline token")
	}
	if tok.Format&FormatBold == 0 {
		t.Error("token lost bold formatting of the matched text")
	}

	if out := ExportHTML(doc); !strings.Contains(out, "<b>") {
		t.Errorf("ExportHTML = %q, want bold wrapper", out)
	}
}

func TestUpdateFromDraftKeepsNodeIdentity(t *testing.T) {
	e := testEngine()
	d := testDraft()

	doc, err := ImportHTML("<p>[[[RECEIPT_NUMBER]]]</p>")
	if err != nil {
		t.Fatal(err)
	}
	e.ResolveVariables(doc, d, false)
	before := doc.TokenNodeIDs()

	d.Registration.ReceiptNumber = "IOE9999999999"
	e.UpdateFromDraft(doc, d)

	after := doc.TokenNodeIDs()
	if len(before) != 1 || len(after) != 1 || before[0] != after[0] {
		t.Fatalf("node ids changed: before %v, after %v", before, after)
	}
	if text := doc.PlainText(); !strings.Contains(text, "IOE9999999999") {
		t.Errorf("PlainText = %q, want updated value", text)
	}
}

func TestShowVariables(t *testing.T) {
	e := testEngine()
	d := testDraft()

	doc, err := ImportHTML("<p>[[[RECEIPT_NUMBER]]]</p>")
	if err != nil {
		t.Fatal(err)
	}
	e.ResolveVariables(doc, d, false)
	e.ShowVariables(doc)

	if text := doc.PlainText(); text != "[[[RECEIPT_NUMBER]]]" {
		t.Errorf("PlainText = %q, want placeholder", text)
	}
}

func TestRecipientPrecedence(t *testing.T) {
	rep := &Contact{FirstName: "Rita", LastName: "Rep", LetterRecipient: true}
	pet := &Contact{FirstName: "Paul", LastName: "Pet", LetterRecipient: true}
	primary := &Contact{FirstName: "Ann", LastName: "Applicant", Primary: true, LetterRecipient: true}
	secondary := &Contact{FirstName: "Ben", LastName: "Applicant", LetterRecipient: true}

	tests := []struct {
		name  string
		draft *Draft
		want  *Contact
	}{
		{
			name: "representative wins",
			draft: &Draft{
				Representative: rep,
				Petitioner:     pet,
				Applicants:     []*Contact{primary, secondary},
			},
			want: rep,
		},
		{
			name: "petitioner next",
			draft: &Draft{
				Petitioner: pet,
				Applicants: []*Contact{primary, secondary},
			},
			want: pet,
		},
		{
			name: "primary applicant next",
			draft: &Draft{
				Applicants: []*Contact{secondary, primary},
			},
			want: primary,
		},
		{
			name: "any flagged applicant last",
			draft: &Draft{
				Applicants: []*Contact{{FirstName: "Off"}, secondary},
			},
			want: secondary,
		},
		{
			name: "unflagged representative skipped",
			draft: &Draft{
				Representative: &Contact{FirstName: "Quiet"},
				Applicants:     []*Contact{secondary},
			},
			want: secondary,
		},
		{
			name:  "nobody flagged",
			draft: &Draft{Applicants: []*Contact{{FirstName: "Off"}}},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.draft.Recipient(); got != tt.want {
				t.Errorf("Recipient() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHydrateHTMLEndToEnd(t *testing.T) {
	e := testEngine()
	d := testDraft()

	raw := `<p>Re: [[[RECEIPT_NUMBER]]]</p><p>[[[ADDRESS]]]</p><p>[[[RECEIPT_NUMBER_BARCODE]]]</p>`
	out, err := e.HydrateHTML(raw, d)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out, `data-lexical-custom-node-type="receipt-number"`) {
		t.Errorf("output missing receipt-number token span: %q", out)
	}
	if !strings.Contains(out, "IOE1234567890") {
		t.Errorf("output missing resolved receipt number: %q", out)
	}
	if !strings.Contains(out, "Maria Santos") {
		t.Errorf("output missing recipient name: %q", out)
	}
	if !strings.Contains(out, `src="data:image/png;base64,FAKE"`) {
		t.Errorf("output missing barcode image: %q", out)
	}
}

func TestHydrateMany(t *testing.T) {
	e := testEngine()
	d := testDraft()

	items := []HydrateItem{
		{ContentID: "starts_with", HTML: "<p>[[[LETTER_DATE]]]</p>"},
		{ContentID: "ends_with", HTML: "<p>[[[ORGANIZATION_NAME]]]</p>"},
	}
	out, err := e.HydrateMany(items, d)
	if err != nil {
		t.Fatal(err)
	}

	if len(out) != 2 {
		t.Fatalf("result count = %d, want 2", len(out))
	}
	if !strings.Contains(out["starts_with"], "March 14, 2026") {
		t.Errorf("starts_with = %q, want resolved date", out["starts_with"])
	}
	if !strings.Contains(out["ends_with"], "Acme Immigration Law") {
		t.Errorf("ends_with = %q, want organization name", out["ends_with"])
	}
}
