package letterdoc

// Kind identifies one variable token kind. The value doubles as the
// data-lexical-custom-node-type attribute in the stored HTML, so it
// must stay stable across releases.
type Kind string

const (
	KindReceiptNumber       Kind = "receipt-number"
	KindAlienNumber         Kind = "alien-number"
	KindRecipientAddress    Kind = "recipient-address"
	KindOrganizationAddress Kind = "organization-address"
	KindOrganizationName    Kind = "organization-name"
	KindLetterDate          Kind = "letter-date"
	KindDHSSeal             Kind = "dhs-seal"
	KindReceiptBarcode      Kind = "receipt-number-barcode"
	KindAlienBarcode        Kind = "alien-number-barcode"
)

// Search strings are matched case-insensitively, so a user may type
// [[[receipt_number]]] and still get a token.
const (
	SearchReceiptNumber       = "[[[RECEIPT_NUMBER]]]"
	SearchAlienNumber         = "[[[ALIEN_NUMBER]]]"
	SearchRecipientAddress    = "[[[ADDRESS]]]"
	SearchOrganizationAddress = "[[[ORGANIZATION_ADDRESS]]]"
	SearchOrganizationName    = "[[[ORGANIZATION_NAME]]]"
	SearchLetterDate          = "[[[LETTER_DATE]]]"
	SearchDHSSeal             = "[[[DHS_SEAL]]]"
	SearchReceiptBarcode      = "[[[RECEIPT_NUMBER_BARCODE]]]"
	SearchAlienBarcode        = "[[[ALIEN_NUMBER_BARCODE]]]"
)

// InlineToken is the structured value behind an inline variable: a
// simple string substitutable in place of typed text. Display holds
// what the editor currently shows (either the resolved value or the
// placeholder search string); the remaining fields are the backing
// structured value.
type InlineToken struct {
	Kind    Kind
	Display string

	// Value backs the scalar kinds (receipt number, alien number,
	// organization name, letter date).
	Value string

	// Contact backs recipient-address; Address backs
	// organization-address.
	Contact *Contact
	Address *Address
}

// ShowVariable reverts the token to its placeholder display form.
func (t InlineToken) ShowVariable() InlineToken {
	t.Display = SearchText(t.Kind)
	return t
}

// DecoratorToken is the structured value behind a decorator variable:
// non-text visual content (a generated barcode image or the seal).
// Decorator tokens never participate in plain-text editing.
type DecoratorToken struct {
	Kind  Kind
	Value string

	// ShowBarcode is false while the surrounding editor is open; the
	// literal placeholder text is shown instead of the image.
	ShowBarcode bool

	// ImageSrc is the rendered image source: a CODE39 data URL for
	// barcode kinds, the configured seal URL for the seal.
	ImageSrc string
}

// ShowVariable reverts the decorator to placeholder display.
func (t DecoratorToken) ShowVariable() DecoratorToken {
	t.ShowBarcode = false
	return t
}

type tokenSpec struct {
	kind       Kind
	searchText string
	decorator  bool
}

// registry is the closed set of recognized token kinds. New kinds are
// added here plus a serializer and a resolver case; there is no
// subclass hierarchy to extend.
var registry = []tokenSpec{
	{KindReceiptNumber, SearchReceiptNumber, false},
	{KindAlienNumber, SearchAlienNumber, false},
	{KindOrganizationAddress, SearchOrganizationAddress, false},
	{KindOrganizationName, SearchOrganizationName, false},
	{KindRecipientAddress, SearchRecipientAddress, false},
	{KindLetterDate, SearchLetterDate, false},
	{KindDHSSeal, SearchDHSSeal, true},
	{KindReceiptBarcode, SearchReceiptBarcode, true},
	{KindAlienBarcode, SearchAlienBarcode, true},
}

// SearchText returns the placeholder literal for a kind, or "" for an
// unknown kind.
func SearchText(k Kind) string {
	for _, spec := range registry {
		if spec.kind == k {
			return spec.searchText
		}
	}
	return ""
}

// IsDecorator reports whether the kind renders as non-text content.
func IsDecorator(k Kind) bool {
	for _, spec := range registry {
		if spec.kind == k {
			return spec.decorator
		}
	}
	return false
}

// Kinds returns every registered kind in registry order.
func Kinds() []Kind {
	out := make([]Kind, len(registry))
	for i, spec := range registry {
		out[i] = spec.kind
	}
	return out
}
