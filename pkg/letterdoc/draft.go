package letterdoc

import (
	"time"
)

// Draft is the mutable case-data context the resolution engine reads.
// It is a presentation-layer snapshot assembled from the persisted
// letter draft; token nodes reference it but never own durable state.
type Draft struct {
	Registration Registration

	Applicants     []*Contact
	Petitioner     *Contact
	Representative *Contact

	Organization Organization

	// Per-draft overrides. When set, they win over the cross-reference
	// flagged default.
	OrganizationAddressID   string
	OrganizationSignatureID string

	AlienNumber string
	LetterDate  time.Time

	LetterType LetterType
}

// Registration holds the case registration the letter is about.
type Registration struct {
	ReceiptNumber string
	FormType      string
}

// LetterType carries the letter-type metadata relevant to editing.
type LetterType struct {
	Name              string
	StartsWithLocked  bool
	EndsWithLocked    bool
	SignatureIncluded bool
}

// Organization is the issuing organization with its address and
// signature cross-references.
type Organization struct {
	Name       string
	Addresses  []*OrganizationAddress
	Signatures []*OrganizationSignature
}

// OrganizationAddress is an address cross-reference. At most one per
// organization should be flagged Default.
type OrganizationAddress struct {
	ID      string
	Active  bool
	Default bool
	Address Address
}

// OrganizationSignature is a signature cross-reference.
type OrganizationSignature struct {
	ID       string
	Active   bool
	Default  bool
	Name     string
	Title    string
	ImageURL string
}

// Contact is a person attached to the case. Role flags decide who the
// letter is addressed to.
type Contact struct {
	FirstName  string
	MiddleName string
	LastName   string
	FirmName   string
	InCareOf   string

	Primary         bool
	LetterRecipient bool

	Address Address
}

// Address is a postal address. ForeignAddress selects the
// suffix-formatting rule, not the country value.
type Address struct {
	Nickname        string
	PreAddress      string
	Street          string
	AptSuiteFloor   string
	City            string
	StateOrProvince string
	ZipCode         string
	Country         string
	ForeignAddress  bool
}

// Recipient resolves who the letter is addressed to. Precedence:
// representative, petitioner, primary applicant, then any other
// applicant flagged as letter recipient (slice order). Nil when nobody
// is flagged; callers fall back to the address placeholder.
func (d *Draft) Recipient() *Contact {
	if d == nil {
		return nil
	}
	if d.Representative != nil && d.Representative.LetterRecipient {
		return d.Representative
	}
	if d.Petitioner != nil && d.Petitioner.LetterRecipient {
		return d.Petitioner
	}
	for _, a := range d.Applicants {
		if a.Primary && a.LetterRecipient {
			return a
		}
	}
	for _, a := range d.Applicants {
		if a.LetterRecipient {
			return a
		}
	}
	return nil
}

// FindOrganizationAddress resolves the address used on the letter: the
// per-draft override when set, else the cross-reference flagged
// default.
func (d *Draft) FindOrganizationAddress() *OrganizationAddress {
	if d == nil {
		return nil
	}
	if d.OrganizationAddressID != "" {
		for _, a := range d.Organization.Addresses {
			if a.ID == d.OrganizationAddressID {
				return a
			}
		}
	}
	for _, a := range d.Organization.Addresses {
		if a.Default {
			return a
		}
	}
	return nil
}

// FindOrganizationSignature resolves the signature block the same way.
func (d *Draft) FindOrganizationSignature() *OrganizationSignature {
	if d == nil {
		return nil
	}
	if d.OrganizationSignatureID != "" {
		for _, s := range d.Organization.Signatures {
			if s.ID == d.OrganizationSignatureID {
				return s
			}
		}
	}
	for _, s := range d.Organization.Signatures {
		if s.Default {
			return s
		}
	}
	return nil
}

// LetterDateDisplay renders the letter date in long form, e.g.
// "August 27, 2026". Empty when no date is set.
func (d *Draft) LetterDateDisplay() string {
	if d == nil || d.LetterDate.IsZero() {
		return ""
	}
	return d.LetterDate.Format("January 2, 2006")
}
