package letterdoc

import (
	"strings"
)

// Lines renders the address in its multi-line text form:
//
//	nickname            (when present)
//	pre-address         (when present)
//	street apt/suite
//	City, ST ZIP        (domestic)
//	City Province Postal
//	Country             (foreign, two lines)
//
// The domestic/foreign rule is selected by the ForeignAddress flag,
// never inferred from the country value.
func (a Address) Lines() []string {
	var lines []string
	if a.Nickname != "" {
		lines = append(lines, a.Nickname)
	}
	if a.PreAddress != "" {
		lines = append(lines, a.PreAddress)
	}

	street := a.Street
	if a.AptSuiteFloor != "" {
		street = strings.TrimSpace(street + " " + a.AptSuiteFloor)
	}
	if street != "" {
		lines = append(lines, street)
	}

	if a.ForeignAddress {
		suffix := joinNonEmpty(" ", a.City, a.StateOrProvince, a.ZipCode)
		if suffix != "" {
			lines = append(lines, suffix)
		}
		if a.Country != "" {
			lines = append(lines, a.Country)
		}
		return lines
	}

	suffix := a.City
	rest := joinNonEmpty(" ", a.StateOrProvince, a.ZipCode)
	if suffix != "" && rest != "" {
		suffix = suffix + ", " + rest
	} else if suffix == "" {
		suffix = rest
	}
	if suffix != "" {
		lines = append(lines, suffix)
	}
	return lines
}

// String joins the address lines with newlines.
func (a Address) String() string {
	return strings.Join(a.Lines(), "\n")
}

// FullName joins the contact's name parts.
func (c Contact) FullName() string {
	return joinNonEmpty(" ", c.FirstName, c.MiddleName, c.LastName)
}

// Lines renders the contact as the letter's address block: name, then
// "C/O ..." when an in-care-of value is present, then the firm name,
// then the address lines.
func (c Contact) Lines() []string {
	var lines []string
	if name := c.FullName(); name != "" {
		lines = append(lines, name)
	}
	if c.InCareOf != "" {
		lines = append(lines, "C/O "+c.InCareOf)
	}
	if c.FirmName != "" {
		lines = append(lines, c.FirmName)
	}
	return append(lines, c.Address.Lines()...)
}

// String joins the contact block lines with newlines.
func (c Contact) String() string {
	return strings.Join(c.Lines(), "\n")
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
