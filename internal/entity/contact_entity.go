package entity

import (
	"time"

	"github.com/google/uuid"
)

// ContactRole discriminates how a contact is attached to a draft.
type ContactRole string

const (
	RoleApplicant      ContactRole = "applicant"
	RolePetitioner     ContactRole = "petitioner"
	RoleRepresentative ContactRole = "representative"
)

type Contact struct {
	Id      uuid.UUID
	DraftId uuid.UUID
	Role    ContactRole

	FirstName  string
	MiddleName string
	LastName   string
	FirmName   string
	InCareOf   string

	Primary         bool
	LetterRecipient bool

	Nickname        string
	PreAddress      string
	Street          string
	AptSuiteFloor   string
	City            string
	StateOrProvince string
	ZipCode         string
	Country         string
	ForeignAddress  bool

	CreatedAt time.Time
	UpdatedAt *time.Time
}
