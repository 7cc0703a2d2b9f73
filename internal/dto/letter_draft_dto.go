package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateLetterDraftRequest struct {
	ReceiptNumber  string     `json:"receipt_number"`
	FormType       string     `json:"form_type"`
	AlienNumber    string     `json:"alien_number"`
	LetterDate     *time.Time `json:"letter_date"`
	LetterTypeId   uuid.UUID  `json:"letter_type_id" validate:"required"`
	OrganizationId uuid.UUID  `json:"organization_id" validate:"required"`
}

type CreateLetterDraftResponse struct {
	Id uuid.UUID `json:"id"`
}

type LetterSectionResponse struct {
	Id     uuid.UUID `json:"id"`
	Text   *string   `json:"text"`
	Order  int       `json:"order"`
	Locked bool      `json:"locked"`
}

type ContactResponse struct {
	Id              uuid.UUID `json:"id"`
	Role            string    `json:"role"`
	FirstName       string    `json:"first_name"`
	MiddleName      string    `json:"middle_name"`
	LastName        string    `json:"last_name"`
	FirmName        string    `json:"firm_name"`
	InCareOf        string    `json:"in_care_of"`
	Primary         bool      `json:"primary"`
	LetterRecipient bool      `json:"letter_recipient"`
	Nickname        string    `json:"nickname"`
	PreAddress      string    `json:"pre_address"`
	Street          string    `json:"street"`
	AptSuiteFloor   string    `json:"apt_suite_floor"`
	City            string    `json:"city"`
	StateOrProvince string    `json:"state_or_province"`
	ZipCode         string    `json:"zip_code"`
	Country         string    `json:"country"`
	ForeignAddress  bool      `json:"foreign_address"`
}

type ShowLetterDraftResponse struct {
	Id            uuid.UUID  `json:"id"`
	ReceiptNumber string     `json:"receipt_number"`
	FormType      string     `json:"form_type"`
	AlienNumber   string     `json:"alien_number"`
	LetterDate    *time.Time `json:"letter_date"`

	LetterType   *LetterTypeResponse   `json:"letter_type"`
	Organization *OrganizationResponse `json:"organization"`

	OrganizationAddressId   *uuid.UUID `json:"organization_address_id"`
	OrganizationSignatureId *uuid.UUID `json:"organization_signature_id"`

	StartsWith string `json:"starts_with"`
	EndsWith   string `json:"ends_with"`

	Margins map[string]interface{} `json:"margins"`

	Contacts []*ContactResponse       `json:"contacts"`
	Sections []*LetterSectionResponse `json:"sections"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// SaveSectionPayload mirrors the editor's save entry. A tombstoned
// section arrives with its backend id, a null text and Destroy=1.
type SaveSectionPayload struct {
	Id      *uuid.UUID `json:"id"`
	Text    *string    `json:"text"`
	Order   int        `json:"order"`
	Locked  bool       `json:"locked"`
	Destroy *int       `json:"_destroy,omitempty"`
}

type SaveLetterDraftRequest struct {
	Id uuid.UUID `json:"-"`

	LetterDate              *time.Time `json:"letter_date"`
	AlienNumber             string     `json:"alien_number"`
	OrganizationAddressId   *uuid.UUID `json:"organization_address_id"`
	OrganizationSignatureId *uuid.UUID `json:"organization_signature_id"`

	Margins map[string]interface{} `json:"margins"`

	StartsWith string `json:"starts_with"`
	EndsWith   string `json:"ends_with"`

	Sections []SaveSectionPayload `json:"sections" validate:"required"`
}

type SaveLetterDraftResponse struct {
	Id uuid.UUID `json:"id"`
}
