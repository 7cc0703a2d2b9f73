package entity

import (
	"time"

	"github.com/google/uuid"
)

type LetterDraft struct {
	Id            uuid.UUID
	ReceiptNumber string
	FormType      string
	AlienNumber   string
	LetterDate    *time.Time

	LetterTypeId            uuid.UUID
	OrganizationId          uuid.UUID
	OrganizationAddressId   *uuid.UUID
	OrganizationSignatureId *uuid.UUID

	// StartsWith / EndsWith hold the draft's edited opening and closing
	// regions; empty means the letter type's template applies.
	StartsWith string
	EndsWith   string

	// Margins is the stored page-margin map (top/right/bottom/left), kept
	// opaque as JSON.
	Margins map[string]interface{}

	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}

type LetterSection struct {
	Id      uuid.UUID
	DraftId uuid.UUID
	Text    *string
	Order   int
	Locked  bool

	CreatedAt time.Time
	UpdatedAt *time.Time
}
