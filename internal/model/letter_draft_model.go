package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type LetterDraft struct {
	Id            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ReceiptNumber string     `gorm:"type:varchar(32);index"`
	FormType      string     `gorm:"type:varchar(32)"`
	AlienNumber   string     `gorm:"type:varchar(32)"`
	LetterDate    *time.Time `gorm:"type:date"`

	LetterTypeId            uuid.UUID  `gorm:"type:uuid;not null;index"`
	OrganizationId          uuid.UUID  `gorm:"type:uuid;not null;index"`
	OrganizationAddressId   *uuid.UUID `gorm:"type:uuid"`
	OrganizationSignatureId *uuid.UUID `gorm:"type:uuid"`

	StartsWith string `gorm:"type:text"`
	EndsWith   string `gorm:"type:text"`

	Margins datatypes.JSON `gorm:"type:jsonb"`

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (LetterDraft) TableName() string {
	return "letter_drafts"
}
