package model

import (
	"time"

	"github.com/google/uuid"
)

type Contact struct {
	Id      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DraftId uuid.UUID `gorm:"type:uuid;not null;index"`
	Role    string    `gorm:"type:varchar(32);not null;index"`

	FirstName  string `gorm:"type:varchar(255)"`
	MiddleName string `gorm:"type:varchar(255)"`
	LastName   string `gorm:"type:varchar(255)"`
	FirmName   string `gorm:"type:varchar(255)"`
	InCareOf   string `gorm:"type:varchar(255)"`

	Primary         bool `gorm:"column:is_primary;not null;default:false"`
	LetterRecipient bool `gorm:"not null;default:false"`

	Nickname        string `gorm:"type:varchar(255)"`
	PreAddress      string `gorm:"type:varchar(255)"`
	Street          string `gorm:"type:varchar(255)"`
	AptSuiteFloor   string `gorm:"type:varchar(255)"`
	City            string `gorm:"type:varchar(255)"`
	StateOrProvince string `gorm:"type:varchar(255)"`
	ZipCode         string `gorm:"type:varchar(32)"`
	Country         string `gorm:"type:varchar(255)"`
	ForeignAddress  bool   `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Contact) TableName() string {
	return "contacts"
}
