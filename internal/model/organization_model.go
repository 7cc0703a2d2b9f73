package model

import (
	"time"

	"github.com/google/uuid"
)

type Organization struct {
	Id   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name string    `gorm:"type:varchar(255);not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Organization) TableName() string {
	return "organizations"
}

type OrganizationAddress struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationId uuid.UUID `gorm:"type:uuid;not null;index"`
	Active         bool      `gorm:"not null;default:true"`
	Default        bool      `gorm:"column:is_default;not null;default:false"`

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

func (OrganizationAddress) TableName() string {
	return "organization_addresses"
}

type OrganizationSignature struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationId uuid.UUID `gorm:"type:uuid;not null;index"`
	Active         bool      `gorm:"not null;default:true"`
	Default        bool      `gorm:"column:is_default;not null;default:false"`

	Name     string `gorm:"type:varchar(255)"`
	Title    string `gorm:"type:varchar(255)"`
	ImageURL string `gorm:"type:varchar(512)"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (OrganizationSignature) TableName() string {
	return "organization_signatures"
}
