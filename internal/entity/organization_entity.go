package entity

import (
	"time"

	"github.com/google/uuid"
)

type Organization struct {
	Id   uuid.UUID
	Name string

	Addresses  []*OrganizationAddress
	Signatures []*OrganizationSignature

	CreatedAt time.Time
	UpdatedAt *time.Time
}

type OrganizationAddress struct {
	Id             uuid.UUID
	OrganizationId uuid.UUID
	Active         bool
	Default        bool

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

type OrganizationSignature struct {
	Id             uuid.UUID
	OrganizationId uuid.UUID
	Active         bool
	Default        bool

	Name     string
	Title    string
	ImageURL string

	CreatedAt time.Time
	UpdatedAt *time.Time
}
