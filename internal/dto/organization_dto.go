package dto

import (
	"github.com/google/uuid"
)

type OrganizationAddressResponse struct {
	Id              uuid.UUID `json:"id"`
	Active          bool      `json:"active"`
	Default         bool      `json:"default"`
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

type OrganizationSignatureResponse struct {
	Id       uuid.UUID `json:"id"`
	Active   bool      `json:"active"`
	Default  bool      `json:"default"`
	Name     string    `json:"name"`
	Title    string    `json:"title"`
	ImageURL string    `json:"image_url"`
}

type OrganizationResponse struct {
	Id         uuid.UUID                        `json:"id"`
	Name       string                           `json:"name"`
	Addresses  []*OrganizationAddressResponse   `json:"addresses"`
	Signatures []*OrganizationSignatureResponse `json:"signatures"`
}
