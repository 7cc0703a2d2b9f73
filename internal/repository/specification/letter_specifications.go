package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByDraftID filters rows belonging to one letter draft.
type ByDraftID struct {
	DraftID uuid.UUID
}

func (s ByDraftID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("draft_id = ?", s.DraftID)
}

// ByOrganizationID filters organization cross-references.
type ByOrganizationID struct {
	OrganizationID uuid.UUID
}

func (s ByOrganizationID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("organization_id = ?", s.OrganizationID)
}

// ActiveOnly keeps active cross-references.
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("active = ?", true)
}

// DefaultOnly keeps the record flagged as default.
type DefaultOnly struct{}

func (s DefaultOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_default = ?", true)
}

// ByRole filters contacts attached with a given role.
type ByRole struct {
	Role string
}

func (s ByRole) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("role = ?", s.Role)
}

// OrderedSections sorts letter sections by their display order.
type OrderedSections struct{}

func (s OrderedSections) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC")
}
