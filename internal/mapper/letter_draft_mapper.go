package mapper

import (
	"encoding/json"
	"time"

	"letter-drafting-be/internal/entity"
	"letter-drafting-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type LetterDraftMapper struct{}

func NewLetterDraftMapper() *LetterDraftMapper {
	return &LetterDraftMapper{}
}

func (m *LetterDraftMapper) ToEntity(d *model.LetterDraft) *entity.LetterDraft {
	if d == nil {
		return nil
	}

	var deletedAt *time.Time
	if d.DeletedAt.Valid {
		t := d.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !d.UpdatedAt.IsZero() {
		t := d.UpdatedAt
		updatedAt = &t
	}

	var margins map[string]interface{}
	if len(d.Margins) > 0 {
		// Corrupt margin blobs degrade to nil rather than failing a read.
		_ = json.Unmarshal(d.Margins, &margins)
	}

	return &entity.LetterDraft{
		Id:                      d.Id,
		ReceiptNumber:           d.ReceiptNumber,
		FormType:                d.FormType,
		AlienNumber:             d.AlienNumber,
		LetterDate:              d.LetterDate,
		LetterTypeId:            d.LetterTypeId,
		OrganizationId:          d.OrganizationId,
		OrganizationAddressId:   d.OrganizationAddressId,
		OrganizationSignatureId: d.OrganizationSignatureId,
		StartsWith:              d.StartsWith,
		EndsWith:                d.EndsWith,
		Margins:                 margins,
		CreatedAt:               d.CreatedAt,
		UpdatedAt:               updatedAt,
		DeletedAt:               deletedAt,
		IsDeleted:               d.DeletedAt.Valid,
	}
}

func (m *LetterDraftMapper) ToModel(d *entity.LetterDraft) *model.LetterDraft {
	if d == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if d.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *d.DeletedAt, Valid: true}
	} else if d.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if d.UpdatedAt != nil {
		updatedAt = *d.UpdatedAt
	}

	var margins datatypes.JSON
	if d.Margins != nil {
		if raw, err := json.Marshal(d.Margins); err == nil {
			margins = raw
		}
	}

	return &model.LetterDraft{
		Id:                      d.Id,
		ReceiptNumber:           d.ReceiptNumber,
		FormType:                d.FormType,
		AlienNumber:             d.AlienNumber,
		LetterDate:              d.LetterDate,
		LetterTypeId:            d.LetterTypeId,
		OrganizationId:          d.OrganizationId,
		OrganizationAddressId:   d.OrganizationAddressId,
		OrganizationSignatureId: d.OrganizationSignatureId,
		StartsWith:              d.StartsWith,
		EndsWith:                d.EndsWith,
		Margins:                 margins,
		CreatedAt:               d.CreatedAt,
		UpdatedAt:               updatedAt,
		DeletedAt:               deletedAt,
	}
}

func (m *LetterDraftMapper) ToEntities(drafts []*model.LetterDraft) []*entity.LetterDraft {
	entities := make([]*entity.LetterDraft, len(drafts))
	for i, d := range drafts {
		entities[i] = m.ToEntity(d)
	}
	return entities
}
