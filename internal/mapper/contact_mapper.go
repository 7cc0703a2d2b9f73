package mapper

import (
	"time"

	"letter-drafting-be/internal/entity"
	"letter-drafting-be/internal/model"
)

type ContactMapper struct{}

func NewContactMapper() *ContactMapper {
	return &ContactMapper{}
}

func (m *ContactMapper) ToEntity(c *model.Contact) *entity.Contact {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.Contact{
		Id:              c.Id,
		DraftId:         c.DraftId,
		Role:            entity.ContactRole(c.Role),
		FirstName:       c.FirstName,
		MiddleName:      c.MiddleName,
		LastName:        c.LastName,
		FirmName:        c.FirmName,
		InCareOf:        c.InCareOf,
		Primary:         c.Primary,
		LetterRecipient: c.LetterRecipient,
		Nickname:        c.Nickname,
		PreAddress:      c.PreAddress,
		Street:          c.Street,
		AptSuiteFloor:   c.AptSuiteFloor,
		City:            c.City,
		StateOrProvince: c.StateOrProvince,
		ZipCode:         c.ZipCode,
		Country:         c.Country,
		ForeignAddress:  c.ForeignAddress,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *ContactMapper) ToModel(c *entity.Contact) *model.Contact {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.Contact{
		Id:              c.Id,
		DraftId:         c.DraftId,
		Role:            string(c.Role),
		FirstName:       c.FirstName,
		MiddleName:      c.MiddleName,
		LastName:        c.LastName,
		FirmName:        c.FirmName,
		InCareOf:        c.InCareOf,
		Primary:         c.Primary,
		LetterRecipient: c.LetterRecipient,
		Nickname:        c.Nickname,
		PreAddress:      c.PreAddress,
		Street:          c.Street,
		AptSuiteFloor:   c.AptSuiteFloor,
		City:            c.City,
		StateOrProvince: c.StateOrProvince,
		ZipCode:         c.ZipCode,
		Country:         c.Country,
		ForeignAddress:  c.ForeignAddress,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *ContactMapper) ToEntities(contacts []*model.Contact) []*entity.Contact {
	entities := make([]*entity.Contact, len(contacts))
	for i, c := range contacts {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
