package mapper

import (
	"time"

	"letter-drafting-be/internal/entity"
	"letter-drafting-be/internal/model"
)

type LetterSectionMapper struct{}

func NewLetterSectionMapper() *LetterSectionMapper {
	return &LetterSectionMapper{}
}

func (m *LetterSectionMapper) ToEntity(s *model.LetterSection) *entity.LetterSection {
	if s == nil {
		return nil
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.LetterSection{
		Id:        s.Id,
		DraftId:   s.DraftId,
		Text:      s.Text,
		Order:     s.Order,
		Locked:    s.Locked,
		CreatedAt: s.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *LetterSectionMapper) ToModel(s *entity.LetterSection) *model.LetterSection {
	if s == nil {
		return nil
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.LetterSection{
		Id:        s.Id,
		DraftId:   s.DraftId,
		Text:      s.Text,
		Order:     s.Order,
		Locked:    s.Locked,
		CreatedAt: s.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *LetterSectionMapper) ToEntities(sections []*model.LetterSection) []*entity.LetterSection {
	entities := make([]*entity.LetterSection, len(sections))
	for i, s := range sections {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
