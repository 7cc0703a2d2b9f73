package mapper

import (
	"time"

	"letter-drafting-be/internal/entity"
	"letter-drafting-be/internal/model"
)

type LetterTypeMapper struct{}

func NewLetterTypeMapper() *LetterTypeMapper {
	return &LetterTypeMapper{}
}

func (m *LetterTypeMapper) ToEntity(t *model.LetterType) *entity.LetterType {
	if t == nil {
		return nil
	}
	return &entity.LetterType{
		Id:                t.Id,
		Name:              t.Name,
		StartsWith:        t.StartsWith,
		EndsWith:          t.EndsWith,
		StartsWithLocked:  t.StartsWithLocked,
		EndsWithLocked:    t.EndsWithLocked,
		SignatureIncluded: t.SignatureIncluded,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         updatedAtPtr(t.UpdatedAt),
	}
}

func (m *LetterTypeMapper) ToModel(t *entity.LetterType) *model.LetterType {
	if t == nil {
		return nil
	}
	var updatedAt time.Time
	if t.UpdatedAt != nil {
		updatedAt = *t.UpdatedAt
	}
	return &model.LetterType{
		Id:                t.Id,
		Name:              t.Name,
		StartsWith:        t.StartsWith,
		EndsWith:          t.EndsWith,
		StartsWithLocked:  t.StartsWithLocked,
		EndsWithLocked:    t.EndsWithLocked,
		SignatureIncluded: t.SignatureIncluded,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         updatedAt,
	}
}

func (m *LetterTypeMapper) ToEntities(types []*model.LetterType) []*entity.LetterType {
	entities := make([]*entity.LetterType, len(types))
	for i, t := range types {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
