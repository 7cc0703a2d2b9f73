package implementation

import (
	"context"
	"errors"

	"letter-drafting-be/internal/entity"
	"letter-drafting-be/internal/mapper"
	"letter-drafting-be/internal/model"
	"letter-drafting-be/internal/repository/contract"
	"letter-drafting-be/internal/repository/specification"

	"gorm.io/gorm"
)

type LetterTypeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LetterTypeMapper
}

func NewLetterTypeRepository(db *gorm.DB) contract.LetterTypeRepository {
	return &LetterTypeRepositoryImpl{
		db:     db,
		mapper: mapper.NewLetterTypeMapper(),
	}
}

func (r *LetterTypeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LetterType, error) {
	var m model.LetterType
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *LetterTypeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LetterType, error) {
	var models []*model.LetterType
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
