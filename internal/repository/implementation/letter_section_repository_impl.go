package implementation

import (
	"context"
	"errors"

	"letter-drafting-be/internal/entity"
	"letter-drafting-be/internal/mapper"
	"letter-drafting-be/internal/model"
	"letter-drafting-be/internal/repository/contract"
	"letter-drafting-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LetterSectionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LetterSectionMapper
}

func NewLetterSectionRepository(db *gorm.DB) contract.LetterSectionRepository {
	return &LetterSectionRepositoryImpl{
		db:     db,
		mapper: mapper.NewLetterSectionMapper(),
	}
}

func (r *LetterSectionRepositoryImpl) Create(ctx context.Context, section *entity.LetterSection) error {
	m := r.mapper.ToModel(section)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*section = *r.mapper.ToEntity(m)
	return nil
}

func (r *LetterSectionRepositoryImpl) Update(ctx context.Context, section *entity.LetterSection) error {
	m := r.mapper.ToModel(section)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*section = *r.mapper.ToEntity(m)
	return nil
}

func (r *LetterSectionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.LetterSection{}, id).Error
}

func (r *LetterSectionRepositoryImpl) DeleteAllByDraftId(ctx context.Context, draftId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("draft_id = ?", draftId).Delete(&model.LetterSection{}).Error
}

func (r *LetterSectionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LetterSection, error) {
	var m model.LetterSection
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *LetterSectionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LetterSection, error) {
	var models []*model.LetterSection
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
