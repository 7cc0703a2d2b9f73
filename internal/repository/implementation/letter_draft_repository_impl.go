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

type LetterDraftRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LetterDraftMapper
}

func NewLetterDraftRepository(db *gorm.DB) contract.LetterDraftRepository {
	return &LetterDraftRepositoryImpl{
		db:     db,
		mapper: mapper.NewLetterDraftMapper(),
	}
}

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *LetterDraftRepositoryImpl) Create(ctx context.Context, draft *entity.LetterDraft) error {
	m := r.mapper.ToModel(draft)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*draft = *r.mapper.ToEntity(m)
	return nil
}

func (r *LetterDraftRepositoryImpl) Update(ctx context.Context, draft *entity.LetterDraft) error {
	m := r.mapper.ToModel(draft)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*draft = *r.mapper.ToEntity(m)
	return nil
}

func (r *LetterDraftRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.LetterDraft{}, id).Error
}

func (r *LetterDraftRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LetterDraft, error) {
	var m model.LetterDraft
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *LetterDraftRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LetterDraft, error) {
	var models []*model.LetterDraft
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *LetterDraftRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.LetterDraft{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
