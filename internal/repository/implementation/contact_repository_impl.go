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

type ContactRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContactMapper
}

func NewContactRepository(db *gorm.DB) contract.ContactRepository {
	return &ContactRepositoryImpl{
		db:     db,
		mapper: mapper.NewContactMapper(),
	}
}

func (r *ContactRepositoryImpl) Create(ctx context.Context, contact *entity.Contact) error {
	m := r.mapper.ToModel(contact)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*contact = *r.mapper.ToEntity(m)
	return nil
}

func (r *ContactRepositoryImpl) Update(ctx context.Context, contact *entity.Contact) error {
	m := r.mapper.ToModel(contact)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*contact = *r.mapper.ToEntity(m)
	return nil
}

func (r *ContactRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Contact{}, id).Error
}

func (r *ContactRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Contact, error) {
	var m model.Contact
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ContactRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Contact, error) {
	var models []*model.Contact
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
