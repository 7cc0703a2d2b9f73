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

type OrganizationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.OrganizationMapper
}

func NewOrganizationRepository(db *gorm.DB) contract.OrganizationRepository {
	return &OrganizationRepositoryImpl{
		db:     db,
		mapper: mapper.NewOrganizationMapper(),
	}
}

func (r *OrganizationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Organization, error) {
	var m model.Organization
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	org := r.mapper.ToEntity(&m)

	// Cross-references travel with the organization.
	addrs, err := r.FindAddresses(ctx, specification.ByOrganizationID{OrganizationID: org.Id})
	if err != nil {
		return nil, err
	}
	sigs, err := r.FindSignatures(ctx, specification.ByOrganizationID{OrganizationID: org.Id})
	if err != nil {
		return nil, err
	}
	org.Addresses = addrs
	org.Signatures = sigs

	return org, nil
}

func (r *OrganizationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Organization, error) {
	var models []*model.Organization
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *OrganizationRepositoryImpl) FindAddresses(ctx context.Context, specs ...specification.Specification) ([]*entity.OrganizationAddress, error) {
	var models []*model.OrganizationAddress
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.AddressesToEntities(models), nil
}

func (r *OrganizationRepositoryImpl) FindSignatures(ctx context.Context, specs ...specification.Specification) ([]*entity.OrganizationSignature, error) {
	var models []*model.OrganizationSignature
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.SignaturesToEntities(models), nil
}
