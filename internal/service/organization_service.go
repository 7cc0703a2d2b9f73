package service

import (
	"context"

	"letter-drafting-be/internal/dto"
	"letter-drafting-be/internal/repository/specification"
	"letter-drafting-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IOrganizationService interface {
	GetAll(ctx context.Context) ([]*dto.OrganizationResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.OrganizationResponse, error)
}

type organizationService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewOrganizationService(uowFactory unitofwork.RepositoryFactory) IOrganizationService {
	return &organizationService{uowFactory: uowFactory}
}

func (s *organizationService) GetAll(ctx context.Context) ([]*dto.OrganizationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	orgs, err := uow.OrganizationRepository().FindAll(ctx,
		specification.OrderBy{Field: "name", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.OrganizationResponse, 0, len(orgs))
	for _, o := range orgs {
		result = append(result, &dto.OrganizationResponse{
			Id:   o.Id,
			Name: o.Name,
		})
	}
	return result, nil
}

func (s *organizationService) Show(ctx context.Context, id uuid.UUID) (*dto.OrganizationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	org, err := uow.OrganizationRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, nil
	}

	res := &dto.OrganizationResponse{
		Id:   org.Id,
		Name: org.Name,
	}
	for _, a := range org.Addresses {
		res.Addresses = append(res.Addresses, &dto.OrganizationAddressResponse{
			Id:              a.Id,
			Active:          a.Active,
			Default:         a.Default,
			Nickname:        a.Nickname,
			PreAddress:      a.PreAddress,
			Street:          a.Street,
			AptSuiteFloor:   a.AptSuiteFloor,
			City:            a.City,
			StateOrProvince: a.StateOrProvince,
			ZipCode:         a.ZipCode,
			Country:         a.Country,
			ForeignAddress:  a.ForeignAddress,
		})
	}
	for _, sig := range org.Signatures {
		res.Signatures = append(res.Signatures, &dto.OrganizationSignatureResponse{
			Id:       sig.Id,
			Active:   sig.Active,
			Default:  sig.Default,
			Name:     sig.Name,
			Title:    sig.Title,
			ImageURL: sig.ImageURL,
		})
	}

	return res, nil
}
