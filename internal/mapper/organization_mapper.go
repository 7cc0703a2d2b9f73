package mapper

import (
	"time"

	"letter-drafting-be/internal/entity"
	"letter-drafting-be/internal/model"
)

type OrganizationMapper struct{}

func NewOrganizationMapper() *OrganizationMapper {
	return &OrganizationMapper{}
}

func updatedAtPtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	out := t
	return &out
}

func (m *OrganizationMapper) ToEntity(o *model.Organization) *entity.Organization {
	if o == nil {
		return nil
	}
	return &entity.Organization{
		Id:        o.Id,
		Name:      o.Name,
		CreatedAt: o.CreatedAt,
		UpdatedAt: updatedAtPtr(o.UpdatedAt),
	}
}

func (m *OrganizationMapper) ToModel(o *entity.Organization) *model.Organization {
	if o == nil {
		return nil
	}
	var updatedAt time.Time
	if o.UpdatedAt != nil {
		updatedAt = *o.UpdatedAt
	}
	return &model.Organization{
		Id:        o.Id,
		Name:      o.Name,
		CreatedAt: o.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *OrganizationMapper) AddressToEntity(a *model.OrganizationAddress) *entity.OrganizationAddress {
	if a == nil {
		return nil
	}
	return &entity.OrganizationAddress{
		Id:              a.Id,
		OrganizationId:  a.OrganizationId,
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
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       updatedAtPtr(a.UpdatedAt),
	}
}

func (m *OrganizationMapper) AddressToModel(a *entity.OrganizationAddress) *model.OrganizationAddress {
	if a == nil {
		return nil
	}
	var updatedAt time.Time
	if a.UpdatedAt != nil {
		updatedAt = *a.UpdatedAt
	}
	return &model.OrganizationAddress{
		Id:              a.Id,
		OrganizationId:  a.OrganizationId,
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
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *OrganizationMapper) SignatureToEntity(s *model.OrganizationSignature) *entity.OrganizationSignature {
	if s == nil {
		return nil
	}
	return &entity.OrganizationSignature{
		Id:             s.Id,
		OrganizationId: s.OrganizationId,
		Active:         s.Active,
		Default:        s.Default,
		Name:           s.Name,
		Title:          s.Title,
		ImageURL:       s.ImageURL,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      updatedAtPtr(s.UpdatedAt),
	}
}

func (m *OrganizationMapper) SignatureToModel(s *entity.OrganizationSignature) *model.OrganizationSignature {
	if s == nil {
		return nil
	}
	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}
	return &model.OrganizationSignature{
		Id:             s.Id,
		OrganizationId: s.OrganizationId,
		Active:         s.Active,
		Default:        s.Default,
		Name:           s.Name,
		Title:          s.Title,
		ImageURL:       s.ImageURL,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *OrganizationMapper) AddressesToEntities(addrs []*model.OrganizationAddress) []*entity.OrganizationAddress {
	entities := make([]*entity.OrganizationAddress, len(addrs))
	for i, a := range addrs {
		entities[i] = m.AddressToEntity(a)
	}
	return entities
}

func (m *OrganizationMapper) SignaturesToEntities(sigs []*model.OrganizationSignature) []*entity.OrganizationSignature {
	entities := make([]*entity.OrganizationSignature, len(sigs))
	for i, s := range sigs {
		entities[i] = m.SignatureToEntity(s)
	}
	return entities
}

func (m *OrganizationMapper) ToEntities(orgs []*model.Organization) []*entity.Organization {
	entities := make([]*entity.Organization, len(orgs))
	for i, o := range orgs {
		entities[i] = m.ToEntity(o)
	}
	return entities
}
