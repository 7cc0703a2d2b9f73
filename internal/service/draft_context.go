package service

import (
	"context"

	"letter-drafting-be/internal/entity"
	"letter-drafting-be/internal/repository/specification"
	"letter-drafting-be/internal/repository/unitofwork"
	"letter-drafting-be/pkg/letterdoc"

	"github.com/google/uuid"
)

// draftBundle is everything loaded for one draft: the row itself plus
// the associations the resolution engine and the API responses need.
type draftBundle struct {
	Draft      *entity.LetterDraft
	Contacts   []*entity.Contact
	Sections   []*entity.LetterSection
	Org        *entity.Organization
	LetterType *entity.LetterType
}

// loadDraftBundle fetches the draft and its associations. Returns
// (nil, nil) when the draft does not exist.
func loadDraftBundle(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*draftBundle, error) {
	draft, err := uow.LetterDraftRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, nil
	}

	contacts, err := uow.ContactRepository().FindAll(ctx, specification.ByDraftID{DraftID: draft.Id})
	if err != nil {
		return nil, err
	}

	sections, err := uow.LetterSectionRepository().FindAll(ctx,
		specification.ByDraftID{DraftID: draft.Id},
		specification.OrderedSections{},
	)
	if err != nil {
		return nil, err
	}

	org, err := uow.OrganizationRepository().FindOne(ctx, specification.ByID{ID: draft.OrganizationId})
	if err != nil {
		return nil, err
	}

	letterType, err := uow.LetterTypeRepository().FindOne(ctx, specification.ByID{ID: draft.LetterTypeId})
	if err != nil {
		return nil, err
	}

	return &draftBundle{
		Draft:      draft,
		Contacts:   contacts,
		Sections:   sections,
		Org:        org,
		LetterType: letterType,
	}, nil
}

func contactToDoc(c *entity.Contact) *letterdoc.Contact {
	return &letterdoc.Contact{
		FirstName:       c.FirstName,
		MiddleName:      c.MiddleName,
		LastName:        c.LastName,
		FirmName:        c.FirmName,
		InCareOf:        c.InCareOf,
		Primary:         c.Primary,
		LetterRecipient: c.LetterRecipient,
		Address: letterdoc.Address{
			Nickname:        c.Nickname,
			PreAddress:      c.PreAddress,
			Street:          c.Street,
			AptSuiteFloor:   c.AptSuiteFloor,
			City:            c.City,
			StateOrProvince: c.StateOrProvince,
			ZipCode:         c.ZipCode,
			Country:         c.Country,
			ForeignAddress:  c.ForeignAddress,
		},
	}
}

// toDocDraft assembles the resolution context consumed by the token
// engine from the loaded bundle.
func (b *draftBundle) toDocDraft() *letterdoc.Draft {
	d := &letterdoc.Draft{
		Registration: letterdoc.Registration{
			ReceiptNumber: b.Draft.ReceiptNumber,
			FormType:      b.Draft.FormType,
		},
		AlienNumber: b.Draft.AlienNumber,
	}
	if b.Draft.LetterDate != nil {
		d.LetterDate = *b.Draft.LetterDate
	}
	if b.Draft.OrganizationAddressId != nil {
		d.OrganizationAddressID = b.Draft.OrganizationAddressId.String()
	}
	if b.Draft.OrganizationSignatureId != nil {
		d.OrganizationSignatureID = b.Draft.OrganizationSignatureId.String()
	}

	for _, c := range b.Contacts {
		switch c.Role {
		case entity.RolePetitioner:
			d.Petitioner = contactToDoc(c)
		case entity.RoleRepresentative:
			d.Representative = contactToDoc(c)
		default:
			d.Applicants = append(d.Applicants, contactToDoc(c))
		}
	}

	if b.Org != nil {
		d.Organization.Name = b.Org.Name
		for _, a := range b.Org.Addresses {
			if !a.Active {
				continue
			}
			d.Organization.Addresses = append(d.Organization.Addresses, &letterdoc.OrganizationAddress{
				ID:      a.Id.String(),
				Active:  a.Active,
				Default: a.Default,
				Address: letterdoc.Address{
					Nickname:        a.Nickname,
					PreAddress:      a.PreAddress,
					Street:          a.Street,
					AptSuiteFloor:   a.AptSuiteFloor,
					City:            a.City,
					StateOrProvince: a.StateOrProvince,
					ZipCode:         a.ZipCode,
					Country:         a.Country,
					ForeignAddress:  a.ForeignAddress,
				},
			})
		}
		for _, s := range b.Org.Signatures {
			if !s.Active {
				continue
			}
			d.Organization.Signatures = append(d.Organization.Signatures, &letterdoc.OrganizationSignature{
				ID:       s.Id.String(),
				Active:   s.Active,
				Default:  s.Default,
				Name:     s.Name,
				Title:    s.Title,
				ImageURL: s.ImageURL,
			})
		}
	}

	if b.LetterType != nil {
		d.LetterType = letterdoc.LetterType{
			Name:              b.LetterType.Name,
			StartsWithLocked:  b.LetterType.StartsWithLocked,
			EndsWithLocked:    b.LetterType.EndsWithLocked,
			SignatureIncluded: b.LetterType.SignatureIncluded,
		}
	}

	return d
}
