package service

import (
	"context"
	"encoding/json"
	"time"

	"letter-drafting-be/internal/dto"
	"letter-drafting-be/internal/entity"
	"letter-drafting-be/internal/repository/specification"
	"letter-drafting-be/internal/repository/unitofwork"
	"letter-drafting-be/pkg/events"
	pktNats "letter-drafting-be/pkg/nats"

	"github.com/google/uuid"
)

type ILetterDraftService interface {
	GetAll(ctx context.Context) ([]*dto.ShowLetterDraftResponse, error)
	Create(ctx context.Context, req *dto.CreateLetterDraftRequest) (*dto.CreateLetterDraftResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ShowLetterDraftResponse, error)
	Save(ctx context.Context, req *dto.SaveLetterDraftRequest) (*dto.SaveLetterDraftResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type letterDraftService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
}

func NewLetterDraftService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
) ILetterDraftService {
	return &letterDraftService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
	}
}

func draftToResponse(b *draftBundle) *dto.ShowLetterDraftResponse {
	d := b.Draft
	res := &dto.ShowLetterDraftResponse{
		Id:                      d.Id,
		ReceiptNumber:           d.ReceiptNumber,
		FormType:                d.FormType,
		AlienNumber:             d.AlienNumber,
		LetterDate:              d.LetterDate,
		OrganizationAddressId:   d.OrganizationAddressId,
		OrganizationSignatureId: d.OrganizationSignatureId,
		StartsWith:              d.StartsWith,
		EndsWith:                d.EndsWith,
		Margins:                 d.Margins,
		CreatedAt:               d.CreatedAt,
		UpdatedAt:               d.UpdatedAt,
	}

	if b.LetterType != nil {
		res.LetterType = &dto.LetterTypeResponse{
			Id:                b.LetterType.Id,
			Name:              b.LetterType.Name,
			StartsWith:        b.LetterType.StartsWith,
			EndsWith:          b.LetterType.EndsWith,
			StartsWithLocked:  b.LetterType.StartsWithLocked,
			EndsWithLocked:    b.LetterType.EndsWithLocked,
			SignatureIncluded: b.LetterType.SignatureIncluded,
		}
		// New drafts start from the letter type's templates.
		if res.StartsWith == "" {
			res.StartsWith = b.LetterType.StartsWith
		}
		if res.EndsWith == "" {
			res.EndsWith = b.LetterType.EndsWith
		}
	}

	if b.Org != nil {
		org := &dto.OrganizationResponse{
			Id:   b.Org.Id,
			Name: b.Org.Name,
		}
		for _, a := range b.Org.Addresses {
			org.Addresses = append(org.Addresses, &dto.OrganizationAddressResponse{
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
		for _, s := range b.Org.Signatures {
			org.Signatures = append(org.Signatures, &dto.OrganizationSignatureResponse{
				Id:       s.Id,
				Active:   s.Active,
				Default:  s.Default,
				Name:     s.Name,
				Title:    s.Title,
				ImageURL: s.ImageURL,
			})
		}
		res.Organization = org
	}

	for _, c := range b.Contacts {
		res.Contacts = append(res.Contacts, &dto.ContactResponse{
			Id:              c.Id,
			Role:            string(c.Role),
			FirstName:       c.FirstName,
			MiddleName:      c.MiddleName,
			LastName:        c.LastName,
			FirmName:        c.FirmName,
			InCareOf:        c.InCareOf,
			Primary:         c.Primary,
			LetterRecipient: c.LetterRecipient,
			Nickname:        c.Nickname,
			PreAddress:      c.PreAddress,
			Street:          c.Street,
			AptSuiteFloor:   c.AptSuiteFloor,
			City:            c.City,
			StateOrProvince: c.StateOrProvince,
			ZipCode:         c.ZipCode,
			Country:         c.Country,
			ForeignAddress:  c.ForeignAddress,
		})
	}

	for _, s := range b.Sections {
		res.Sections = append(res.Sections, &dto.LetterSectionResponse{
			Id:     s.Id,
			Text:   s.Text,
			Order:  s.Order,
			Locked: s.Locked,
		})
	}

	return res
}

func (s *letterDraftService) GetAll(ctx context.Context) ([]*dto.ShowLetterDraftResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	drafts, err := uow.LetterDraftRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ShowLetterDraftResponse, 0, len(drafts))
	for _, d := range drafts {
		result = append(result, draftToResponse(&draftBundle{Draft: d}))
	}
	return result, nil
}

func (s *letterDraftService) Create(ctx context.Context, req *dto.CreateLetterDraftRequest) (*dto.CreateLetterDraftResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	draft := entity.LetterDraft{
		Id:             uuid.New(),
		ReceiptNumber:  req.ReceiptNumber,
		FormType:       req.FormType,
		AlienNumber:    req.AlienNumber,
		LetterDate:     req.LetterDate,
		LetterTypeId:   req.LetterTypeId,
		OrganizationId: req.OrganizationId,
		CreatedAt:      time.Now(),
	}

	if err := uow.LetterDraftRepository().Create(ctx, &draft); err != nil {
		return nil, err
	}

	return &dto.CreateLetterDraftResponse{Id: draft.Id}, nil
}

func (s *letterDraftService) Show(ctx context.Context, id uuid.UUID) (*dto.ShowLetterDraftResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	bundle, err := loadDraftBundle(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	if bundle == nil {
		return nil, nil
	}

	return draftToResponse(bundle), nil
}

// Save applies the editor's save payload in one transaction: draft
// fields, section upserts in payload order, and tombstone deletes.
func (s *letterDraftService) Save(ctx context.Context, req *dto.SaveLetterDraftRequest) (*dto.SaveLetterDraftResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	draft, err := uow.LetterDraftRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, nil
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	now := time.Now()
	draft.LetterDate = req.LetterDate
	draft.AlienNumber = req.AlienNumber
	draft.OrganizationAddressId = req.OrganizationAddressId
	draft.OrganizationSignatureId = req.OrganizationSignatureId
	draft.StartsWith = req.StartsWith
	draft.EndsWith = req.EndsWith
	draft.Margins = req.Margins
	draft.UpdatedAt = &now

	if err := uow.LetterDraftRepository().Update(ctx, draft); err != nil {
		return nil, err
	}

	for _, p := range req.Sections {
		if p.Destroy != nil && *p.Destroy == 1 {
			// Tombstone without a backend id never persisted; nothing to
			// destroy.
			if p.Id == nil {
				continue
			}
			if err := uow.LetterSectionRepository().Delete(ctx, *p.Id); err != nil {
				return nil, err
			}
			continue
		}

		section := entity.LetterSection{
			DraftId: draft.Id,
			Text:    p.Text,
			Order:   p.Order,
			Locked:  p.Locked,
		}
		if p.Id != nil {
			existing, err := uow.LetterSectionRepository().FindOne(ctx,
				specification.ByID{ID: *p.Id},
				specification.ByDraftID{DraftID: draft.Id},
			)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				existing.Text = p.Text
				existing.Order = p.Order
				existing.Locked = p.Locked
				existing.UpdatedAt = &now
				if err := uow.LetterSectionRepository().Update(ctx, existing); err != nil {
					return nil, err
				}
				continue
			}
			section.Id = *p.Id
		} else {
			section.Id = uuid.New()
		}
		section.CreatedAt = now
		if err := uow.LetterSectionRepository().Create(ctx, &section); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	// Notify the preview worker and the bus after the commit so
	// consumers never observe a half-saved draft.
	msg := dto.DraftSavedMessage{DraftId: draft.Id}
	msgJson, _ := json.Marshal(msg)
	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		event := events.BaseEvent{
			Type:       "LETTER_DRAFT_SAVED",
			Data:       map[string]interface{}{"draft_id": draft.Id.String()},
			OccurredAt: now,
		}
		// NATS failure is not a save failure.
		_ = s.eventPublisher.Publish(ctx, event)
	}

	return &dto.SaveLetterDraftResponse{Id: draft.Id}, nil
}

func (s *letterDraftService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	draft, err := uow.LetterDraftRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if draft == nil {
		return nil
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.LetterDraftRepository().Delete(ctx, id); err != nil {
		return err
	}
	if err := uow.LetterSectionRepository().DeleteAllByDraftId(ctx, id); err != nil {
		return err
	}

	return uow.Commit()
}
