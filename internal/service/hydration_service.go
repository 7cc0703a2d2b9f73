package service

import (
	"context"
	"strings"
	"time"

	"letter-drafting-be/internal/dto"
	"letter-drafting-be/internal/pkg/logger"
	"letter-drafting-be/internal/repository/memory"
	"letter-drafting-be/internal/repository/unitofwork"
	"letter-drafting-be/pkg/letterdoc"

	"github.com/google/uuid"
)

type IHydrationService interface {
	Hydrate(ctx context.Context, req *dto.HydrateRequest) (*dto.HydrateResponse, error)
	GetPreview(ctx context.Context, draftId uuid.UUID) (*dto.PreviewResponse, error)
	RefreshPreview(ctx context.Context, draftId uuid.UUID) error
}

type hydrationService struct {
	uowFactory  unitofwork.RepositoryFactory
	engine      *letterdoc.Engine
	previewRepo *memory.PreviewRepository
	log         logger.ILogger
}

func NewHydrationService(
	uowFactory unitofwork.RepositoryFactory,
	engine *letterdoc.Engine,
	previewRepo *memory.PreviewRepository,
	log logger.ILogger,
) IHydrationService {
	return &hydrationService{
		uowFactory:  uowFactory,
		engine:      engine,
		previewRepo: previewRepo,
		log:         log,
	}
}

// Hydrate resolves the submitted content regions against the draft's
// current context. Every call builds throwaway documents, so concurrent
// requests for the same draft never interfere.
func (s *hydrationService) Hydrate(ctx context.Context, req *dto.HydrateRequest) (*dto.HydrateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	bundle, err := loadDraftBundle(ctx, uow, req.DraftId)
	if err != nil {
		return nil, err
	}
	if bundle == nil {
		return nil, nil
	}

	docDraft := bundle.toDocDraft()

	items := make([]letterdoc.HydrateItem, 0, len(req.Contents))
	for _, c := range req.Contents {
		items = append(items, letterdoc.HydrateItem{ContentID: c.ContentId, HTML: c.Html})
	}

	results, err := s.engine.HydrateMany(items, docDraft)
	if err != nil {
		return nil, err
	}

	return &dto.HydrateResponse{Contents: results}, nil
}

func (s *hydrationService) GetPreview(ctx context.Context, draftId uuid.UUID) (*dto.PreviewResponse, error) {
	if p, found := s.previewRepo.Get(draftId); found {
		return &dto.PreviewResponse{
			DraftId:    p.DraftId,
			Header:     p.Header,
			Body:       p.Body,
			RenderedAt: p.RenderedAt,
		}, nil
	}

	// Cache miss renders on demand so the first preview request after a
	// restart still works.
	if err := s.RefreshPreview(ctx, draftId); err != nil {
		return nil, err
	}
	p, found := s.previewRepo.Get(draftId)
	if !found {
		return nil, nil
	}
	return &dto.PreviewResponse{
		DraftId:    p.DraftId,
		Header:     p.Header,
		Body:       p.Body,
		RenderedAt: p.RenderedAt,
	}, nil
}

// RefreshPreview re-hydrates the whole letter and caches the result.
// A draft deleted between save and refresh is a silent no-op.
func (s *hydrationService) RefreshPreview(ctx context.Context, draftId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	bundle, err := loadDraftBundle(ctx, uow, draftId)
	if err != nil {
		return err
	}
	if bundle == nil {
		s.log.Info("hydration", "preview refresh skipped, draft gone", map[string]interface{}{
			"draft_id": draftId.String(),
		})
		return nil
	}

	docDraft := bundle.toDocDraft()

	startsWith := bundle.Draft.StartsWith
	endsWith := bundle.Draft.EndsWith
	if bundle.LetterType != nil {
		if startsWith == "" {
			startsWith = bundle.LetterType.StartsWith
		}
		if endsWith == "" {
			endsWith = bundle.LetterType.EndsWith
		}
	}

	items := []letterdoc.HydrateItem{
		{ContentID: "starts_with", HTML: startsWith},
		{ContentID: "ends_with", HTML: endsWith},
	}
	header, err := s.engine.HydrateMany(items, docDraft)
	if err != nil {
		return err
	}

	var body strings.Builder
	for _, section := range bundle.Sections {
		if section.Text == nil || *section.Text == "" {
			continue
		}
		out, err := s.engine.HydrateHTML(*section.Text, docDraft)
		if err != nil {
			return err
		}
		body.WriteString(out)
	}

	s.previewRepo.Save(&memory.Preview{
		DraftId:    draftId,
		Header:     header,
		Body:       body.String(),
		RenderedAt: time.Now(),
	})

	return nil
}
