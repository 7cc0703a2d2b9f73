package service

import (
	"context"

	"letter-drafting-be/internal/dto"
	"letter-drafting-be/internal/pkg/logger"
	"letter-drafting-be/internal/repository/rediscache"
	"letter-drafting-be/pkg/grammar"
)

type IGrammarService interface {
	Check(ctx context.Context, req *dto.GrammarCheckRequest) (*dto.GrammarCheckResponse, error)
	AcceptSuggestion(ctx context.Context, req *dto.AcceptSuggestionRequest) (*dto.AcceptSuggestionResponse, error)
}

type grammarService struct {
	client *grammar.Client
	cache  *rediscache.GrammarCache
	log    logger.ILogger
}

func NewGrammarService(client *grammar.Client, cache *rediscache.GrammarCache, log logger.ILogger) IGrammarService {
	return &grammarService{
		client: client,
		cache:  cache,
		log:    log,
	}
}

// Check strips any existing annotations, submits the cleaned content,
// and re-applies the findings as classed spans. A checker failure
// returns Checked=false with the original content untouched.
func (s *grammarService) Check(ctx context.Context, req *dto.GrammarCheckRequest) (*dto.GrammarCheckResponse, error) {
	stripped := make([]grammar.Content, 0, len(req.Contents))
	for _, c := range req.Contents {
		clean, err := grammar.StripAnnotations(c.Html)
		if err != nil {
			return nil, err
		}
		stripped = append(stripped, grammar.Content{ContentID: c.ContentId, HTML: clean})
	}

	results, ok := s.checkCached(ctx, stripped)
	if !ok {
		// Sentinel path: contents go back unmodified.
		res := &dto.GrammarCheckResponse{Checked: false}
		for _, c := range req.Contents {
			res.Results = append(res.Results, dto.GrammarCheckResult{
				ContentId: c.ContentId,
				Html:      c.Html,
			})
		}
		return res, nil
	}

	byID := make(map[string][]grammar.CheckError, len(results))
	for _, r := range results {
		byID[r.ContentID] = r.Errors
	}

	res := &dto.GrammarCheckResponse{Checked: true}
	for _, c := range stripped {
		errs := byID[c.ContentID]
		result := dto.GrammarCheckResult{
			ContentId: c.ContentID,
			Html:      grammar.Annotate(c.HTML, errs),
		}
		for _, e := range errs {
			result.Errors = append(result.Errors, dto.GrammarErrorResponse{
				Id:            e.ID,
				ElementId:     grammar.ElementID(e.ID),
				Suggestions:   e.Suggestions,
				StartPosition: e.StartPosition,
				EndPosition:   e.EndPosition,
				Message:       e.Message,
				Type:          e.Type,
			})
		}
		res.Results = append(res.Results, result)
	}

	return res, nil
}

func (s *grammarService) checkCached(ctx context.Context, contents []grammar.Content) ([]grammar.Result, bool) {
	key := rediscache.Key(contents)
	if cached, found := s.cache.Get(ctx, key); found {
		return cached, true
	}

	results, err := s.client.Check(ctx, contents)
	if err != nil {
		s.log.Warn("grammar", "checker unreachable, leaving content untouched", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, false
	}

	s.cache.Set(ctx, key, results)
	return results, true
}

func (s *grammarService) AcceptSuggestion(ctx context.Context, req *dto.AcceptSuggestionRequest) (*dto.AcceptSuggestionResponse, error) {
	out, err := grammar.AcceptSuggestion(req.Html, req.ElementId, req.Replacement)
	if err != nil {
		return nil, err
	}
	return &dto.AcceptSuggestionResponse{Html: out}, nil
}
