package service

import (
	"context"

	"letter-drafting-be/internal/dto"
	"letter-drafting-be/internal/repository/specification"
	"letter-drafting-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ILetterTypeService interface {
	GetAll(ctx context.Context) ([]*dto.LetterTypeResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.LetterTypeResponse, error)
}

type letterTypeService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewLetterTypeService(uowFactory unitofwork.RepositoryFactory) ILetterTypeService {
	return &letterTypeService{uowFactory: uowFactory}
}

func (s *letterTypeService) GetAll(ctx context.Context) ([]*dto.LetterTypeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	types, err := uow.LetterTypeRepository().FindAll(ctx,
		specification.OrderBy{Field: "name", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.LetterTypeResponse, 0, len(types))
	for _, t := range types {
		result = append(result, &dto.LetterTypeResponse{
			Id:                t.Id,
			Name:              t.Name,
			StartsWith:        t.StartsWith,
			EndsWith:          t.EndsWith,
			StartsWithLocked:  t.StartsWithLocked,
			EndsWithLocked:    t.EndsWithLocked,
			SignatureIncluded: t.SignatureIncluded,
		})
	}
	return result, nil
}

func (s *letterTypeService) Show(ctx context.Context, id uuid.UUID) (*dto.LetterTypeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	t, err := uow.LetterTypeRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}

	return &dto.LetterTypeResponse{
		Id:                t.Id,
		Name:              t.Name,
		StartsWith:        t.StartsWith,
		EndsWith:          t.EndsWith,
		StartsWithLocked:  t.StartsWithLocked,
		EndsWithLocked:    t.EndsWithLocked,
		SignatureIncluded: t.SignatureIncluded,
	}, nil
}
