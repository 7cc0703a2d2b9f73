package contract

import (
	"context"

	"letter-drafting-be/internal/entity"
	"letter-drafting-be/internal/repository/specification"
)

type LetterTypeRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LetterType, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LetterType, error)
}
