package contract

import (
	"context"

	"letter-drafting-be/internal/entity"
	"letter-drafting-be/internal/repository/specification"

	"github.com/google/uuid"
)

type LetterDraftRepository interface {
	Create(ctx context.Context, draft *entity.LetterDraft) error
	Update(ctx context.Context, draft *entity.LetterDraft) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LetterDraft, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LetterDraft, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
