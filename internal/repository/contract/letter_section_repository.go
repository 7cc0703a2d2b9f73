package contract

import (
	"context"

	"letter-drafting-be/internal/entity"
	"letter-drafting-be/internal/repository/specification"

	"github.com/google/uuid"
)

type LetterSectionRepository interface {
	Create(ctx context.Context, section *entity.LetterSection) error
	Update(ctx context.Context, section *entity.LetterSection) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAllByDraftId(ctx context.Context, draftId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LetterSection, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LetterSection, error)
}
