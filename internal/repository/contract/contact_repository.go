package contract

import (
	"context"

	"letter-drafting-be/internal/entity"
	"letter-drafting-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ContactRepository interface {
	Create(ctx context.Context, contact *entity.Contact) error
	Update(ctx context.Context, contact *entity.Contact) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Contact, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Contact, error)
}
