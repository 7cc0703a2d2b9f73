package contract

import (
	"context"

	"letter-drafting-be/internal/entity"
	"letter-drafting-be/internal/repository/specification"
)

// OrganizationRepository loads organizations together with their
// address and signature cross-references.
type OrganizationRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Organization, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Organization, error)
	FindAddresses(ctx context.Context, specs ...specification.Specification) ([]*entity.OrganizationAddress, error)
	FindSignatures(ctx context.Context, specs ...specification.Specification) ([]*entity.OrganizationSignature, error)
}
