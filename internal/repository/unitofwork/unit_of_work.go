package unitofwork

import (
	"context"

	"letter-drafting-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	LetterDraftRepository() contract.LetterDraftRepository
	LetterSectionRepository() contract.LetterSectionRepository
	ContactRepository() contract.ContactRepository
	OrganizationRepository() contract.OrganizationRepository
	LetterTypeRepository() contract.LetterTypeRepository
}
