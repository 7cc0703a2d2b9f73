package dto

import (
	"github.com/google/uuid"
)

type LetterTypeResponse struct {
	Id                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	StartsWith        string    `json:"starts_with"`
	EndsWith          string    `json:"ends_with"`
	StartsWithLocked  bool      `json:"starts_with_locked"`
	EndsWithLocked    bool      `json:"ends_with_locked"`
	SignatureIncluded bool      `json:"signature_included"`
}
