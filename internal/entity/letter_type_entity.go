package entity

import (
	"time"

	"github.com/google/uuid"
)

type LetterType struct {
	Id   uuid.UUID
	Name string

	// StartsWith / EndsWith are the template HTML of the fixed opening
	// and closing regions.
	StartsWith string
	EndsWith   string

	StartsWithLocked  bool
	EndsWithLocked    bool
	SignatureIncluded bool

	CreatedAt time.Time
	UpdatedAt *time.Time
}
