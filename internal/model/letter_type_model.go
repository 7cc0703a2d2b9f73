package model

import (
	"time"

	"github.com/google/uuid"
)

type LetterType struct {
	Id   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name string    `gorm:"type:varchar(255);not null"`

	StartsWith string `gorm:"type:text"`
	EndsWith   string `gorm:"type:text"`

	StartsWithLocked  bool `gorm:"not null;default:false"`
	EndsWithLocked    bool `gorm:"not null;default:false"`
	SignatureIncluded bool `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (LetterType) TableName() string {
	return "letter_types"
}
