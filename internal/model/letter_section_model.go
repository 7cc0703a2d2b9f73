package model

import (
	"time"

	"github.com/google/uuid"
)

type LetterSection struct {
	Id      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DraftId uuid.UUID `gorm:"type:uuid;not null;index"`
	Text    *string   `gorm:"type:text"`
	Order   int       `gorm:"column:sort_order;not null;default:0"`
	Locked  bool      `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (LetterSection) TableName() string {
	return "letter_sections"
}
