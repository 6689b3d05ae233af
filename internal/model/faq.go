package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultFAQCategory = "General"

// FAQ is a question/answer pair shown in the support center
type FAQ struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Question  string    `gorm:"type:text;not null" json:"question"`
	Answer    string    `gorm:"type:text;not null" json:"answer"`
	Category  string    `gorm:"type:varchar(100);not null;index" json:"category"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null;index" json:"created_by"`
	UpdatedBy uuid.UUID `gorm:"type:uuid;not null" json:"updated_by"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (FAQ) TableName() string {
	return "faq"
}

func (f *FAQ) BeforeCreate(*gorm.DB) error {
	assignID(&f.ID)
	return nil
}
