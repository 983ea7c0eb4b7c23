package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Page struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Kind        string    `gorm:"type:varchar(20);not null;index"`
	Slug        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Intro       string    `gorm:"type:text"`
	Body        string    `gorm:"type:text"`
	Price       string    `gorm:"type:varchar(32)"`
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}
