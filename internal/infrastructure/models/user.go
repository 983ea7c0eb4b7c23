package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID                           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Email                        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName                     string    `gorm:"type:varchar(255);not null"`
	Phone                        string    `gorm:"type:varchar(20);index"`
	PasswordHash                 string    `gorm:"type:varchar(255);not null"`
	AccountType                  string    `gorm:"type:varchar(20);not null;default:'buyer'"`
	AccountStatus                string    `gorm:"type:varchar(20);not null;default:'pending'"`
	ModeratorNotificationMethods []string  `gorm:"serializer:json"`
	IsActive                     bool      `gorm:"not null;default:false"`
	IsApproved                   bool      `gorm:"not null;default:false"`
	CreatedAt                    time.Time
	UpdatedAt                    time.Time
	DeletedAt                    gorm.DeletedAt `gorm:"index"`
}
