package models

import (
	"time"

	"github.com/google/uuid"
)

type EmailVerificationCode struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Code      string    `gorm:"type:varchar(6);not null;index"`
	CreatedAt time.Time

	User User `gorm:"foreignKey:UserID"`
}

type PhoneVerificationCode struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Phone     string    `gorm:"type:varchar(15);not null;index"`
	Code      string    `gorm:"type:varchar(6);not null"`
	CreatedAt time.Time
}

type PasswordResetCode struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	Phone     string     `gorm:"type:varchar(15);index"`
	Code      string     `gorm:"type:varchar(128);not null"`
	ViaSMS    bool       `gorm:"not null;default:false"`
	CreatedAt time.Time
}
