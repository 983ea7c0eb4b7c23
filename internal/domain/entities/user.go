package entities

import (
	"time"

	"github.com/google/uuid"
)

// AccountType determines whether an account requires moderation
type AccountType string

const (
	AccountTypeBuyer     AccountType = "buyer"
	AccountTypeService   AccountType = "service"
	AccountTypeParts     AccountType = "parts"
	AccountTypeRental    AccountType = "rental"
	AccountTypeInsurance AccountType = "insurance"
	AccountTypeDealer    AccountType = "dealer"
	AccountTypeAdmin     AccountType = "admin"
)

// Valid reports whether t is a known account type
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeBuyer, AccountTypeService, AccountTypeParts,
		AccountTypeRental, AccountTypeInsurance, AccountTypeDealer, AccountTypeAdmin:
		return true
	}
	return false
}

// RequiresModeration reports whether accounts of this type need manual approval
func (t AccountType) RequiresModeration() bool {
	return t != AccountTypeBuyer
}

// AccountStatus represents the moderation status of an account
type AccountStatus string

const (
	AccountStatusPending  AccountStatus = "pending"
	AccountStatusApproved AccountStatus = "approved"
	AccountStatusRejected AccountStatus = "rejected"
)

// NotificationMethod is a channel used to notify moderators
type NotificationMethod string

const (
	NotifyEmail    NotificationMethod = "email"
	NotifySMS      NotificationMethod = "sms"
	NotifyTelegram NotificationMethod = "telegram"
)

// User represents a marketplace account
type User struct {
	ID                           uuid.UUID            `json:"id"`
	Email                        string               `json:"email"`
	FullName                     string               `json:"full_name"`
	Phone                        string               `json:"phone"`
	PasswordHash                 string               `json:"-"`
	AccountType                  AccountType          `json:"account_type"`
	AccountStatus                AccountStatus        `json:"account_status"`
	ModeratorNotificationMethods []NotificationMethod `json:"-"`
	IsActive                     bool                 `json:"-"`
	IsApproved                   bool                 `json:"-"`
	CreatedAt                    time.Time            `json:"created_at"`
	UpdatedAt                    time.Time            `json:"-"`
}

// CanLogin reports whether the account may authenticate
func (u *User) CanLogin() bool {
	return u.IsActive && u.IsApproved
}

// RegisterInput represents input for email registration
type RegisterInput struct {
	Email       string `json:"email" binding:"required,email"`
	FullName    string `json:"full_name" binding:"required,max=255"`
	Phone       string `json:"phone" binding:"required,max=20"`
	AccountType string `json:"account_type"`
	Password    string `json:"password" binding:"required,min=6"`
}

// ConfirmEmailInput represents a submitted email verification code
type ConfirmEmailInput struct {
	Code string `json:"code" binding:"required,len=6"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SendPhoneCodeInput represents a phone code request
type SendPhoneCodeInput struct {
	Phone string `json:"phone" binding:"required,max=15"`
}

// RegisterByPhoneInput represents input for phone registration
type RegisterByPhoneInput struct {
	Phone       string `json:"phone" binding:"required,max=15"`
	Code        string `json:"code" binding:"required,len=6"`
	FullName    string `json:"full_name" binding:"required,max=255"`
	AccountType string `json:"account_type"`
}

// ProfileUpdateInput represents a partial profile update
type ProfileUpdateInput struct {
	FullName    *string `json:"full_name"`
	Phone       *string `json:"phone"`
	AccountType *string `json:"account_type"`
}

// ResetInitInput represents input for initiating a password reset
type ResetInitInput struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ResetConfirmInput represents input for confirming a password reset,
// either by signed token or by phone + SMS code
type ResetConfirmInput struct {
	Token       string `json:"token"`
	Phone       string `json:"phone"`
	Code        string `json:"code"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}
