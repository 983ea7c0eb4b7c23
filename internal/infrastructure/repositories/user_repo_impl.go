package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"autobuy.backend/internal/domain/entities"
	domainerrors "autobuy.backend/internal/domain/errors"
	"autobuy.backend/internal/infrastructure/models"
)

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user. A uniqueness violation on email is surfaced
// as ErrAlreadyExists.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m := userToModel(user)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	user.CreatedAt = m.CreatedAt
	user.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// GetByEmail gets a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// GetByPhone gets a user by phone number
func (r *UserRepository) GetByPhone(ctx context.Context, phone string) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// Update persists the mutable account fields
func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	updates := map[string]interface{}{
		"full_name":      user.FullName,
		"phone":          user.Phone,
		"account_type":   string(user.AccountType),
		"account_status": string(user.AccountStatus),
		"is_active":      user.IsActive,
		"is_approved":    user.IsApproved,
		"updated_at":     time.Now(),
	}

	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", user.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdatePassword rotates the stored password hash
func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"password_hash": passwordHash,
		"updated_at":    time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists users with optional search filter over name, email and phone
func (r *UserRepository) List(ctx context.Context, search string) ([]*entities.User, error) {
	var userModels []models.User
	query := r.db.WithContext(ctx).Order("created_at DESC")

	if search != "" {
		searchTerm := "%" + search + "%"
		query = query.Where("full_name LIKE ? OR email LIKE ? OR phone LIKE ?", searchTerm, searchTerm, searchTerm)
	}

	if err := query.Find(&userModels).Error; err != nil {
		return nil, err
	}

	users := make([]*entities.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, userToEntity(&userModels[i]))
	}
	return users, nil
}

func userToModel(u *entities.User) *models.User {
	methods := make([]string, 0, len(u.ModeratorNotificationMethods))
	for _, m := range u.ModeratorNotificationMethods {
		methods = append(methods, string(m))
	}
	return &models.User{
		ID:                           u.ID,
		Email:                        u.Email,
		FullName:                     u.FullName,
		Phone:                        u.Phone,
		PasswordHash:                 u.PasswordHash,
		AccountType:                  string(u.AccountType),
		AccountStatus:                string(u.AccountStatus),
		ModeratorNotificationMethods: methods,
		IsActive:                     u.IsActive,
		IsApproved:                   u.IsApproved,
		CreatedAt:                    u.CreatedAt,
		UpdatedAt:                    u.UpdatedAt,
	}
}

func userToEntity(m *models.User) *entities.User {
	methods := make([]entities.NotificationMethod, 0, len(m.ModeratorNotificationMethods))
	for _, s := range m.ModeratorNotificationMethods {
		methods = append(methods, entities.NotificationMethod(s))
	}
	return &entities.User{
		ID:                           m.ID,
		Email:                        m.Email,
		FullName:                     m.FullName,
		Phone:                        m.Phone,
		PasswordHash:                 m.PasswordHash,
		AccountType:                  entities.AccountType(m.AccountType),
		AccountStatus:                entities.AccountStatus(m.AccountStatus),
		ModeratorNotificationMethods: methods,
		IsActive:                     m.IsActive,
		IsApproved:                   m.IsApproved,
		CreatedAt:                    m.CreatedAt,
		UpdatedAt:                    m.UpdatedAt,
	}
}
