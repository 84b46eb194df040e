package repositories

import (
	"errors"

	"github.com/vidshare-app/backend/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the user lookups the services need. GetByUID
// returns (nil, nil) when no user exists for the uid.
type UserRepository interface {
	GetByUID(uid string) (*models.User, error)
	Create(user *models.User) error
}

// PostgresUserRepository implements UserRepository for PostgreSQL
type PostgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// GetByUID retrieves a user by the identity provider subject
func (r *PostgresUserRepository) GetByUID(uid string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("uid = ?", uid).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user
func (r *PostgresUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}
