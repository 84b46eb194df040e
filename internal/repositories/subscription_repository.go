package repositories

import (
	"github.com/vidshare-app/backend/internal/models"
	"gorm.io/gorm"
)

// SubscriptionRepository defines subscription lookups for fan-out.
type SubscriptionRepository interface {
	ListByChannel(channelID string) ([]models.Subscription, error)
}

// PostgresSubscriptionRepository implements SubscriptionRepository for PostgreSQL
type PostgresSubscriptionRepository struct {
	db *gorm.DB
}

// NewPostgresSubscriptionRepository creates a new PostgresSubscriptionRepository
func NewPostgresSubscriptionRepository(db *gorm.DB) *PostgresSubscriptionRepository {
	return &PostgresSubscriptionRepository{db: db}
}

// ListByChannel returns every subscription of a channel
func (r *PostgresSubscriptionRepository) ListByChannel(channelID string) ([]models.Subscription, error) {
	var subscriptions []models.Subscription
	if err := r.db.Where("channel_id = ?", channelID).Find(&subscriptions).Error; err != nil {
		return nil, err
	}
	return subscriptions, nil
}
