package repositories

import (
	"errors"

	"github.com/vidshare-app/backend/internal/models"
	"gorm.io/gorm"
)

// ChannelRepository defines channel lookups. GetByID returns (nil, nil) when
// the channel does not exist.
type ChannelRepository interface {
	GetByID(channelID string) (*models.Channel, error)
}

// PostgresChannelRepository implements ChannelRepository for PostgreSQL
type PostgresChannelRepository struct {
	db *gorm.DB
}

// NewPostgresChannelRepository creates a new PostgresChannelRepository
func NewPostgresChannelRepository(db *gorm.DB) *PostgresChannelRepository {
	return &PostgresChannelRepository{db: db}
}

// GetByID retrieves a channel by id
func (r *PostgresChannelRepository) GetByID(channelID string) (*models.Channel, error) {
	var channel models.Channel
	if err := r.db.Where("channel_id = ?", channelID).First(&channel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &channel, nil
}
