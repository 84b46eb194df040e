package models

import "time"

// Channel is a creator channel stored in PostgreSQL. UserID is the owner.
type Channel struct {
	ChannelID   string    `json:"channelId" gorm:"primaryKey;size:128"`
	UserID      string    `json:"userId" gorm:"index;size:128"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Subscription links a subscriber to a channel. The composite primary key
// enforces one subscription per (user, channel).
type Subscription struct {
	UserID    string    `json:"userId" gorm:"primaryKey;size:128"`
	ChannelID string    `json:"channelId" gorm:"primaryKey;index;size:128"`
	CreatedAt time.Time `json:"createdAt"`
}
