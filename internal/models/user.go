package models

import "time"

// User is a platform user stored in PostgreSQL, keyed by the identity
// provider's subject (the Firebase UID carried in the verified token).
type User struct {
	UID       string    `json:"uid" gorm:"primaryKey;size:128"`
	Name      string    `json:"name"`
	Email     string    `json:"email" gorm:"uniqueIndex"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}
