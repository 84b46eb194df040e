package models

import "time"

// Notification types
const (
	NotificationVideoLiked       = "VIDEO_LIKED"
	NotificationVideoCommented   = "VIDEO_COMMENTED"
	NotificationCommentLiked     = "COMMENT_LIKED"
	NotificationCommentReplied   = "COMMENT_REPLIED"
	NotificationNewVideoUploaded = "NEW_VIDEO_UPLOADED"
)

// Notification represents an activity notification stored in MongoDB under
// the (recipient_user_id, created_at) compound key. CreatedAt is a fixed-width
// ISO-8601 string, so lexicographic order is chronological order. IsRead is
// persisted as a string for index compatibility. ExpiresAt drives the store's
// TTL expiry (30 days after creation).
type Notification struct {
	RecipientUserID   string    `json:"recipientUserId" bson:"recipient_user_id"`
	CreatedAt         string    `json:"createdAt" bson:"created_at"`
	NotificationID    string    `json:"notificationId" bson:"notification_id"`
	Type              string    `json:"type" bson:"type"`
	ActorUserID       string    `json:"actorUserId" bson:"actor_user_id"`
	ActorName         string    `json:"actorName" bson:"actor_name"`
	ActorAvatarURL    string    `json:"actorAvatarUrl,omitempty" bson:"actor_avatar_url,omitempty"`
	VideoID           string    `json:"videoId,omitempty" bson:"video_id,omitempty"`
	VideoTitle        string    `json:"videoTitle,omitempty" bson:"video_title,omitempty"`
	VideoThumbnailURL string    `json:"videoThumbnailUrl,omitempty" bson:"video_thumbnail_url,omitempty"`
	CommentID         string    `json:"commentId,omitempty" bson:"comment_id,omitempty"`
	Message           string    `json:"message" bson:"message"`
	IsRead            string    `json:"isRead" bson:"is_read"` // "true" / "false"
	ExpiresAt         time.Time `json:"-" bson:"expires_at"`
}

// CreateNotificationRequest is the internal request used by event producers
// (likes, comments, replies) to record a notification.
type CreateNotificationRequest struct {
	RecipientUserID string `json:"recipientUserId" validate:"required"`
	ActorUserID     string `json:"actorUserId" validate:"required"`
	Type            string `json:"type" validate:"required"`
	VideoID         string `json:"videoId,omitempty"`
	CommentID       string `json:"commentId,omitempty"`
}

// CreateNotificationResponse reports the outcome of a notification request.
// A self-notification is rejected with Success=false rather than an error.
type CreateNotificationResponse struct {
	NotificationID string `json:"notificationId,omitempty"`
	Success        bool   `json:"success"`
	Message        string `json:"message"`
}

// NotificationDto is the read model returned by notification listings
type NotificationDto struct {
	NotificationID    string `json:"notificationId"`
	Type              string `json:"type"`
	ActorUserID       string `json:"actorUserId"`
	ActorName         string `json:"actorName"`
	ActorAvatarURL    string `json:"actorAvatarUrl,omitempty"`
	VideoID           string `json:"videoId,omitempty"`
	VideoTitle        string `json:"videoTitle,omitempty"`
	VideoThumbnailURL string `json:"videoThumbnailUrl,omitempty"`
	CommentID         string `json:"commentId,omitempty"`
	Message           string `json:"message"`
	IsRead            bool   `json:"isRead"`
	CreatedAt         string `json:"createdAt"`
}

// GetNotificationsResponse carries one page of notifications plus the
// recipient's total unread count. NextCursor is empty on the last page.
type GetNotificationsResponse struct {
	Notifications []NotificationDto `json:"notifications"`
	TotalCount    int               `json:"totalCount"`
	UnreadCount   int               `json:"unreadCount"`
	NextCursor    string            `json:"nextCursor,omitempty"`
}

// MarkAsReadResponse is returned by the read-state mutations
type MarkAsReadResponse struct {
	NotificationID string `json:"notificationId,omitempty"`
	Success        bool   `json:"success"`
	Message        string `json:"message"`
}

// DeleteNotificationResponse is returned after a notification is deleted
type DeleteNotificationResponse struct {
	NotificationID string `json:"notificationId"`
	Success        bool   `json:"success"`
	Message        string `json:"message"`
}
