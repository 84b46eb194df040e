package models

// Video represents an uploaded video stored in MongoDB, keyed by video_id.
// CommentCount and LikeCount are denormalized counters maintained with
// atomic increments by the comment and like services.
type Video struct {
	VideoID      string `json:"videoId" bson:"_id"`
	ChannelID    string `json:"channelId" bson:"channel_id"`
	UserID       string `json:"userId" bson:"user_id"`
	Title        string `json:"title" bson:"title"`
	Description  string `json:"description,omitempty" bson:"description,omitempty"`
	Status       string `json:"status" bson:"status"` // UPLOADING | PROCESSING | PUBLISHED | FAILED
	PlaybackURL  string `json:"playbackUrl,omitempty" bson:"playback_url,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty" bson:"thumbnail_url,omitempty"`
	Duration     float64 `json:"duration" bson:"duration"`
	ViewCount    int64  `json:"viewCount" bson:"view_count"`
	LikeCount    int64  `json:"likeCount" bson:"like_count"`
	CommentCount int    `json:"commentCount" bson:"comment_count"`
	CreatedAt    string `json:"createdAt" bson:"created_at"`
	UpdatedAt    string `json:"updatedAt,omitempty" bson:"updated_at,omitempty"`
}
