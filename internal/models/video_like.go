package models

// VideoLike represents a like on a video, keyed (user_id, video_id).
type VideoLike struct {
	UserID    string `json:"userId" bson:"user_id"`
	VideoID   string `json:"videoId" bson:"video_id"`
	CreatedAt string `json:"createdAt" bson:"created_at"`
}

// ToggleVideoLikeResponse is returned by the video like toggle
type ToggleVideoLikeResponse struct {
	VideoID    string `json:"videoId"`
	IsLiked    bool   `json:"isLiked"`
	TotalLikes int64  `json:"totalLikes"`
	Message    string `json:"message"`
}

// VideoLikeStatusResponse reports whether the caller has liked a video
type VideoLikeStatusResponse struct {
	VideoID    string `json:"videoId"`
	IsLiked    bool   `json:"isLiked"`
	TotalLikes int64  `json:"totalLikes"`
}
