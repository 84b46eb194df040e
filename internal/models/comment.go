package models

// Comment represents a comment on a video, stored in MongoDB under the
// (video_id, comment_id) compound key. Author name and avatar are a snapshot
// taken at creation time and are not re-synced when the profile changes.
type Comment struct {
	VideoID         string `json:"videoId" bson:"video_id"`
	CommentID       string `json:"commentId" bson:"comment_id"`
	UserID          string `json:"userId" bson:"user_id"`
	UserName        string `json:"userName" bson:"user_name"`
	UserAvatarURL   string `json:"userAvatarUrl,omitempty" bson:"user_avatar_url,omitempty"`
	Content         string `json:"content" bson:"content"`
	ParentCommentID string `json:"parentCommentId,omitempty" bson:"parent_comment_id,omitempty"` // empty for root comments
	LikeCount       int    `json:"likeCount" bson:"like_count"`
	ReplyCount      int    `json:"replyCount" bson:"reply_count"`
	IsEdited        bool   `json:"isEdited" bson:"is_edited"`
	IsDeleted       bool   `json:"isDeleted" bson:"is_deleted"`
	CreatedAt       string `json:"createdAt" bson:"created_at"`
	UpdatedAt       string `json:"updatedAt,omitempty" bson:"updated_at,omitempty"`
}

// IsRoot reports whether the comment is a top-level comment on its video.
func (c *Comment) IsRoot() bool {
	return c.ParentCommentID == ""
}

// CreateCommentRequest defines the request body for creating a comment or reply
type CreateCommentRequest struct {
	Content         string `json:"content" validate:"required,max=10000"`
	ParentCommentID string `json:"parentCommentId,omitempty"`
}

// UpdateCommentRequest defines the request body for editing a comment
type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required,max=10000"`
}

// GetCommentsRequest carries the listing parameters. When ParentCommentID is
// set, only that comment's direct replies are returned and the sorting and
// pagination fields are ignored.
type GetCommentsRequest struct {
	SortBy          string `query:"sortBy"` // recent | popular | oldest
	Limit           int    `query:"limit"`
	Offset          int    `query:"offset"`
	IncludeReplies  bool   `query:"includeReplies"`
	ParentCommentID string `query:"parentCommentId"`
}

// CreateCommentResponse is returned after a comment or reply is posted
type CreateCommentResponse struct {
	CommentID       string `json:"commentId"`
	VideoID         string `json:"videoId"`
	UserID          string `json:"userId"`
	UserName        string `json:"userName"`
	UserAvatarURL   string `json:"userAvatarUrl,omitempty"`
	Content         string `json:"content"`
	ParentCommentID string `json:"parentCommentId,omitempty"`
	LikeCount       int    `json:"likeCount"`
	ReplyCount      int    `json:"replyCount"`
	CreatedAt       string `json:"createdAt"`
	Message         string `json:"message"`
}

// UpdateCommentResponse is returned after a comment edit
type UpdateCommentResponse struct {
	CommentID string `json:"commentId"`
	VideoID   string `json:"videoId"`
	Content   string `json:"content"`
	IsEdited  bool   `json:"isEdited"`
	UpdatedAt string `json:"updatedAt"`
	Message   string `json:"message"`
}

// DeleteCommentResponse summarizes a cascade delete
type DeleteCommentResponse struct {
	CommentID    string `json:"commentId"`
	VideoID      string `json:"videoId"`
	DeletedCount int    `json:"deletedCount"`
	Success      bool   `json:"success"`
	Message      string `json:"message"`
}

// CommentDto is the read model returned by comment listings. Replies is only
// populated for root comments when inlined replies were requested.
type CommentDto struct {
	CommentID       string       `json:"commentId"`
	VideoID         string       `json:"videoId"`
	UserID          string       `json:"userId"`
	UserName        string       `json:"userName"`
	UserAvatarURL   string       `json:"userAvatarUrl,omitempty"`
	Content         string       `json:"content"`
	ParentCommentID string       `json:"parentCommentId,omitempty"`
	LikeCount       int          `json:"likeCount"`
	ReplyCount      int          `json:"replyCount"`
	IsEdited        bool         `json:"isEdited"`
	CreatedAt       string       `json:"createdAt"`
	UpdatedAt       string       `json:"updatedAt,omitempty"`
	Replies         []CommentDto `json:"replies,omitempty"`
}

// GetCommentsResponse carries one page of root comments. The counts reflect
// the full comment set of the video, not the returned page.
type GetCommentsResponse struct {
	VideoID           string       `json:"videoId"`
	Comments          []CommentDto `json:"comments"`
	TotalCount        int          `json:"totalCount"`
	RootCommentsCount int          `json:"rootCommentsCount"`
	RepliesCount      int          `json:"repliesCount"`
}
