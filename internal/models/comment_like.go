package models

// CommentLike represents a like on a comment, keyed (comment_id, user_id).
// The compound key enforces at most one like per user per comment.
type CommentLike struct {
	CommentID string `json:"commentId" bson:"comment_id"`
	UserID    string `json:"userId" bson:"user_id"`
	CreatedAt string `json:"createdAt" bson:"created_at"`
}

// LikeCommentResponse is returned by the like toggle
type LikeCommentResponse struct {
	CommentID string `json:"commentId"`
	Liked     bool   `json:"liked"`
	LikeCount int    `json:"likeCount"`
}

// CommentLikeCountResponse carries a live like count enumerated from the
// like records, independent of the comment's denormalized counter.
type CommentLikeCountResponse struct {
	CommentID string `json:"commentId"`
	LikeCount int    `json:"likeCount"`
}

// CommentLikeStatusResponse reports whether the caller has liked a comment
type CommentLikeStatusResponse struct {
	CommentID string `json:"commentId"`
	Liked     bool   `json:"liked"`
}
