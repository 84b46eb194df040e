package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vidshare-app/backend/internal/apperrors"
	"github.com/vidshare-app/backend/internal/models"
	"github.com/vidshare-app/backend/internal/repositories"
)

// CommentLikeService toggles likes on comments and keeps the comment's
// denormalized like counter in step with the like records.
type CommentLikeService struct {
	likes    repositories.CommentLikeRepository
	comments repositories.CommentRepository
	notifier Notifier
	log      *logrus.Logger
	now      func() time.Time
}

// NewCommentLikeService creates a new CommentLikeService
func NewCommentLikeService(
	likes repositories.CommentLikeRepository,
	comments repositories.CommentRepository,
	notifier Notifier,
	log *logrus.Logger,
) *CommentLikeService {
	return &CommentLikeService{
		likes:    likes,
		comments: comments,
		notifier: notifier,
		log:      log,
		now:      time.Now,
	}
}

// ToggleLike likes the comment if the caller has not liked it, otherwise
// removes the like. The returned count is the comment's counter after the
// atomic adjustment. Liking another user's comment records a notification
// best-effort.
func (s *CommentLikeService) ToggleLike(ctx context.Context, videoID, commentID, userID string) (*models.LikeCommentResponse, error) {
	comment, err := s.comments.Get(ctx, videoID, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil || comment.IsDeleted {
		return nil, apperrors.NotFound("Comment not found.")
	}

	existing, err := s.likes.Get(ctx, commentID, userID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if err := s.likes.Delete(ctx, commentID, userID); err != nil {
			return nil, err
		}
		count, err := s.comments.AddToLikeCount(ctx, videoID, commentID, -1)
		if err != nil {
			return nil, err
		}

		s.log.WithFields(logrus.Fields{
			"userId":    userID,
			"commentId": commentID,
		}).Info("removed comment like")

		return &models.LikeCommentResponse{
			CommentID: commentID,
			Liked:     false,
			LikeCount: count,
		}, nil
	}

	like := models.CommentLike{
		CommentID: commentID,
		UserID:    userID,
		CreatedAt: formatTimestamp(s.now()),
	}
	if err := s.likes.Save(ctx, &like); err != nil {
		return nil, err
	}
	count, err := s.comments.AddToLikeCount(ctx, videoID, commentID, 1)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"userId":    userID,
		"commentId": commentID,
	}).Info("added comment like")

	if comment.UserID != userID {
		_, err := s.notifier.CreateNotification(ctx, models.CreateNotificationRequest{
			RecipientUserID: comment.UserID,
			ActorUserID:     userID,
			Type:            models.NotificationCommentLiked,
			VideoID:         videoID,
			CommentID:       commentID,
		})
		if err != nil {
			s.log.WithError(err).WithField("commentId", commentID).Error("failed to create comment like notification")
		}
	}

	return &models.LikeCommentResponse{
		CommentID: commentID,
		Liked:     true,
		LikeCount: count,
	}, nil
}

// GetLikeCount enumerates the like records for a comment. The result is the
// live count and may lag the comment's denormalized counter. A comment with
// no like records reports zero whether or not it exists.
func (s *CommentLikeService) GetLikeCount(ctx context.Context, commentID string) (*models.CommentLikeCountResponse, error) {
	count, err := s.likes.Count(ctx, commentID)
	if err != nil {
		return nil, err
	}

	return &models.CommentLikeCountResponse{
		CommentID: commentID,
		LikeCount: count,
	}, nil
}

// CheckLiked reports whether the caller has liked a comment.
func (s *CommentLikeService) CheckLiked(ctx context.Context, commentID, userID string) (*models.CommentLikeStatusResponse, error) {
	like, err := s.likes.Get(ctx, commentID, userID)
	if err != nil {
		return nil, err
	}
	return &models.CommentLikeStatusResponse{
		CommentID: commentID,
		Liked:     like != nil,
	}, nil
}
