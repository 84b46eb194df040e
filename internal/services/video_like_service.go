package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vidshare-app/backend/internal/apperrors"
	"github.com/vidshare-app/backend/internal/models"
	"github.com/vidshare-app/backend/internal/repositories"
)

// VideoLikeService toggles likes on videos and keeps the video's like counter
// in step with the like records.
type VideoLikeService struct {
	likes    repositories.VideoLikeRepository
	videos   repositories.VideoRepository
	notifier Notifier
	log      *logrus.Logger
	now      func() time.Time
}

// NewVideoLikeService creates a new VideoLikeService
func NewVideoLikeService(
	likes repositories.VideoLikeRepository,
	videos repositories.VideoRepository,
	notifier Notifier,
	log *logrus.Logger,
) *VideoLikeService {
	return &VideoLikeService{
		likes:    likes,
		videos:   videos,
		notifier: notifier,
		log:      log,
		now:      time.Now,
	}
}

// ToggleLike likes the video if the caller has not liked it, otherwise
// removes the like. Liking another user's video records a notification
// best-effort.
func (s *VideoLikeService) ToggleLike(ctx context.Context, userID, videoID string) (*models.ToggleVideoLikeResponse, error) {
	video, err := s.videos.Get(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, apperrors.NotFound("Video not found.")
	}

	existing, err := s.likes.Get(ctx, userID, videoID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if err := s.likes.Delete(ctx, userID, videoID); err != nil {
			return nil, err
		}
		total, err := s.videos.AddToLikeCount(ctx, videoID, -1)
		if err != nil {
			return nil, err
		}

		s.log.WithFields(logrus.Fields{
			"userId":  userID,
			"videoId": videoID,
		}).Info("removed video like")

		return &models.ToggleVideoLikeResponse{
			VideoID:    videoID,
			IsLiked:    false,
			TotalLikes: total,
			Message:    "Video unliked successfully",
		}, nil
	}

	like := models.VideoLike{
		UserID:    userID,
		VideoID:   videoID,
		CreatedAt: formatTimestamp(s.now()),
	}
	if err := s.likes.Save(ctx, &like); err != nil {
		return nil, err
	}
	total, err := s.videos.AddToLikeCount(ctx, videoID, 1)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"userId":  userID,
		"videoId": videoID,
	}).Info("added video like")

	if video.UserID != userID {
		_, err := s.notifier.CreateNotification(ctx, models.CreateNotificationRequest{
			RecipientUserID: video.UserID,
			ActorUserID:     userID,
			Type:            models.NotificationVideoLiked,
			VideoID:         videoID,
		})
		if err != nil {
			s.log.WithError(err).WithField("videoId", videoID).Error("failed to create video like notification")
		}
	}

	return &models.ToggleVideoLikeResponse{
		VideoID:    videoID,
		IsLiked:    true,
		TotalLikes: total,
		Message:    "Video liked successfully",
	}, nil
}

// GetLikeStatus reports whether the caller has liked a video together with
// the video's current like counter.
func (s *VideoLikeService) GetLikeStatus(ctx context.Context, userID, videoID string) (*models.VideoLikeStatusResponse, error) {
	video, err := s.videos.Get(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, apperrors.NotFound("Video not found.")
	}

	like, err := s.likes.Get(ctx, userID, videoID)
	if err != nil {
		return nil, err
	}

	return &models.VideoLikeStatusResponse{
		VideoID:    videoID,
		IsLiked:    like != nil,
		TotalLikes: video.LikeCount,
	}, nil
}
