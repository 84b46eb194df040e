package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vidshare-app/backend/internal/apperrors"
	"github.com/vidshare-app/backend/internal/models"
	"github.com/vidshare-app/backend/internal/repositories"
)

// notificationTTL is how long a notification stays in the store before the
// background expiry removes it.
const notificationTTL = 30 * 24 * time.Hour

// markAllBatchLimit caps how many unread notifications a single
// mark-all-as-read call updates.
const markAllBatchLimit = 100

// Notifier is the interface event producers (comment, like services) use to
// record notifications best-effort.
type Notifier interface {
	CreateNotification(ctx context.Context, req models.CreateNotificationRequest) (*models.CreateNotificationResponse, error)
}

// NotificationService builds, fans out and serves activity notifications.
type NotificationService struct {
	notifications repositories.NotificationRepository
	users         repositories.UserRepository
	videos        repositories.VideoRepository
	channels      repositories.ChannelRepository
	subscriptions repositories.SubscriptionRepository
	log           *logrus.Logger
	now           func() time.Time
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(
	notifications repositories.NotificationRepository,
	users repositories.UserRepository,
	videos repositories.VideoRepository,
	channels repositories.ChannelRepository,
	subscriptions repositories.SubscriptionRepository,
	log *logrus.Logger,
) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		users:         users,
		videos:        videos,
		channels:      channels,
		subscriptions: subscriptions,
		log:           log,
		now:           time.Now,
	}
}

// CreateNotification records a single notification for one recipient. A
// request where the recipient is the actor is rejected with a non-error
// Success=false response and nothing is persisted.
func (s *NotificationService) CreateNotification(ctx context.Context, req models.CreateNotificationRequest) (*models.CreateNotificationResponse, error) {
	if req.RecipientUserID == req.ActorUserID {
		return &models.CreateNotificationResponse{
			Success: false,
			Message: "Cannot create notification for yourself",
		}, nil
	}

	actor, err := s.users.GetByUID(req.ActorUserID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, apperrors.NotFound("Actor user not found")
	}

	recipient, err := s.users.GetByUID(req.RecipientUserID)
	if err != nil {
		return nil, err
	}
	if recipient == nil {
		return nil, apperrors.NotFound("Recipient user not found")
	}

	message, videoTitle, videoThumbnailURL, err := s.buildMessage(ctx, actor.Name, req)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	notification := models.Notification{
		RecipientUserID:   req.RecipientUserID,
		CreatedAt:         formatTimestamp(now),
		NotificationID:    uuid.NewString(),
		Type:              req.Type,
		ActorUserID:       req.ActorUserID,
		ActorName:         actor.Name,
		ActorAvatarURL:    actor.AvatarURL,
		VideoID:           req.VideoID,
		VideoTitle:        videoTitle,
		VideoThumbnailURL: videoThumbnailURL,
		CommentID:         req.CommentID,
		Message:           message,
		IsRead:            "false",
		ExpiresAt:         now.Add(notificationTTL),
	}

	if err := s.notifications.Save(ctx, &notification); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"notificationId": notification.NotificationID,
		"recipient":      req.RecipientUserID,
		"type":           req.Type,
	}).Info("created notification")

	return &models.CreateNotificationResponse{
		NotificationID: notification.NotificationID,
		Success:        true,
		Message:        "Notification created successfully",
	}, nil
}

// buildMessage composes the display message for a notification type and
// resolves the video title/thumbnail the type calls for.
func (s *NotificationService) buildMessage(ctx context.Context, actorName string, req models.CreateNotificationRequest) (message, videoTitle, videoThumbnailURL string, err error) {
	lookupVideo := func() (*models.Video, error) {
		if req.VideoID == "" {
			return nil, nil
		}
		return s.videos.Get(ctx, req.VideoID)
	}

	switch req.Type {
	case models.NotificationVideoLiked:
		video, lookupErr := lookupVideo()
		if lookupErr != nil {
			return "", "", "", lookupErr
		}
		message = fmt.Sprintf("%s liked your video", actorName)
		if video != nil {
			videoTitle = video.Title
			videoThumbnailURL = video.ThumbnailURL
			if video.Title != "" {
				message += fmt.Sprintf(" %q", video.Title)
			}
		}

	case models.NotificationVideoCommented:
		video, lookupErr := lookupVideo()
		if lookupErr != nil {
			return "", "", "", lookupErr
		}
		message = fmt.Sprintf("%s commented on your video", actorName)
		if video != nil {
			videoTitle = video.Title
			videoThumbnailURL = video.ThumbnailURL
			if video.Title != "" {
				message += fmt.Sprintf(" %q", video.Title)
			}
		}

	case models.NotificationCommentLiked:
		message = fmt.Sprintf("%s liked your comment", actorName)
		video, lookupErr := lookupVideo()
		if lookupErr != nil {
			return "", "", "", lookupErr
		}
		if video != nil {
			videoThumbnailURL = video.ThumbnailURL
		}

	case models.NotificationCommentReplied:
		message = fmt.Sprintf("%s replied to your comment", actorName)
		video, lookupErr := lookupVideo()
		if lookupErr != nil {
			return "", "", "", lookupErr
		}
		if video != nil {
			videoThumbnailURL = video.ThumbnailURL
		}

	case models.NotificationNewVideoUploaded:
		video, lookupErr := lookupVideo()
		if lookupErr != nil {
			return "", "", "", lookupErr
		}
		message = fmt.Sprintf("%s uploaded a new video", actorName)
		if video != nil {
			videoTitle = video.Title
			videoThumbnailURL = video.ThumbnailURL
			if video.Title != "" {
				message += fmt.Sprintf(": %q", video.Title)
			}
		}

	default:
		message = fmt.Sprintf("%s interacted with your content", actorName)
	}

	return message, videoTitle, videoThumbnailURL, nil
}

// NotifySubscribers fans out a NEW_VIDEO_UPLOADED notification to every
// subscriber of a channel, excluding the channel owner. Missing entities are
// logged and the fan-out is skipped; this call is fire-and-forget relative to
// the upload that triggered it.
func (s *NotificationService) NotifySubscribers(ctx context.Context, channelID, videoID string) error {
	channel, err := s.channels.GetByID(channelID)
	if err != nil {
		return err
	}
	if channel == nil {
		s.log.WithField("channelId", channelID).Warn("channel not found, skipping fan-out")
		return nil
	}

	video, err := s.videos.Get(ctx, videoID)
	if err != nil {
		return err
	}
	if video == nil {
		s.log.WithField("videoId", videoID).Warn("video not found, skipping fan-out")
		return nil
	}

	subscriptions, err := s.subscriptions.ListByChannel(channelID)
	if err != nil {
		return err
	}
	if len(subscriptions) == 0 {
		s.log.WithField("channelId", channelID).Info("channel has no subscribers")
		return nil
	}

	owner, err := s.users.GetByUID(channel.UserID)
	if err != nil {
		return err
	}
	if owner == nil {
		s.log.WithField("userId", channel.UserID).Warn("channel owner not found, skipping fan-out")
		return nil
	}

	now := s.now().UTC()
	notifications := make([]models.Notification, 0, len(subscriptions))
	for _, subscription := range subscriptions {
		if subscription.UserID == channel.UserID {
			continue
		}
		notifications = append(notifications, models.Notification{
			RecipientUserID:   subscription.UserID,
			CreatedAt:         formatTimestamp(now),
			NotificationID:    uuid.NewString(),
			Type:              models.NotificationNewVideoUploaded,
			ActorUserID:       channel.UserID,
			ActorName:         owner.Name,
			ActorAvatarURL:    owner.AvatarURL,
			VideoID:           videoID,
			VideoTitle:        video.Title,
			VideoThumbnailURL: video.ThumbnailURL,
			Message:           fmt.Sprintf("%s uploaded a new video: %q", owner.Name, video.Title),
			IsRead:            "false",
			ExpiresAt:         now.Add(notificationTTL),
		})
	}

	if len(notifications) == 0 {
		return nil
	}

	if err := s.notifications.BatchSave(ctx, notifications); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"count":     len(notifications),
		"videoId":   videoID,
		"channelId": channelID,
	}).Info("notified subscribers about new video")
	return nil
}

// GetUserNotifications returns one page of a recipient's notifications,
// newest first, together with the total unread count. The limit is clamped
// to [1,100] with a default of 20. A malformed cursor is treated as absent.
func (s *NotificationService) GetUserNotifications(ctx context.Context, userID string, unreadOnly bool, limit int, cursor string) (*models.GetNotificationsResponse, error) {
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	var notifications []models.Notification
	nextCursor := ""

	if unreadOnly {
		unread, err := s.notifications.ListUnread(ctx, userID, int64(limit))
		if err != nil {
			return nil, err
		}
		notifications = unread
	} else {
		before := ""
		if cursor != "" {
			resumeKey, err := decodeCursor(cursor)
			if err != nil {
				s.log.WithError(err).WithField("cursor", cursor).Warn("invalid cursor, starting from the top")
			} else {
				before = resumeKey.CreatedAt
			}
		}

		// Fetch one extra record to learn whether another page exists.
		page, err := s.notifications.ListByRecipient(ctx, userID, int64(limit)+1, before)
		if err != nil {
			return nil, err
		}
		if len(page) > limit {
			page = page[:limit]
			last := page[len(page)-1]
			nextCursor = encodeCursor(notificationCursor{
				RecipientUserID: last.RecipientUserID,
				CreatedAt:       last.CreatedAt,
			})
		}
		notifications = page
	}

	unreadCount, err := s.notifications.CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}

	dtos := make([]models.NotificationDto, 0, len(notifications))
	for _, n := range notifications {
		dtos = append(dtos, toNotificationDto(n))
	}

	return &models.GetNotificationsResponse{
		Notifications: dtos,
		TotalCount:    len(dtos),
		UnreadCount:   unreadCount,
		NextCursor:    nextCursor,
	}, nil
}

// GetUnreadCount returns the recipient's total unread notification count.
func (s *NotificationService) GetUnreadCount(ctx context.Context, userID string) (int, error) {
	return s.notifications.CountUnread(ctx, userID)
}

// MarkAsRead flips one notification to read. It is idempotent: an already
// read notification returns success without a write.
func (s *NotificationService) MarkAsRead(ctx context.Context, userID, notificationID string) (*models.MarkAsReadResponse, error) {
	notification, err := s.notifications.GetByNotificationID(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	if notification == nil {
		return nil, apperrors.NotFound("Notification not found")
	}
	if notification.RecipientUserID != userID {
		return nil, apperrors.Unauthorized("You don't have permission to access this notification")
	}

	if notification.IsRead == "true" {
		return &models.MarkAsReadResponse{
			NotificationID: notificationID,
			Success:        true,
			Message:        "Notification already marked as read",
		}, nil
	}

	if err := s.notifications.MarkRead(ctx, notification.RecipientUserID, notification.CreatedAt); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"userId":         userID,
		"notificationId": notificationID,
	}).Info("marked notification as read")

	return &models.MarkAsReadResponse{
		NotificationID: notificationID,
		Success:        true,
		Message:        "Notification marked as read",
	}, nil
}

// MarkAllAsRead marks up to 100 unread notifications as read, one update per
// record. The updates are not atomic across the set.
func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID string) (*models.MarkAsReadResponse, error) {
	unread, err := s.notifications.ListUnread(ctx, userID, markAllBatchLimit)
	if err != nil {
		return nil, err
	}

	for _, notification := range unread {
		if err := s.notifications.MarkRead(ctx, notification.RecipientUserID, notification.CreatedAt); err != nil {
			return nil, err
		}
	}

	s.log.WithFields(logrus.Fields{
		"userId": userID,
		"count":  len(unread),
	}).Info("marked all notifications as read")

	return &models.MarkAsReadResponse{
		Success: true,
		Message: "All notifications marked as read",
	}, nil
}

// DeleteNotification removes one notification owned by the caller.
func (s *NotificationService) DeleteNotification(ctx context.Context, userID, notificationID string) (*models.DeleteNotificationResponse, error) {
	notification, err := s.notifications.GetByNotificationID(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	if notification == nil {
		return nil, apperrors.NotFound("Notification not found")
	}
	if notification.RecipientUserID != userID {
		return nil, apperrors.Unauthorized("You don't have permission to delete this notification")
	}

	if err := s.notifications.DeleteByKey(ctx, notification.RecipientUserID, notification.CreatedAt); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"userId":         userID,
		"notificationId": notificationID,
	}).Info("deleted notification")

	return &models.DeleteNotificationResponse{
		NotificationID: notificationID,
		Success:        true,
		Message:        "Notification deleted successfully",
	}, nil
}

func toNotificationDto(n models.Notification) models.NotificationDto {
	return models.NotificationDto{
		NotificationID:    n.NotificationID,
		Type:              n.Type,
		ActorUserID:       n.ActorUserID,
		ActorName:         n.ActorName,
		ActorAvatarURL:    n.ActorAvatarURL,
		VideoID:           n.VideoID,
		VideoTitle:        n.VideoTitle,
		VideoThumbnailURL: n.VideoThumbnailURL,
		CommentID:         n.CommentID,
		Message:           n.Message,
		IsRead:            n.IsRead == "true",
		CreatedAt:         n.CreatedAt,
	}
}

// notificationCursor is the resume key behind the opaque pagination token.
// The token format is JSON wrapped in base64 and carries no stability
// guarantee across storage layouts.
type notificationCursor struct {
	RecipientUserID string `json:"recipientUserId"`
	CreatedAt       string `json:"createdAt"`
}

func encodeCursor(key notificationCursor) string {
	raw, err := json.Marshal(key)
	if err != nil {
		return ""
	}
	return base64.StdEncoding.EncodeToString(raw)
}

func decodeCursor(cursor string) (notificationCursor, error) {
	var key notificationCursor
	raw, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return key, err
	}
	if err := json.Unmarshal(raw, &key); err != nil {
		return key, err
	}
	if key.CreatedAt == "" {
		return key, fmt.Errorf("cursor missing resume position")
	}
	return key, nil
}
