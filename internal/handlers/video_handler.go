package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/vidshare-app/backend/internal/apperrors"
	"github.com/vidshare-app/backend/internal/repositories"
	"github.com/vidshare-app/backend/internal/services"
)

// VideoHandler handles the video publish step that triggers subscriber
// notification fan-out.
type VideoHandler struct {
	videos        repositories.VideoRepository
	notifications *services.NotificationService
	log           *logrus.Logger
}

// NewVideoHandler creates a new VideoHandler
func NewVideoHandler(videos repositories.VideoRepository, notifications *services.NotificationService, log *logrus.Logger) *VideoHandler {
	return &VideoHandler{videos: videos, notifications: notifications, log: log}
}

// RegisterVideoRoutes registers video routes
func (h *VideoHandler) RegisterVideoRoutes(g *echo.Group) {
	g.POST("/videos/:video_id/publish", h.PublishVideo)
}

// PublishVideo marks a video ready and fans out NEW_VIDEO_UPLOADED
// notifications to the channel's subscribers. The fan-out runs in the
// background; the response does not wait for it.
func (h *VideoHandler) PublishVideo(c echo.Context) error {
	firebaseUID := c.Get("firebaseUID").(string)
	videoID := c.Param("video_id")

	video, err := h.videos.Get(c.Request().Context(), videoID)
	if err != nil {
		return err
	}
	if video == nil {
		return apperrors.NotFound("Video not found.")
	}
	if video.UserID != firebaseUID {
		return apperrors.Forbidden("You can only publish your own videos.")
	}

	video.Status = "PUBLISHED"
	if err := h.videos.Save(c.Request().Context(), video); err != nil {
		return err
	}

	channelID := video.ChannelID
	go func() {
		if err := h.notifications.NotifySubscribers(context.Background(), channelID, videoID); err != nil {
			h.log.WithError(err).WithField("videoId", videoID).Error("subscriber fan-out failed")
		}
	}()

	return c.JSON(http.StatusOK, map[string]any{
		"videoId": videoID,
		"status":  video.Status,
		"message": "Video published successfully",
	})
}
