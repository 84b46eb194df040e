package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/vidshare-app/backend/internal/services"
)

// VideoLikeHandler handles HTTP requests related to video likes
type VideoLikeHandler struct {
	likes *services.VideoLikeService
}

// NewVideoLikeHandler creates a new VideoLikeHandler
func NewVideoLikeHandler(likes *services.VideoLikeService) *VideoLikeHandler {
	return &VideoLikeHandler{likes: likes}
}

// RegisterVideoLikeRoutes registers video like routes
func (h *VideoLikeHandler) RegisterVideoLikeRoutes(g *echo.Group) {
	g.POST("/videos/:video_id/like", h.ToggleLike)
	g.GET("/videos/:video_id/like/status", h.GetLikeStatus)
}

// ToggleLike likes or unlikes a video for the caller
func (h *VideoLikeHandler) ToggleLike(c echo.Context) error {
	firebaseUID := c.Get("firebaseUID").(string)
	videoID := c.Param("video_id")

	resp, err := h.likes.ToggleLike(c.Request().Context(), firebaseUID, videoID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// GetLikeStatus reports whether the caller has liked a video
func (h *VideoLikeHandler) GetLikeStatus(c echo.Context) error {
	firebaseUID := c.Get("firebaseUID").(string)
	videoID := c.Param("video_id")

	resp, err := h.likes.GetLikeStatus(c.Request().Context(), firebaseUID, videoID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}
