package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/vidshare-app/backend/internal/services"
)

// CommentLikeHandler handles HTTP requests related to comment likes
type CommentLikeHandler struct {
	likes *services.CommentLikeService
}

// NewCommentLikeHandler creates a new CommentLikeHandler
func NewCommentLikeHandler(likes *services.CommentLikeService) *CommentLikeHandler {
	return &CommentLikeHandler{likes: likes}
}

// RegisterCommentLikeRoutes registers the authenticated comment like routes
func (h *CommentLikeHandler) RegisterCommentLikeRoutes(g *echo.Group) {
	g.POST("/videos/:video_id/comments/:comment_id/like", h.ToggleLike)
	g.GET("/videos/:video_id/comments/:comment_id/like/status", h.GetLikeStatus)
}

// RegisterPublicCommentLikeRoutes registers the unauthenticated like count route
func (h *CommentLikeHandler) RegisterPublicCommentLikeRoutes(g *echo.Group) {
	g.GET("/comments/:comment_id/likes/count", h.GetLikeCount)
}

// ToggleLike likes or unlikes a comment for the caller
func (h *CommentLikeHandler) ToggleLike(c echo.Context) error {
	firebaseUID := c.Get("firebaseUID").(string)
	videoID := c.Param("video_id")
	commentID := c.Param("comment_id")

	resp, err := h.likes.ToggleLike(c.Request().Context(), videoID, commentID, firebaseUID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// GetLikeStatus reports whether the caller has liked a comment
func (h *CommentLikeHandler) GetLikeStatus(c echo.Context) error {
	firebaseUID := c.Get("firebaseUID").(string)
	commentID := c.Param("comment_id")

	resp, err := h.likes.CheckLiked(c.Request().Context(), commentID, firebaseUID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// GetLikeCount returns the live like count for a comment
func (h *CommentLikeHandler) GetLikeCount(c echo.Context) error {
	commentID := c.Param("comment_id")

	resp, err := h.likes.GetLikeCount(c.Request().Context(), commentID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}
