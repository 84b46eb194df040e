package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/vidshare-app/backend/internal/models"
	"github.com/vidshare-app/backend/internal/services"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	comments *services.CommentService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(comments *services.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// RegisterCommentRoutes registers the authenticated comment routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/videos/:video_id/comments", h.CreateComment)
	g.PUT("/videos/:video_id/comments/:comment_id", h.UpdateComment)
	g.DELETE("/videos/:video_id/comments/:comment_id", h.DeleteComment)
}

// RegisterPublicCommentRoutes registers the unauthenticated comment listing
func (h *CommentHandler) RegisterPublicCommentRoutes(g *echo.Group) {
	g.GET("/videos/:video_id/comments", h.GetComments)
}

// CreateComment creates a new comment or reply on a video
func (h *CommentHandler) CreateComment(c echo.Context) error {
	firebaseUID := c.Get("firebaseUID").(string)
	videoID := c.Param("video_id")

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.comments.CreateComment(c.Request().Context(), videoID, firebaseUID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, resp)
}

// GetComments retrieves a page of a video's comment thread
func (h *CommentHandler) GetComments(c echo.Context) error {
	videoID := c.Param("video_id")

	req := models.GetCommentsRequest{
		SortBy:          c.QueryParam("sortBy"),
		ParentCommentID: c.QueryParam("parentCommentId"),
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid limit")
		}
		req.Limit = limit
	}
	if raw := c.QueryParam("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid offset")
		}
		req.Offset = offset
	}
	req.IncludeReplies = c.QueryParam("includeReplies") == "true"

	resp, err := h.comments.GetComments(c.Request().Context(), videoID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// UpdateComment edits an existing comment
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	firebaseUID := c.Get("firebaseUID").(string)
	videoID := c.Param("video_id")
	commentID := c.Param("comment_id")

	var req models.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.comments.UpdateComment(c.Request().Context(), videoID, commentID, firebaseUID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// DeleteComment deletes a comment and its reply thread
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	firebaseUID := c.Get("firebaseUID").(string)
	videoID := c.Param("video_id")
	commentID := c.Param("comment_id")

	resp, err := h.comments.DeleteComment(c.Request().Context(), videoID, commentID, firebaseUID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}
