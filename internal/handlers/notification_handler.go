package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/vidshare-app/backend/internal/services"
)

// NotificationHandler handles HTTP requests related to notifications
type NotificationHandler struct {
	notifications *services.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notifications *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// RegisterNotificationRoutes registers notification routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notifications", h.GetNotifications)
	g.GET("/notifications/unread-count", h.GetUnreadCount)
	g.PUT("/notifications/:notification_id/read", h.MarkAsRead)
	g.PUT("/notifications/read-all", h.MarkAllAsRead)
	g.DELETE("/notifications/:notification_id", h.DeleteNotification)
}

// GetNotifications returns a page of the caller's notifications, newest first
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	firebaseUID := c.Get("firebaseUID").(string)

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid limit")
		}
		limit = parsed
	}
	unreadOnly := c.QueryParam("unreadOnly") == "true"
	cursor := c.QueryParam("cursor")

	resp, err := h.notifications.GetUserNotifications(c.Request().Context(), firebaseUID, unreadOnly, limit, cursor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// GetUnreadCount returns the caller's unread notification count
func (h *NotificationHandler) GetUnreadCount(c echo.Context) error {
	firebaseUID := c.Get("firebaseUID").(string)

	count, err := h.notifications.GetUnreadCount(c.Request().Context(), firebaseUID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]int{"unreadCount": count})
}

// MarkAsRead flips one of the caller's notifications to read
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	firebaseUID := c.Get("firebaseUID").(string)
	notificationID := c.Param("notification_id")

	resp, err := h.notifications.MarkAsRead(c.Request().Context(), firebaseUID, notificationID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// MarkAllAsRead marks the caller's unread notifications as read
func (h *NotificationHandler) MarkAllAsRead(c echo.Context) error {
	firebaseUID := c.Get("firebaseUID").(string)

	resp, err := h.notifications.MarkAllAsRead(c.Request().Context(), firebaseUID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// DeleteNotification removes one of the caller's notifications
func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	firebaseUID := c.Get("firebaseUID").(string)
	notificationID := c.Param("notification_id")

	resp, err := h.notifications.DeleteNotification(c.Request().Context(), firebaseUID, notificationID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}
