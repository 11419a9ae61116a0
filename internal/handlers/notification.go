package handlers

import (
	"strconv"

	"github.com/abdullah-briah/neuralinker-sub000/internal/middleware"
	"github.com/abdullah-briah/neuralinker-sub000/internal/services"
	"github.com/abdullah-briah/neuralinker-sub000/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type NotificationHandler struct {
	notificationService *services.NotificationService
}

func NewNotificationHandler(db *gorm.DB) *NotificationHandler {
	return &NotificationHandler{
		notificationService: services.NewNotificationService(db),
	}
}

// List returns the authenticated user's notification feed, newest first.
// The feed must always reflect the latest state, so caching is disabled.
// GET /api/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	notifications, err := h.notificationService.ListForUser(middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Cache-Control", "no-store")
	response.Success(c, notifications)
}

// UnreadCount returns the unread notification count for the badge
// GET /api/notifications/unread-count
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	count, err := h.notificationService.UnreadCount(middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"count": count})
}

// MarkAsRead marks one of the user's notifications as read
// PUT /api/notifications/:id/read
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid notification id")
		return
	}

	notification, err := h.notificationService.MarkAsRead(uint(id), middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, notification)
}
