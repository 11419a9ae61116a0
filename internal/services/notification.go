package services

import (
	"strings"
	"time"

	"github.com/abdullah-briah/neuralinker-sub000/internal/models"
	"github.com/abdullah-briah/neuralinker-sub000/pkg/response"
	"gorm.io/gorm"
)

// FeedLimit caps the notification feed; no pagination beyond it.
const FeedLimit = 20

type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

type CreateNotificationParams struct {
	UserID        uint
	Title         string
	Message       string
	ProjectID     *uint
	JoinRequestID *uint
}

// Create validates and inserts an unread notification.
func (s *NotificationService) Create(params *CreateNotificationParams) (*models.Notification, error) {
	return s.CreateIn(s.db, params)
}

// CreateIn inserts using the given handle so callers can make the insert
// part of a larger transaction.
func (s *NotificationService) CreateIn(db *gorm.DB, params *CreateNotificationParams) (*models.Notification, error) {
	if params.UserID == 0 {
		return nil, response.NewBadRequest("notification recipient is required")
	}
	if strings.TrimSpace(params.Title) == "" {
		return nil, response.NewBadRequest("notification title is required")
	}
	if strings.TrimSpace(params.Message) == "" {
		return nil, response.NewBadRequest("notification message is required")
	}

	notification := models.Notification{
		UserID:        params.UserID,
		Title:         params.Title,
		Message:       params.Message,
		ProjectID:     params.ProjectID,
		JoinRequestID: params.JoinRequestID,
	}
	if err := db.Create(&notification).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

// ListForUser returns the user's most recent notifications, newest first,
// enriched with the related join request (requester profile + insight)
// and project.
func (s *NotificationService) ListForUser(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(FeedLimit).
		Preload("Project").
		Preload("JoinRequest").
		Preload("JoinRequest.User").
		Preload("JoinRequest.Insight").
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkAsRead flips IsRead to true. Idempotent: re-reading an already-read
// notification keeps the original ReadAt. Another user's notification is
// indistinguishable from a missing one.
func (s *NotificationService) MarkAsRead(id, userID uint) (*models.Notification, error) {
	var notification models.Notification
	if err := s.db.First(&notification, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, response.NewNotFound("notification not found")
		}
		return nil, err
	}
	if notification.UserID != userID {
		return nil, response.NewNotFound("notification not found")
	}

	if !notification.IsRead {
		now := time.Now()
		notification.IsRead = true
		notification.ReadAt = &now
		if err := s.db.Model(&notification).
			Updates(map[string]interface{}{"is_read": true, "read_at": now}).Error; err != nil {
			return nil, err
		}
	}

	return &notification, nil
}

// UnreadCount returns the number of unread notifications for the badge.
func (s *NotificationService) UnreadCount(userID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

// PruneRead deletes read notifications older than the retention window.
// Returns the number of rows removed.
func (s *NotificationService) PruneRead(retentionDays int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	result := s.db.Where("is_read = ? AND created_at < ?", true, cutoff).
		Delete(&models.Notification{})
	return result.RowsAffected, result.Error
}
