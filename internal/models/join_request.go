package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	JoinRequestPending  = "pending"
	JoinRequestAccepted = "accepted"
	JoinRequestRejected = "rejected"
)

// JoinRequest is a user's application to join a project, pending the
// owner's decision. Accepted and rejected are terminal; the orchestrator
// permits no further transitions out of them.
type JoinRequest struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	ProjectID   uint           `gorm:"index;not null" json:"project_id"`
	Project     *Project       `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	UserID      uint           `gorm:"index;not null" json:"user_id"`
	User        *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Status      string         `gorm:"size:20;default:pending;index" json:"status"` // pending, accepted, rejected
	Insight     *AIInsight     `gorm:"foreignKey:JoinRequestID" json:"insight,omitempty"`
	RespondedAt *time.Time     `json:"responded_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (JoinRequest) TableName() string { return "join_requests" }

func (r *JoinRequest) IsTerminal() bool {
	return r.Status == JoinRequestAccepted || r.Status == JoinRequestRejected
}
