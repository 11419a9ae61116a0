package models

import "time"

// Notification is an in-app message for one user, created as a side
// effect of join-request activity. Only IsRead changes after insert.
type Notification struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	UserID        uint         `gorm:"index;not null" json:"user_id"`
	Title         string       `gorm:"size:200;not null" json:"title"`
	Message       string       `gorm:"size:1000;not null" json:"message"`
	ProjectID     *uint        `gorm:"index" json:"project_id,omitempty"`
	Project       *Project     `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	JoinRequestID *uint        `gorm:"index" json:"join_request_id,omitempty"`
	JoinRequest   *JoinRequest `gorm:"foreignKey:JoinRequestID" json:"join_request,omitempty"`
	IsRead        bool         `gorm:"default:false;index" json:"is_read"`
	ReadAt        *time.Time   `json:"read_at,omitempty"`
	CreatedAt     time.Time    `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

func (Notification) TableName() string { return "notifications" }
