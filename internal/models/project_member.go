package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	MemberRoleAdmin  = "admin"
	MemberRoleMember = "member"
)

// ProjectMember records a user's membership and role within a project.
// The owner is inserted as an admin member at project creation; a user
// appears at most once per project (enforced by the composite index).
type ProjectMember struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	ProjectID uint           `gorm:"uniqueIndex:idx_project_user;not null" json:"project_id"`
	Project   *Project       `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	UserID    uint           `gorm:"uniqueIndex:idx_project_user;not null" json:"user_id"`
	User      *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Role      string         `gorm:"size:50;default:member" json:"role"` // admin, member
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ProjectMember) TableName() string { return "project_members" }
