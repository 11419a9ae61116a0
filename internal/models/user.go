package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// User represents a platform user and their public collaboration profile.
// Skills are exposed as an ordered string slice; the comma-joined raw
// column is a storage detail handled by the BeforeSave/AfterFind hooks.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"uniqueIndex;size:100;not null" json:"username"`
	Password  string         `gorm:"size:255" json:"-"` // bcrypt hash
	Email     string         `gorm:"size:255;not null" json:"email"`
	Name      string         `gorm:"size:200" json:"name"`
	Title     string         `gorm:"size:200" json:"title"` // e.g. "Frontend Developer"
	Bio       string         `gorm:"type:text" json:"bio"`
	SkillsRaw string         `gorm:"column:skills;size:2000" json:"-"`
	Skills    []string       `gorm:"-" json:"skills"`
	GitHub    string         `gorm:"size:500" json:"github"`
	LinkedIn  string         `gorm:"size:500" json:"linkedin"`
	Website   string         `gorm:"size:500" json:"website"`
	Role      string         `gorm:"size:50;default:user" json:"role"` // admin, user
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	LastLogin *time.Time     `json:"last_login"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }

func (u *User) BeforeSave(tx *gorm.DB) error {
	u.SkillsRaw = JoinSkills(u.Skills)
	return nil
}

func (u *User) AfterFind(tx *gorm.DB) error {
	u.Skills = SplitSkills(u.SkillsRaw)
	return nil
}

// PublicProfile is the subset of user fields safe to show other users,
// e.g. when an owner reviews a join request.
type PublicProfile struct {
	ID     uint     `json:"id"`
	Name   string   `json:"name"`
	Title  string   `json:"title"`
	Bio    string   `json:"bio"`
	Skills []string `json:"skills"`
}

func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:     u.ID,
		Name:   u.Name,
		Title:  u.Title,
		Bio:    u.Bio,
		Skills: u.Skills,
	}
}

// JoinSkills serializes a skill list to the comma-joined storage form.
func JoinSkills(skills []string) string {
	cleaned := make([]string, 0, len(skills))
	for _, s := range skills {
		if s = strings.TrimSpace(s); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	return strings.Join(cleaned, ",")
}

// SplitSkills parses the comma-joined storage form back into an ordered list.
func SplitSkills(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			skills = append(skills, p)
		}
	}
	return skills
}
