package models

import (
	"time"

	"gorm.io/gorm"
)

// Project represents a collaboration project posted by an owner.
type Project struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	SkillsRaw   string     `gorm:"column:skills;size:2000" json:"-"` // comma-joined required skills
	Skills      []string   `gorm:"-" json:"skills"`
	Category    string     `gorm:"size:100" json:"category"`
	Duration    string     `gorm:"size:100" json:"duration"` // e.g. "3 months"
	StartDate   *time.Time `json:"start_date"`
	OwnerID     uint       `gorm:"index;not null" json:"owner_id"`
	Owner       *User      `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	// Version increments on every update; the prior row is snapshotted
	// into project_versions before the change is applied.
	Version   int            `gorm:"default:1" json:"version"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Project) TableName() string { return "projects" }

func (p *Project) BeforeSave(tx *gorm.DB) error {
	p.SkillsRaw = JoinSkills(p.Skills)
	return nil
}

func (p *Project) AfterFind(tx *gorm.DB) error {
	p.Skills = SplitSkills(p.SkillsRaw)
	return nil
}

// ProjectVersion is an immutable snapshot of a project row taken before
// an update, keyed by the version number it preserves.
type ProjectVersion struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ProjectID   uint       `gorm:"index:idx_project_version,unique;not null" json:"project_id"`
	Version     int        `gorm:"index:idx_project_version,unique;not null" json:"version"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Skills      string     `gorm:"size:2000" json:"skills"` // comma-joined, as stored
	Category    string     `gorm:"size:100" json:"category"`
	Duration    string     `gorm:"size:100" json:"duration"`
	StartDate   *time.Time `json:"start_date"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (ProjectVersion) TableName() string { return "project_versions" }
