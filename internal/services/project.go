package services

import (
	"strings"
	"time"

	"github.com/abdullah-briah/neuralinker-sub000/internal/models"
	"github.com/abdullah-briah/neuralinker-sub000/pkg/response"
	"gorm.io/gorm"
)

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

type ProjectListRequest struct {
	Page     int    `form:"page" binding:"min=0"`
	PageSize int    `form:"page_size" binding:"min=0,max=100"`
	Category string `form:"category"`
	Skill    string `form:"skill"`
	Search   string `form:"search"`
}

type ProjectListResponse struct {
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
	Items    []models.Project `json:"items"`
}

type CreateProjectRequest struct {
	Title       string     `json:"title" binding:"required,max=200"`
	Description string     `json:"description" binding:"required"`
	Skills      []string   `json:"skills" binding:"required,min=1"`
	Category    string     `json:"category"`
	Duration    string     `json:"duration"`
	StartDate   *time.Time `json:"start_date"`
}

type UpdateProjectRequest struct {
	Title       string     `json:"title" binding:"omitempty,max=200"`
	Description string     `json:"description"`
	Skills      []string   `json:"skills"`
	Category    string     `json:"category"`
	Duration    string     `json:"duration"`
	StartDate   *time.Time `json:"start_date"`
}

// List returns paginated projects with optional filters
func (s *ProjectService) List(req *ProjectListRequest) (*ProjectListResponse, error) {
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 10
	}

	var projects []models.Project
	var total int64

	query := s.db.Model(&models.Project{})

	if req.Category != "" {
		query = query.Where("category = ?", req.Category)
	}
	if req.Skill != "" {
		query = query.Where("skills LIKE ?", "%"+strings.ToLower(strings.TrimSpace(req.Skill))+"%")
	}
	if req.Search != "" {
		query = query.Where("title LIKE ? OR description LIKE ?", "%"+req.Search+"%", "%"+req.Search+"%")
	}

	query.Count(&total)

	offset := (req.Page - 1) * req.PageSize
	if err := query.Offset(offset).Limit(req.PageSize).Order("created_at DESC").
		Preload("Owner").Find(&projects).Error; err != nil {
		return nil, err
	}

	return &ProjectListResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		Items:    projects,
	}, nil
}

// ListMine returns the projects a user owns, newest first
func (s *ProjectService) ListMine(ownerID uint) ([]models.Project, error) {
	var projects []models.Project
	if err := s.db.Where("owner_id = ?", ownerID).
		Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// GetByID returns a project by ID with its owner preloaded
func (s *ProjectService) GetByID(id uint) (*models.Project, error) {
	var project models.Project
	if err := s.db.Preload("Owner").First(&project, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, response.NewNotFound("project not found")
		}
		return nil, err
	}
	return &project, nil
}

// Create creates a project and enrolls the owner as its admin member
// in the same transaction.
func (s *ProjectService) Create(req *CreateProjectRequest, ownerID uint) (*models.Project, error) {
	project := models.Project{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Skills:      req.Skills,
		Category:    req.Category,
		Duration:    req.Duration,
		StartDate:   req.StartDate,
		OwnerID:     ownerID,
		Version:     1,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&project).Error; err != nil {
			return err
		}
		member := models.ProjectMember{
			ProjectID: project.ID,
			UserID:    ownerID,
			Role:      models.MemberRoleAdmin,
		}
		return tx.Create(&member).Error
	})
	if err != nil {
		return nil, err
	}

	return &project, nil
}

// Update applies the changed fields to an owner's project. The previous
// state is snapshotted as a ProjectVersion and the version counter
// incremented in the same transaction, so the history never skips a
// revision.
func (s *ProjectService) Update(id uint, req *UpdateProjectRequest, actorID uint) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, response.NewNotFound("project not found")
		}
		return nil, err
	}
	if project.OwnerID != actorID {
		return nil, response.NewForbidden("only the project owner can update the project")
	}

	updates := make(map[string]interface{})

	if req.Title != "" {
		updates["title"] = strings.TrimSpace(req.Title)
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Skills != nil {
		updates["skills"] = models.JoinSkills(req.Skills)
	}
	if req.Category != "" {
		updates["category"] = req.Category
	}
	if req.Duration != "" {
		updates["duration"] = req.Duration
	}
	if req.StartDate != nil {
		updates["start_date"] = req.StartDate
	}

	if len(updates) == 0 {
		return &project, nil
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		snapshot := models.ProjectVersion{
			ProjectID:   project.ID,
			Version:     project.Version,
			Title:       project.Title,
			Description: project.Description,
			Skills:      project.SkillsRaw,
			Category:    project.Category,
			Duration:    project.Duration,
			StartDate:   project.StartDate,
		}
		if err := tx.Create(&snapshot).Error; err != nil {
			return err
		}

		updates["version"] = project.Version + 1
		return tx.Model(&project).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(id)
}

// Delete soft-deletes an owner's project
func (s *ProjectService) Delete(id, actorID uint) error {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NewNotFound("project not found")
		}
		return err
	}
	if project.OwnerID != actorID {
		return response.NewForbidden("only the project owner can delete the project")
	}
	return s.db.Delete(&project).Error
}

// ListVersions returns a project's revision history, newest first
func (s *ProjectService) ListVersions(projectID uint) ([]models.ProjectVersion, error) {
	if _, err := s.GetByID(projectID); err != nil {
		return nil, err
	}
	var versions []models.ProjectVersion
	if err := s.db.Where("project_id = ?", projectID).
		Order("version DESC").Find(&versions).Error; err != nil {
		return nil, err
	}
	return versions, nil
}

// ListMembers returns a project's membership roster
func (s *ProjectService) ListMembers(projectID uint) ([]models.ProjectMember, error) {
	if _, err := s.GetByID(projectID); err != nil {
		return nil, err
	}
	var members []models.ProjectMember
	if err := s.db.Where("project_id = ?", projectID).
		Preload("User").Order("created_at ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}
