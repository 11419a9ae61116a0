package services

import (
	"errors"
	"strings"

	"github.com/abdullah-briah/neuralinker-sub000/internal/models"
	"github.com/abdullah-briah/neuralinker-sub000/pkg/response"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type UpdateProfileRequest struct {
	Name     string   `json:"name" binding:"omitempty,max=100"`
	Title    string   `json:"title" binding:"omitempty,max=100"`
	Bio      string   `json:"bio" binding:"omitempty,max=2000"`
	Skills   []string `json:"skills"`
	GitHub   string   `json:"github" binding:"omitempty,max=255"`
	LinkedIn string   `json:"linkedin" binding:"omitempty,max=255"`
	Website  string   `json:"website" binding:"omitempty,max=255"`
}

// GetByID returns a user by ID
func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("user not found")
		}
		return nil, err
	}
	return &user, nil
}

// GetPublicProfile returns the public view of a user's profile
func (s *UserService) GetPublicProfile(id uint) (*models.PublicProfile, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	profile := user.Public()
	return &profile, nil
}

// UpdateProfile applies the changed profile fields for a user
func (s *UserService) UpdateProfile(userID uint, req *UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})

	if req.Name != "" {
		updates["name"] = strings.TrimSpace(req.Name)
	}
	if req.Title != "" {
		updates["title"] = strings.TrimSpace(req.Title)
	}
	if req.Bio != "" {
		updates["bio"] = req.Bio
	}
	if req.Skills != nil {
		updates["skills"] = models.JoinSkills(req.Skills)
	}
	if req.GitHub != "" {
		updates["git_hub"] = strings.TrimSpace(req.GitHub)
	}
	if req.LinkedIn != "" {
		updates["linked_in"] = strings.TrimSpace(req.LinkedIn)
	}
	if req.Website != "" {
		updates["website"] = strings.TrimSpace(req.Website)
	}

	if len(updates) > 0 {
		if err := s.db.Model(user).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return s.GetByID(userID)
}

// Search finds users whose name, title or skills match the query
func (s *UserService) Search(query string, limit int) ([]models.PublicProfile, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}

	var users []models.User
	q := s.db.Model(&models.User{}).Where("is_active = ?", true)
	if query != "" {
		like := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(title) LIKE ? OR LOWER(skills) LIKE ?", like, like, like)
	}
	if err := q.Order("name ASC").Limit(limit).Find(&users).Error; err != nil {
		return nil, err
	}

	profiles := make([]models.PublicProfile, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].Public())
	}
	return profiles, nil
}
