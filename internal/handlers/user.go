package handlers

import (
	"strconv"

	"github.com/abdullah-briah/neuralinker-sub000/internal/middleware"
	"github.com/abdullah-briah/neuralinker-sub000/internal/services"
	"github.com/abdullah-briah/neuralinker-sub000/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{
		userService: services.NewUserService(db),
	}
}

// GetProfile returns a user's public profile
// GET /api/users/:id
func (h *UserHandler) GetProfile(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	profile, err := h.userService.GetPublicProfile(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, profile)
}

// UpdateProfile edits the authenticated user's profile
// PUT /api/users/me
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req services.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.userService.UpdateProfile(middleware.GetUserID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, user)
}

// Search finds users by name, title or skill
// GET /api/users/search
func (h *UserHandler) Search(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	profiles, err := h.userService.Search(c.Query("q"), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, profiles)
}
