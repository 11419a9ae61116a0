package handlers

import (
	"strconv"

	"github.com/abdullah-briah/neuralinker-sub000/internal/config"
	"github.com/abdullah-briah/neuralinker-sub000/internal/middleware"
	"github.com/abdullah-briah/neuralinker-sub000/internal/services"
	"github.com/abdullah-briah/neuralinker-sub000/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type JoinRequestHandler struct {
	joinRequestService *services.JoinRequestService
}

func NewJoinRequestHandler(db *gorm.DB, cfg *config.Config) *JoinRequestHandler {
	return &JoinRequestHandler{
		joinRequestService: services.NewJoinRequestService(db, &cfg.AI),
	}
}

type createJoinRequest struct {
	ProjectID uint `json:"project_id" binding:"required"`
}

type respondJoinRequest struct {
	Status string `json:"status" binding:"required,oneof=accepted rejected"`
}

// Create submits a join request for a project
// POST /api/join-requests
func (h *JoinRequestHandler) Create(c *gin.Context) {
	var req createJoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	request, err := h.joinRequestService.Create(c.Request.Context(), req.ProjectID, middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, request)
}

// ListForProject returns a project's join requests for its owner
// GET /api/projects/:id/join-requests
func (h *JoinRequestHandler) ListForProject(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	requests, err := h.joinRequestService.ListForProject(uint(projectID), middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, requests)
}

// ListMine returns the authenticated user's own join requests
// GET /api/join-requests/mine
func (h *JoinRequestHandler) ListMine(c *gin.Context) {
	requests, err := h.joinRequestService.ListForUser(middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, requests)
}

// Respond accepts or rejects a pending join request
// PATCH /api/join-requests/:id/respond
func (h *JoinRequestHandler) Respond(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid join request id")
		return
	}

	var req respondJoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	request, err := h.joinRequestService.Respond(c.Request.Context(), uint(id), req.Status, middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, request)
}
