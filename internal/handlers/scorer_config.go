package handlers

import (
	"strconv"

	"github.com/abdullah-briah/neuralinker-sub000/internal/services"
	"github.com/abdullah-briah/neuralinker-sub000/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ScorerConfigHandler struct {
	scorerConfigService *services.ScorerConfigService
}

func NewScorerConfigHandler(db *gorm.DB) *ScorerConfigHandler {
	return &ScorerConfigHandler{
		scorerConfigService: services.NewScorerConfigService(db),
	}
}

func (h *ScorerConfigHandler) List(c *gin.Context) {
	var req services.ScorerConfigListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.scorerConfigService.List(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, resp)
}

func (h *ScorerConfigHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid config id")
		return
	}

	config, err := h.scorerConfigService.GetByID(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, config)
}

func (h *ScorerConfigHandler) Create(c *gin.Context) {
	var req services.CreateScorerConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	config, err := h.scorerConfigService.Create(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, config)
}

func (h *ScorerConfigHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid config id")
		return
	}

	var req services.UpdateScorerConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	config, err := h.scorerConfigService.Update(uint(id), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, config)
}

func (h *ScorerConfigHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid config id")
		return
	}

	if err := h.scorerConfigService.Delete(uint(id)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "config deleted"})
}
