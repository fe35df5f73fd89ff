package settings

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hoodbook/internal/domain"
	"hoodbook/internal/pkg/response"
	"hoodbook/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the public read. Writes go through RegisterAdminRoutes
// on a group guarded by the admin token.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/settings", h.Get)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.PUT("/settings", h.Update)
}

func (h *Handler) Get(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Get())
}

func (h *Handler) Update(c *gin.Context) {
	var req domain.Settings
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	v, err := h.service.Set(c.Request.Context(), req)
	if err != nil && !errors.Is(err, repository.ErrStoreUnavailable) {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to save settings")
		return
	}
	response.Success(c, http.StatusOK, v)
}
