package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hoodbook/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the public unlock endpoint under /admin.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/admin/unlock", h.Unlock)
}

// RegisterAdminRoutes mounts endpoints that need the unlock token; rg is
// the guarded /admin group.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/overview", h.Overview)
}

// Unlock exchanges the front-desk PIN for an admin token.
//
// @Summary Unlock admin
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body UnlockRequest true "PIN"
// @Success 200 {object} UnlockResponse
// @Failure 401 {object} map[string]interface{}
// @Router /admin/unlock [post]
func (h *Handler) Unlock(c *gin.Context) {
	var req UnlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	resp, err := h.service.Unlock(req.PIN)
	if err != nil {
		if errors.Is(err, ErrInvalidPIN) {
			response.Error(c, http.StatusUnauthorized, "INVALID_PIN", "wrong PIN")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to unlock")
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Overview(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Overview())
}
