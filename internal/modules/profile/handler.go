package profile

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hoodbook/internal/domain"
	"hoodbook/internal/pkg/response"
	"hoodbook/internal/repository"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	p := rg.Group("/profile")
	{
		p.GET("", h.Get)
		p.PUT("", h.Update)
		p.DELETE("", h.SignOut)
	}
}

// Get returns the stored profile with the list of unfilled required fields.
//
// @Summary Current profile
// @Tags Profile
// @Produce json
// @Success 200 {object} ProfileResponse
// @Router /profile [get]
func (h *Handler) Get(c *gin.Context) {
	p, ok := h.store.Get()
	response.Success(c, http.StatusOK, toResponse(p, ok))
}

func (h *Handler) Update(c *gin.Context) {
	var req domain.UserProfile
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	p, err := h.store.Set(c.Request.Context(), req)
	if err != nil && !errors.Is(err, repository.ErrStoreUnavailable) {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to save profile")
		return
	}
	// a failed save keeps the in-memory profile, which is what the client sees
	response.Success(c, http.StatusOK, toResponse(p, true))
}

func (h *Handler) SignOut(c *gin.Context) {
	_ = h.store.Clear(c.Request.Context())
	response.Success(c, http.StatusOK, gin.H{"signed_out": true})
}
