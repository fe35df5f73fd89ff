package payment

import (
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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/checkout", h.Preview)
}

// Preview returns the order summary, bank details and WhatsApp link for the
// current cart. An empty cart yields an empty handoff.
func (h *Handler) Preview(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Preview())
}
