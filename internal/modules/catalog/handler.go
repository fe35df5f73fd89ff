package catalog

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
	rg.GET("/catalog", h.GetCatalog)
}

func (h *Handler) GetCatalog(c *gin.Context) {
	response.Success(c, http.StatusOK, CatalogResponse{
		Instructors: h.service.Instructors(),
		Rooms:       h.service.Rooms(),
		Styles:      h.service.Styles(),
		Offerings:   h.service.Views(h.service.Offerings()),
	})
}
