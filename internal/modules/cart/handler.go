package cart

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hoodbook/internal/pkg/response"
	"hoodbook/internal/repository"
)

type Handler struct {
	manager *Manager
}

func NewHandler(manager *Manager) *Handler {
	return &Handler{manager: manager}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	c := rg.Group("/cart")
	{
		c.GET("", h.Get)
		c.POST("/items", h.AddItem)
		c.DELETE("/items/:id", h.RemoveItem)
	}
}

func (h *Handler) Get(c *gin.Context) {
	response.Success(c, http.StatusOK, toCartResponse(h.manager.Items()))
}

// AddItem adds a (class, date, time) selection. Re-adding the same selection
// returns the existing item with 200 instead of 201.
//
// @Summary Add a class session to the cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body AddItemRequest true "Selection"
// @Success 201 {object} AddItemResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /cart/items [post]
func (h *Handler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	item, added, err := h.manager.AddSelection(c.Request.Context(), req.ClassID, req.Date, req.Time)
	if err != nil && !errors.Is(err, repository.ErrStoreUnavailable) {
		switch {
		case errors.Is(err, ErrClassNotFound):
			response.Error(c, http.StatusNotFound, "CLASS_NOT_FOUND", err.Error())
		case errors.Is(err, ErrInvalidSelection), errors.Is(err, ErrInvalidDate):
			response.Error(c, http.StatusBadRequest, "INVALID_SELECTION", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to add item")
		}
		return
	}

	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	response.Success(c, status, AddItemResponse{
		Item:  item,
		Added: added,
		Cart:  toCartResponse(h.manager.Items()),
	})
}

func (h *Handler) RemoveItem(c *gin.Context) {
	removed, err := h.manager.Remove(c.Request.Context(), c.Param("id"))
	if err != nil && !errors.Is(err, repository.ErrStoreUnavailable) {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to remove item")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"removed": removed,
		"cart":    toCartResponse(h.manager.Items()),
	})
}
