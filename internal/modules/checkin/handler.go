package checkin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hoodbook/internal/pkg/response"
)

type ScanRequest struct {
	Payload string `json:"payload" binding:"required"`
}

type Handler struct {
	verifier *Verifier
}

func NewHandler(verifier *Verifier) *Handler {
	return &Handler{verifier: verifier}
}

// RegisterAdminRoutes mounts the scan endpoints; rg must carry the admin guard.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup, ws *WSHandler) {
	rg.POST("/checkin", h.Scan)
	if ws != nil {
		rg.GET("/scanner/ws", ws.HandleWebSocket)
	}
}

// Scan handles a single decoded QR text. Malformed and unknown payloads are
// still 200: they are scan outcomes, not request errors.
func (h *Handler) Scan(c *gin.Context) {
	var req ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, h.verifier.Scan(c.Request.Context(), req.Payload))
}
