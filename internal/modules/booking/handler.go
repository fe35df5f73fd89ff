package booking

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hoodbook/internal/pkg/qrcode"
	"hoodbook/internal/pkg/response"
	"hoodbook/internal/repository"
)

const (
	defaultQRSize = 256
	maxQRSize     = 1024
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/checkout", h.Checkout)

	b := rg.Group("/bookings")
	{
		b.GET("", h.List)
		b.GET("/:id/qr", h.QR)
		b.GET("/:id/qr.png", h.QRImage)
	}
}

// Checkout marks the current cart as paid.
//
// @Summary Mark cart as paid
// @Description Snapshots and clears the cart, then records each item as a Paid booking
// @Tags Bookings
// @Produce json
// @Success 201 {object} BookingListResponse
// @Failure 409 {object} map[string]interface{} "Cart is empty"
// @Router /checkout [post]
func (h *Handler) Checkout(c *gin.Context) {
	bookings, err := h.service.Checkout(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyCart):
			response.Error(c, http.StatusConflict, "EMPTY_CART", "cart is empty")
			return
		case errors.Is(err, repository.ErrStoreUnavailable):
			// bookings exist in memory; persisting will be retried on the next write
		default:
			log.Printf("checkout_failed error=%q", err.Error())
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "checkout failed")
			return
		}
	}

	response.Success(c, http.StatusCreated, BookingListResponse{
		Bookings: ToBookingResponses(bookings),
		Totals:   h.service.Ledger().Totals(),
	})
}

func (h *Handler) List(c *gin.Context) {
	ledger := h.service.Ledger()
	response.Success(c, http.StatusOK, BookingListResponse{
		Bookings: ToBookingResponses(ledger.List()),
		Totals:   ledger.Totals(),
	})
}

func (h *Handler) QR(c *gin.Context) {
	b, ok := h.service.Ledger().Get(c.Param("id"))
	if !ok {
		response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "booking not found")
		return
	}
	response.Success(c, http.StatusOK, QRResponse{BookingID: b.ID, Payload: qrcode.Encode(b.ID)})
}

// QRImage renders the booking's payload as a PNG; ?size= sets the edge in pixels.
func (h *Handler) QRImage(c *gin.Context) {
	b, ok := h.service.Ledger().Get(c.Param("id"))
	if !ok {
		response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "booking not found")
		return
	}

	size := defaultQRSize
	if raw := c.Query("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 64 || n > maxQRSize {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "size must be between 64 and 1024")
			return
		}
		size = n
	}

	png, err := qrcode.RenderPNG(qrcode.Encode(b.ID), size)
	if err != nil {
		log.Printf("qr_render_failed booking_id=%s error=%q", b.ID, err.Error())
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to render qr")
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
