package payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoodbook/internal/domain"
	"hoodbook/internal/modules/cart"
	"hoodbook/internal/modules/catalog"
	"hoodbook/internal/modules/profile"
	"hoodbook/internal/modules/settings"
	"hoodbook/internal/repository"
)

var snapshot = []domain.CartItem{
	{ID: "a", Title: "Street Dance Foundation Course", Date: "2026-10-21", Time: "19:30–20:30", RoomName: "Studio A", Price: 55},
	{ID: "b", Title: "Hip Hop (Drop-in)", Date: "2026-10-21", Time: "20:30–21:30", RoomName: "Studio A", Price: 70},
}

func TestCompose_Message(t *testing.T) {
	p := &domain.UserProfile{FullName: "Mei Ling", Phone: "0123", Instagram: "@mei"}
	h := Compose(snapshot, p, domain.DefaultSettings())

	want := "Hello THDA, I'd like to book:\n" +
		"• Street Dance Foundation Course — 2026-10-21 19:30–20:30 (Studio A) RM55.00\n" +
		"• Hip Hop (Drop-in) — 2026-10-21 20:30–21:30 (Studio A) RM70.00\n" +
		"\n" +
		"Total: RM125.00\n" +
		"Name: Mei Ling\n" +
		"Phone: 0123\n" +
		"Stage name: -\n" +
		"Email: -\n" +
		"IG: @mei\n" +
		"Emergency: -"
	assert.Equal(t, want, h.Message)
	assert.Equal(t, int64(125), h.Total)
	assert.Equal(t, "RM125.00", h.TotalFormatted)
	require.Len(t, h.Lines, 2)
	assert.Equal(t, "HONG LEONG BANK", h.Bank.BankName)
}

func TestCompose_NoProfile(t *testing.T) {
	h := Compose(nil, nil, domain.DefaultSettings())
	assert.Contains(t, h.Message, "Name: \nPhone: \nStage name: -")
	assert.Empty(t, h.Lines)
	assert.Zero(t, h.Total)
}

func TestWhatsAppURL_RoundTrips(t *testing.T) {
	h := Compose(snapshot, nil, domain.DefaultSettings())

	assert.True(t, strings.HasPrefix(h.WhatsAppURL, "https://wa.me/601111086559?text="))
	assert.NotContains(t, h.WhatsAppURL, "+")
	assert.NotContains(t, h.WhatsAppURL, " ")

	u, err := url.Parse(h.WhatsAppURL)
	require.NoError(t, err)
	assert.Equal(t, h.Message, u.Query().Get("text"))
}

func TestWhatsAppURL_StripsSeparators(t *testing.T) {
	assert.Equal(t, "https://wa.me/60123456789?text=hi%20there", WhatsAppURL("+60 12-345 6789", "hi there"))
}

func TestHandler_Preview(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := context.Background()
	state := repository.NewMemoryStore()
	profiles := profile.NewStore(ctx, state)
	_, err := profiles.Set(ctx, domain.UserProfile{FullName: "Mei Ling", Phone: "0123"})
	require.NoError(t, err)

	m := cart.NewManager(ctx, state, catalog.NewService(), profiles, time.UTC)
	_, _, err = m.AddSelection(ctx, "sdfc_wed_eric", "2026-10-21", "19:30–20:30")
	require.NoError(t, err)

	r := gin.New()
	NewHandler(NewService(m, profiles, settings.NewService(ctx, state))).RegisterRoutes(r.Group("/api/v1"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/checkout", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_formatted":"RM55.00"`)
	assert.Contains(t, w.Body.String(), "wa.me/601111086559")

	// preview must not consume the cart
	assert.Len(t, m.Items(), 1)
}
