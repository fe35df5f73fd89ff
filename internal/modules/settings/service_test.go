package settings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoodbook/internal/domain"
	"hoodbook/internal/repository"
)

func TestService_DefaultsWhenAbsent(t *testing.T) {
	svc := NewService(context.Background(), repository.NewMemoryStore())
	assert.Equal(t, domain.DefaultSettings(), svc.Get())
}

func TestService_MergesOverDefaults(t *testing.T) {
	ctx := context.Background()
	state := repository.NewMemoryStore()
	require.NoError(t, state.Save(ctx, repository.KeySettings, map[string]string{"bank_name": "MAYBANK"}))

	got := NewService(ctx, state).Get()
	assert.Equal(t, "MAYBANK", got.BankName)
	assert.Equal(t, "+601111086559", got.WANumber)
	assert.Equal(t, "06300122008", got.AccountNo)
}

func TestService_SetPersists(t *testing.T) {
	ctx := context.Background()
	state := repository.NewMemoryStore()
	svc := NewService(ctx, state)

	_, err := svc.Set(ctx, domain.Settings{WANumber: " +60123 ", QRURL: "https://example.com/qr.png"})
	require.NoError(t, err)

	got := NewService(ctx, state).Get()
	assert.Equal(t, "+60123", got.WANumber)
	assert.Equal(t, "HONG LEONG BANK", got.BankName)
	assert.Equal(t, "https://example.com/qr.png", got.QRURL)

	reset, err := svc.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), reset)
}

func TestHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHandler(NewService(context.Background(), repository.NewMemoryStore()))
	r := gin.New()
	h.RegisterRoutes(r.Group("/api/v1"))
	h.RegisterAdminRoutes(r.Group("/api/v1"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/v1/settings", strings.NewReader(`{"account_no":"123"}`)))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil))
	assert.Contains(t, w.Body.String(), `"account_no":"123"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/v1/settings", strings.NewReader(`{`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
