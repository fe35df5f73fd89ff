package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoodbook/internal/domain"
	"hoodbook/internal/modules/booking"
	"hoodbook/internal/modules/catalog"
	"hoodbook/internal/pkg/jwt"
	"hoodbook/internal/repository"
)

func newService(t *testing.T) (*Service, *jwt.Service) {
	t.Helper()
	ledger := booking.NewLedger(context.Background(), repository.NewMemoryStore())
	_, err := ledger.Confirm(context.Background(), []domain.CartItem{{ID: "a", Price: 55}, {ID: "b", Price: 1200}})
	require.NoError(t, err)

	jwtService := jwt.New("secret", time.Hour)
	return NewService("1234", jwtService, ledger, catalog.NewService()), jwtService
}

func TestUnlock(t *testing.T) {
	svc, jwtService := newService(t)

	_, err := svc.Unlock("0000")
	assert.ErrorIs(t, err, ErrInvalidPIN)
	_, err = svc.Unlock("")
	assert.ErrorIs(t, err, ErrInvalidPIN)

	resp, err := svc.Unlock("1234")
	require.NoError(t, err)
	claims, err := jwtService.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), resp.ExpiresAt, time.Minute)
}

func TestOverview(t *testing.T) {
	svc, _ := newService(t)
	o := svc.Overview()

	assert.Equal(t, domain.LedgerTotals{Count: 2, Gross: 1255}, o.Totals)
	assert.Equal(t, "RM1,255.00", o.GrossFormatted)
	require.Len(t, o.Classes, len(catalog.NewService().Offerings()))
	assert.NotEmpty(t, o.Classes[0].RoomName)
}

func TestHandler_Unlock(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc, _ := newService(t)
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api/v1"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/admin/unlock", strings.NewReader(`{"pin":"9999"}`)))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_PIN")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/admin/unlock", strings.NewReader(`{"pin":"1234"}`)))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data UnlockResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Data.Token)
}
