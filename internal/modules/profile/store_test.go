package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hoodbook/internal/domain"
	"hoodbook/internal/repository"
)

type failingStore struct {
	mock.Mock
}

func (m *failingStore) Load(ctx context.Context, key string, dst any) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *failingStore) Save(ctx context.Context, key string, v any) error {
	return m.Called(ctx, key).Error(0)
}

func (m *failingStore) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func TestStore_EmptyByDefault(t *testing.T) {
	s := NewStore(context.Background(), repository.NewMemoryStore())

	_, ok := s.Get()
	assert.False(t, ok)
}

func TestStore_SetTrimsAndPersists(t *testing.T) {
	ctx := context.Background()
	state := repository.NewMemoryStore()
	s := NewStore(ctx, state)

	saved, err := s.Set(ctx, domain.UserProfile{FullName: "  Mei Ling ", Phone: " 0123 "})
	require.NoError(t, err)
	assert.Equal(t, "Mei Ling", saved.FullName)
	assert.Equal(t, "0123", saved.Phone)

	reloaded := NewStore(ctx, state)
	p, ok := reloaded.Get()
	require.True(t, ok)
	assert.Equal(t, saved, p)
}

func TestStore_Clear(t *testing.T) {
	ctx := context.Background()
	state := repository.NewMemoryStore()
	s := NewStore(ctx, state)

	_, err := s.Set(ctx, domain.UserProfile{FullName: "A"})
	require.NoError(t, err)
	require.NoError(t, s.Clear(ctx))

	_, ok := s.Get()
	assert.False(t, ok)
	_, ok = NewStore(ctx, state).Get()
	assert.False(t, ok)
}

func TestStore_KeepsValueWhenSaveFails(t *testing.T) {
	ctx := context.Background()
	state := new(failingStore)
	state.On("Load", mock.Anything, repository.KeyUser).Return(false, errors.New("down"))
	state.On("Save", mock.Anything, repository.KeyUser).Return(errors.New("down"))

	s := NewStore(ctx, state)
	_, err := s.Set(ctx, domain.UserProfile{FullName: "A"})
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)

	p, ok := s.Get()
	assert.True(t, ok)
	assert.Equal(t, "A", p.FullName)
}

func TestMissing(t *testing.T) {
	assert.Equal(t,
		[]string{"email", "emergency_contact", "full_name", "instagram", "phone"},
		Missing(domain.UserProfile{StageName: "M"}))

	full := domain.UserProfile{
		FullName:         "Mei Ling",
		Phone:            "0123",
		Email:            "mei@example.com",
		Instagram:        "@mei",
		EmergencyContact: "Mum 0199",
	}
	assert.Empty(t, Missing(full))

	full.Email = "not-an-email"
	assert.Equal(t, []string{"email"}, Missing(full))
}

func TestHandler_PutThenGet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(NewStore(context.Background(), repository.NewMemoryStore())).RegisterRoutes(r.Group("/api/v1"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/v1/profile",
		strings.NewReader(`{"full_name":"Mei","phone":"0123"}`)))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data ProfileResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Data.Profile)
	assert.Equal(t, "Mei", body.Data.Profile.FullName)
	assert.False(t, body.Data.Complete)
	assert.Equal(t, []string{"email", "emergency_contact", "instagram"}, body.Data.Missing)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/profile", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil))
	assert.Contains(t, w.Body.String(), `"profile":null`)
}
