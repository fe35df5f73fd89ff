package cart

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hoodbook/internal/domain"
	"hoodbook/internal/modules/catalog"
	"hoodbook/internal/repository"
)

type stubProfile struct {
	p  domain.UserProfile
	ok bool
}

func (s stubProfile) Get() (domain.UserProfile, bool) { return s.p, s.ok }

type mockState struct {
	mock.Mock
}

func (m *mockState) Load(ctx context.Context, key string, dst any) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *mockState) Save(ctx context.Context, key string, v any) error {
	return m.Called(ctx, key).Error(0)
}

func (m *mockState) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func newManager(t *testing.T, state repository.StateStore) *Manager {
	t.Helper()
	profile := stubProfile{p: domain.UserProfile{FullName: "Mei Ling", Phone: "0123"}, ok: true}
	return NewManager(context.Background(), state, catalog.NewService(), profile, time.UTC)
}

func wed(t *testing.T) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateLayout, "2026-10-21")
	require.NoError(t, err)
	return d
}

func offering(t *testing.T, id string) domain.ClassOffering {
	t.Helper()
	o, ok := catalog.NewService().Offering(id)
	require.True(t, ok, id)
	return o
}

func TestAdd_StampsSnapshot(t *testing.T) {
	m := newManager(t, repository.NewMemoryStore())

	item, added, err := m.AddSelection(context.Background(), "sdfc_wed_eric", "2026-10-21", "19:30–20:30")
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, "sdfc_wed_eric_2026-10-21_19:30–20:30", item.ID)
	assert.Equal(t, "Street Dance Foundation Course", item.Title)
	assert.Equal(t, int64(55), item.Price)
	assert.Equal(t, "Studio A", item.RoomName)
	assert.Equal(t, "Mei Ling", item.Customer)
	assert.Equal(t, "0123", item.Phone)
}

func TestAdd_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	m := newManager(t, repository.NewMemoryStore())
	o := offering(t, "sdfc_wed_eric")

	first, added, err := m.Add(ctx, o, wed(t), "19:30–20:30", nil)
	require.NoError(t, err)
	require.True(t, added)

	again, added, err := m.Add(ctx, o, wed(t), "19:30–20:30", &domain.UserProfile{FullName: "Other"})
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, first, again)
	assert.Len(t, m.Items(), 1)
	assert.Empty(t, m.Items()[0].Customer)
}

func TestAdd_RejectsInvalidSelection(t *testing.T) {
	ctx := context.Background()
	m := newManager(t, repository.NewMemoryStore())

	_, _, err := m.AddSelection(ctx, "nope", "2026-10-21", "19:30–20:30")
	assert.ErrorIs(t, err, ErrClassNotFound)

	_, _, err = m.AddSelection(ctx, "sdfc_wed_eric", "21/10/2026", "19:30–20:30")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, _, err = m.AddSelection(ctx, "sdfc_wed_eric", "2026-10-21", "09:00–10:00")
	assert.ErrorIs(t, err, ErrInvalidSelection)

	// Thursday
	_, _, err = m.AddSelection(ctx, "sdfc_wed_eric", "2026-10-22", "19:30–20:30")
	assert.ErrorIs(t, err, ErrInvalidSelection)

	assert.Empty(t, m.Items())
}

func TestRemove_AbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	m := newManager(t, repository.NewMemoryStore())

	item, _, err := m.AddSelection(ctx, "sdfc_wed_eric", "2026-10-21", "19:30–20:30")
	require.NoError(t, err)

	removed, err := m.Remove(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Len(t, m.Items(), 1)

	removed, err = m.Remove(ctx, item.ID)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Empty(t, m.Items())
}

func TestTotal(t *testing.T) {
	ctx := context.Background()
	m := newManager(t, repository.NewMemoryStore())
	assert.Zero(t, m.Total())

	_, _, err := m.AddSelection(ctx, "sdfc_wed_eric", "2026-10-21", "19:30–20:30")
	require.NoError(t, err)
	_, _, err = m.AddSelection(ctx, "hiphop_wed_eric", "2026-10-21", "20:30–21:30")
	require.NoError(t, err)
	_, _, err = m.AddSelection(ctx, "hiphop_wed_eric", "2026-10-28", "20:30–21:30")
	require.NoError(t, err)

	assert.Equal(t, int64(55+70+70), m.Total())
}

func TestCheckout_SnapshotInOrderAndClears(t *testing.T) {
	ctx := context.Background()
	state := repository.NewMemoryStore()
	m := newManager(t, state)

	a, _, err := m.AddSelection(ctx, "sdfc_wed_eric", "2026-10-21", "19:30–20:30")
	require.NoError(t, err)
	b, _, err := m.AddSelection(ctx, "choreo_mon_leony", "2026-10-19", "20:30–21:30")
	require.NoError(t, err)

	snapshot, err := m.Checkout(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.CartItem{a, b}, snapshot)
	assert.Empty(t, m.Items())
	assert.Empty(t, newManager(t, state).Items())

	again, err := m.Checkout(ctx)
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestManager_ReloadsFromStore(t *testing.T) {
	ctx := context.Background()
	state := repository.NewMemoryStore()

	_, _, err := newManager(t, state).AddSelection(ctx, "krump_fri_sam", "2026-10-23", "21:30–22:30")
	require.NoError(t, err)

	items := newManager(t, state).Items()
	require.Len(t, items, 1)
	assert.Equal(t, "krump_fri_sam", items[0].ClassID)
}

func TestManager_StoreDownKeepsWorkingInMemory(t *testing.T) {
	ctx := context.Background()
	state := new(mockState)
	state.On("Load", mock.Anything, repository.KeyCart).Return(false, errors.New("connection refused"))
	state.On("Save", mock.Anything, repository.KeyCart).Return(errors.New("connection refused"))

	m := newManager(t, state)
	assert.Empty(t, m.Items())

	_, added, err := m.AddSelection(ctx, "sdfc_wed_eric", "2026-10-21", "19:30–20:30")
	assert.True(t, added)
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)
	assert.Len(t, m.Items(), 1)
}

func TestHandler_CartFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := newManager(t, repository.NewMemoryStore())
	r := gin.New()
	NewHandler(m).RegisterRoutes(r.Group("/api/v1"))

	body := `{"class_id":"sdfc_wed_eric","date":"2026-10-21","time":"19:30–20:30"}`

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data AddItemResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Data.Added)
	assert.Equal(t, 1, resp.Data.Cart.Count)
	assert.Equal(t, "RM55.00", resp.Data.Cart.TotalFormatted)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/cart/items",
		strings.NewReader(`{"class_id":"ghost","date":"2026-10-21","time":"x"}`)))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/cart/items",
		strings.NewReader(`{"class_id":"sdfc_wed_eric","date":"2026-10-22","time":"19:30–20:30"}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_SELECTION")

	w = httptest.NewRecorder()
	path := "/api/v1/cart/items/" + url.PathEscape(resp.Data.Item.ID)
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, path, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"removed":true`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))
	assert.Contains(t, w.Body.String(), `"items":[]`)
}
