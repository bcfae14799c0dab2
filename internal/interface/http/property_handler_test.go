package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imovelsul/api/internal/application"
	"github.com/imovelsul/api/internal/domain/entity"
	"github.com/imovelsul/api/internal/domain/repository"
	"github.com/imovelsul/api/internal/interface/middleware"
	"github.com/imovelsul/api/pkg/validation"
)

type memPropertyRepo struct {
	seq   int
	items map[string]*entity.Property
}

func newMemPropertyRepo() *memPropertyRepo {
	return &memPropertyRepo{items: map[string]*entity.Property{}}
}

func (f *memPropertyRepo) Create(_ context.Context, p *entity.Property) error {
	f.seq++
	p.ID = "prop-" + strconv.Itoa(f.seq)
	cp := *p
	f.items[p.ID] = &cp
	return nil
}

func (f *memPropertyRepo) GetByID(_ context.Context, id string) (*entity.Property, error) {
	p, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *memPropertyRepo) Update(_ context.Context, p *entity.Property) error {
	if _, ok := f.items[p.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *p
	f.items[p.ID] = &cp
	return nil
}

func (f *memPropertyRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *memPropertyRepo) ListPublic(_ context.Context, _ repository.PropertyFilter) ([]*entity.Property, error) {
	var out []*entity.Property
	for _, p := range f.items {
		if p.Status == entity.StatusActive {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *memPropertyRepo) ListAll(_ context.Context) ([]*entity.Property, error) {
	var out []*entity.Property
	for _, p := range f.items {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

// injectUser stands in for RequireAuth in handler tests.
func injectUser(u *entity.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.CtxUserKey, u)
		c.Set(middleware.CtxUserIDKey, u.ID)
		c.Next()
	}
}

func propertyTestRouter(repo *memPropertyRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation.Init()

	svc := application.NewPropertyService(repo, nil, nil, nil, "")
	h := NewPropertyHandler(svc, nil)

	admin := &entity.User{ID: "admin-1", Name: "Admin", Email: "admin@example.com", Role: entity.RoleAdmin, IsActive: true}
	client := &entity.User{ID: "user-1", Name: "Joana", Email: "joana@example.com", Role: entity.RoleClient, IsActive: true}

	r := gin.New()
	api := r.Group("/api")
	api.GET("/properties", h.ListPublic)
	api.GET("/properties/:id", h.Get)
	api.POST("/properties/submit", injectUser(client), h.Submit)
	api.POST("/properties", injectUser(admin), h.Create)
	api.PATCH("/properties/:id/approve", injectUser(admin), h.Approve)
	api.PATCH("/properties/:id/reject", injectUser(admin), h.Reject)
	return r
}

func submitPayload() map[string]any {
	return map[string]any{
		"title":        "Casa com quintal",
		"purpose":      "sale",
		"price":        380000,
		"neighborhood": "Parque Marinha",
		"bedrooms":     3,
		"broker":       map[string]any{"name": "Helo"},
	}
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitThenApproveFlow(t *testing.T) {
	repo := newMemPropertyRepo()
	r := propertyTestRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/api/properties/submit", submitPayload())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Data entity.Property `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, entity.StatusPending, created.Data.Status)
	assert.Equal(t, "user-1", created.Data.SubmittedBy)

	// invisible to the public while pending
	w = doJSON(t, r, http.MethodGet, "/api/properties", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), created.Data.ID)

	// empty PATCH body means "activate"
	w = doJSON(t, r, http.MethodPatch, "/api/properties/"+created.Data.ID+"/approve", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var approved struct {
		Data entity.Property `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &approved))
	assert.Equal(t, entity.StatusActive, approved.Data.Status)
	require.NotNil(t, approved.Data.ApprovedBy)
	assert.Equal(t, "admin-1", *approved.Data.ApprovedBy)

	w = doJSON(t, r, http.MethodGet, "/api/properties", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), created.Data.ID)
}

func TestSubmitMissingFields(t *testing.T) {
	r := propertyTestRouter(newMemPropertyRepo())

	payload := submitPayload()
	delete(payload, "title")
	w := doJSON(t, r, http.MethodPost, "/api/properties/submit", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "title")
}

func TestSubmitInvalidPurpose(t *testing.T) {
	r := propertyTestRouter(newMemPropertyRepo())

	payload := submitPayload()
	payload["purpose"] = "lease"
	w := doJSON(t, r, http.MethodPost, "/api/properties/submit", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitUnknownBroker(t *testing.T) {
	r := propertyTestRouter(newMemPropertyRepo())

	payload := submitPayload()
	payload["broker"] = map[string]any{"name": "Nobody"}
	w := doJSON(t, r, http.MethodPost, "/api/properties/submit", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApproveRejectedConflicts(t *testing.T) {
	repo := newMemPropertyRepo()
	r := propertyTestRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/api/properties/submit", submitPayload())
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Data entity.Property `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodPatch, "/api/properties/"+created.Data.ID+"/reject", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPatch, "/api/properties/"+created.Data.ID+"/approve", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestApproveInvalidTargetStatus(t *testing.T) {
	repo := newMemPropertyRepo()
	r := propertyTestRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/api/properties/submit", submitPayload())
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Data entity.Property `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodPatch, "/api/properties/"+created.Data.ID+"/approve", map[string]any{"status": "pending"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetMissingProperty(t *testing.T) {
	r := propertyTestRouter(newMemPropertyRepo())
	w := doJSON(t, r, http.MethodGet, "/api/properties/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPublicFilterParsing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet,
		"/api/properties?purpose=rent&neighborhood=cassino&minPrice=1000&maxPrice=3000&bedrooms=2", nil)

	f := publicFilter(c)
	assert.Equal(t, entity.PurposeRent, f.Purpose)
	assert.Equal(t, "cassino", f.Neighborhood)
	require.NotNil(t, f.MinPrice)
	assert.Equal(t, 1000.0, *f.MinPrice)
	require.NotNil(t, f.MaxPrice)
	assert.Equal(t, 3000.0, *f.MaxPrice)
	require.NotNil(t, f.MinBedrooms)
	assert.Equal(t, 2, *f.MinBedrooms)
}

func TestPublicFilterIgnoresJunk(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/properties?minPrice=abc&bedrooms=x", nil)

	f := publicFilter(c)
	assert.Nil(t, f.MinPrice)
	assert.Nil(t, f.MinBedrooms)
}
