package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imovelsul/api/internal/domain/entity"
	"github.com/imovelsul/api/internal/domain/repository"
	"github.com/imovelsul/api/pkg/helpers"
)

type stubUserRepo struct {
	users map[string]*entity.User
}

func (s *stubUserRepo) Create(context.Context, *entity.User) error { return nil }
func (s *stubUserRepo) Update(context.Context, *entity.User) error { return nil }
func (s *stubUserRepo) List(context.Context) ([]*entity.User, error) {
	return nil, nil
}
func (s *stubUserRepo) GetByEmail(context.Context, string) (*entity.User, error) {
	return nil, repository.ErrNotFound
}
func (s *stubUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func authTestRouter(t *testing.T, repo *stubUserRepo, jwt *helpers.JWTManager, adminOnly bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mws := []gin.HandlerFunc{RequireAuth(repo, jwt)}
	if adminOnly {
		mws = append(mws, RequireAdmin())
	}
	grp := r.Group("/", mws...)
	grp.GET("/ping", func(c *gin.Context) {
		u := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"uid": u.ID})
	})
	return r
}

func TestRequireAuthMissingToken(t *testing.T) {
	jwt := &helpers.JWTManager{Secret: []byte("s"), TTL: time.Hour}
	r := authTestRouter(t, &stubUserRepo{}, jwt, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	jwt := &helpers.JWTManager{Secret: []byte("s"), TTL: time.Hour}
	r := authTestRouter(t, &stubUserRepo{}, jwt, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthInvalidToken(t *testing.T) {
	jwt := &helpers.JWTManager{Secret: []byte("s"), TTL: time.Hour}
	r := authTestRouter(t, &stubUserRepo{}, jwt, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthValidToken(t *testing.T) {
	jwt := &helpers.JWTManager{Secret: []byte("s"), TTL: time.Hour}
	repo := &stubUserRepo{users: map[string]*entity.User{
		"u1": {ID: "u1", Role: entity.RoleClient, IsActive: true},
	}}
	r := authTestRouter(t, repo, jwt, false)

	token, _, err := jwt.Generate("u1", "client")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u1")
}

func TestRequireAuthDeactivatedAccount(t *testing.T) {
	jwt := &helpers.JWTManager{Secret: []byte("s"), TTL: time.Hour}
	repo := &stubUserRepo{users: map[string]*entity.User{
		"u1": {ID: "u1", Role: entity.RoleClient, IsActive: false},
	}}
	r := authTestRouter(t, repo, jwt, false)

	token, _, err := jwt.Generate("u1", "client")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdminRejectsClient(t *testing.T) {
	jwt := &helpers.JWTManager{Secret: []byte("s"), TTL: time.Hour}
	repo := &stubUserRepo{users: map[string]*entity.User{
		"u1": {ID: "u1", Role: entity.RoleClient, IsActive: true},
	}}
	r := authTestRouter(t, repo, jwt, true)

	token, _, err := jwt.Generate("u1", "client")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	jwt := &helpers.JWTManager{Secret: []byte("s"), TTL: time.Hour}
	repo := &stubUserRepo{users: map[string]*entity.User{
		"a1": {ID: "a1", Role: entity.RoleAdmin, IsActive: true},
	}}
	r := authTestRouter(t, repo, jwt, true)

	token, _, err := jwt.Generate("a1", "admin")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
