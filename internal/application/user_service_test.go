package application

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imovelsul/api/internal/domain/entity"
	"github.com/imovelsul/api/internal/domain/repository"
	"github.com/imovelsul/api/pkg/helpers"
)

type fakeUserRepo struct {
	seq   int
	items map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{items: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, e := range f.items {
		if e.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	f.seq++
	u.ID = "user-" + strconv.Itoa(f.seq)
	cp := *u
	f.items[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.items {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	if _, ok := f.items[u.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *u
	f.items[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.items {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func newUserService(repo *fakeUserRepo) *UserService {
	jwt := &helpers.JWTManager{Secret: []byte("test-secret"), TTL: time.Hour}
	return NewUserService(repo, jwt, nil, nil)
}

func TestRegisterForcesClientRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo)

	u, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Joana",
		Email:    "joana@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleClient, u.Role)
	assert.True(t, u.IsActive)
	assert.NotEqual(t, "supersecret", u.Password)
	assert.True(t, helpers.CompareHashAndPassword(u.Password, "supersecret"))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo)

	in := RegisterInput{Name: "Joana", Email: "joana@example.com", Password: "supersecret"}
	_, err := svc.Register(context.Background(), in)
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), in)
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestLoginSuccess(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo)

	_, err := svc.Register(context.Background(), RegisterInput{
		Name: "Joana", Email: "joana@example.com", Password: "supersecret",
	})
	require.NoError(t, err)

	res, err := svc.Login(context.Background(), "joana@example.com", "supersecret")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.NotNil(t, res.User.LastLogin)

	claims, err := svc.JWT.Parse(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.UserID)
	assert.Equal(t, "client", claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo)

	_, err := svc.Register(context.Background(), RegisterInput{
		Name: "Joana", Email: "joana@example.com", Password: "supersecret",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "joana@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newUserService(newFakeUserRepo())
	_, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginInactiveAccount(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo)

	u, err := svc.Register(context.Background(), RegisterInput{
		Name: "Joana", Email: "joana@example.com", Password: "supersecret",
	})
	require.NoError(t, err)

	_, err = svc.ToggleStatus(context.Background(), u.ID)
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "joana@example.com", "supersecret")
	assert.ErrorIs(t, err, ErrUserInactive)
}

func TestToggleStatusRoundTrip(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo)

	u, err := svc.Register(context.Background(), RegisterInput{
		Name: "Joana", Email: "joana@example.com", Password: "supersecret",
	})
	require.NoError(t, err)

	u2, err := svc.ToggleStatus(context.Background(), u.ID)
	require.NoError(t, err)
	assert.False(t, u2.IsActive)

	u3, err := svc.ToggleStatus(context.Background(), u.ID)
	require.NoError(t, err)
	assert.True(t, u3.IsActive)
}

func TestPromote(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo)

	u, err := svc.Register(context.Background(), RegisterInput{
		Name: "Joana", Email: "joana@example.com", Password: "supersecret",
	})
	require.NoError(t, err)
	assert.False(t, u.IsAdmin())

	promoted, err := svc.Promote(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, promoted.Role)
	assert.True(t, promoted.IsAdmin())
}

func TestGetProfileNotFound(t *testing.T) {
	svc := newUserService(newFakeUserRepo())
	_, err := svc.GetProfile(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
