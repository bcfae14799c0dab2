package application

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imovelsul/api/internal/domain/entity"
	"github.com/imovelsul/api/internal/domain/repository"
)

type fakeMessageRepo struct {
	seq   int
	items map[string]*entity.Message
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{items: map[string]*entity.Message{}}
}

func (f *fakeMessageRepo) Create(_ context.Context, m *entity.Message) error {
	f.seq++
	m.ID = "msg-" + strconv.Itoa(f.seq)
	cp := *m
	f.items[m.ID] = &cp
	return nil
}

func (f *fakeMessageRepo) GetByID(_ context.Context, id string) (*entity.Message, error) {
	m, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (f *fakeMessageRepo) Update(_ context.Context, m *entity.Message) error {
	if _, ok := f.items[m.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *m
	f.items[m.ID] = &cp
	return nil
}

func (f *fakeMessageRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeMessageRepo) List(_ context.Context) ([]*entity.Message, error) {
	var out []*entity.Message
	for _, m := range f.items {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func TestMessageCreateStartsUnanswered(t *testing.T) {
	t.Parallel()
	svc := NewMessageService(newFakeMessageRepo(), nil)

	m, err := svc.Create(context.Background(), MessageInput{
		Name:    "Carlos",
		Email:   "carlos@example.com",
		Subject: "Visita",
		Message: "Gostaria de agendar uma visita.",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MessageUnanswered, m.Status)
	assert.Nil(t, m.RespondedBy)
	assert.Nil(t, m.RespondedAt)
}

func TestMessageToggleRoundTrips(t *testing.T) {
	t.Parallel()
	repo := newFakeMessageRepo()
	svc := NewMessageService(repo, nil)

	m, err := svc.Create(context.Background(), MessageInput{
		Name: "Carlos", Email: "carlos@example.com", Subject: "Visita", Message: "Oi",
	})
	require.NoError(t, err)

	admin := &entity.User{ID: "admin-1", Name: "Helo", Email: "helo@imovelsul.com.br"}

	answered, err := svc.ToggleStatus(context.Background(), m.ID, admin)
	require.NoError(t, err)
	assert.Equal(t, entity.MessageAnswered, answered.Status)
	require.NotNil(t, answered.RespondedBy)
	assert.Equal(t, "Helo", answered.RespondedBy.Name)
	assert.NotNil(t, answered.RespondedAt)

	reopened, err := svc.ToggleStatus(context.Background(), m.ID, admin)
	require.NoError(t, err)
	assert.Equal(t, entity.MessageUnanswered, reopened.Status)
	assert.Nil(t, reopened.RespondedBy)
	assert.Nil(t, reopened.RespondedAt)
}

func TestMessageToggleNotFound(t *testing.T) {
	t.Parallel()
	svc := NewMessageService(newFakeMessageRepo(), nil)
	_, err := svc.ToggleStatus(context.Background(), "missing", &entity.User{})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMessageDelete(t *testing.T) {
	t.Parallel()
	repo := newFakeMessageRepo()
	svc := NewMessageService(repo, nil)

	m, err := svc.Create(context.Background(), MessageInput{
		Name: "Carlos", Email: "carlos@example.com", Subject: "Visita", Message: "Oi",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), m.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), m.ID), repository.ErrNotFound)
}
