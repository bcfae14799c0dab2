package application

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/imovelsul/api/internal/domain/entity"
	repo "github.com/imovelsul/api/internal/domain/repository"
	"github.com/imovelsul/api/internal/notify"
)

// PropertyService governs the listing lifecycle: submission, approval,
// rejection, highlighting and public visibility. Edits are last-write-wins;
// there is no version token on the record.
type PropertyService struct {
	Repo     repo.PropertyRepository
	Notifier *notify.Notifier
	Logger   *logrus.Logger
	ES       *elasticsearch.Client
	ESIndex  string
}

func NewPropertyService(r repo.PropertyRepository, n *notify.Notifier, logger *logrus.Logger, es *elasticsearch.Client, esIndex string) *PropertyService {
	return &PropertyService{Repo: r, Notifier: n, Logger: logger, ES: es, ESIndex: esIndex}
}

// Submit creates a pending listing on behalf of any authenticated user.
// Status and approval fields supplied by the caller are discarded.
func (s *PropertyService) Submit(ctx context.Context, actor *entity.User, p *entity.Property) (*entity.Property, error) {
	p.Status = entity.StatusPending
	p.SubmittedBy = actor.ID
	p.ApprovedBy = nil
	p.ApprovedAt = nil
	p.IsHighlighted = false
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.Notifier.PropertySubmitted(ctx, actor, p)
	return p, nil
}

// CreateActive is the admin direct-create path: the listing goes public
// immediately, bypassing the pending state.
func (s *PropertyService) CreateActive(ctx context.Context, actor *entity.User, p *entity.Property) (*entity.Property, error) {
	now := time.Now()
	p.Status = entity.StatusActive
	p.SubmittedBy = actor.ID
	p.ApprovedBy = &actor.ID
	p.ApprovedAt = &now
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.indexProperty(ctx, p)
	return p, nil
}

// Approve moves a listing to active (or to sold/rented when target says so).
// Rejected is terminal; approving a rejected listing is refused.
func (s *PropertyService) Approve(ctx context.Context, actorID, id string, target entity.PropertyStatus) (*entity.Property, error) {
	if target == "" {
		target = entity.StatusActive
	}
	if target != entity.StatusActive && target != entity.StatusSold && target != entity.StatusRented {
		return nil, ErrInvalidState
	}
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status == entity.StatusRejected {
		return nil, ErrInvalidState
	}
	p.Status = target
	if target == entity.StatusActive {
		now := time.Now()
		p.ApprovedBy = &actorID
		p.ApprovedAt = &now
	}
	if err := s.Repo.Update(ctx, p); err != nil {
		return nil, err
	}
	if target == entity.StatusActive {
		s.indexProperty(ctx, p)
	} else {
		s.removeFromIndex(ctx, p.ID)
	}
	return p, nil
}

// Reject marks a listing rejected. No transition is defined out of rejected.
func (s *PropertyService) Reject(ctx context.Context, id string) (*entity.Property, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Status = entity.StatusRejected
	if err := s.Repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.removeFromIndex(ctx, p.ID)
	return p, nil
}

// Update overwrites listing fields without touching status, submitter or
// approval metadata. Concurrent edits last-write-win.
func (s *PropertyService) Update(ctx context.Context, id string, in *entity.Property) (*entity.Property, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Title = in.Title
	p.Purpose = in.Purpose
	p.Price = in.Price
	p.Neighborhood = in.Neighborhood
	p.Address = in.Address
	p.Bedrooms = in.Bedrooms
	p.Bathrooms = in.Bathrooms
	p.ParkingSpaces = in.ParkingSpaces
	p.LandSize = in.LandSize
	p.TotalArea = in.TotalArea
	p.Images = in.Images
	p.LongDescription = in.LongDescription
	p.Details = in.Details
	p.Features = in.Features
	p.Broker = in.Broker
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, p); err != nil {
		return nil, err
	}
	if p.Status == entity.StatusActive {
		s.indexProperty(ctx, p)
	}
	return p, nil
}

// ToggleHighlight flips the placement flag, independent of status.
func (s *PropertyService) ToggleHighlight(ctx context.Context, id string) (*entity.Property, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.IsHighlighted = !p.IsHighlighted
	if err := s.Repo.Update(ctx, p); err != nil {
		return nil, err
	}
	if p.Status == entity.StatusActive {
		s.indexProperty(ctx, p)
	}
	return p, nil
}

// Delete removes the record permanently. No soft delete, no tombstone.
func (s *PropertyService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.removeFromIndex(ctx, id)
	return nil
}

func (s *PropertyService) Get(ctx context.Context, id string) (*entity.Property, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *PropertyService) ListPublic(ctx context.Context, f repo.PropertyFilter) ([]*entity.Property, error) {
	return s.Repo.ListPublic(ctx, f)
}

func (s *PropertyService) ListAll(ctx context.Context) ([]*entity.Property, error) {
	return s.Repo.ListAll(ctx)
}

// indexProperty mirrors an active listing into Elasticsearch, best-effort.
func (s *PropertyService) indexProperty(ctx context.Context, p *entity.Property) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	doc := map[string]any{
		"id":            p.ID,
		"title":         p.Title,
		"purpose":       p.Purpose,
		"price":         p.Price,
		"neighborhood":  p.Neighborhood,
		"description":   p.LongDescription,
		"bedrooms":      p.Bedrooms,
		"isHighlighted": p.IsHighlighted,
		"createdAt":     p.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: p.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("property_id", p.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("property_id", p.ID).Warn("es index response error")
	}
}

func (s *PropertyService) removeFromIndex(ctx context.Context, id string) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("property_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// Search performs a multi_match query over the active-listing index.
func (s *PropertyService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "neighborhood^2", "description"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
