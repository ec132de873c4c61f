package scores

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// Service owns score history semantics on top of a Repo.
type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Record stores one scoring result. detail is marshaled verbatim so
// the full engine output rides along with the headline score.
func (s *Service) Record(ctx context.Context, kind string, score float64, detail any) (Record, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if !validKind(kind) {
		return Record{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidInput, kind)
	}

	var raw json.RawMessage
	switch d := detail.(type) {
	case nil:
	case json.RawMessage:
		if len(d) > 0 {
			raw = d
		}
	default:
		data, err := json.Marshal(detail)
		if err != nil {
			return Record{}, fmt.Errorf("marshal detail: %w", err)
		}
		raw = data
	}

	rec := Record{
		ID:        uuid.NewString(),
		Kind:      kind,
		Score:     score,
		Detail:    raw,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Insert(ctx, rec); err != nil {
		return Record{}, fmt.Errorf("insert score: %w", err)
	}
	return rec, nil
}

// List returns recent records, newest first. An empty kind means all
// kinds; an unknown kind is rejected.
func (s *Service) List(ctx context.Context, kind string, limit int) ([]Record, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if kind != "" && !validKind(kind) {
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidInput, kind)
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.Repo.List(ctx, kind, limit)
}

// Get returns one record by ID.
func (s *Service) Get(ctx context.Context, id string) (Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Record{}, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, id)
}
