package users

import (
	"context"

	"github.com/fabienvalero1/userdir/internal/server/models"
)

// Pagination bounds for the listing endpoint. Out-of-range values are
// clamped, never rejected.
const (
	DefaultLimit  = 20
	MaxLimit      = 100
	DefaultOffset = 0
)

// Service sits between the HTTP layer and the repository. It owns parameter
// clamping so every transport gets identical pagination semantics.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ClampLimit normalizes a requested page size to [1, MaxLimit];
// non-positive values fall back to DefaultLimit.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// ClampOffset floors a requested offset at zero.
func ClampOffset(offset int) int {
	if offset < 0 {
		return DefaultOffset
	}
	return offset
}

// ListUsers returns one page of records ordered by ascending id, together
// with the total record count. The total always reflects the whole store,
// not the returned window.
func (s *Service) ListUsers(ctx context.Context, limit, offset int) ([]models.User, int64, error) {
	limit = ClampLimit(limit)
	offset = ClampOffset(offset)

	rows, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

// GetUser looks a record up by id. Absence surfaces as common.ErrorNotFound.
func (s *Service) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}
