// Package articles implements the article resource: client-keyed CRUD over
// the entity store.
package articles

import (
	"context"

	"github.com/mdigital/sales-api/internal/entities"
	"github.com/mdigital/sales-api/internal/store"
	"github.com/mdigital/sales-api/internal/validation"
)

// Service orchestrates validation and store access for articles.
type Service struct {
	store store.Store[entities.Article]
}

// NewService returns a Service backed by the given store.
func NewService(s store.Store[entities.Article]) *Service {
	return &Service{store: s}
}

func (s *Service) List(ctx context.Context) ([]entities.Article, error) {
	return s.store.GetAll(ctx)
}

// Get returns (nil, nil) when the article does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entities.Article, error) {
	return s.store.GetByID(ctx, id)
}

// Create persists an article under its client-supplied ID. A taken ID yields
// store.ErrDuplicateKey, whether detected up front or lost in an insert race.
func (s *Service) Create(ctx context.Context, article entities.Article) (*entities.Article, error) {
	taken, err := s.store.Exists(ctx, article.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, store.ErrDuplicateKey
	}
	if err := s.store.Insert(ctx, article.ID, article); err != nil {
		return nil, err
	}
	return &article, nil
}

// Update replaces the article at pathID. The body ID must match the path ID.
func (s *Service) Update(ctx context.Context, pathID int64, article entities.Article) error {
	if article.ID != pathID {
		return validation.ErrIDMismatch
	}
	return s.store.Update(ctx, pathID, article)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}
