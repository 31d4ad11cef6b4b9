// Package customers implements the customer resource. Customers share the
// articles' lifecycle shape: client-supplied IDs, duplicate-ID rejection on
// create, ID-mismatch rejection on update.
package customers

import (
	"context"

	"github.com/mdigital/sales-api/internal/entities"
	"github.com/mdigital/sales-api/internal/store"
	"github.com/mdigital/sales-api/internal/validation"
)

type Service struct {
	store store.Store[entities.Customer]
}

func NewService(s store.Store[entities.Customer]) *Service {
	return &Service{store: s}
}

func (s *Service) List(ctx context.Context) ([]entities.Customer, error) {
	return s.store.GetAll(ctx)
}

// Get returns (nil, nil) when the customer does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entities.Customer, error) {
	return s.store.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, customer entities.Customer) (*entities.Customer, error) {
	taken, err := s.store.Exists(ctx, customer.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, store.ErrDuplicateKey
	}
	if err := s.store.Insert(ctx, customer.ID, customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *Service) Update(ctx context.Context, pathID int64, customer entities.Customer) error {
	if customer.ID != pathID {
		return validation.ErrIDMismatch
	}
	return s.store.Update(ctx, pathID, customer)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}
