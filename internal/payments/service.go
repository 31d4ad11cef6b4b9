// Package payments implements the payment resource. Payment IDs are
// store-assigned; the amount must be positive while the date may lie anywhere,
// past or future.
package payments

import (
	"context"

	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/mdigital/sales-api/internal/entities"
	"github.com/mdigital/sales-api/internal/store"
	"github.com/mdigital/sales-api/internal/validation"
)

type Service struct {
	store    store.Store[entities.Payment]
	validate *validatorv10.Validate
}

func NewService(s store.Store[entities.Payment]) *Service {
	return &Service{store: s, validate: validation.New()}
}

func (s *Service) List(ctx context.Context) ([]entities.Payment, error) {
	return s.store.GetAll(ctx)
}

// Get returns (nil, nil) when the payment does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entities.Payment, error) {
	return s.store.GetByID(ctx, id)
}

// Create validates the payload, assigns the next store-controlled ID and
// persists the payment.
func (s *Service) Create(ctx context.Context, dto CreatePaymentDTO) (*entities.Payment, error) {
	if err := validation.RuleError(s.validate.Struct(dto)); err != nil {
		return nil, err
	}
	id, err := s.store.AllocateID(ctx)
	if err != nil {
		return nil, err
	}
	payment := dto.Payment(id)
	if err := s.store.Insert(ctx, id, payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// Update replaces the payment at pathID. Rejections fire in a fixed order:
// ID mismatch, then invalid amount, then missing row.
func (s *Service) Update(ctx context.Context, pathID int64, dto UpdatePaymentDTO) error {
	if dto.ID != pathID {
		return validation.ErrIDMismatch
	}
	if err := validation.RuleError(s.validate.Struct(dto)); err != nil {
		return err
	}
	return s.store.Update(ctx, pathID, dto.Payment())
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}
