// Package transactions implements the transaction resource. A transaction
// references a payment, a customer and a list of articles; whether those
// references must resolve at write time is a policy switch on the Service.
package transactions

import (
	"context"
	"errors"

	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/mdigital/sales-api/internal/entities"
	"github.com/mdigital/sales-api/internal/store"
	"github.com/mdigital/sales-api/internal/validation"
)

// ErrReferenceNotFound indicates a PaymentID, CustomerID or ArticleID that
// does not resolve to an existing row. Only surfaced when reference
// enforcement is enabled.
var ErrReferenceNotFound = errors.New("referenced entity not found")

// Service orchestrates validation, reference checks and store access for
// transactions.
type Service struct {
	store     store.Store[entities.Transaction]
	payments  store.Store[entities.Payment]
	customers store.Store[entities.Customer]
	articles  store.Store[entities.Article]
	validate  *validatorv10.Validate

	// EnforceReferences rejects writes whose PaymentID, CustomerID or any
	// line's ArticleID is dangling. Off by default: the upstream system
	// accepted dangling references and downstream consumers tolerate them.
	EnforceReferences bool
}

// NewService wires the transaction store together with the stores of the
// referenced entity types.
func NewService(
	transactions store.Store[entities.Transaction],
	payments store.Store[entities.Payment],
	customers store.Store[entities.Customer],
	articles store.Store[entities.Article],
) *Service {
	return &Service{
		store:     transactions,
		payments:  payments,
		customers: customers,
		articles:  articles,
		validate:  validation.New(),
	}
}

func (s *Service) List(ctx context.Context) ([]entities.Transaction, error) {
	return s.store.GetAll(ctx)
}

// Get returns (nil, nil) when the transaction does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entities.Transaction, error) {
	return s.store.GetByID(ctx, id)
}

// Create validates the payload, optionally resolves references, assigns the
// next store-controlled ID and persists the transaction with its article
// lines in the supplied order.
func (s *Service) Create(ctx context.Context, dto CreateTransactionDTO) (*entities.Transaction, error) {
	if err := validation.RuleError(s.validate.Struct(dto)); err != nil {
		return nil, err
	}
	if s.EnforceReferences {
		if err := s.checkReferences(ctx, dto.PaymentID, dto.CustomerID, dto.Articles); err != nil {
			return nil, err
		}
	}
	id, err := s.store.AllocateID(ctx)
	if err != nil {
		return nil, err
	}
	tx := dto.Transaction(id)
	if err := s.store.Insert(ctx, id, tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// Update replaces the transaction at id. A missing row rejects before any
// reference check.
func (s *Service) Update(ctx context.Context, id int64, dto UpdateTransactionDTO) error {
	exists, err := s.store.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return store.ErrNotFound
	}
	if s.EnforceReferences {
		if err := s.checkReferences(ctx, dto.PaymentID, dto.CustomerID, dto.Articles); err != nil {
			return err
		}
	}
	return s.store.Update(ctx, id, dto.Transaction(id))
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

func (s *Service) checkReferences(ctx context.Context, paymentID, customerID int64, lines []entities.TransactionLine) error {
	ok, err := s.payments.Exists(ctx, paymentID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrReferenceNotFound
	}
	ok, err = s.customers.Exists(ctx, customerID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrReferenceNotFound
	}
	for _, line := range lines {
		ok, err = s.articles.Exists(ctx, line.ArticleID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrReferenceNotFound
		}
	}
	return nil
}
