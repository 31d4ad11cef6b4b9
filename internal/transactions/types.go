package transactions

import "github.com/mdigital/sales-api/internal/entities"

// CreateTransactionDTO is the payload for POST /transactions. The transaction
// ID is assigned by the store. Articles must be present; validator `required`
// fails on a nil slice but accepts an empty one, matching the observed
// null-vs-empty distinction.
type CreateTransactionDTO struct {
	PaymentID  int64                      `json:"paymentId"`
	CustomerID int64                      `json:"customerId"`
	Articles   []entities.TransactionLine `json:"articles" validate:"required"`
}

// UpdateTransactionDTO is the payload for PUT /transactions/:id.
type UpdateTransactionDTO struct {
	PaymentID  int64                      `json:"paymentId"`
	CustomerID int64                      `json:"customerId"`
	Articles   []entities.TransactionLine `json:"articles"`
}

// Transaction converts the create payload into a transaction under the
// assigned ID. The supplied line order is kept verbatim.
func (d CreateTransactionDTO) Transaction(id int64) entities.Transaction {
	return entities.Transaction{
		ID:         id,
		PaymentID:  d.PaymentID,
		CustomerID: d.CustomerID,
		Articles:   d.Articles,
	}
}

// Transaction converts the update payload into the replacement row for id.
func (d UpdateTransactionDTO) Transaction(id int64) entities.Transaction {
	return entities.Transaction{
		ID:         id,
		PaymentID:  d.PaymentID,
		CustomerID: d.CustomerID,
		Articles:   d.Articles,
	}
}
