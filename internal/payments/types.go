package payments

import (
	"time"

	"github.com/mdigital/sales-api/internal/entities"
)

// CreatePaymentDTO is the payload for POST /payments. The payment ID is
// assigned by the store, never by the client.
type CreatePaymentDTO struct {
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount" validate:"gt=0"`
}

// UpdatePaymentDTO is the payload for PUT /payments/:id.
type UpdatePaymentDTO struct {
	ID     int64     `json:"id"`
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount" validate:"gt=0"`
}

// Payment converts the create payload into a payment under the assigned ID.
func (d CreatePaymentDTO) Payment(id int64) entities.Payment {
	return entities.Payment{ID: id, Date: d.Date, Amount: d.Amount}
}

// Payment converts the update payload into the replacement payment row.
func (d UpdatePaymentDTO) Payment() entities.Payment {
	return entities.Payment{ID: d.ID, Date: d.Date, Amount: d.Amount}
}
