package main

import "github.com/mdigital/sales-api/internal/entities"

// TransactionMessage is the payload sent from API -> SQS -> worker when a
// transaction is created.
type TransactionMessage struct {
	TransactionID int64                      `json:"transaction_id"`
	Articles      []entities.TransactionLine `json:"articles"`
}
