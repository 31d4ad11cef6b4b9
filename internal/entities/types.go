package entities

import "time"

// Article is a catalog item. Article IDs are client-supplied on create.
type Article struct {
	ID       int64   `json:"id" dynamodbav:"id"`
	Name     string  `json:"name" dynamodbav:"name"`
	Price    float64 `json:"price" dynamodbav:"price"`
	Quantity int     `json:"quantity" dynamodbav:"quantity"`
}

// Customer IDs are client-supplied on create, same as articles.
type Customer struct {
	ID   int64  `json:"id" dynamodbav:"id"`
	Name string `json:"name" dynamodbav:"name"`
}

// Payment is a received payment. IDs are store-assigned.
type Payment struct {
	ID     int64     `json:"id" dynamodbav:"id"`
	Date   time.Time `json:"date" dynamodbav:"date"`
	Amount float64   `json:"amount" dynamodbav:"amount"`
}

// TransactionLine is one article position inside a transaction.
type TransactionLine struct {
	ArticleID  int64 `json:"articleId" dynamodbav:"article_id"`
	ArticleQty int   `json:"articleQty" dynamodbav:"article_qty"`
}

// Transaction ties a payment and a customer to an ordered list of article
// positions. IDs are store-assigned. The line order is preserved as supplied.
type Transaction struct {
	ID         int64             `json:"id" dynamodbav:"id"`
	PaymentID  int64             `json:"paymentId" dynamodbav:"payment_id"`
	CustomerID int64             `json:"customerId" dynamodbav:"customer_id"`
	Articles   []TransactionLine `json:"articles" dynamodbav:"articles"`
}
