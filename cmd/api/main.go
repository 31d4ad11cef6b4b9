package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"

	"github.com/mdigital/sales-api/internal/articles"
	"github.com/mdigital/sales-api/internal/aws"
	"github.com/mdigital/sales-api/internal/customers"
	"github.com/mdigital/sales-api/internal/entities"
	"github.com/mdigital/sales-api/internal/handlers"
	"github.com/mdigital/sales-api/internal/payments"
	"github.com/mdigital/sales-api/internal/store"
	"github.com/mdigital/sales-api/internal/transactions"
)

func setupRouter(cfg handlers.HandlerConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(handlers.RequestID())

	// health
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handlers.RegisterRoutes(r, cfg)

	return r
}

func main() {
	clients, err := aws.NewAWSClients(context.Background())
	if err != nil {
		log.Fatalf("failed to init aws clients: %v", err)
	}

	articleStore := store.NewTable[entities.Article](clients.DynamoDB, os.Getenv("ARTICLES_TABLE"))
	customerStore := store.NewTable[entities.Customer](clients.DynamoDB, os.Getenv("CUSTOMERS_TABLE"))
	paymentStore := store.NewTable[entities.Payment](clients.DynamoDB, os.Getenv("PAYMENTS_TABLE"))
	transactionStore := store.NewTable[entities.Transaction](clients.DynamoDB, os.Getenv("TRANSACTIONS_TABLE"))

	txService := transactions.NewService(transactionStore, paymentStore, customerStore, articleStore)
	txService.EnforceReferences = os.Getenv("ENFORCE_REFERENCES") == "true"

	cfg := handlers.HandlerConfig{
		Articles:     articles.NewService(articleStore),
		Customers:    customers.NewService(customerStore),
		Payments:     payments.NewService(paymentStore),
		Transactions: txService,
	}
	if queueURL := os.Getenv("TRANSACTIONS_QUEUE_URL"); queueURL != "" {
		cfg.Publisher = aws.NewPublisher(clients.SQS, queueURL)
	}

	r := setupRouter(cfg)

	// if environment variable RUN_LOCAL is set to "true", run local HTTP server for development.
	if os.Getenv("RUN_LOCAL") == "true" {
		addr := ":8080"
		log.Printf("running local server on %s", addr)
		if err := r.Run(addr); err != nil {
			log.Fatalf("failed to run local server: %v", err)
		}
		return
	}

	// lambda adapter
	adapter := ginadapter.New(r)

	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (interface{}, error) {
		return adapter.ProxyWithContext(ctx, req)
	})
}
