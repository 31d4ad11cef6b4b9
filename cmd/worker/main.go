package main

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/mdigital/sales-api/internal/aws"
	"github.com/mdigital/sales-api/internal/entities"
	"github.com/mdigital/sales-api/internal/store"
)

func main() {
	clients, err := aws.NewAWSClients(context.Background())
	if err != nil {
		log.Fatalf("failed to init aws clients: %v", err)
	}

	articleStore := store.NewTable[entities.Article](clients.DynamoDB, os.Getenv("ARTICLES_TABLE"))
	processor := NewProcessor(articleStore, aws.NewMetrics(clients.CloudWatch, "SalesAPI"))

	// If RUN_LOCAL=true, simulate a single SQS event for local testing.
	if os.Getenv("RUN_LOCAL") == "true" {
		testBody := os.Getenv("LOCAL_SQS_BODY")
		if testBody == "" {
			testBody = `{"transaction_id":1,"articles":[{"articleId":1,"articleQty":2}]}`
		}
		event := events.SQSEvent{
			Records: []events.SQSMessage{
				{
					Body: testBody,
				},
			},
		}
		if err := processor.Handle(context.Background(), event); err != nil {
			log.Fatalf("local handler error: %v", err)
		}
		return
	}

	lambda.Start(processor.Handle)
}
