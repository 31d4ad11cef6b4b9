package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/aws/aws-lambda-go/events"

	"github.com/mdigital/sales-api/internal/aws"
	"github.com/mdigital/sales-api/internal/entities"
	"github.com/mdigital/sales-api/internal/store"
)

// Processor applies created transactions to article stock levels.
type Processor struct {
	articles store.Store[entities.Article]
	metrics  *aws.Metrics // nil disables metric emission
}

// NewProcessor returns a Processor over the given article store.
func NewProcessor(articles store.Store[entities.Article], metrics *aws.Metrics) *Processor {
	return &Processor{articles: articles, metrics: metrics}
}

// Handle receives an SQS batch event and processes each message.
func (p *Processor) Handle(ctx context.Context, ev events.SQSEvent) error {
	for _, rec := range ev.Records {
		if err := p.processMessage(ctx, rec); err != nil {
			// Return error: Lambda will retry, and the DLQ catches repeat offenders.
			log.Printf("worker error: %v", err)
			return err
		}
	}
	return nil
}

func (p *Processor) processMessage(ctx context.Context, rec events.SQSMessage) error {
	var msg TransactionMessage
	if err := json.Unmarshal([]byte(rec.Body), &msg); err != nil {
		return fmt.Errorf("invalid message body: %w", err)
	}

	log.Printf("[worker] received transaction=%d lines=%d", msg.TransactionID, len(msg.Articles))

	for _, line := range msg.Articles {
		article, err := p.articles.GetByID(ctx, line.ArticleID)
		if err != nil {
			return fmt.Errorf("fetch article %d: %w", line.ArticleID, err)
		}
		if article == nil {
			// Dangling reference: deletes do not cascade and reference checks
			// may be disabled, so this is an expected condition, not a retry.
			log.Printf("[worker] transaction=%d references missing article=%d, skipping", msg.TransactionID, line.ArticleID)
			continue
		}
		article.Quantity -= line.ArticleQty
		if err := p.articles.Update(ctx, line.ArticleID, *article); err != nil {
			return fmt.Errorf("update article %d stock: %w", line.ArticleID, err)
		}
	}

	if p.metrics != nil {
		if err := p.metrics.Count(ctx, "TransactionsProcessed", 1); err != nil {
			log.Printf("[worker] metric emission failed: %v", err)
		}
	}
	return nil
}
