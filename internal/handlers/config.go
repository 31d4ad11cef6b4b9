package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mdigital/sales-api/internal/articles"
	"github.com/mdigital/sales-api/internal/aws"
	"github.com/mdigital/sales-api/internal/customers"
	"github.com/mdigital/sales-api/internal/payments"
	"github.com/mdigital/sales-api/internal/transactions"
)

// HandlerConfig groups the dependencies shared by the resource handlers.
// Publisher may be nil, which disables transaction event emission.
type HandlerConfig struct {
	Articles     *articles.Service
	Customers    *customers.Service
	Payments     *payments.Service
	Transactions *transactions.Service
	Publisher    *aws.Publisher
}

// RegisterRoutes mounts all resource routes on the engine.
func RegisterRoutes(r *gin.Engine, cfg HandlerConfig) {
	RegisterArticleRoutes(r, cfg)
	RegisterCustomerRoutes(r, cfg)
	RegisterPaymentRoutes(r, cfg)
	RegisterTransactionRoutes(r, cfg)
}
