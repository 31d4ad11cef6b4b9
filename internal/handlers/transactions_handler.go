package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mdigital/sales-api/internal/transactions"
	"github.com/mdigital/sales-api/internal/validation"
)

// RegisterTransactionRoutes registers the transaction CRUD routes. Successful
// creates are announced on the event queue when a publisher is configured.
func RegisterTransactionRoutes(r *gin.Engine, cfg HandlerConfig) {
	svc := cfg.Transactions

	r.GET("/transactions", func(c *gin.Context) {
		list, err := svc.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	})

	r.GET("/transactions/:id", func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		tx, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}
		if tx == nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusOK, tx)
	})

	r.POST("/transactions", func(c *gin.Context) {
		ctx := c.Request.Context()

		var dto transactions.CreateTransactionDTO
		if err := validation.BindJSON(c, &dto); err != nil {
			return
		}
		created, err := svc.Create(ctx, dto)
		if err != nil {
			writeError(c, err)
			return
		}

		// The write is committed; a failed publish must not fail the request.
		if cfg.Publisher != nil {
			body, _ := json.Marshal(gin.H{
				"transaction_id": created.ID,
				"articles":       created.Articles,
			})
			attrs := map[string]string{
				"transaction_id": fmt.Sprintf("%d", created.ID),
				"correlation_id": c.GetHeader(requestIDHeader),
			}
			if err := cfg.Publisher.SendTransactionEvent(ctx, string(body), attrs); err != nil {
				log.Printf("publish transaction event failed for transaction=%d: %v", created.ID, err)
			}
		}

		c.Header("Location", fmt.Sprintf("/transactions/%d", created.ID))
		c.JSON(http.StatusCreated, created)
	})

	r.PUT("/transactions/:id", func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var dto transactions.UpdateTransactionDTO
		if err := validation.BindJSON(c, &dto); err != nil {
			return
		}
		if err := svc.Update(c.Request.Context(), id, dto); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})

	r.DELETE("/transactions/:id", func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})
}
