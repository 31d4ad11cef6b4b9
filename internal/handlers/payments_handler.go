package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mdigital/sales-api/internal/payments"
	"github.com/mdigital/sales-api/internal/validation"
)

// RegisterPaymentRoutes registers the payment CRUD routes.
func RegisterPaymentRoutes(r *gin.Engine, cfg HandlerConfig) {
	svc := cfg.Payments

	r.GET("/payments", func(c *gin.Context) {
		list, err := svc.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	})

	r.GET("/payments/:id", func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		payment, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}
		if payment == nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusOK, payment)
	})

	r.POST("/payments", func(c *gin.Context) {
		var dto payments.CreatePaymentDTO
		if err := validation.BindJSON(c, &dto); err != nil {
			return
		}
		created, err := svc.Create(c.Request.Context(), dto)
		if err != nil {
			writeError(c, err)
			return
		}
		c.Header("Location", fmt.Sprintf("/payments/%d", created.ID))
		c.JSON(http.StatusCreated, created)
	})

	r.PUT("/payments/:id", func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var dto payments.UpdatePaymentDTO
		if err := validation.BindJSON(c, &dto); err != nil {
			return
		}
		if err := svc.Update(c.Request.Context(), id, dto); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})

	r.DELETE("/payments/:id", func(c *gin.Context) {
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
