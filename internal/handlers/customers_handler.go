package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mdigital/sales-api/internal/entities"
	"github.com/mdigital/sales-api/internal/validation"
)

// RegisterCustomerRoutes registers the customer CRUD routes.
func RegisterCustomerRoutes(r *gin.Engine, cfg HandlerConfig) {
	svc := cfg.Customers

	r.GET("/customers", func(c *gin.Context) {
		list, err := svc.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	})

	r.GET("/customers/:id", func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		customer, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}
		if customer == nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusOK, customer)
	})

	r.POST("/customers", func(c *gin.Context) {
		var customer entities.Customer
		if err := validation.BindJSON(c, &customer); err != nil {
			return
		}
		created, err := svc.Create(c.Request.Context(), customer)
		if err != nil {
			writeError(c, err)
			return
		}
		c.Header("Location", fmt.Sprintf("/customers/%d", created.ID))
		c.JSON(http.StatusCreated, created)
	})

	r.PUT("/customers/:id", func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var customer entities.Customer
		if err := validation.BindJSON(c, &customer); err != nil {
			return
		}
		if err := svc.Update(c.Request.Context(), id, customer); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})

	r.DELETE("/customers/:id", func(c *gin.Context) {
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
