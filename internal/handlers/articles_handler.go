package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mdigital/sales-api/internal/entities"
	"github.com/mdigital/sales-api/internal/validation"
)

// RegisterArticleRoutes registers the article CRUD routes.
func RegisterArticleRoutes(r *gin.Engine, cfg HandlerConfig) {
	svc := cfg.Articles

	r.GET("/articles", func(c *gin.Context) {
		list, err := svc.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	})

	r.GET("/articles/:id", func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		article, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}
		if article == nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusOK, article)
	})

	r.POST("/articles", func(c *gin.Context) {
		var article entities.Article
		if err := validation.BindJSON(c, &article); err != nil {
			return
		}
		created, err := svc.Create(c.Request.Context(), article)
		if err != nil {
			writeError(c, err)
			return
		}
		c.Header("Location", fmt.Sprintf("/articles/%d", created.ID))
		c.JSON(http.StatusCreated, created)
	})

	r.PUT("/articles/:id", func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var article entities.Article
		if err := validation.BindJSON(c, &article); err != nil {
			return
		}
		if err := svc.Update(c.Request.Context(), id, article); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})

	r.DELETE("/articles/:id", func(c *gin.Context) {
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
