package controllers

import (
	"net/http"

	"github.com/elshafee/Horus-cafee-managment/pkg/resp"
	"github.com/elshafee/Horus-cafee-managment/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct{ Svc *services.CatalogService }

func NewProductController(s *services.CatalogService) *ProductController {
	return &ProductController{Svc: s}
}

// GET /products - bare array, the app consumes it without an envelope
func (p *ProductController) List(c *gin.Context) {
	products, err := p.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GET /seed - run once to fill the catalog; repeating duplicates rows
func (p *ProductController) Seed(c *gin.Context) {
	if err := p.Svc.Seed(); err != nil {
		resp.ServerError(c, err)
		return
	}
	c.String(http.StatusOK, "Products added")
}
