package handlers

import (
	"net/http"

	"github.com/danieltechTI/ReiBurguer/internal/models"
	"github.com/danieltechTI/ReiBurguer/internal/repository"
	"github.com/danieltechTI/ReiBurguer/internal/transport/http/dto"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProductHandler struct {
	catalog repository.ProductRepo
	log     *zap.Logger
}

func NewProductHandler(catalog repository.ProductRepo, log *zap.Logger) *ProductHandler {
	return &ProductHandler{catalog: catalog, log: log}
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.catalog.List(c.Request.Context())
	if err != nil {
		h.log.Error("listing products failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.catalog.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.Error("fetching product failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, dto.NewNotFoundError("product not found"))
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) ListByCategory(c *gin.Context) {
	category := models.Category(c.Param("category"))
	if !models.ValidCategory(category) {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("unknown category", nil))
		return
	}
	products, err := h.catalog.ListByCategory(c.Request.Context(), category)
	if err != nil {
		h.log.Error("listing products by category failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, products)
}
