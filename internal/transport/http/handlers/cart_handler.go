package handlers

import (
	"errors"
	"net/http"

	"github.com/danieltechTI/ReiBurguer/internal/service"
	"github.com/danieltechTI/ReiBurguer/internal/transport/http/dto"
	"github.com/danieltechTI/ReiBurguer/internal/transport/http/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CartHandler struct {
	cart *service.CartService
	log  *zap.Logger
}

func NewCartHandler(cart *service.CartService, log *zap.Logger) *CartHandler {
	return &CartHandler{cart: cart, log: log}
}

func (h *CartHandler) Items(c *gin.Context) {
	items, subtotal, err := h.cart.Items(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		h.log.Error("fetching cart failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		return
	}
	c.JSON(http.StatusOK, dto.CartResponse{Items: items, SubtotalCents: subtotal})
}

func (h *CartHandler) Add(c *gin.Context) {
	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid cart item data", dto.BindingFieldErrors(err)))
		return
	}

	item, err := h.cart.Add(c.Request.Context(), middleware.SessionID(c), req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, dto.NewNotFoundError("product not found"))
			return
		}
		h.log.Error("adding to cart failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *CartHandler) Update(c *gin.Context) {
	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid quantity", dto.BindingFieldErrors(err)))
		return
	}

	item, err := h.cart.Update(c.Request.Context(), middleware.SessionID(c), c.Param("id"), req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrCartItemNotFound) {
			c.JSON(http.StatusNotFound, dto.NewNotFoundError("cart item not found"))
			return
		}
		h.log.Error("updating cart item failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *CartHandler) Remove(c *gin.Context) {
	err := h.cart.Remove(c.Request.Context(), middleware.SessionID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrCartItemNotFound) {
			c.JSON(http.StatusNotFound, dto.NewNotFoundError("cart item not found"))
			return
		}
		h.log.Error("removing cart item failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.cart.Clear(c.Request.Context(), middleware.SessionID(c)); err != nil {
		h.log.Error("clearing cart failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		return
	}
	c.Status(http.StatusNoContent)
}
