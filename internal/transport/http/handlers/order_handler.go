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

type OrderHandler struct {
	orders         service.OrderService
	cart           *service.CartService
	whatsappNumber string
	log            *zap.Logger
}

func NewOrderHandler(orders service.OrderService, cart *service.CartService, whatsappNumber string, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orders:         orders,
		cart:           cart,
		whatsappNumber: whatsappNumber,
		log:            log,
	}
}

// Checkout creates an order from the current cart snapshot and clears the
// cart. The response carries the WhatsApp deep link the customer uses to
// confirm the order with the store.
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid checkout data", dto.BindingFieldErrors(err)))
		return
	}

	ctx := identityContext(c)
	sessionID := middleware.SessionID(c)

	items, _, err := h.cart.Items(ctx, sessionID)
	if err != nil {
		h.log.Error("reading cart at checkout failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		return
	}

	order, err := h.orders.CreateOrder(ctx, service.CreateOrderInput{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Items:         items,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, dto.NewValidationError("cart is empty", nil))
		case errors.Is(err, service.ErrUnauthorized):
			c.JSON(http.StatusUnauthorized, dto.NewUnauthorizedError("login required for checkout"))
		default:
			h.log.Error("checkout failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		}
		return
	}

	if err := h.cart.Clear(ctx, sessionID); err != nil {
		// The order exists; an uncleared cart is an annoyance, not a fault.
		h.log.Warn("clearing cart after checkout failed", zap.Error(err))
	}

	message := buildWhatsAppMessage(order)
	c.JSON(http.StatusCreated, dto.CheckoutResponse{
		OrderNumber:  order.OrderNumber,
		TotalCents:   order.TotalCents,
		WhatsappLink: buildWhatsAppLink(h.whatsappNumber, message),
		Message:      message,
	})
}

func (h *OrderHandler) GetByNumber(c *gin.Context) {
	order, err := h.orders.GetOrderByNumber(c.Request.Context(), c.Param("orderNumber"))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, dto.NewNotFoundError("order not found"))
			return
		}
		h.log.Error("fetching order failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		return
	}
	c.JSON(http.StatusOK, order)
}

// History is the customer's own order list.
func (h *OrderHandler) History(c *gin.Context) {
	orders, err := h.orders.ListMine(identityContext(c))
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, dto.NewUnauthorizedError("not authenticated"))
			return
		}
		h.log.Error("listing order history failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		return
	}
	c.JSON(http.StatusOK, orders)
}
