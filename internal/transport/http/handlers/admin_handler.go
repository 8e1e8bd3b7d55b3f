package handlers

import (
	"errors"
	"net/http"

	"github.com/danieltechTI/ReiBurguer/internal/models"
	"github.com/danieltechTI/ReiBurguer/internal/service"
	"github.com/danieltechTI/ReiBurguer/internal/transport/http/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AdminHandler struct {
	orders service.OrderService
	log    *zap.Logger
}

func NewAdminHandler(orders service.OrderService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{orders: orders, log: log}
}

// ListOrders feeds the admin board; the board polls it every few seconds.
func (h *AdminHandler) ListOrders(c *gin.Context) {
	orders, err := h.orders.ListAll(identityContext(c))
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			c.JSON(http.StatusForbidden, dto.NewForbiddenError("admin access required"))
			return
		}
		h.log.Error("listing orders failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid order id", nil))
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", dto.BindingFieldErrors(err)))
		return
	}

	order, err := h.orders.UpdateStatus(identityContext(c), id, models.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownStatus):
			c.JSON(http.StatusBadRequest, dto.NewValidationError("unknown order status", nil))
		case errors.Is(err, service.ErrInvalidTransition):
			c.JSON(http.StatusConflict, dto.NewConflictError("status transition not allowed"))
		case errors.Is(err, service.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, dto.NewNotFoundError("order not found"))
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, dto.NewForbiddenError("admin access required"))
		default:
			h.log.Error("updating order status failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		}
		return
	}
	c.JSON(http.StatusOK, order)
}

// Metrics backs the dashboard revenue tiles. Rejected orders are excluded
// by the service; see OrderService.Metrics.
func (h *AdminHandler) Metrics(c *gin.Context) {
	metrics, err := h.orders.Metrics(identityContext(c))
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			c.JSON(http.StatusForbidden, dto.NewForbiddenError("admin access required"))
			return
		}
		h.log.Error("computing order metrics failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		return
	}
	c.JSON(http.StatusOK, metrics)
}
