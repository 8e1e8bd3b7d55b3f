package handlers

import (
	"errors"
	"net/http"

	"github.com/danieltechTI/ReiBurguer/internal/service"
	"github.com/danieltechTI/ReiBurguer/internal/transport/http/dto"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ShippingHandler struct {
	shipping *service.ShippingService
	log      *zap.Logger
}

func NewShippingHandler(shipping *service.ShippingService, log *zap.Logger) *ShippingHandler {
	return &ShippingHandler{shipping: shipping, log: log}
}

func (h *ShippingHandler) Calculate(c *gin.Context) {
	var req dto.ShippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", dto.BindingFieldErrors(err)))
		return
	}

	options, err := h.shipping.Estimate(c.Request.Context(), req.PostalCode)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPostalCode) {
			c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid postal code", []dto.FieldError{
				{Field: "postalCode", Message: "must be a valid 8-digit CEP"},
			}))
			return
		}
		h.log.Error("shipping estimate failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		return
	}
	c.JSON(http.StatusOK, dto.ShippingResponse{Options: options})
}
