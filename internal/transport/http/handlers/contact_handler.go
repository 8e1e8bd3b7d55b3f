package handlers

import (
	"net/http"

	"github.com/danieltechTI/ReiBurguer/internal/service"
	"github.com/danieltechTI/ReiBurguer/internal/transport/http/dto"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ContactHandler struct {
	contact *service.ContactService
	log     *zap.Logger
}

func NewContactHandler(contact *service.ContactService, log *zap.Logger) *ContactHandler {
	return &ContactHandler{contact: contact, log: log}
}

func (h *ContactHandler) Create(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid contact data", dto.BindingFieldErrors(err)))
		return
	}

	message, err := h.contact.Create(c.Request.Context(), req.Name, req.Email, req.Phone, req.Message)
	if err != nil {
		h.log.Error("saving contact message failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		return
	}
	c.JSON(http.StatusCreated, message)
}
