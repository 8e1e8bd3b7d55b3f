package handlers

import (
	"errors"
	"net/http"

	"github.com/danieltechTI/ReiBurguer/internal/service"
	"github.com/danieltechTI/ReiBurguer/internal/transport/http/dto"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	auth *service.AuthService
	log  *zap.Logger
}

func NewAuthHandler(auth *service.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, log: log}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", dto.BindingFieldErrors(err)))
		return
	}

	customer, err := h.auth.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrEmailExists) {
			h.log.Warn("registration conflict", zap.String("email", req.Email))
			c.JSON(http.StatusConflict, dto.NewConflictError("customer with this email already exists"))
			return
		}
		h.log.Error("registration failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		return
	}

	c.JSON(http.StatusCreated, dto.NewCustomerResponse(customer))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", dto.BindingFieldErrors(err)))
		return
	}

	token, exp, customer, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, dto.NewUnauthorizedError("invalid email or password"))
			return
		}
		h.log.Error("login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: token,
		ExpiresAt:   exp,
		Customer:    dto.NewCustomerResponse(customer),
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	customer, err := h.auth.Profile(identityContext(c))
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) || errors.Is(err, service.ErrCustomerNotFound) {
			c.JSON(http.StatusUnauthorized, dto.NewUnauthorizedError("not authenticated"))
			return
		}
		h.log.Error("fetching profile failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		return
	}
	c.JSON(http.StatusOK, dto.NewCustomerResponse(customer))
}
