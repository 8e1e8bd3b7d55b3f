package dto

import (
	"time"

	"github.com/danieltechTI/ReiBurguer/internal/models"
	"github.com/danieltechTI/ReiBurguer/internal/service"
)

type CustomerResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func NewCustomerResponse(c *models.Customer) CustomerResponse {
	return CustomerResponse{
		ID:    c.ID.String(),
		Email: c.Email,
		Name:  c.Name,
		Role:  string(c.Role),
	}
}

type LoginResponse struct {
	AccessToken string           `json:"accessToken"`
	ExpiresAt   time.Time        `json:"expiresAt"`
	Customer    CustomerResponse `json:"customer"`
}

type CartResponse struct {
	Items         []models.CartItem `json:"items"`
	SubtotalCents int64             `json:"subtotalCents"`
}

type CheckoutResponse struct {
	OrderNumber  string `json:"orderNumber"`
	TotalCents   int64  `json:"totalCents"`
	WhatsappLink string `json:"whatsappLink"`
	Message      string `json:"message"`
}

type ShippingResponse struct {
	Options []service.ShippingOption `json:"options"`
}
