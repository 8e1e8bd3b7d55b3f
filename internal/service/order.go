package service

import (
	"context"

	"github.com/danieltechTI/ReiBurguer/internal/models"
	"github.com/danieltechTI/ReiBurguer/internal/repository"

	"github.com/google/uuid"
)

type CreateOrderInput struct {
	CustomerName  string
	CustomerPhone string
	Items         []models.CartItem
	PaymentMethod *string
	Notes         *string
}

type OrderService interface {
	// CreateOrder turns the cart snapshot of the authenticated customer
	// into a durable order in the initial status.
	CreateOrder(ctx context.Context, in CreateOrderInput) (*models.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error)
	GetOrderByNumber(ctx context.Context, orderNumber string) (*models.Order, error)
	// ListMine returns the authenticated customer's order history,
	// newest first.
	ListMine(ctx context.Context) ([]models.Order, error)
	// ListAll is the admin board view, newest first.
	ListAll(ctx context.Context) ([]models.Order, error)
	// UpdateStatus advances an order along the allowed transition edges.
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error)
	// Metrics aggregates revenue and order count for the admin dashboard,
	// excluding rejected orders.
	Metrics(ctx context.Context) (repository.OrderMetrics, error)
}
