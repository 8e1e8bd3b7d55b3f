package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/danieltechTI/ReiBurguer/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// counterRowID: order_counters holds exactly one row.
const counterRowID = 1

// OrderMetrics are the admin dashboard aggregates. Rejected orders are
// excluded from both figures; see Metrics.
type OrderMetrics struct {
	OrderCount   int64 `json:"orderCount"`
	RevenueCents int64 `json:"revenueCents"`
}

type OrderRepo interface {
	Create(ctx context.Context, o *models.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	GetByNumber(ctx context.Context, orderNumber string) (*models.Order, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Order, error)
	ListAll(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error

	// NextOrderNumber bumps the shared counter atomically and returns the
	// zero-padded 5-digit number. Wraps back to 00001 after 99999.
	NextOrderNumber(ctx context.Context) (string, error)

	// Metrics aggregates order count and revenue, excluding rejected orders.
	Metrics(ctx context.Context) (OrderMetrics, error)
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) OrderRepo { return &orderRepo{db: db} }

func (r *orderRepo) Create(ctx context.Context, o *models.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *orderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var ord models.Order
	err := r.db.WithContext(ctx).First(&ord, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ord, err
}

func (r *orderRepo) GetByNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	var ord models.Order
	err := r.db.WithContext(ctx).First(&ord, "order_number = ?", orderNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ord, err
}

func (r *orderRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Order, error) {
	var list []models.Order
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *orderRepo) ListAll(ctx context.Context) ([]models.Order, error) {
	var list []models.Order
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
	return r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).
		Update("status", status).Error
}

// NextOrderNumber is a single UPDATE ... RETURNING so that two concurrent
// checkouts can never observe the same value. Never a read-then-write pair.
// The modulus runs the sequence 00001-99999 and wraps back to 00001.
func (r *orderRepo) NextOrderNumber(ctx context.Context) (string, error) {
	var next int64
	err := r.db.WithContext(ctx).
		Raw(`UPDATE order_counters SET counter = (counter % 99999) + 1 WHERE id = ? RETURNING counter`, counterRowID).
		Scan(&next).Error
	if err != nil {
		return "", err
	}
	if next == 0 {
		return "", errors.New("order counter row is missing; run migrations")
	}
	return fmt.Sprintf("%05d", next), nil
}

func (r *orderRepo) Metrics(ctx context.Context) (OrderMetrics, error) {
	var m OrderMetrics
	err := r.db.WithContext(ctx).Model(&models.Order{}).
		Select("COUNT(*) AS order_count, COALESCE(SUM(total_cents), 0) AS revenue_cents").
		Where("status <> ?", models.OrderStatusRejected).
		Scan(&m).Error
	return m, err
}
