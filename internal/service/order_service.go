package service

import (
	"context"
	"time"

	"github.com/danieltechTI/ReiBurguer/internal/models"
	"github.com/danieltechTI/ReiBurguer/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type orderService struct {
	orders repository.OrderRepo
	events EventBus
	now    func() time.Time
	log    *zap.Logger
}

func NewOrderService(orders repository.OrderRepo, events EventBus, log *zap.Logger) OrderService {
	return &orderService{
		orders: orders,
		events: events,
		now:    time.Now,
		log:    log,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*models.Order, error) {
	customerID, _, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}

	if len(in.Items) == 0 {
		return nil, ErrEmptyCart
	}

	now := s.now()

	// Snapshot the items: name and unit price are copied so later catalog
	// changes never alter this order.
	items := make(models.OrderItems, 0, len(in.Items))
	var subtotal int64
	for _, it := range in.Items {
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		line := it.Product.PriceCents * int64(qty)
		subtotal += line
		items = append(items, models.OrderItem{
			ProductID:      it.ProductID,
			Name:           it.Product.Name,
			Quantity:       qty,
			UnitPriceCents: it.Product.PriceCents,
			LineTotalCents: line,
		})
	}

	orderNumber, err := s.orders.NextOrderNumber(ctx)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		OrderNumber:   orderNumber,
		CustomerID:    customerID,
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		Items:         items,
		SubtotalCents: subtotal,
		ShippingCents: 0, // pickup orders
		TotalCents:    subtotal,
		Status:        models.OrderStatusConfirmed,
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	s.log.Info("order created",
		zap.String("order_number", order.OrderNumber),
		zap.Int64("total_cents", order.TotalCents))

	if s.events != nil {
		evItems := make([]OrderItemEvent, 0, len(items))
		for _, it := range items {
			evItems = append(evItems, OrderItemEvent{
				ProductID: it.ProductID,
				Name:      it.Name,
				Quantity:  it.Quantity,
				LineTotal: it.LineTotalCents,
			})
		}
		// Publish failures never fail the request; the order is already durable.
		if err := s.events.PublishOrderCreated(ctx, OrderCreatedEvent{
			OrderID:     order.ID,
			OrderNumber: order.OrderNumber,
			CustomerID:  order.CustomerID,
			Items:       evItems,
			TotalCents:  order.TotalCents,
			CreatedAt:   order.CreatedAt,
		}); err != nil {
			s.log.Warn("publishing order created event failed",
				zap.String("order_number", order.OrderNumber), zap.Error(err))
		}
	}

	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	customerID, role, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}

	ord, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}
	if role != models.RoleAdmin && ord.CustomerID != customerID {
		return nil, ErrForbidden
	}
	return ord, nil
}

// GetOrderByNumber is the public status lookup used by the confirmation
// page; the order number itself is the capability.
func (s *orderService) GetOrderByNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	ord, err := s.orders.GetByNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}
	return ord, nil
}

func (s *orderService) ListMine(ctx context.Context) ([]models.Order, error) {
	customerID, _, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}
	return s.orders.ListByCustomer(ctx, customerID)
}

func (s *orderService) ListAll(ctx context.Context) ([]models.Order, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	return s.orders.ListAll(ctx)
}

func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	if _, err := models.ParseOrderStatus(string(status)); err != nil {
		return nil, ErrUnknownStatus
	}

	ord, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}

	// The transition table is enforced here, not trusted to the caller.
	// An invalid edge leaves the order untouched.
	if !ord.Status.CanTransitionTo(status) {
		return nil, ErrInvalidTransition
	}

	from := ord.Status
	if err := s.orders.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	ord, err = s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}

	s.log.Info("order status updated",
		zap.String("order_number", ord.OrderNumber),
		zap.String("from", from.String()),
		zap.String("to", status.String()))

	if s.events != nil {
		if err := s.events.PublishOrderStatusChanged(ctx, OrderStatusChangedEvent{
			OrderID:     ord.ID,
			OrderNumber: ord.OrderNumber,
			From:        from,
			To:          status,
			ChangedAt:   s.now(),
		}); err != nil {
			s.log.Warn("publishing order status event failed",
				zap.String("order_number", ord.OrderNumber), zap.Error(err))
		}
	}

	return ord, nil
}

func (s *orderService) Metrics(ctx context.Context) (repository.OrderMetrics, error) {
	if err := requireAdmin(ctx); err != nil {
		return repository.OrderMetrics{}, err
	}
	return s.orders.Metrics(ctx)
}

func requireAdmin(ctx context.Context) error {
	_, role, err := requireAuth(ctx)
	if err != nil {
		return err
	}
	if role != models.RoleAdmin {
		return ErrForbidden
	}
	return nil
}
