package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/danieltechTI/ReiBurguer/internal/models"
	"github.com/danieltechTI/ReiBurguer/internal/repository"
	"github.com/danieltechTI/ReiBurguer/internal/service"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// MockOrderRepo
type MockOrderRepo struct {
	CreateFunc          func(ctx context.Context, o *models.Order) error
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*models.Order, error)
	GetByNumberFunc     func(ctx context.Context, orderNumber string) (*models.Order, error)
	ListByCustomerFunc  func(ctx context.Context, customerID uuid.UUID) ([]models.Order, error)
	ListAllFunc         func(ctx context.Context) ([]models.Order, error)
	UpdateStatusFunc    func(ctx context.Context, id uuid.UUID, status models.OrderStatus) error
	NextOrderNumberFunc func(ctx context.Context) (string, error)
	MetricsFunc         func(ctx context.Context) (repository.OrderMetrics, error)
}

func (m *MockOrderRepo) Create(ctx context.Context, o *models.Order) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, o)
	}
	return nil
}

func (m *MockOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockOrderRepo) GetByNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, orderNumber)
	}
	return nil, nil
}

func (m *MockOrderRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Order, error) {
	if m.ListByCustomerFunc != nil {
		return m.ListByCustomerFunc(ctx, customerID)
	}
	return nil, nil
}

func (m *MockOrderRepo) ListAll(ctx context.Context) ([]models.Order, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *MockOrderRepo) NextOrderNumber(ctx context.Context) (string, error) {
	if m.NextOrderNumberFunc != nil {
		return m.NextOrderNumberFunc(ctx)
	}
	return "00001", nil
}

func (m *MockOrderRepo) Metrics(ctx context.Context) (repository.OrderMetrics, error) {
	if m.MetricsFunc != nil {
		return m.MetricsFunc(ctx)
	}
	return repository.OrderMetrics{}, nil
}

// MockEventBus
type MockEventBus struct {
	PublishOrderCreatedFunc       func(ctx context.Context, ev service.OrderCreatedEvent) error
	PublishOrderStatusChangedFunc func(ctx context.Context, ev service.OrderStatusChangedEvent) error
}

func (m *MockEventBus) PublishOrderCreated(ctx context.Context, ev service.OrderCreatedEvent) error {
	if m.PublishOrderCreatedFunc != nil {
		return m.PublishOrderCreatedFunc(ctx, ev)
	}
	return nil
}

func (m *MockEventBus) PublishOrderStatusChanged(ctx context.Context, ev service.OrderStatusChangedEvent) error {
	if m.PublishOrderStatusChangedFunc != nil {
		return m.PublishOrderStatusChangedFunc(ctx, ev)
	}
	return nil
}

func customerCtx(id uuid.UUID) context.Context {
	ctx := service.WithCustomerID(context.Background(), id)
	return service.WithRole(ctx, models.RoleCustomer)
}

func adminCtx(id uuid.UUID) context.Context {
	ctx := service.WithCustomerID(context.Background(), id)
	return service.WithRole(ctx, models.RoleAdmin)
}

func cartItem(productID, name string, priceCents int64, qty int) models.CartItem {
	return models.CartItem{
		ID:        uuid.NewString(),
		ProductID: productID,
		Quantity:  qty,
		Product:   models.Product{ID: productID, Name: name, PriceCents: priceCents},
	}
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	repo := &MockOrderRepo{}

	var created *models.Order
	repo.CreateFunc = func(ctx context.Context, o *models.Order) error {
		created = o
		return nil
	}
	repo.NextOrderNumberFunc = func(ctx context.Context) (string, error) {
		return "00042", nil
	}

	published := false
	bus := &MockEventBus{}
	bus.PublishOrderCreatedFunc = func(ctx context.Context, ev service.OrderCreatedEvent) error {
		published = true
		if ev.OrderNumber != "00042" {
			t.Errorf("Expected event order number 00042, got %s", ev.OrderNumber)
		}
		if ev.TotalCents != 2550 {
			t.Errorf("Expected event total 2550, got %d", ev.TotalCents)
		}
		return nil
	}

	svc := service.NewOrderService(repo, bus, zap.NewNop())

	customerID := uuid.New()
	order, err := svc.CreateOrder(customerCtx(customerID), service.CreateOrderInput{
		CustomerName:  "Maria Silva",
		CustomerPhone: "33999990000",
		Items: []models.CartItem{
			cartItem("x-bacon", "X-Bacon", 1000, 2),
			cartItem("coca-lata", "Coca-Cola Lata", 550, 1),
		},
	})

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if order.OrderNumber != "00042" {
		t.Errorf("Expected order number 00042, got %s", order.OrderNumber)
	}
	if len(order.OrderNumber) != 5 {
		t.Errorf("Expected 5-digit order number, got %q", order.OrderNumber)
	}
	if order.Status != models.OrderStatusConfirmed {
		t.Errorf("Expected status confirmado, got %s", order.Status)
	}
	if order.SubtotalCents != 2550 || order.TotalCents != 2550 {
		t.Errorf("Expected subtotal and total 2550, got %d and %d", order.SubtotalCents, order.TotalCents)
	}
	if order.ShippingCents != 0 {
		t.Errorf("Expected pickup order with zero shipping, got %d", order.ShippingCents)
	}
	if order.CustomerID != customerID {
		t.Errorf("Expected customer %v, got %v", customerID, order.CustomerID)
	}
	if created == nil {
		t.Fatal("Expected Create to be called")
	}
	if !published {
		t.Error("Expected order created event to be published")
	}

	if len(order.Items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(order.Items))
	}
	first := order.Items[0]
	if first.Name != "X-Bacon" || first.UnitPriceCents != 1000 || first.LineTotalCents != 2000 {
		t.Errorf("Item snapshot mismatch: %+v", first)
	}
}

func TestOrderService_CreateOrder_EmptyCart(t *testing.T) {
	svc := service.NewOrderService(&MockOrderRepo{}, nil, zap.NewNop())

	_, err := svc.CreateOrder(customerCtx(uuid.New()), service.CreateOrderInput{
		CustomerName:  "Maria Silva",
		CustomerPhone: "33999990000",
	})

	if !errors.Is(err, service.ErrEmptyCart) {
		t.Fatalf("Expected ErrEmptyCart, got %v", err)
	}
}

func TestOrderService_CreateOrder_Unauthenticated(t *testing.T) {
	svc := service.NewOrderService(&MockOrderRepo{}, nil, zap.NewNop())

	_, err := svc.CreateOrder(context.Background(), service.CreateOrderInput{
		Items: []models.CartItem{cartItem("x-burger", "X-Burger", 1000, 1)},
	})

	if !errors.Is(err, service.ErrUnauthorized) {
		t.Fatalf("Expected ErrUnauthorized, got %v", err)
	}
}

func TestOrderService_CreateOrder_SnapshotIsImmutable(t *testing.T) {
	repo := &MockOrderRepo{}
	var created *models.Order
	repo.CreateFunc = func(ctx context.Context, o *models.Order) error {
		created = o
		return nil
	}

	svc := service.NewOrderService(repo, nil, zap.NewNop())

	item := cartItem("x-tudo", "X-Tudo", 1999, 1)
	if _, err := svc.CreateOrder(customerCtx(uuid.New()), service.CreateOrderInput{
		CustomerName:  "João",
		CustomerPhone: "33988887777",
		Items:         []models.CartItem{item},
	}); err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	// A later catalog price change must not reach the stored order.
	item.Product.PriceCents = 2999
	item.Product.Name = "X-Tudo Promo"

	if created.Items[0].UnitPriceCents != 1999 {
		t.Errorf("Expected snapshot price 1999, got %d", created.Items[0].UnitPriceCents)
	}
	if created.Items[0].Name != "X-Tudo" {
		t.Errorf("Expected snapshot name X-Tudo, got %s", created.Items[0].Name)
	}
}

func TestOrderService_CreateOrder_EventFailureDoesNotFail(t *testing.T) {
	bus := &MockEventBus{}
	bus.PublishOrderCreatedFunc = func(ctx context.Context, ev service.OrderCreatedEvent) error {
		return fmt.Errorf("broker down")
	}

	core, logs := observer.New(zapcore.WarnLevel)
	svc := service.NewOrderService(&MockOrderRepo{}, bus, zap.New(core))

	_, err := svc.CreateOrder(customerCtx(uuid.New()), service.CreateOrderInput{
		CustomerName:  "Maria",
		CustomerPhone: "33999990000",
		Items:         []models.CartItem{cartItem("x-salada", "X-Salada", 999, 1)},
	})

	if err != nil {
		t.Fatalf("Expected publish failure to be swallowed, got %v", err)
	}
	if logs.FilterLevelExact(zapcore.WarnLevel).Len() == 0 {
		t.Error("Expected the publish failure to be logged at warn")
	}
}

func TestOrderService_UpdateStatus_EventFailureDoesNotFail(t *testing.T) {
	orderID := uuid.New()
	repo := &MockOrderRepo{}
	repo.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*models.Order, error) {
		return &models.Order{ID: orderID, OrderNumber: "00009", Status: models.OrderStatusConfirmed}, nil
	}

	bus := &MockEventBus{}
	bus.PublishOrderStatusChangedFunc = func(ctx context.Context, ev service.OrderStatusChangedEvent) error {
		return fmt.Errorf("broker down")
	}

	core, logs := observer.New(zapcore.WarnLevel)
	svc := service.NewOrderService(repo, bus, zap.New(core))

	ord, err := svc.UpdateStatus(adminCtx(uuid.New()), orderID, models.OrderStatusPreparing)
	if err != nil {
		t.Fatalf("Expected publish failure to be swallowed, got %v", err)
	}
	if ord == nil {
		t.Fatal("Expected the updated order back")
	}
	if logs.FilterLevelExact(zapcore.WarnLevel).Len() == 0 {
		t.Error("Expected the publish failure to be logged at warn")
	}
}

func TestOrderService_UpdateStatus_OrderGoneAfterUpdate(t *testing.T) {
	orderID := uuid.New()

	calls := 0
	repo := &MockOrderRepo{}
	repo.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*models.Order, error) {
		calls++
		if calls == 1 {
			return &models.Order{ID: orderID, OrderNumber: "00009", Status: models.OrderStatusConfirmed}, nil
		}
		return nil, nil
	}

	svc := service.NewOrderService(repo, nil, zap.NewNop())

	_, err := svc.UpdateStatus(adminCtx(uuid.New()), orderID, models.OrderStatusPreparing)
	if !errors.Is(err, service.ErrOrderNotFound) {
		t.Fatalf("Expected ErrOrderNotFound when the reload comes back empty, got %v", err)
	}
}

func TestOrderService_GetOrder_OwnerAndAdmin(t *testing.T) {
	ownerID := uuid.New()
	orderID := uuid.New()

	repo := &MockOrderRepo{}
	repo.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*models.Order, error) {
		return &models.Order{ID: orderID, CustomerID: ownerID, OrderNumber: "00007"}, nil
	}

	svc := service.NewOrderService(repo, nil, zap.NewNop())

	if _, err := svc.GetOrder(customerCtx(ownerID), orderID); err != nil {
		t.Errorf("Expected owner access, got %v", err)
	}
	if _, err := svc.GetOrder(adminCtx(uuid.New()), orderID); err != nil {
		t.Errorf("Expected admin access, got %v", err)
	}
	if _, err := svc.GetOrder(customerCtx(uuid.New()), orderID); !errors.Is(err, service.ErrForbidden) {
		t.Errorf("Expected ErrForbidden for another customer, got %v", err)
	}
}

func TestOrderService_GetOrderByNumber(t *testing.T) {
	repo := &MockOrderRepo{}
	repo.GetByNumberFunc = func(ctx context.Context, orderNumber string) (*models.Order, error) {
		if orderNumber == "00123" {
			return &models.Order{OrderNumber: "00123"}, nil
		}
		return nil, nil
	}

	svc := service.NewOrderService(repo, nil, zap.NewNop())

	// Public lookup, no identity in context.
	ord, err := svc.GetOrderByNumber(context.Background(), "00123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if ord.OrderNumber != "00123" {
		t.Errorf("Expected order 00123, got %s", ord.OrderNumber)
	}

	if _, err := svc.GetOrderByNumber(context.Background(), "99999"); !errors.Is(err, service.ErrOrderNotFound) {
		t.Errorf("Expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderService_UpdateStatus_Success(t *testing.T) {
	orderID := uuid.New()
	current := models.OrderStatusConfirmed

	repo := &MockOrderRepo{}
	repo.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*models.Order, error) {
		return &models.Order{ID: orderID, OrderNumber: "00009", Status: current}, nil
	}
	repo.UpdateStatusFunc = func(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
		current = status
		return nil
	}

	var published *service.OrderStatusChangedEvent
	bus := &MockEventBus{}
	bus.PublishOrderStatusChangedFunc = func(ctx context.Context, ev service.OrderStatusChangedEvent) error {
		published = &ev
		return nil
	}

	svc := service.NewOrderService(repo, bus, zap.NewNop())

	ord, err := svc.UpdateStatus(adminCtx(uuid.New()), orderID, models.OrderStatusPreparing)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if ord.Status != models.OrderStatusPreparing {
		t.Errorf("Expected status preparando, got %s", ord.Status)
	}
	if published == nil {
		t.Fatal("Expected status change event")
	}
	if published.From != models.OrderStatusConfirmed || published.To != models.OrderStatusPreparing {
		t.Errorf("Event edge mismatch: %s -> %s", published.From, published.To)
	}
}

func TestOrderService_UpdateStatus_InvalidTransition(t *testing.T) {
	orderID := uuid.New()

	updated := false
	repo := &MockOrderRepo{}
	repo.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*models.Order, error) {
		return &models.Order{ID: orderID, Status: models.OrderStatusConfirmed}, nil
	}
	repo.UpdateStatusFunc = func(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
		updated = true
		return nil
	}

	svc := service.NewOrderService(repo, nil, zap.NewNop())

	// Jumping over preparation is not a valid edge.
	_, err := svc.UpdateStatus(adminCtx(uuid.New()), orderID, models.OrderStatusFinished)
	if !errors.Is(err, service.ErrInvalidTransition) {
		t.Fatalf("Expected ErrInvalidTransition, got %v", err)
	}
	if updated {
		t.Error("Expected order to be left untouched on invalid transition")
	}
}

func TestOrderService_UpdateStatus_RejectOnlyFromConfirmed(t *testing.T) {
	orderID := uuid.New()
	repo := &MockOrderRepo{}
	repo.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*models.Order, error) {
		return &models.Order{ID: orderID, Status: models.OrderStatusPreparing}, nil
	}

	svc := service.NewOrderService(repo, nil, zap.NewNop())

	_, err := svc.UpdateStatus(adminCtx(uuid.New()), orderID, models.OrderStatusRejected)
	if !errors.Is(err, service.ErrInvalidTransition) {
		t.Fatalf("Expected ErrInvalidTransition for preparando -> recusado, got %v", err)
	}
}

func TestOrderService_UpdateStatus_UnknownStatus(t *testing.T) {
	svc := service.NewOrderService(&MockOrderRepo{}, nil, zap.NewNop())

	_, err := svc.UpdateStatus(adminCtx(uuid.New()), uuid.New(), models.OrderStatus("enviado"))
	if !errors.Is(err, service.ErrUnknownStatus) {
		t.Fatalf("Expected ErrUnknownStatus, got %v", err)
	}
}

func TestOrderService_UpdateStatus_RequiresAdmin(t *testing.T) {
	svc := service.NewOrderService(&MockOrderRepo{}, nil, zap.NewNop())

	_, err := svc.UpdateStatus(customerCtx(uuid.New()), uuid.New(), models.OrderStatusPreparing)
	if !errors.Is(err, service.ErrForbidden) {
		t.Fatalf("Expected ErrForbidden for non-admin, got %v", err)
	}
}

func TestOrderService_Metrics_RequiresAdmin(t *testing.T) {
	repo := &MockOrderRepo{}
	repo.MetricsFunc = func(ctx context.Context) (repository.OrderMetrics, error) {
		return repository.OrderMetrics{OrderCount: 3, RevenueCents: 7500}, nil
	}

	svc := service.NewOrderService(repo, nil, zap.NewNop())

	m, err := svc.Metrics(adminCtx(uuid.New()))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if m.OrderCount != 3 || m.RevenueCents != 7500 {
		t.Errorf("Metrics mismatch: %+v", m)
	}

	if _, err := svc.Metrics(customerCtx(uuid.New())); !errors.Is(err, service.ErrForbidden) {
		t.Errorf("Expected ErrForbidden for customer, got %v", err)
	}
}

func TestOrderService_ListMine_ScopedToCustomer(t *testing.T) {
	customerID := uuid.New()

	repo := &MockOrderRepo{}
	repo.ListByCustomerFunc = func(ctx context.Context, id uuid.UUID) ([]models.Order, error) {
		if id != customerID {
			t.Errorf("Expected customer %v, got %v", customerID, id)
		}
		return []models.Order{{OrderNumber: "00001"}}, nil
	}

	svc := service.NewOrderService(repo, nil, zap.NewNop())

	list, err := svc.ListMine(customerCtx(customerID))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(list) != 1 {
		t.Errorf("Expected 1 order, got %d", len(list))
	}
}
