package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleCustomer Role = "ROLE_CUSTOMER"
	RoleAdmin    Role = "ROLE_ADMIN"
)

type Customer struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"type:text;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	Name         string    `gorm:"type:text;not null" json:"name"`
	Phone        *string   `gorm:"type:text" json:"phone,omitempty"`
	Role         Role      `gorm:"type:text;not null;default:'ROLE_CUSTOMER'" json:"role"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (Customer) TableName() string { return "customers" }

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// OrderItem is a snapshot of a cart item at checkout time. The slice is
// stored as one serialized JSON column, never as foreign keys into live
// cart rows.
type OrderItem struct {
	ProductID      string `json:"productId"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	LineTotalCents int64  `json:"lineTotalCents"`
}

type OrderItems []OrderItem

func (i OrderItems) Value() (driver.Value, error) {
	b, err := json.Marshal(i)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (i *OrderItems) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, i)
	case string:
		return json.Unmarshal([]byte(v), i)
	case nil:
		*i = nil
		return nil
	}
	return fmt.Errorf("unsupported order items column type %T", src)
}

type Order struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrderNumber string    `gorm:"type:char(5);not null;uniqueIndex" json:"orderNumber"`

	CustomerID    uuid.UUID `gorm:"type:uuid;not null;index" json:"customerId"`
	CustomerName  string    `gorm:"type:text;not null" json:"customerName"`
	CustomerPhone string    `gorm:"type:text;not null" json:"customerPhone"`

	Items OrderItems `gorm:"type:text;not null" json:"items"`

	SubtotalCents int64 `gorm:"not null" json:"subtotalCents"`
	ShippingCents int64 `gorm:"not null;default:0" json:"shippingCents"`
	TotalCents    int64 `gorm:"not null" json:"totalCents"`

	Status        OrderStatus `gorm:"type:text;not null;default:'confirmado';index" json:"status"`
	PaymentMethod *string     `gorm:"type:text" json:"paymentMethod,omitempty"`
	Notes         *string     `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"not null;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (Order) TableName() string { return "orders" }

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// OrderCounter backs sequential order numbering. A single row is bumped
// with one atomic UPDATE per created order; see repository.NextOrderNumber.
type OrderCounter struct {
	ID      int   `gorm:"primaryKey"`
	Counter int64 `gorm:"not null;default:0"`
}

func (OrderCounter) TableName() string { return "order_counters" }

type ContactMessage struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name    string    `gorm:"type:text;not null" json:"name"`
	Email   string    `gorm:"type:text;not null" json:"email"`
	Phone   string    `gorm:"type:text;not null" json:"phone"`
	Message string    `gorm:"type:text;not null" json:"message"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}

func (ContactMessage) TableName() string { return "contact_messages" }

func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
