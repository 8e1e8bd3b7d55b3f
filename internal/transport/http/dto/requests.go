package dto

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required,min=2"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AddCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required,min=2"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required,min=10"`
	Message string `json:"message" binding:"required,min=10"`
}

type CheckoutRequest struct {
	CustomerName  string  `json:"customerName" binding:"required,min=2"`
	CustomerPhone string  `json:"customerPhone" binding:"required,min=10"`
	PaymentMethod *string `json:"paymentMethod" binding:"omitempty,oneof=dinheiro cartao pix"`
	Notes         *string `json:"notes"`
}

type ShippingRequest struct {
	PostalCode string `json:"postalCode" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
