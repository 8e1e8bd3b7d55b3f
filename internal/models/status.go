package models

import "fmt"

// OrderStatus is the order lifecycle state. The flow is linear and
// admin-driven, with rejection possible only before preparation starts:
//
//	confirmado → preparando → pronto → finalizado
//	confirmado → recusado
type OrderStatus string

const (
	// OrderStatusConfirmed is the initial state, set at creation.
	OrderStatusConfirmed OrderStatus = "confirmado"
	// OrderStatusPreparing indicates the kitchen picked up the order.
	OrderStatusPreparing OrderStatus = "preparando"
	// OrderStatusReady indicates the order is ready for pickup.
	OrderStatusReady OrderStatus = "pronto"
	// OrderStatusFinished is terminal: the order was handed over.
	OrderStatusFinished OrderStatus = "finalizado"
	// OrderStatusRejected is terminal: the staff declined the order.
	OrderStatusRejected OrderStatus = "recusado"
)

func (s OrderStatus) String() string { return string(s) }

// ParseOrderStatus validates a client-supplied status value.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderStatusConfirmed, OrderStatusPreparing, OrderStatusReady, OrderStatusFinished, OrderStatusRejected:
		return OrderStatus(s), nil
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

// transitions is the full edge set. Backward moves and jumps over
// intermediate states are not allowed; rejection is only valid from the
// initial state.
var transitions = map[OrderStatus][]OrderStatus{
	OrderStatusConfirmed: {OrderStatusPreparing, OrderStatusRejected},
	OrderStatusPreparing: {OrderStatusReady},
	OrderStatusReady:     {OrderStatusFinished},
}

// CanTransitionTo reports whether the edge s → to exists.
func (s OrderStatus) CanTransitionTo(to OrderStatus) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are permitted.
func (s OrderStatus) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// NextStatus returns the single forward step in the linear flow, used by
// the admin board's "advance" action. Terminal states and rejection have
// no forward step.
func (s OrderStatus) NextStatus() (OrderStatus, bool) {
	switch s {
	case OrderStatusConfirmed:
		return OrderStatusPreparing, true
	case OrderStatusPreparing:
		return OrderStatusReady, true
	case OrderStatusReady:
		return OrderStatusFinished, true
	}
	return s, false
}
