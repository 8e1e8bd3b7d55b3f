package handlers

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/danieltechTI/ReiBurguer/internal/models"
)

// formatReais renders cents as the Brazilian "12,34" money format.
func formatReais(cents int64) string {
	return fmt.Sprintf("%d,%02d", cents/100, cents%100)
}

// buildWhatsAppMessage is the confirmation text the customer sends to the
// store: order number, items and total. Pure string formatting; the order
// itself is already persisted by the time this runs.
func buildWhatsAppMessage(order *models.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Olá! Acabei de fazer o pedido #%s:\n\n", order.OrderNumber)
	for _, it := range order.Items {
		fmt.Fprintf(&b, "• %dx %s - R$ %s\n", it.Quantity, it.Name, formatReais(it.LineTotalCents))
	}
	fmt.Fprintf(&b, "\nTotal: R$ %s", formatReais(order.TotalCents))
	if order.PaymentMethod != nil {
		fmt.Fprintf(&b, "\nPagamento: %s", *order.PaymentMethod)
	}
	if order.Notes != nil && *order.Notes != "" {
		fmt.Fprintf(&b, "\nObs: %s", *order.Notes)
	}
	return b.String()
}

func buildWhatsAppLink(number string, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(message))
}
