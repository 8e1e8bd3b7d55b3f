package service

import (
	"context"

	"github.com/danieltechTI/ReiBurguer/internal/models"

	"github.com/google/uuid"
)

type ctxKey string

const (
	ctxCustomerIDKey ctxKey = "customerID"
	ctxRoleKey       ctxKey = "role"
)

func WithCustomerID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, ctxCustomerIDKey, id)
}

func CustomerIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	v, ok := ctx.Value(ctxCustomerIDKey).(uuid.UUID)
	return v, ok
}

func WithRole(ctx context.Context, r models.Role) context.Context {
	return context.WithValue(ctx, ctxRoleKey, r)
}

func RoleFromContext(ctx context.Context) (models.Role, bool) {
	v, ok := ctx.Value(ctxRoleKey).(models.Role)
	return v, ok
}

// requireAuth extracts the authenticated customer identity. A missing role
// means customer by default.
func requireAuth(ctx context.Context) (uuid.UUID, models.Role, error) {
	id, ok := CustomerIDFromContext(ctx)
	if !ok {
		return uuid.Nil, "", ErrUnauthorized
	}
	role, ok := RoleFromContext(ctx)
	if !ok {
		role = models.RoleCustomer
	}
	return id, role, nil
}
