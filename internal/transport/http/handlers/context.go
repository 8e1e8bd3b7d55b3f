package handlers

import (
	"context"

	"github.com/danieltechTI/ReiBurguer/internal/models"
	"github.com/danieltechTI/ReiBurguer/internal/service"
	"github.com/danieltechTI/ReiBurguer/internal/transport/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// identityContext copies the authenticated identity from the gin context
// into the request context the services expect.
func identityContext(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	if v, ok := c.Get(middleware.CtxCustomerID); ok {
		if id, ok := v.(uuid.UUID); ok {
			ctx = service.WithCustomerID(ctx, id)
		}
	}
	if v, ok := c.Get(middleware.CtxRole); ok {
		if role, ok := v.(models.Role); ok {
			ctx = service.WithRole(ctx, role)
		}
	}
	return ctx
}
