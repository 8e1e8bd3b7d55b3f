package router

import (
	"github.com/danieltechTI/ReiBurguer/internal/service"
	"github.com/danieltechTI/ReiBurguer/internal/transport/http/handlers"
	"github.com/danieltechTI/ReiBurguer/internal/transport/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Deps struct {
	Products *handlers.ProductHandler
	Cart     *handlers.CartHandler
	Auth     *handlers.AuthHandler
	Orders   *handlers.OrderHandler
	Admin    *handlers.AdminHandler
	Shipping *handlers.ShippingHandler
	Contact  *handlers.ContactHandler

	Tokens service.TokenProvider
	Log    *zap.Logger
}

func Router(d Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/products", d.Products.List)
	r.GET("/products/category/:category", d.Products.ListByCategory)
	r.GET("/products/:id", d.Products.Get)

	cart := r.Group("/cart", middleware.CartSession())
	{
		cart.GET("", d.Cart.Items)
		cart.POST("", d.Cart.Add)
		cart.PATCH("/:id", d.Cart.Update)
		cart.DELETE("/:id", d.Cart.Remove)
		cart.DELETE("", d.Cart.Clear)
	}

	r.POST("/contact", d.Contact.Create)
	r.POST("/shipping/calculate", d.Shipping.Calculate)

	auth := r.Group("/auth")
	{
		auth.POST("/register", d.Auth.Register)
		auth.POST("/login", d.Auth.Login)
		auth.GET("/me", middleware.AuthRequired(d.Tokens, d.Log), d.Auth.Me)
	}

	orders := r.Group("/orders")
	{
		orders.POST("/checkout", middleware.AuthRequired(d.Tokens, d.Log), middleware.CartSession(), d.Orders.Checkout)
		orders.GET("", middleware.AuthRequired(d.Tokens, d.Log), d.Orders.History)
		orders.GET("/:orderNumber", d.Orders.GetByNumber)
	}

	admin := r.Group("/admin", middleware.AuthRequired(d.Tokens, d.Log), middleware.AdminRequired())
	{
		admin.GET("/orders", d.Admin.ListOrders)
		admin.GET("/orders/metrics", d.Admin.Metrics)
		admin.PATCH("/orders/:id", d.Admin.UpdateStatus)
	}

	return r
}
