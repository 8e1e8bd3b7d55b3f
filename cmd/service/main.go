package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danieltechTI/ReiBurguer/config"
	"github.com/danieltechTI/ReiBurguer/internal/database"
	"github.com/danieltechTI/ReiBurguer/internal/hashing"
	"github.com/danieltechTI/ReiBurguer/internal/logger"
	"github.com/danieltechTI/ReiBurguer/internal/producer"
	"github.com/danieltechTI/ReiBurguer/internal/repository"
	"github.com/danieltechTI/ReiBurguer/internal/service"
	"github.com/danieltechTI/ReiBurguer/internal/token"
	"github.com/danieltechTI/ReiBurguer/internal/transport/http/handlers"
	"github.com/danieltechTI/ReiBurguer/internal/transport/http/router"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}
	defer logger.Sync()

	log := logger.L()

	cfg := config.Load(log)
	db := database.ConnectDB(&cfg.DB.Config, log)
	defer database.CloseDB(db, log)

	repos := repository.New(db)
	catalog := repository.NewSeededCatalogRepo()

	cartStore := buildCartStore(cfg, log)

	hasher := hashing.NewBcrypt(0)
	tokens := token.NewHSProvider(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience)

	// Event bus is optional: nil disables publishing.
	var events service.EventBus
	if cfg.Kafka.Enabled && len(cfg.Kafka.Brokers) > 0 {
		p := producer.NewOrderProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer p.Close()
		events = p
		log.Info("kafka order events enabled", zap.Strings("brokers", cfg.Kafka.Brokers))
	}

	authSvc := service.NewAuthService(repos.Customers, hasher, tokens, cfg.JWT.AccessExp, log)
	cartSvc := service.NewCartService(catalog, cartStore)
	orderSvc := service.NewOrderService(repos.Orders, events, log)
	shippingSvc := service.NewShippingService(cfg.Shipping.APIURL, cfg.Shipping.Timeout, log)
	contactSvc := service.NewContactService(repos.Contacts, log)

	r := router.Router(router.Deps{
		Products: handlers.NewProductHandler(catalog, log),
		Cart:     handlers.NewCartHandler(cartSvc, log),
		Auth:     handlers.NewAuthHandler(authSvc, log),
		Orders:   handlers.NewOrderHandler(orderSvc, cartSvc, cfg.WhatsAppNumber, log),
		Admin:    handlers.NewAdminHandler(orderSvc, log),
		Shipping: handlers.NewShippingHandler(shippingSvc, log),
		Contact:  handlers.NewContactHandler(contactSvc, log),
		Tokens:   tokens,
		Log:      log,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("starting storefront HTTP server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-quit
	log.Info("shutting down storefront HTTP server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown error", zap.Error(err))
	}
	log.Info("storefront HTTP server stopped gracefully")
}

func buildCartStore(cfg *config.Config, log *zap.Logger) repository.CartStore {
	if cfg.Cart.Backend != "redis" {
		return repository.NewMemoryCartStore()
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Cart.RedisAddr,
		Password: cfg.Cart.RedisPass,
		DB:       cfg.Cart.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal("failed to connect to redis", zap.String("addr", cfg.Cart.RedisAddr), zap.Error(err))
	}
	log.Info("redis cart store enabled", zap.String("addr", cfg.Cart.RedisAddr))

	return repository.NewRedisCartStore(rdb, time.Duration(cfg.Cart.TTLSeconds)*time.Second)
}
