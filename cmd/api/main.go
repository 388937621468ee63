package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	amqp "github.com/rabbitmq/amqp091-go"

	"jewelstore/internal/config"
	"jewelstore/internal/db"
	"jewelstore/internal/events"
	"jewelstore/internal/httpserver"
	cartrepo "jewelstore/internal/repository/cart"
	categoryrepo "jewelstore/internal/repository/category"
	customerrepo "jewelstore/internal/repository/customer"
	favoriterepo "jewelstore/internal/repository/favorite"
	orderrepo "jewelstore/internal/repository/order"
	productrepo "jewelstore/internal/repository/product"
	promotionrepo "jewelstore/internal/repository/promotion"
	reviewrepo "jewelstore/internal/repository/review"
	tokenrepo "jewelstore/internal/repository/token"
	cartsvc "jewelstore/internal/service/cart"
	catalogsvc "jewelstore/internal/service/catalog"
	checkoutsvc "jewelstore/internal/service/checkout"
	customersvc "jewelstore/internal/service/customer"
	favoritesvc "jewelstore/internal/service/favorite"
	ordersvc "jewelstore/internal/service/order"
	promotionsvc "jewelstore/internal/service/promotion"
	reviewsvc "jewelstore/internal/service/review"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	productRepo := productrepo.NewPostgres(dbpool)
	categoryRepo := categoryrepo.NewPostgres(dbpool)
	cartRepo := cartrepo.NewPostgres(dbpool)
	promotionRepo := promotionrepo.NewPostgres(dbpool)
	orderRepo := orderrepo.NewPostgres(dbpool)
	customerRepo := customerrepo.NewPostgres(dbpool)
	tokenRepo := tokenrepo.NewPostgres(dbpool)
	favoriteRepo := favoriterepo.NewPostgres(dbpool)
	reviewRepo := reviewrepo.NewPostgres(dbpool)

	customerService := customersvc.New(customerRepo, tokenRepo)
	catalogService := catalogsvc.New(productRepo, categoryRepo)
	cartService := cartsvc.New(cartRepo, productRepo)
	promotionService := promotionsvc.New(promotionRepo)
	orderService := ordersvc.New(orderRepo)
	favoriteService := favoritesvc.New(favoriteRepo, productRepo)
	reviewService := reviewsvc.New(reviewRepo, productRepo)

	var checkoutService *checkoutsvc.Service
	if cfg.AMQPURL != "" {
		conn, err := amqp.Dial(cfg.AMQPURL)
		if err != nil {
			logger.Fatalf("connect to amqp: %v", err)
		}
		defer conn.Close()
		publisher, err := events.NewPublisher(conn)
		if err != nil {
			logger.Fatalf("init publisher: %v", err)
		}
		defer publisher.Close()
		checkoutService = checkoutsvc.New(cartRepo, productRepo, orderRepo, promotionService, publisher, cfg.ShippingFee, logger)
	} else {
		logger.Printf("AMQP_URL not set, order events disabled")
		checkoutService = checkoutsvc.New(cartRepo, productRepo, orderRepo, promotionService, nil, cfg.ShippingFee, logger)
	}

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CustomerSvc:  customerService,
		CatalogSvc:   catalogService,
		CartSvc:      cartService,
		PromotionSvc: promotionService,
		CheckoutSvc:  checkoutService,
		OrderSvc:     orderService,
		FavoriteSvc:  favoriteService,
		ReviewSvc:    reviewService,
	}, cfg.AllowedOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("shutdown: %v", err)
	}
}
