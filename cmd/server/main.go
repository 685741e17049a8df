package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/easyqist/storefront/internal/config"
	"github.com/easyqist/storefront/internal/handler"
	"github.com/easyqist/storefront/internal/mockdata"
	"github.com/easyqist/storefront/internal/repository"
	"github.com/easyqist/storefront/internal/service"
	"github.com/easyqist/storefront/pkg/response"
)

func main() {
	// decimals in JSON as bare numbers
	decimal.MarshalJSONWithoutQuotes = true

	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	// Seed the store from static data, then overlay the persisted snapshot
	store := repository.NewStore(
		cfg.Storage.StateFile,
		sugar,
		mockdata.Users(),
		mockdata.Products(),
		mockdata.BlogPosts(),
	)
	if err := store.Load(); err != nil {
		sugar.Fatalw("failed to load state file", "error", err)
	}

	productRepo := repository.NewProductRepository(store)
	userRepo := repository.NewUserRepository(store)
	cartRepo := repository.NewCartRepository(store)
	orderRepo := repository.NewOrderRepository(store)
	blogRepo := repository.NewBlogRepository(store)
	sessionRepo := repository.NewSessionRepository(store)

	notifier := service.NewNotifier(cfg.GetNotificationTTL())

	authService := service.NewAuthService(userRepo, sessionRepo, cartRepo, notifier, sugar, cfg.Auth.JWTSecret, cfg.GetTokenTTL())
	catalogService := service.NewCatalogService(productRepo)
	cartService := service.NewCartService(cartRepo, productRepo, notifier, sugar)
	checkoutService := service.NewCheckoutService(orderRepo, cartRepo, productRepo, notifier, sugar, service.CheckoutConfig{
		FreeShippingThreshold: cfg.GetFreeShippingThreshold(),
		ShippingFee:           cfg.GetShippingFee(),
		ProcessingDelay:       cfg.GetCheckoutDelay(),
	})

	router := setupRoutes(
		handler.NewAuthHandler(authService),
		handler.NewCatalogHandler(catalogService),
		handler.NewCartHandler(cartService),
		handler.NewCheckoutHandler(checkoutService),
		handler.NewAdminHandler(checkoutService),
		handler.NewBlogHandler(blogRepo),
		handler.NewNotificationHandler(notifier),
		handler.NewHealthHandler(store),
		authService,
		sugar,
	)

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		sugar.Infow("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("server failed to start", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	sugar.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		sugar.Fatalw("server forced to shutdown", "error", err)
	}

	// flush the state snapshot one last time
	if err := store.Save(); err != nil {
		sugar.Errorw("failed to flush state on shutdown", "error", err)
	}

	sugar.Info("server exited")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func setupRoutes(
	authHandler *handler.AuthHandler,
	catalogHandler *handler.CatalogHandler,
	cartHandler *handler.CartHandler,
	checkoutHandler *handler.CheckoutHandler,
	adminHandler *handler.AdminHandler,
	blogHandler *handler.BlogHandler,
	notificationHandler *handler.NotificationHandler,
	healthHandler *handler.HealthHandler,
	authService *service.AuthService,
	sugar *zap.SugaredLogger,
) *mux.Router {
	router := mux.NewRouter()
	router.Use(response.CORSMiddleware)
	router.Use(handler.LoggingMiddleware(sugar))

	// Health check
	router.HandleFunc("/health", healthHandler.Health).Methods("GET")
	router.HandleFunc("/health/ready", healthHandler.Ready).Methods("GET")

	// API routes
	api := router.PathPrefix("/api/v1").Subrouter()

	// Public
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/session", authHandler.Session).Methods("GET")
	api.HandleFunc("/products", catalogHandler.ListProducts).Methods("GET")
	api.HandleFunc("/products/{productId}", catalogHandler.GetProduct).Methods("GET")
	api.HandleFunc("/installment-packages", catalogHandler.ListInstallmentPackages).Methods("GET")
	api.HandleFunc("/blogs", blogHandler.ListPosts).Methods("GET")
	api.HandleFunc("/blogs/{slug}", blogHandler.GetPost).Methods("GET")

	// Authenticated
	authed := api.NewRoute().Subrouter()
	authed.Use(handler.AuthMiddleware(authService))
	authed.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")
	authed.HandleFunc("/cart", cartHandler.GetCart).Methods("GET")
	authed.HandleFunc("/cart", cartHandler.AddToCart).Methods("POST")
	authed.HandleFunc("/cart/{itemId}", cartHandler.UpdateItem).Methods("PUT")
	authed.HandleFunc("/cart/{itemId}", cartHandler.RemoveItem).Methods("DELETE")
	authed.HandleFunc("/checkout/totals", checkoutHandler.GetTotals).Methods("GET")
	authed.HandleFunc("/checkout", checkoutHandler.PlaceOrder).Methods("POST")
	authed.HandleFunc("/orders", checkoutHandler.ListMyOrders).Methods("GET")
	authed.HandleFunc("/orders/{orderId}", checkoutHandler.GetOrder).Methods("GET")
	authed.HandleFunc("/notifications", notificationHandler.List).Methods("GET")
	authed.HandleFunc("/notifications", notificationHandler.Clear).Methods("DELETE")

	// Admin
	admin := authed.PathPrefix("/admin").Subrouter()
	admin.Use(handler.RequireAdmin)
	admin.HandleFunc("/orders", adminHandler.ListOrders).Methods("GET")
	admin.HandleFunc("/orders/{orderId}/status", adminHandler.UpdateOrderStatus).Methods("PUT")
	admin.HandleFunc("/orders/{orderId}/payments/{paymentNumber}/pay", adminHandler.MarkInstallmentPaid).Methods("POST")

	return router
}
