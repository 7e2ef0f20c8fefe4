package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/nathmaker/storefront/app/admins"
	"github.com/nathmaker/storefront/app/catalogue"
	appMiddleware "github.com/nathmaker/storefront/app/middleware"
	"github.com/nathmaker/storefront/app/products"
	"github.com/nathmaker/storefront/config"
	"github.com/nathmaker/storefront/models"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := newLogger(cfg.AppEnv)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := models.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	if err := models.Migrate(db); err != nil {
		logger.Fatal("database migration failed", zap.Error(err))
	}

	// Repositories and handlers
	adminHandler := admins.NewAdminHandler(models.NewAdminsRepository(db))
	catalogueHandler := catalogue.NewCatalogueHandler(models.NewCataloguesRepository(db))
	productHandler := products.NewProductHandler(models.NewProductsRepository(db))

	// Catalogue, product and admin routes are deliberately reachable
	// without credentials; everything else needs the admin account.
	policy := appMiddleware.NewRoutePolicy(
		"/health",
		"/admin/",
		"/api/catalogue",
		"/products",
	)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(appMiddleware.RequestLogger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(appMiddleware.BasicAuth(policy, cfg.AdminUsername, cfg.AdminPassword))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Route("/admin", func(r chi.Router) {
		r.Get("/hello", adminHandler.HandleHello)
		r.Get("/", adminHandler.HandleGetAll)
		r.Post("/", adminHandler.HandleCreate)
	})

	r.Route("/api/catalogue", func(r chi.Router) {
		r.Get("/", catalogueHandler.HandleGetAll)
		r.Post("/", catalogueHandler.HandleCreate)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", catalogueHandler.HandleGetByID)
			r.Delete("/", catalogueHandler.HandleDelete)
		})
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", productHandler.HandleGetAll)
		r.Post("/", productHandler.HandleCreate)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", productHandler.HandleGetByID)
			r.Put("/", productHandler.HandleUpdate)
			r.Delete("/", productHandler.HandleDelete)
		})
	})

	server := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("storefront API server starting", zap.String("address", cfg.ServerAddress))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger(appEnv string) (*zap.Logger, error) {
	if appEnv == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
