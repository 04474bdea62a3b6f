package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/lojix/lojix-backend/internal/modules/auth"
	"github.com/lojix/lojix-backend/internal/modules/catalog"
	"github.com/lojix/lojix-backend/internal/modules/customer"
	"github.com/lojix/lojix-backend/internal/modules/payment"
	"github.com/lojix/lojix-backend/internal/modules/product"
	"github.com/lojix/lojix-backend/internal/modules/sale"
	"github.com/lojix/lojix-backend/internal/modules/store"
	"github.com/lojix/lojix-backend/internal/modules/team"
	"github.com/lojix/lojix-backend/internal/modules/user"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("no .env file, relying on environment")
	}

	logger, err := newLogger(os.Getenv("APP_ENV"))
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Successfully connected to the database!")

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Identity ────────────────────────────────────────────
	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)
	user.NewHandler(userService).RegisterRoutes(router)

	authService := auth.NewService(userRepo, []byte(os.Getenv("JWT_SECRET")))
	auth.NewHandler(authService).RegisterRoutes(router)

	// ── Tenants ─────────────────────────────────────────────
	storeRepo := store.NewPostgresRepository(db)
	storeService := store.NewService(storeRepo)
	store.NewHandler(storeService).RegisterRoutes(router)

	// ── Product configuration & products ────────────────────
	catalogRepo := catalog.NewPostgresRepository(db)
	catalogService := catalog.NewService(catalogRepo, logger)
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	productRepo := product.NewPostgresRepository(db)
	productService := product.NewService(productRepo, logger)
	product.NewHandler(productService).RegisterRoutes(router)

	// ── People ──────────────────────────────────────────────
	customerRepo := customer.NewPostgresRepository(db)
	customerService := customer.NewService(customerRepo)
	customer.NewHandler(customerService).RegisterRoutes(router)

	teamRepo := team.NewPostgresRepository(db)
	teamService := team.NewService(teamRepo)
	team.NewHandler(teamService).RegisterRoutes(router)

	// ── Sales & payments ────────────────────────────────────
	saleRepo := sale.NewPostgresRepository(db)
	saleService := sale.NewService(saleRepo)
	sale.NewHandler(saleService).RegisterRoutes(router)

	paymentRepo := payment.NewPostgresRepository(db)
	paymentService := payment.NewService(paymentRepo)
	payment.NewHandler(paymentService).RegisterRoutes(router)

	// ── Start Server ────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("Lojix API server starting on :%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
