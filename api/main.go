package main

import (
	"context"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/sales-tracker/internal/auth"
	"github.com/rogerio-castellano/sales-tracker/internal/config"
	"github.com/rogerio-castellano/sales-tracker/internal/db"
	apphttp "github.com/rogerio-castellano/sales-tracker/internal/http"
	"github.com/rogerio-castellano/sales-tracker/internal/http/ban"
	"github.com/rogerio-castellano/sales-tracker/internal/http/handlers"
	rl "github.com/rogerio-castellano/sales-tracker/internal/http/rate_limiter"
	"github.com/rogerio-castellano/sales-tracker/internal/idgen"
	"github.com/rogerio-castellano/sales-tracker/internal/repo"
)

// @title Sales Tracker API
// @version 1.0
// @description REST API for a small shop: product catalog, clients, sales and dashboard metrics.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()
	auth.SetSecret(cfg.JWTSecret)

	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable at %s, rate-limit bans disabled: %v", cfg.RedisAddr, err)
	} else {
		ban.SetRedis(rdb, ctx)
		defer rdb.Close()
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("could not connect to database: ", err)
	}
	defer database.Close()

	if err := db.EnsureSchema(database); err != nil {
		log.Fatal("could not prepare schema: ", err)
	}

	handlers.SetProductRepo(repo.NewPostgresProductRepository(database, idgen.NewProductCode()))
	handlers.SetClientRepo(repo.NewPostgresClientRepository(database))
	handlers.SetSaleRepo(repo.NewPostgresSaleRepository(database))
	handlers.SetUserRepo(repo.NewPostgresUserRepository(database))
	handlers.SetMetricsRepo(repo.NewPostgresMetricsRepository(database))

	go rl.StartVisitorCleanupLoop()

	r := apphttp.NewRouter()
	log.Printf("server running on %s", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, r); err != nil {
		log.Fatal(err)
	}
}
