package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/RenoBuildCo/reno-marketplace/internal/audit"
	"github.com/RenoBuildCo/reno-marketplace/internal/cache"
	"github.com/RenoBuildCo/reno-marketplace/internal/config"
	dbpkg "github.com/RenoBuildCo/reno-marketplace/internal/db"
	"github.com/RenoBuildCo/reno-marketplace/internal/middleware"
	"github.com/RenoBuildCo/reno-marketplace/internal/routes"
	"github.com/RenoBuildCo/reno-marketplace/internal/store"
	"github.com/RenoBuildCo/reno-marketplace/internal/uploads"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg := config.Load()

	var st store.Store
	var sink audit.Sink

	if cfg.StoreBackend == "memory" {
		st = store.NewMemoryStore()
		sink = audit.Discard{}
		log.Println("using in-memory store")
	} else {
		db := dbpkg.NewDB(cfg)
		st = store.NewGormStore(db)
		sink = audit.New(db)
	}

	store.SeedContractors(context.Background(), st)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, routes.Deps{
		Store:     st,
		Config:    cfg,
		Cache:     cache.New(cfg.RedisURL),
		AuditSink: sink,
		Uploader:  uploads.New(cfg),
	})

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
