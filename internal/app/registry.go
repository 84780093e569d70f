package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/auth"
	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/authz"
	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/line"
	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/production"
	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/realtime"
	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/seed"
	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/shared/response"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	hub *realtime.Hub,
	publisher production.EventPublisher,
	mockMode bool,
) error {
	// --- Repositories ---
	var (
		authRepo       auth.Repository
		lineRepo       line.Repository
		productionRepo production.Repository
	)
	if mockMode {
		authRepo = auth.NewMemoryRepository()
		lineRepo = line.NewMemoryRepository()
		productionRepo = production.NewMemoryRepository()
	} else {
		if err := gormDB.AutoMigrate(&auth.User{}, &line.ProductionLine{}, &production.ProductionRecord{}); err != nil {
			return err
		}
		authRepo = auth.NewRepository(gormDB)
		lineRepo = line.NewRepository(gormDB)
		productionRepo = production.NewRepository(gormDB)
	}

	if mockMode {
		if err := seed.Run(context.Background(), authRepo, lineRepo, zap.L()); err != nil {
			return err
		}
	}

	// --- Authorization ---
	policy, err := authz.NewPolicy()
	if err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(authRepo)
	lineService := line.NewService(lineRepo, rdb)
	productionService := production.NewService(productionRepo, policy, publisher)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	lineHandler := line.NewHandler(lineService)
	productionHandler := production.NewHandlerWithRedis(productionService, rdb)
	streamHandler := realtime.NewHandler(hub, publisher)

	// --- Routes Registration ---
	storeMode := "postgres"
	if mockMode {
		storeMode = "memory"
	}
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{
			"status":      "ok",
			"store":       storeMode,
			"subscribers": hub.SubscriberCount(),
		})
	})

	api := router.Group("")
	{
		auth.RegisterRoutes(api, authHandler)
		line.RegisterRoutes(api, lineHandler, policy)
		production.RegisterRoutes(api, productionHandler, policy, rdb)
		realtime.RegisterRoutes(api, streamHandler)
	}

	return nil
}
