package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/auth"
	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/line"
	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/production"
	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/seed"
	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/shared/connection"
)

// Populates the database with the demo accounts and production lines.
// Usage: go run ./cmd/seed (reads the same DB_* env vars as the API).
func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	db, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}

	if err := db.AutoMigrate(&auth.User{}, &line.ProductionLine{}, &production.ProductionRecord{}); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	if err := seed.Run(context.Background(), auth.NewRepository(db), line.NewRepository(db), logger); err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}

	logger.Info("seeding completed",
		zap.Strings("demo_accounts", []string{"operator@example.com", "manager@example.com", "admin@example.com"}),
	)
}
