package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/app"
	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/bootstrap"
	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/shared/apperror"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()
	r := gin.Default()

	// build dependencies + routes
	if err := app.BuildApp(r); err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	auditLogger := bootstrap.NewStdoutAuditLogger()
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:        port,
			ReadTimeout: 5 * time.Second,
			// WriteTimeout stays zero: /production/stream holds SSE
			// connections open indefinitely.
			IdleTimeout: 60 * time.Second,
		},
		auditLogger,
	)
}
