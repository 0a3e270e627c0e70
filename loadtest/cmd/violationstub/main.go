package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/velochron/planline/loadtest/internal/stub"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8090"
	}

	storage := stub.NewDayStorage()
	handler := stub.NewHandler(storage)

	r := gin.Default()
	r.POST("/stub/reset", handler.HandleReset)
	r.POST("/stub/seed", handler.HandleSeed)
	r.GET("/api/v1/violations", handler.HandleGetViolations)

	slog.Info("violation stub listening", slog.String("port", port))
	if err := r.Run(":" + port); err != nil {
		slog.Error("stub server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
