package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"groomingshop-backend/config"
	"groomingshop-backend/models"
	"groomingshop-backend/routes"
	"groomingshop-backend/services"
	"groomingshop-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()
	config.SetupLogger(cfg)
	gin.SetMode(cfg.Server.Mode)

	if cfg.Auth.BcryptCost > 0 {
		utils.BcryptCost = cfg.Auth.BcryptCost
	}
	if cfg.Auth.JWTSecret == "" {
		if cfg.IsRelease() {
			logrus.Fatal("JWT_SECRET must be set in release mode")
		}
		logrus.Warn("JWT_SECRET not set, using a random secret; sessions end on restart")
		cfg.Auth.JWTSecret = utils.GenerateJWTSecret()
	}

	tokens, err := utils.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiry)
	if err != nil {
		logrus.WithError(err).Fatal("Invalid auth configuration")
	}

	db, err := config.ConnectDB(cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect database")
	}
	defer config.CloseDB(db)

	if err := config.MigrateDB(db, models.Tables...); err != nil {
		logrus.Warn("Skipping seed after failed migration")
	} else {
		seeder := services.NewSeeder(db, cfg.Seed.AdminPassword, cfg.Seed.StaffPassword)
		if err := seeder.Seed(context.Background()); err != nil {
			logrus.WithError(err).Error("Seeding failed")
		}
	}

	r := routes.SetupRouter(cfg, db, tokens)
	if !cfg.IsRelease() {
		printRoutes(r)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 3 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logrus.WithField("port", cfg.Server.Port).Info("Server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Info("Server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Server shutdown failed")
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
