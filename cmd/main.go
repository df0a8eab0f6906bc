package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/riftbikes/rift_storefront/docs"
	"github.com/riftbikes/rift_storefront/internal/adapter/logger"
	"github.com/riftbikes/rift_storefront/internal/app"
	"github.com/riftbikes/rift_storefront/internal/config"
	"github.com/riftbikes/rift_storefront/internal/core/domain"
)

// @title RIFT Storefront API
// @version 1.0
// @description Catalog, checkout, test rides and deposits for RIFT custom bicycles

// @host localhost:8081
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	adminToken := flag.String("admin-token", "", "print an admin bearer token for the given subject and exit")
	flag.Parse()

	// Loading environment
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	if *adminToken != "" {
		tokens, err := app.NewTokenService(cfg.Token, logger.NewNopLogger())
		if err != nil {
			log.Fatalf("Failed to create token service: %v", err)
		}
		if tokens == nil {
			log.Fatal("TOKEN_SECRET is not set")
		}
		token, err := tokens.CreateToken(*adminToken, domain.Admin)
		if err != nil {
			log.Fatalf("Failed to create token: %v", err)
		}
		fmt.Println(token)
		return
	}

	// Create app
	ctx := context.Background()
	application, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- application.Run()
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	select {
	case <-stop:
	case err := <-serveErr:
		if err != nil {
			log.Printf("HTTP server stopped: %v", err)
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := application.Stop(shutdownCtx); err != nil {
		log.Fatalf("Failed to stop app: %v", err)
	}
}
