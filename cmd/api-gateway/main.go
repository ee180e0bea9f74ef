package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TracySk8/TP2/internal/gateway/clients"
	"github.com/TracySk8/TP2/internal/gateway/config"
	"github.com/TracySk8/TP2/internal/gateway/httpapi"
)

func main() {
	cfg := config.Load()

	logger := log.New(os.Stdout, "[api-gateway] ", log.LstdFlags|log.Lmicroseconds)

	// Base HTTP client (shared)
	sharedHTTP := &http.Client{
		Timeout: cfg.UpstreamTimeout,
	}

	// Upstream clients
	clientBase := clients.NewClient("client-service", cfg.ClientURL, sharedHTTP)
	productBase := clients.NewClient("product-service", cfg.ProductURL, sharedHTTP)
	sellerBase := clients.NewClient("seller-service", cfg.SellerURL, sharedHTTP)
	orderBase := clients.NewClient("order-service", cfg.OrderURL, sharedHTTP)

	healthProbes := []httpapi.UpstreamProbe{
		{Client: clientBase, Path: "/health"},
		{Client: productBase, Path: "/health"},
		{Client: sellerBase, Path: "/health"},
		{Client: orderBase, Path: "/health"},
	}

	router := httpapi.NewRouter(httpapi.Deps{
		Logger:       logger,
		Cfg:          cfg,
		Client:       clientBase,
		Product:      productBase,
		Seller:       sellerBase,
		Order:        orderBase,
		HealthProbes: healthProbes,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Printf("listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Printf("shutdown requested")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("shutdown error: %v", err)
	}
	logger.Printf("shutdown complete")
}
