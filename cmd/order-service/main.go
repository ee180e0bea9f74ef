package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TracySk8/TP2/internal/db"
	"github.com/TracySk8/TP2/internal/events"
	"github.com/TracySk8/TP2/internal/order"
	"github.com/TracySk8/TP2/internal/order/clients"
	"github.com/TracySk8/TP2/internal/order/httpapi"
)

func main() {
	port := getEnv("PORT", "8084")

	logger := log.New(os.Stdout, "[order-service] ", log.LstdFlags|log.Lshortfile)

	// DB
	dsn := db.MustDSN("ORDER_DB_DSN")
	if err := order.RunMigrations(dsn, logger); err != nil {
		logger.Fatalf("migrations: %v", err)
	}
	database := db.MustOpen("ORDER_DB_DSN")
	defer database.Close()
	receipts := order.NewRepository(database)

	// RabbitMQ
	rabbitConn := events.MustDialRabbit()
	defer rabbitConn.Close()

	publisher, err := events.NewPublisher(rabbitConn)
	if err != nil {
		logger.Fatalf("create publisher: %v", err)
	}
	defer publisher.Close()

	// Collaborator services
	httpClient := &http.Client{Timeout: 10 * time.Second}
	registry := clients.NewClientRegistry(getEnv("CLIENT_URL", "http://client-service:8081"), httpClient)
	carts := clients.NewCartStore(getEnv("PRODUCT_URL", "http://product-service:8082"), httpClient)
	catalog := clients.NewCatalog(getEnv("PRODUCT_URL", "http://product-service:8082"), httpClient)

	composer := order.NewComposer(registry, carts, receipts, publisher, logger)
	detail := order.NewDetailResolver(receipts, catalog)

	// HTTP
	mux := httpapi.NewRouter(composer, detail)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Printf("order-service listening on :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
