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
	"github.com/TracySk8/TP2/internal/product"
	"github.com/TracySk8/TP2/internal/product/httpapi"
)

func main() {
	port := getEnv("PORT", "8082")

	logger := log.New(os.Stdout, "[product-service] ", log.LstdFlags|log.Lshortfile)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB
	pool := db.MustOpenPool(ctx, "PRODUCT_DB_DSN")
	defer pool.Close()

	if _, err := pool.Exec(ctx, product.Schema); err != nil {
		logger.Fatalf("apply schema: %v", err)
	}

	repo := product.NewPostgresRepository(pool)

	// HTTP
	router := httpapi.NewRouter(httpapi.NewHandler(repo))

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Printf("product-service listening on :%s", port)
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
