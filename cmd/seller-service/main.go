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
	"github.com/TracySk8/TP2/internal/seller"
	"github.com/TracySk8/TP2/internal/seller/httpapi"
)

func main() {
	port := getEnv("PORT", "8083")

	logger := log.New(os.Stdout, "[seller-service] ", log.LstdFlags|log.Lshortfile)

	// DB
	database := db.MustOpen("SELLER_DB_DSN")
	defer database.Close()

	if _, err := database.Exec(seller.Schema); err != nil {
		logger.Fatalf("apply schema: %v", err)
	}

	repo := seller.NewRepository(database)

	// HTTP
	router := httpapi.NewRouter(httpapi.NewSellerHandler(repo, logger))

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Printf("seller-service listening on :%s", port)
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
