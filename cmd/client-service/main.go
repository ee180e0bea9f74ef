package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TracySk8/TP2/internal/client"
	"github.com/TracySk8/TP2/internal/client/httpapi"
	"github.com/TracySk8/TP2/internal/db"
	"github.com/TracySk8/TP2/internal/events"
)

func main() {
	port := getEnv("PORT", "8081")

	logger := log.New(os.Stdout, "[client-service] ", log.LstdFlags|log.Lshortfile)

	// DB
	database := db.MustOpen("CLIENT_DB_DSN")
	defer database.Close()

	if _, err := database.Exec(client.Schema); err != nil {
		logger.Fatalf("apply schema: %v", err)
	}

	repo := client.NewRepository(database)

	// RabbitMQ
	rabbitConn := events.MustDialRabbit()
	defer rabbitConn.Close()

	// Context for consumer
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := client.StartOrderCreatedConsumer(ctx, rabbitConn, repo, logger); err != nil {
		logger.Fatalf("start consumer: %v", err)
	}

	// HTTP
	router := httpapi.NewRouter(httpapi.NewClientHandler(repo, logger))

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Printf("client-service listening on :%s", port)
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
	cancel()
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
