package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/TracySk8/TP2/internal/events"
)

// StartOrderCreatedConsumer drains order.created and bumps the buyer's
// purchase stats. Messages that cannot be handled are nacked without
// requeue so one poison message does not wedge the queue.
func StartOrderCreatedConsumer(ctx context.Context, conn *amqp.Connection, repo Repository, logger *log.Logger) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		events.OrderCreatedQueue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(
		events.OrderCreatedQueue,
		"client-service", // consumer tag
		false,            // autoAck
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				logger.Println("stopping order.created consumer")
				return
			case msg, ok := <-msgs:
				if !ok {
					logger.Println("messages channel closed")
					return
				}

				if err := handleOrderCreated(ctx, repo, msg.Body, logger); err != nil {
					logger.Printf("handle message error: %v", err)
					_ = msg.Nack(false, false) // drop for now
					continue
				}
				_ = msg.Ack(false)
			}
		}
	}()

	return nil
}

func handleOrderCreated(ctx context.Context, repo Repository, body []byte, logger *log.Logger) error {
	var ev events.OrderCreated
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}

	items := 0
	for _, it := range ev.Items {
		items += it.Quantity
	}

	if err := repo.RecordPurchase(ctx, ev.ClientID, items, ev.TotalCost); err != nil {
		return fmt.Errorf("record purchase for client %d: %w", ev.ClientID, err)
	}

	logger.Printf("recorded receipt %d for client %d (%d items, %.4f)",
		ev.ReceiptID, ev.ClientID, items, ev.TotalCost)
	return nil
}
