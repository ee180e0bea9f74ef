package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TracySk8/TP2/internal/events"
)

type stubStatsRepo struct {
	Repository

	clientID int64
	items    int
	amount   float64
	err      error
}

func (s *stubStatsRepo) RecordPurchase(ctx context.Context, clientID int64, items int, amount float64) error {
	s.clientID = clientID
	s.items = items
	s.amount = amount
	return s.err
}

func TestHandleOrderCreated(t *testing.T) {
	repo := &stubStatsRepo{}
	logger := log.New(io.Discard, "", 0)

	body, err := json.Marshal(events.OrderCreated{
		EventType: "order.created",
		ReceiptID: 1,
		ClientID:  7,
		TotalCost: 20.2995,
		Items: []events.OrderCreatedItem{
			{ProductID: 42, Quantity: 2},
			{ProductID: 43, Quantity: 1},
		},
		Timestamp: time.Now().UTC(),
	})
	require.NoError(t, err)

	require.NoError(t, handleOrderCreated(context.Background(), repo, body, logger))
	assert.Equal(t, int64(7), repo.clientID)
	assert.Equal(t, 3, repo.items)
	assert.Equal(t, 20.2995, repo.amount)
}

func TestHandleOrderCreated_BadPayload(t *testing.T) {
	repo := &stubStatsRepo{}
	logger := log.New(io.Discard, "", 0)

	err := handleOrderCreated(context.Background(), repo, []byte("{not json"), logger)
	require.Error(t, err)
	assert.Zero(t, repo.clientID)
}

func TestHandleOrderCreated_RepoError(t *testing.T) {
	repo := &stubStatsRepo{err: errors.New("db down")}
	logger := log.New(io.Discard, "", 0)

	body, _ := json.Marshal(events.OrderCreated{ClientID: 7})
	require.Error(t, handleOrderCreated(context.Background(), repo, body, logger))
}
