package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TracySk8/TP2/internal/client"
)

type fakeRepo struct {
	createFunc        func(ctx context.Context, reg client.Registration, hash, salt string) (*client.Client, error)
	getFunc           func(ctx context.Context, id int64) (*client.Client, error)
	getByUsernameFunc func(ctx context.Context, username string) (*client.Client, error)
	getPasswordFunc   func(ctx context.Context, clientID int64) (client.Password, error)
	updateFunc        func(ctx context.Context, c client.Client) error
	getStatsFunc      func(ctx context.Context, clientID int64) (client.ClientStats, error)
	updateStatsFunc   func(ctx context.Context, s client.ClientStats) error
	deleteFunc        func(ctx context.Context, id int64) error
}

func (f *fakeRepo) CreateClient(ctx context.Context, reg client.Registration, hash, salt string) (*client.Client, error) {
	if f.createFunc != nil {
		return f.createFunc(ctx, reg, hash, salt)
	}
	return &client.Client{ID: 1, Username: reg.Username}, nil
}

func (f *fakeRepo) GetClient(ctx context.Context, id int64) (*client.Client, error) {
	if f.getFunc != nil {
		return f.getFunc(ctx, id)
	}
	return nil, client.ErrNotFound
}

func (f *fakeRepo) GetClientByUsername(ctx context.Context, username string) (*client.Client, error) {
	if f.getByUsernameFunc != nil {
		return f.getByUsernameFunc(ctx, username)
	}
	return nil, client.ErrNotFound
}

func (f *fakeRepo) GetPassword(ctx context.Context, clientID int64) (client.Password, error) {
	if f.getPasswordFunc != nil {
		return f.getPasswordFunc(ctx, clientID)
	}
	return client.Password{}, client.ErrNotFound
}

func (f *fakeRepo) UpdateClient(ctx context.Context, c client.Client) error {
	if f.updateFunc != nil {
		return f.updateFunc(ctx, c)
	}
	return nil
}

func (f *fakeRepo) GetStats(ctx context.Context, clientID int64) (client.ClientStats, error) {
	if f.getStatsFunc != nil {
		return f.getStatsFunc(ctx, clientID)
	}
	return client.ClientStats{}, client.ErrNotFound
}

func (f *fakeRepo) UpdateStats(ctx context.Context, s client.ClientStats) error {
	if f.updateStatsFunc != nil {
		return f.updateStatsFunc(ctx, s)
	}
	return nil
}

func (f *fakeRepo) RecordPurchase(ctx context.Context, clientID int64, items int, amount float64) error {
	return nil
}

func (f *fakeRepo) DeleteClient(ctx context.Context, id int64) error {
	if f.deleteFunc != nil {
		return f.deleteFunc(ctx, id)
	}
	return nil
}

func newTestRouter(repo *fakeRepo) http.Handler {
	return NewRouter(NewClientHandler(repo, log.New(io.Discard, "", 0)))
}

func TestGetClient_OK(t *testing.T) {
	repo := &fakeRepo{
		getFunc: func(ctx context.Context, id int64) (*client.Client, error) {
			return &client.Client{ID: id, Username: "jdoe", Credit: 12.5}, nil
		},
	}
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/client/GetClient/7", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var c client.Client
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&c))
	assert.Equal(t, int64(7), c.ID)
	assert.Equal(t, "jdoe", c.Username)
}

func TestGetClient_NotFound(t *testing.T) {
	router := newTestRouter(&fakeRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/client/GetClient/404", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetClient_BadID(t *testing.T) {
	router := newTestRouter(&fakeRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/client/GetClient/abc", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAddClient_Created(t *testing.T) {
	var gotHash, gotSalt string
	repo := &fakeRepo{
		createFunc: func(ctx context.Context, reg client.Registration, hash, salt string) (*client.Client, error) {
			gotHash, gotSalt = hash, salt
			return &client.Client{ID: 9, Username: reg.Username}, nil
		},
	}
	router := newTestRouter(repo)

	body, _ := json.Marshal(client.Registration{
		LastName: "Doe", FirstName: "Jane", Username: "jdoe", Password: "hunter22",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/client/AddClient", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	// The raw password never reaches storage.
	assert.NotEmpty(t, gotHash)
	assert.NotEmpty(t, gotSalt)
	assert.NotContains(t, gotHash, "hunter22")
}

func TestAddClient_ShortPassword(t *testing.T) {
	router := newTestRouter(&fakeRepo{})

	body, _ := json.Marshal(client.Registration{
		LastName: "Doe", FirstName: "Jane", Username: "jdoe", Password: "abcd",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/client/AddClient", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAddClient_UsernameTaken(t *testing.T) {
	repo := &fakeRepo{
		createFunc: func(ctx context.Context, reg client.Registration, hash, salt string) (*client.Client, error) {
			return nil, client.ErrUsernameTaken
		},
	}
	router := newTestRouter(repo)

	body, _ := json.Marshal(client.Registration{
		LastName: "Doe", FirstName: "Jane", Username: "jdoe", Password: "hunter22",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/client/AddClient", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "taken")
}

func TestConnectClient_OK(t *testing.T) {
	salt, err := client.NewSalt()
	require.NoError(t, err)
	stored := client.Password{
		Salt:     client.EncodeSalt(salt),
		Hash:     client.HashPassword("hunter22", salt),
		ClientID: 7,
	}

	repo := &fakeRepo{
		getByUsernameFunc: func(ctx context.Context, username string) (*client.Client, error) {
			return &client.Client{ID: 7, Username: username}, nil
		},
		getPasswordFunc: func(ctx context.Context, clientID int64) (client.Password, error) {
			return stored, nil
		},
	}
	router := newTestRouter(repo)

	body, _ := json.Marshal(client.Credentials{Username: "jdoe", Password: "hunter22"})
	req := httptest.NewRequest(http.MethodPost, "/api/client/ConnectClient", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
}

func TestConnectClient_WrongPassword(t *testing.T) {
	salt, err := client.NewSalt()
	require.NoError(t, err)
	stored := client.Password{
		Salt: client.EncodeSalt(salt),
		Hash: client.HashPassword("hunter22", salt),
	}

	repo := &fakeRepo{
		getByUsernameFunc: func(ctx context.Context, username string) (*client.Client, error) {
			return &client.Client{ID: 7, Username: username}, nil
		},
		getPasswordFunc: func(ctx context.Context, clientID int64) (client.Password, error) {
			return stored, nil
		},
	}
	router := newTestRouter(repo)

	body, _ := json.Marshal(client.Credentials{Username: "jdoe", Password: "nope"})
	req := httptest.NewRequest(http.MethodPost, "/api/client/ConnectClient", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestConnectClient_UnknownUser(t *testing.T) {
	router := newTestRouter(&fakeRepo{})

	body, _ := json.Marshal(client.Credentials{Username: "ghost", Password: "hunter22"})
	req := httptest.NewRequest(http.MethodPost, "/api/client/ConnectClient", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateClient_NotFound(t *testing.T) {
	repo := &fakeRepo{
		updateFunc: func(ctx context.Context, c client.Client) error {
			return client.ErrNotFound
		},
	}
	router := newTestRouter(repo)

	body, _ := json.Marshal(client.Client{ID: 404, FirstName: "Jane"})
	req := httptest.NewRequest(http.MethodPut, "/api/client/UpdateClient", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetClientStats_OK(t *testing.T) {
	repo := &fakeRepo{
		getStatsFunc: func(ctx context.Context, clientID int64) (client.ClientStats, error) {
			return client.ClientStats{ID: 1, TotalSpent: 40.60, PurchasedItems: 4, ClientID: clientID}, nil
		},
	}
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/client/GetClientStats/7", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var stats client.ClientStats
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&stats))
	assert.Equal(t, 4, stats.PurchasedItems)
	assert.Equal(t, int64(7), stats.ClientID)
}

func TestUpdateClientStats_OK(t *testing.T) {
	var got client.ClientStats
	repo := &fakeRepo{
		updateStatsFunc: func(ctx context.Context, s client.ClientStats) error {
			got = s
			return nil
		},
	}
	router := newTestRouter(repo)

	body, _ := json.Marshal(client.ClientStats{TotalSpent: 99.99, PurchasedItems: 10, ClientID: 7})
	req := httptest.NewRequest(http.MethodPut, "/api/client/UpdateClientStats", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(7), got.ClientID)
	assert.Equal(t, 99.99, got.TotalSpent)
}

func TestDeleteClient_NotFound(t *testing.T) {
	repo := &fakeRepo{
		deleteFunc: func(ctx context.Context, id int64) error {
			return client.ErrNotFound
		},
	}
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodDelete, "/api/client/DeleteClient/404", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHealth(t *testing.T) {
	router := newTestRouter(&fakeRepo{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "client-service")
}
