package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TracySk8/TP2/internal/order"
)

func TestClientRegistryExists(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/client/GetClient/7":
			w.WriteHeader(http.StatusOK)
		case "/api/client/GetClient/99":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	registry := NewClientRegistry(srv.URL, srv.Client())

	exists, err := registry.Exists(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = registry.Exists(context.Background(), 99)
	require.NoError(t, err)
	assert.False(t, exists)

	// A reachable but failing registry also reads as "does not exist".
	exists, err = registry.Exists(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestClientRegistryExists_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	registry := NewClientRegistry(srv.URL, nil)

	_, err := registry.Exists(context.Background(), 7)

	var ue *order.UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "client-service", ue.Service)
}

func TestCartStoreGetCart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/product/GetCartProducts/7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]order.ProductAndQuantity{
			{Product: order.Product{ProductID: 42, Price: 20.00}, Quantity: 3},
			{Product: order.Product{ProductID: 43, Price: 5.50}, Quantity: 1},
		})
	}))
	defer srv.Close()

	carts := NewCartStore(srv.URL, srv.Client())

	lines, err := carts.GetCart(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, order.PricedLine{ProductID: 42, Quantity: 3, UnitPrice: 20.00}, lines[0])
	assert.Equal(t, order.PricedLine{ProductID: 43, Quantity: 1, UnitPrice: 5.50}, lines[1])
}

func TestCartStoreGetCart_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	carts := NewCartStore(srv.URL, srv.Client())

	lines, err := carts.GetCart(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestCartStoreGetCart_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	carts := NewCartStore(srv.URL, srv.Client())

	_, err := carts.GetCart(context.Background(), 7)

	var ue *order.UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "product-service", ue.Service)
	assert.Equal(t, http.StatusServiceUnavailable, ue.Status)
}

func TestCartStoreClear(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	carts := NewCartStore(srv.URL, srv.Client())

	require.NoError(t, carts.Clear(context.Background(), 7))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/product/ClearCartProducts/7", gotPath)
}

func TestCatalogGetProductsByIDs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/product/GetProductsById", r.URL.Path)

		var ids []int64
		require.NoError(t, json.NewDecoder(r.Body).Decode(&ids))
		require.Equal(t, []int64{1, 2, 3}, ids)

		w.Header().Set("Content-Type", "application/json")
		// Id 3 is unknown to the catalog and simply missing.
		_ = json.NewEncoder(w).Encode([]order.Product{
			{ProductID: 1, ProductTitle: "Shirt", Price: 10.00},
			{ProductID: 2, ProductTitle: "Socks", Price: 5.00},
		})
	}))
	defer srv.Close()

	catalog := NewCatalog(srv.URL, srv.Client())

	products, err := catalog.GetProductsByIDs(context.Background(), []int64{1, 2, 3})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, int64(1), products[0].ProductID)
}
