package larekapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larekdev/weblarek/internal/adapters/larekapi"
	"github.com/larekdev/weblarek/internal/domain"
)

func price(v float64) *float64 { return &v }

func TestFetchCatalogPrefixesImages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/product", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"total": 2,
			"items": []map[string]any{
				{"id": "1", "title": "товар", "image": "/5_Dots.svg", "category": "другое", "price": 100},
				{"id": "2", "title": "бесценный", "image": "Shell.svg", "category": "кнопка", "price": nil},
			},
		})
	}))
	defer srv.Close()

	c := larekapi.New(srv.URL, "https://cdn.example.com/content")
	items, err := c.FetchCatalog(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "https://cdn.example.com/content/5_Dots.svg", items[0].Image)
	assert.Equal(t, "https://cdn.example.com/content/Shell.svg", items[1].Image)
	assert.Equal(t, 100.0, items[0].PriceValue())
	assert.False(t, items[1].Priced())
}

func TestFetchProduct(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/product/42", r.URL.Path)
		_ = json.NewEncoder(w).Encode(domain.Product{ID: "42", Title: "ответ", Image: "/a.svg", Price: price(1)})
	}))
	defer srv.Close()

	c := larekapi.New(srv.URL, "https://cdn.example.com")
	p, err := c.FetchProduct(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "42", p.ID)
	assert.Equal(t, "https://cdn.example.com/a.svg", p.Image)
}

func TestSubmitOrderRoundTrip(t *testing.T) {
	var got domain.OrderPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/order", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(domain.OrderResult{ID: "o-1", Total: got.Total})
	}))
	defer srv.Close()

	c := larekapi.New(srv.URL, srv.URL)
	payload := domain.OrderPayload{
		Payment: domain.PaymentCard,
		Address: "Москва",
		Email:   "a@b.co",
		Phone:   "89991234567",
		Items:   []string{"1", "3"},
		Total:   150,
	}
	res, err := c.SubmitOrder(context.Background(), payload)
	require.NoError(t, err)

	assert.Equal(t, "o-1", res.ID)
	assert.Equal(t, 150.0, res.Total)
	assert.Equal(t, payload, got)
}

func TestErrorStatusDecoded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Товар не продаётся"})
	}))
	defer srv.Close()

	c := larekapi.New(srv.URL, srv.URL)
	_, err := c.SubmitOrder(context.Background(), domain.OrderPayload{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
	assert.Contains(t, err.Error(), "Товар не продаётся")
}

func TestNetworkErrorWrapped(t *testing.T) {
	c := larekapi.New("http://127.0.0.1:1", "http://127.0.0.1:1")
	_, err := c.FetchCatalog(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch catalog")
}
