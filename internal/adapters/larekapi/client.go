// Package larekapi is the HTTP client for the storefront backend. Catalog
// image paths come back relative and are prefixed with the CDN base.
package larekapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/larekdev/weblarek/internal/domain"
)

type Client struct {
	baseURL    string
	cdnURL     string
	httpClient *http.Client
}

// New builds a client for the given API and CDN base URLs.
func New(baseURL, cdnURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		cdnURL:     strings.TrimRight(cdnURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type listResponse struct {
	Total int              `json:"total"`
	Items []domain.Product `json:"items"`
}

type apiError struct {
	Error string `json:"error"`
}

// FetchCatalog returns every product, image URLs already absolute.
func (c *Client) FetchCatalog(ctx context.Context) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/product", nil)
	if err != nil {
		return nil, err
	}
	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer res.Body.Close()
	if err := checkStatus(res); err != nil {
		return nil, err
	}
	var list listResponse
	if err := json.NewDecoder(res.Body).Decode(&list); err != nil {
		return nil, err
	}
	for i := range list.Items {
		list.Items[i].Image = c.absoluteImage(list.Items[i].Image)
	}
	return list.Items, nil
}

// FetchProduct returns a single product by id.
func (c *Client) FetchProduct(ctx context.Context, id string) (domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/product/"+id, nil)
	if err != nil {
		return domain.Product{}, err
	}
	res, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Product{}, fmt.Errorf("fetch product %s: %w", id, err)
	}
	defer res.Body.Close()
	if err := checkStatus(res); err != nil {
		return domain.Product{}, err
	}
	var p domain.Product
	if err := json.NewDecoder(res.Body).Decode(&p); err != nil {
		return domain.Product{}, err
	}
	p.Image = c.absoluteImage(p.Image)
	return p, nil
}

// SubmitOrder posts the finalized order and returns the server-confirmed
// total.
func (c *Client) SubmitOrder(ctx context.Context, order domain.OrderPayload) (domain.OrderResult, error) {
	buf, err := json.Marshal(order)
	if err != nil {
		return domain.OrderResult{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/order", bytes.NewReader(buf))
	if err != nil {
		return domain.OrderResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	res, err := c.httpClient.Do(req)
	if err != nil {
		return domain.OrderResult{}, fmt.Errorf("submit order: %w", err)
	}
	defer res.Body.Close()
	if err := checkStatus(res); err != nil {
		return domain.OrderResult{}, err
	}
	var result domain.OrderResult
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return domain.OrderResult{}, err
	}
	return result, nil
}

func (c *Client) absoluteImage(path string) string {
	if path == "" || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.cdnURL + path
}

func checkStatus(res *http.Response) error {
	if res.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(res.Body)
	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
		return fmt.Errorf("api status %d: %s", res.StatusCode, apiErr.Error)
	}
	return fmt.Errorf("api status %d: %s", res.StatusCode, string(body))
}
