package domain

import "context"

// ProductService is the storefront backend: it serves the catalog and
// accepts finalized orders. Both calls may fail with a network error, which
// callers treat as "nothing happened, retry is safe".
type ProductService interface {
	FetchCatalog(ctx context.Context) ([]Product, error)
	FetchProduct(ctx context.Context, id string) (Product, error)
	SubmitOrder(ctx context.Context, order OrderPayload) (OrderResult, error)
}
