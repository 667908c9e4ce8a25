package api

import (
	"context"
	"net/url"

	"pymerp/internal/core"
)

const (
	epSuppliers       = "suppliers"
	epSupplierCatalog = "supplier_integration"
)

// ListSuppliers fetches the vendor list.
func (c *Client) ListSuppliers(ctx context.Context) Result[[]core.Supplier] {
	return list(ctx, c, epSuppliers, "/suppliers", nil, fallbackSuppliers)
}

// SearchSupplierCatalog queries the external supplier aggregation service.
func (c *Client) SearchSupplierCatalog(ctx context.Context, query string) Result[core.SearchResult] {
	q := url.Values{}
	q.Set("q", query)
	fb := fallbackSearch
	fb.Query = query
	return one(ctx, c, epSupplierCatalog, "/supplier-integration/search", q, fb)
}

// CompareSupplierPrices fetches cross-store offers for one product name.
func (c *Client) CompareSupplierPrices(ctx context.Context, name string) Result[core.ComparisonResult] {
	return one(ctx, c, epSupplierCatalog, "/supplier-integration/compare/"+url.PathEscape(name), nil, fallbackComparison)
}

// SupplierCategories fetches the catalog's category list.
func (c *Client) SupplierCategories(ctx context.Context) Result[[]string] {
	return list(ctx, c, epSupplierCatalog, "/supplier-integration/categories", nil, fallbackCategories)
}

// SupplierStores fetches the stores covered by the aggregation service.
func (c *Client) SupplierStores(ctx context.Context) Result[[]string] {
	return list(ctx, c, epSupplierCatalog, "/supplier-integration/stores", nil, fallbackStores)
}
