package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"pymerp/internal/core"
)

const epOrders = "purchase_orders"

// orderPayload is a PurchaseOrder plus the idempotency key for retried saves.
type orderPayload struct {
	core.PurchaseOrder
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

// ListPurchaseOrders fetches purchase orders, optionally filtered by status.
// An empty status returns all orders.
func (c *Client) ListPurchaseOrders(ctx context.Context, status core.OrderStatus) Result[[]core.PurchaseOrder] {
	query := url.Values{}
	if status != "" {
		query.Set("status", string(status))
	}
	return list(ctx, c, epOrders, "/purchase-orders", query, fallbackOrders)
}

// CreatePurchaseOrder posts a new order and returns it with its
// backend-assigned id and order number.
func (c *Client) CreatePurchaseOrder(ctx context.Context, o core.PurchaseOrder, idempotencyKey string) (core.PurchaseOrder, error) {
	var out core.PurchaseOrder
	payload := orderPayload{PurchaseOrder: o, IdempotencyKey: idempotencyKey}
	if err := c.send(ctx, epOrders, http.MethodPost, "/purchase-orders", payload, &out); err != nil {
		return core.PurchaseOrder{}, err
	}
	return out, nil
}

// ChangeOrderStatus asks the backend to move an order to target. Transition
// legality is checked client-side before calling; the backend re-checks.
func (c *Client) ChangeOrderStatus(ctx context.Context, id int, target core.OrderStatus) (core.PurchaseOrder, error) {
	var out core.PurchaseOrder
	path := fmt.Sprintf("/purchase-orders/%d/status", id)
	body := map[string]string{"status": string(target)}
	if err := c.send(ctx, epOrders, http.MethodPatch, path, body, &out); err != nil {
		return core.PurchaseOrder{}, err
	}
	return out, nil
}

// DownloadOrderPDF saves the printable order under destDir and returns the
// written path.
func (c *Client) DownloadOrderPDF(ctx context.Context, id int, destDir string) (string, error) {
	path := fmt.Sprintf("/purchase-orders/%d/pdf", id)
	name := fmt.Sprintf("orden-compra-%d.pdf", id)
	return c.download(ctx, epOrders, path, nil, destDir, name)
}
