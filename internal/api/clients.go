package api

import (
	"context"
	"fmt"
	"net/http"

	"pymerp/internal/core"
)

const (
	epClients  = "clients"
	epInvoices = "invoices"
)

// ListClients fetches the customer list.
func (c *Client) ListClients(ctx context.Context) Result[[]core.Client] {
	return list(ctx, c, epClients, "/clients", nil, fallbackClients)
}

// CreateClient registers a new customer and returns the stored record with
// its backend-assigned id.
func (c *Client) CreateClient(ctx context.Context, client core.Client) (core.Client, error) {
	var out core.Client
	if err := c.send(ctx, epClients, http.MethodPost, "/clients", client, &out); err != nil {
		return core.Client{}, err
	}
	return out, nil
}

// UpdateClient replaces a customer record (PUT semantics, no merge).
func (c *Client) UpdateClient(ctx context.Context, client core.Client) (core.Client, error) {
	var out core.Client
	path := fmt.Sprintf("/clients/%d", client.ID)
	if err := c.send(ctx, epClients, http.MethodPut, path, client, &out); err != nil {
		return core.Client{}, err
	}
	return out, nil
}

// DeleteClient removes a customer.
func (c *Client) DeleteClient(ctx context.Context, id int) error {
	return c.send(ctx, epClients, http.MethodDelete, fmt.Sprintf("/clients/%d", id), nil, nil)
}

// ListInvoices fetches the invoice list, the dashboard's overdue KPI source.
func (c *Client) ListInvoices(ctx context.Context) Result[[]core.Invoice] {
	return list(ctx, c, epInvoices, "/invoices", nil, fallbackInvoices)
}
