package api

import (
	"context"
	"fmt"
	"net/http"

	"pymerp/internal/core"
)

const epSettings = "settings"

// CompanySettings fetches the company configuration record.
func (c *Client) CompanySettings(ctx context.Context) Result[core.CompanyConfig] {
	return one(ctx, c, epSettings, "/settings/company", nil, fallbackCompany)
}

// SaveCompanySettings replaces the company configuration (PUT, no merge).
func (c *Client) SaveCompanySettings(ctx context.Context, cfg core.CompanyConfig) error {
	return c.send(ctx, epSettings, http.MethodPut, "/settings/company", cfg, nil)
}

// ListUsers fetches the settings-page user list.
func (c *Client) ListUsers(ctx context.Context) Result[[]core.User] {
	return list(ctx, c, epSettings, "/settings/users", nil, fallbackUsers)
}

// SaveUsers replaces the whole user list.
func (c *Client) SaveUsers(ctx context.Context, users []core.User) error {
	return c.send(ctx, epSettings, http.MethodPut, "/settings/users", users, nil)
}

// DeleteUser removes one user.
func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.send(ctx, epSettings, http.MethodDelete, fmt.Sprintf("/settings/users/%d", id), nil, nil)
}

// ListIntegrations fetches the integration configurations.
func (c *Client) ListIntegrations(ctx context.Context) Result[[]core.Integration] {
	return list(ctx, c, epSettings, "/settings/integrations", nil, fallbackIntegrations)
}

// SaveIntegrations replaces the integration configurations.
func (c *Client) SaveIntegrations(ctx context.Context, integrations []core.Integration) error {
	return c.send(ctx, epSettings, http.MethodPut, "/settings/integrations", integrations, nil)
}

// UsageStats fetches the read-only plan usage block.
func (c *Client) UsageStats(ctx context.Context) Result[core.UsageStats] {
	return one(ctx, c, epSettings, "/settings/stats", nil, fallbackStats)
}
