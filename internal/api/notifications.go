package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"pymerp/internal/core"
)

const epNotifications = "notifications"

// ListNotifications fetches the newest notifications, most recent first.
// limit <= 0 means the backend default.
func (c *Client) ListNotifications(ctx context.Context, limit int) Result[[]core.Notification] {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	return list(ctx, c, epNotifications, "/notifications", query, fallbackNotifications)
}

// MarkNotificationRead flips one notification to read. The transition is
// one-way and idempotent server-side; callers refetch the list afterwards
// rather than flipping local state.
func (c *Client) MarkNotificationRead(ctx context.Context, id int) error {
	return c.send(ctx, epNotifications, http.MethodPatch, fmt.Sprintf("/notifications/%d/read", id), nil, nil)
}

// MarkAllNotificationsRead marks every notification read.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.send(ctx, epNotifications, http.MethodPatch, "/notifications/read-all", nil, nil)
}
