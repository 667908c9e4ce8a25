package dashboard_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pymerp/internal/api"
	"pymerp/internal/core"
	"pymerp/internal/dashboard"
)

func clp(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// stubSource serves fixed results per collection so tests can degrade
// sources independently.
type stubSource struct {
	invoices      api.Result[[]core.Invoice]
	clients       api.Result[[]core.Client]
	orders        api.Result[[]core.PurchaseOrder]
	entries       api.Result[[]core.LedgerEntry]
	notifications api.Result[[]core.Notification]
}

func (s *stubSource) ListInvoices(context.Context) api.Result[[]core.Invoice] { return s.invoices }
func (s *stubSource) ListClients(context.Context) api.Result[[]core.Client]   { return s.clients }
func (s *stubSource) ListPurchaseOrders(_ context.Context, _ core.OrderStatus) api.Result[[]core.PurchaseOrder] {
	return s.orders
}
func (s *stubSource) ListEntries(context.Context) api.Result[[]core.LedgerEntry] { return s.entries }
func (s *stubSource) ListNotifications(_ context.Context, _ int) api.Result[[]core.Notification] {
	return s.notifications
}

func live[T any](data T) api.Result[T] {
	return api.Result[T]{Data: data, Source: api.SourceLive}
}

func degraded[T any](reason string) api.Result[T] {
	return api.Result[T]{Source: api.SourceFallback, Reason: reason}
}

func healthySource() *stubSource {
	return &stubSource{
		invoices: live([]core.Invoice{
			{ID: 1, Number: "F-00120", DueDate: "2026-08-10", Total: clp(1190000), Status: core.InvoiceSent},
			{ID: 2, Number: "F-00121", DueDate: "2026-08-20", Total: clp(476000), Status: core.InvoiceSent},
			{ID: 3, Number: "F-00122", DueDate: "2026-08-01", Total: clp(238000), Status: core.InvoicePaid},
			{ID: 4, Number: "F-00123", DueDate: "2026-09-30", Total: clp(595000), Status: core.InvoiceIssued},
		}),
		clients: live([]core.Client{
			{ID: 1, Name: "Comercial Andina", Active: true},
			{ID: 2, Name: "Servicios del Sur", Active: true},
			{ID: 3, Name: "Bodega Central", Active: false},
		}),
		orders: live([]core.PurchaseOrder{
			{ID: 18, OrderNumber: "OC-2026-018", Total: clp(595000), Status: core.StatusPending},
			{ID: 17, OrderNumber: "OC-2026-017", Total: clp(238000), Status: core.StatusDelivered},
			{ID: 16, OrderNumber: "OC-2026-016", Total: clp(119000), Status: core.StatusApproved},
		}),
		entries: live([]core.LedgerEntry{
			{ID: 1, TotalDebit: clp(119000), TotalCredit: clp(119000)},
			{ID: 2, TotalDebit: clp(476000), TotalCredit: clp(476000)},
		}),
		notifications: live([]core.Notification{
			{ID: 1, Read: false},
			{ID: 2, Read: false},
			{ID: 3, Read: true},
		}),
	}
}

func newAggregator(s *stubSource) *dashboard.Aggregator {
	return dashboard.New(s, zerolog.Nop())
}

var testNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

func TestLoad_AllSourcesHealthy(t *testing.T) {
	sum := newAggregator(healthySource()).Load(context.Background(), testNow)

	require.False(t, sum.Invoices.Degraded)
	assert.Equal(t, 4, sum.Invoices.Count)
	assert.Equal(t, 2, sum.Invoices.OverdueCount)
	assert.True(t, sum.Invoices.OverdueAmount.Equal(clp(1666000)),
		"overdue amount %s", sum.Invoices.OverdueAmount)

	require.False(t, sum.Orders.Degraded)
	assert.Equal(t, 3, sum.Orders.Count)
	assert.True(t, sum.Orders.PendingAmount.Equal(clp(595000)))
	assert.True(t, sum.Orders.DeliveredAmount.Equal(clp(238000)))

	require.False(t, sum.Clients.Degraded)
	assert.Equal(t, 3, sum.Clients.Total)
	assert.Equal(t, 2, sum.Clients.Active)

	require.False(t, sum.Ledger.Degraded)
	assert.Equal(t, 2, sum.Ledger.Entries)
	assert.True(t, sum.Ledger.DebitVolume.Equal(clp(595000)))
	assert.True(t, sum.Ledger.CreditVolume.Equal(clp(595000)))

	require.False(t, sum.Notifications.Degraded)
	assert.Equal(t, 2, sum.Notifications.Unread)
}

// A paid invoice past its due date is not overdue; an unpaid one due today or
// later is not overdue either.
func TestInvoiceKPIs_OverdueCutoff(t *testing.T) {
	s := healthySource()
	s.invoices = live([]core.Invoice{
		{ID: 1, DueDate: "2026-09-01", Total: clp(100000), Status: core.InvoiceSent},  // due today
		{ID: 2, DueDate: "2026-08-31", Total: clp(200000), Status: core.InvoiceSent},  // one day over
		{ID: 3, DueDate: "2026-01-01", Total: clp(300000), Status: core.InvoicePaid},  // paid
		{ID: 4, DueDate: "2026-01-01", Total: clp(50000), Status: core.InvoiceVoided}, // voided
		{ID: 5, DueDate: "", Total: clp(75000), Status: core.InvoiceSent},             // no due date
	})

	sum := newAggregator(s).Load(context.Background(), testNow)
	assert.Equal(t, 1, sum.Invoices.OverdueCount)
	assert.True(t, sum.Invoices.OverdueAmount.Equal(clp(200000)))
}

// One failed source zeroes its own section and nothing else.
func TestLoad_SingleSourceFailureIsIsolated(t *testing.T) {
	s := healthySource()
	s.invoices = degraded[[]core.Invoice]("connection refused")

	sum := newAggregator(s).Load(context.Background(), testNow)

	require.True(t, sum.Invoices.Degraded)
	assert.Equal(t, "connection refused", sum.Invoices.Reason)
	assert.Equal(t, 0, sum.Invoices.Count)
	assert.Equal(t, 0, sum.Invoices.OverdueCount)
	assert.True(t, sum.Invoices.OverdueAmount.IsZero())

	assert.False(t, sum.Orders.Degraded)
	assert.True(t, sum.Orders.PendingAmount.Equal(clp(595000)))
	assert.False(t, sum.Clients.Degraded)
	assert.False(t, sum.Ledger.Degraded)
	assert.False(t, sum.Notifications.Degraded)
	assert.Equal(t, 2, sum.Notifications.Unread)
}

func TestLoad_AllSourcesDown(t *testing.T) {
	s := &stubSource{
		invoices:      degraded[[]core.Invoice]("timeout"),
		clients:       degraded[[]core.Client]("timeout"),
		orders:        degraded[[]core.PurchaseOrder]("timeout"),
		entries:       degraded[[]core.LedgerEntry]("timeout"),
		notifications: degraded[[]core.Notification]("timeout"),
	}

	sum := newAggregator(s).Load(context.Background(), testNow)

	assert.True(t, sum.Invoices.Degraded)
	assert.True(t, sum.Orders.Degraded)
	assert.True(t, sum.Clients.Degraded)
	assert.True(t, sum.Ledger.Degraded)
	assert.True(t, sum.Notifications.Degraded)
	assert.True(t, sum.Orders.PendingAmount.IsZero())
	assert.True(t, sum.Orders.DeliveredAmount.IsZero())
	assert.Equal(t, 0, sum.Notifications.Unread)
	assert.Equal(t, testNow, sum.GeneratedAt)
}
