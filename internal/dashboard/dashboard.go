// Package dashboard derives the summary KPIs shown on the home screen from
// several backend collections fetched concurrently. One failed source never
// blanks the view: its section renders zeroed and flagged while the rest
// show real numbers.
package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"pymerp/internal/api"
	"pymerp/internal/core"
)

// DataSource is the slice of the API client the aggregator reads from.
type DataSource interface {
	ListInvoices(ctx context.Context) api.Result[[]core.Invoice]
	ListClients(ctx context.Context) api.Result[[]core.Client]
	ListPurchaseOrders(ctx context.Context, status core.OrderStatus) api.Result[[]core.PurchaseOrder]
	ListEntries(ctx context.Context) api.Result[[]core.LedgerEntry]
	ListNotifications(ctx context.Context, limit int) api.Result[[]core.Notification]
}

// Section carries the shared degradation state of one KPI block.
type Section struct {
	// Degraded is true when the source failed and the block is zero-valued.
	Degraded bool
	Reason   string
}

// InvoiceKPIs summarizes billing exposure.
type InvoiceKPIs struct {
	Section
	Count         int
	OverdueCount  int
	OverdueAmount decimal.Decimal
}

// OrderKPIs summarizes purchase order money in flight.
type OrderKPIs struct {
	Section
	Count           int
	PendingAmount   decimal.Decimal
	DeliveredAmount decimal.Decimal
}

// ClientKPIs counts the customer base.
type ClientKPIs struct {
	Section
	Total  int
	Active int
}

// LedgerKPIs sums booked debit/credit volume.
type LedgerKPIs struct {
	Section
	Entries      int
	DebitVolume  decimal.Decimal
	CreditVolume decimal.Decimal
}

// NotificationKPIs carries the unread badge count.
type NotificationKPIs struct {
	Section
	Unread int
}

// Summary is one dashboard render.
type Summary struct {
	GeneratedAt   time.Time
	Invoices      InvoiceKPIs
	Orders        OrderKPIs
	Clients       ClientKPIs
	Ledger        LedgerKPIs
	Notifications NotificationKPIs
}

// Aggregator fetches all dashboard sources concurrently.
type Aggregator struct {
	source DataSource
	log    zerolog.Logger
}

// New builds an aggregator over the given data source.
func New(source DataSource, log zerolog.Logger) *Aggregator {
	return &Aggregator{source: source, log: log.With().Str("component", "dashboard").Logger()}
}

// Load fetches every source and derives the KPIs. It always returns a full
// Summary; sources whose fetch degraded contribute zeroed, flagged sections.
// "Today" for the overdue cutoff is now's calendar date.
func (a *Aggregator) Load(ctx context.Context, now time.Time) Summary {
	s := Summary{GeneratedAt: now}

	var wg sync.WaitGroup
	wg.Add(5)
	go func() {
		defer wg.Done()
		s.Invoices = a.invoiceKPIs(ctx, now)
	}()
	go func() {
		defer wg.Done()
		s.Orders = a.orderKPIs(ctx)
	}()
	go func() {
		defer wg.Done()
		s.Clients = a.clientKPIs(ctx)
	}()
	go func() {
		defer wg.Done()
		s.Ledger = a.ledgerKPIs(ctx)
	}()
	go func() {
		defer wg.Done()
		s.Notifications = a.notificationKPIs(ctx)
	}()
	wg.Wait()
	return s
}

// degraded marks a section zeroed because its source failed. Fallback sample
// data is deliberately not aggregated: a KPI derived from fabricated numbers
// is worse than an empty one.
func degraded[T any](res api.Result[T], log zerolog.Logger, name string) Section {
	log.Warn().Str("section", name).Str("reason", res.Reason).Msg("dashboard section degraded")
	return Section{Degraded: true, Reason: res.Reason}
}

func (a *Aggregator) invoiceKPIs(ctx context.Context, now time.Time) InvoiceKPIs {
	res := a.source.ListInvoices(ctx)
	if res.Degraded() {
		return InvoiceKPIs{Section: degraded(res, a.log, "invoices")}
	}

	k := InvoiceKPIs{Count: len(res.Data), OverdueAmount: decimal.Zero}
	today := now.Format("2006-01-02")
	for _, inv := range res.Data {
		if inv.Status == core.InvoicePaid || inv.Status == core.InvoiceVoided {
			continue
		}
		// Dates are ISO strings; lexicographic order is date order.
		if inv.DueDate != "" && inv.DueDate < today {
			k.OverdueCount++
			k.OverdueAmount = k.OverdueAmount.Add(inv.Total)
		}
	}
	return k
}

func (a *Aggregator) orderKPIs(ctx context.Context) OrderKPIs {
	res := a.source.ListPurchaseOrders(ctx, "")
	if res.Degraded() {
		return OrderKPIs{Section: degraded(res, a.log, "orders")}
	}

	k := OrderKPIs{Count: len(res.Data), PendingAmount: decimal.Zero, DeliveredAmount: decimal.Zero}
	for _, o := range res.Data {
		switch o.Status {
		case core.StatusPending:
			k.PendingAmount = k.PendingAmount.Add(o.Total)
		case core.StatusDelivered:
			k.DeliveredAmount = k.DeliveredAmount.Add(o.Total)
		}
	}
	return k
}

func (a *Aggregator) clientKPIs(ctx context.Context) ClientKPIs {
	res := a.source.ListClients(ctx)
	if res.Degraded() {
		return ClientKPIs{Section: degraded(res, a.log, "clients")}
	}

	k := ClientKPIs{Total: len(res.Data)}
	for _, c := range res.Data {
		if c.Active {
			k.Active++
		}
	}
	return k
}

func (a *Aggregator) ledgerKPIs(ctx context.Context) LedgerKPIs {
	res := a.source.ListEntries(ctx)
	if res.Degraded() {
		return LedgerKPIs{Section: degraded(res, a.log, "ledger")}
	}

	k := LedgerKPIs{Entries: len(res.Data), DebitVolume: decimal.Zero, CreditVolume: decimal.Zero}
	for _, e := range res.Data {
		k.DebitVolume = k.DebitVolume.Add(e.TotalDebit)
		k.CreditVolume = k.CreditVolume.Add(e.TotalCredit)
	}
	return k
}

func (a *Aggregator) notificationKPIs(ctx context.Context) NotificationKPIs {
	res := a.source.ListNotifications(ctx, 0)
	if res.Degraded() {
		return NotificationKPIs{Section: degraded(res, a.log, "notifications")}
	}

	k := NotificationKPIs{}
	for _, n := range res.Data {
		if !n.Read {
			k.Unread++
		}
	}
	return k
}
