package app

import (
	"context"

	"pymerp/internal/core"
	"pymerp/internal/dashboard"
	"pymerp/internal/session"
)

// ApplicationService is the single interface all UI adapters (REPL, CLI) call.
// It decouples presentation from business logic. Implementations must contain
// no fmt.Println, no ANSI codes, and no display logic of any kind.
//
// List operations never fail: when the backend is unreachable they return
// bundled sample data with Fetch.Source set to fallback, and the adapter is
// responsible for labeling it. Mutations and downloads return real errors.
type ApplicationService interface {
	// CurrentUser returns the identity of the active session.
	CurrentUser() session.Identity

	// GetDashboard derives the home-screen KPIs from live data only.
	// Sections whose source failed come back zeroed and flagged.
	GetDashboard(ctx context.Context) dashboard.Summary

	// ListNotifications returns the newest notifications, limit 0 meaning
	// the backend default.
	ListNotifications(ctx context.Context, limit int) *NotificationListResult

	// MarkNotificationRead flips one notification to read on the backend.
	MarkNotificationRead(ctx context.Context, id int) error

	// MarkAllNotificationsRead flips every unread notification to read.
	MarkAllNotificationsRead(ctx context.Context) error

	// ListClients returns the customer base.
	ListClients(ctx context.Context) *ClientListResult

	// CreateClient validates and creates a customer record.
	CreateClient(ctx context.Context, req ClientRequest) (*core.Client, error)

	// UpdateClient validates and replaces a customer record.
	UpdateClient(ctx context.Context, id int, req ClientRequest) (*core.Client, error)

	// DeleteClient removes a customer record.
	DeleteClient(ctx context.Context, id int) error

	// ListInvoices returns the sales invoices, newest first.
	ListInvoices(ctx context.Context) *InvoiceListResult

	// ListEntries returns the ledger entries, newest first.
	ListEntries(ctx context.Context) *EntryListResult

	// CreateEntry validates the form, materializes its totals and posts the
	// entry with a fresh idempotency key.
	CreateEntry(ctx context.Context, form *core.EntryForm) (*core.LedgerEntry, error)

	// UpdateEntry validates the form and replaces the entry with the given ID.
	UpdateEntry(ctx context.Context, id int, form *core.EntryForm) (*core.LedgerEntry, error)

	// GetReport fetches a financial report for on-screen rendering.
	GetReport(ctx context.Context, req ReportRequest) (*core.FinancialReport, error)

	// DownloadReport saves a report PDF to the download directory and
	// returns the written path.
	DownloadReport(ctx context.Context, req ReportRequest) (string, error)

	// ListPurchaseOrders returns purchase orders, optionally filtered by status.
	ListPurchaseOrders(ctx context.Context, status core.OrderStatus) *OrderListResult

	// CreatePurchaseOrder validates the form and posts a new pending order
	// with a fresh idempotency key.
	CreatePurchaseOrder(ctx context.Context, form *core.OrderForm) (*core.PurchaseOrder, error)

	// ChangeOrderStatus moves an order to target after checking the
	// transition is legal (forward one step, or cancel from any non-terminal
	// status).
	ChangeOrderStatus(ctx context.Context, order core.PurchaseOrder, target core.OrderStatus) (*core.PurchaseOrder, error)

	// DownloadOrderPDF saves the printable order to the download directory
	// and returns the written path.
	DownloadOrderPDF(ctx context.Context, id int) (string, error)

	// ListSuppliers returns the vendor records.
	ListSuppliers(ctx context.Context) *SupplierListResult

	// SearchCatalog queries the supplier aggregation service for products.
	SearchCatalog(ctx context.Context, query string) *CatalogSearchResult

	// ComparePrices lists one product across supplier stores, cheapest first.
	ComparePrices(ctx context.Context, product string) *PriceComparisonResult

	// SupplierFilters returns the category and store lists used to narrow
	// catalog searches.
	SupplierFilters(ctx context.Context) *SupplierFiltersResult

	// CompanySettings returns the company configuration record.
	CompanySettings(ctx context.Context) *CompanySettingsResult

	// SaveCompanySettings validates and fully replaces the company record.
	SaveCompanySettings(ctx context.Context, req CompanyRequest) error

	// ListUsers returns the settings-page user list.
	ListUsers(ctx context.Context) *UserListResult

	// SaveUsers replaces the user list.
	SaveUsers(ctx context.Context, users []core.User) error

	// DeleteUser removes one user.
	DeleteUser(ctx context.Context, id int) error

	// ListIntegrations returns the external connector configurations.
	ListIntegrations(ctx context.Context) *IntegrationListResult

	// SaveIntegrations replaces the connector configurations.
	SaveIntegrations(ctx context.Context, integrations []core.Integration) error

	// UsageStats returns the read-only plan usage block.
	UsageStats(ctx context.Context) *UsageStatsResult

	// ListBanks returns the banks supported by the banking integration.
	ListBanks(ctx context.Context) *BankListResult

	// BankBalance queries a live account balance. Never served from sample
	// data: a failure is returned as an error.
	BankBalance(ctx context.Context, req BalanceRequest) (*core.BankBalance, error)

	// TaxStatus queries the SII standing of a taxpayer.
	TaxStatus(ctx context.Context, rut string) (*core.TaxStatus, error)

	// ValidateRUT checks a RUT's verification digit, locally first and via
	// the SII connector only when the local check passes.
	ValidateRUT(ctx context.Context, rut string) (*core.RUTValidation, error)
}
