package app

import (
	"pymerp/internal/api"
	"pymerp/internal/core"
)

// FetchInfo tells the adapter where a read result came from. Adapters must
// label sample data as such before rendering it.
type FetchInfo struct {
	Source api.Source
	Reason string // why the live fetch failed, empty when Source is live
	Total  int    // backend total across pages, 0 when unknown
}

// Sample reports whether the result holds bundled sample data.
func (f FetchInfo) Sample() bool { return f.Source == api.SourceFallback }

func fetchInfo[T any](res api.Result[T]) FetchInfo {
	return FetchInfo{Source: res.Source, Reason: res.Reason, Total: res.Total}
}

// NotificationListResult is returned by ListNotifications.
type NotificationListResult struct {
	Notifications []core.Notification
	Unread        int
	Fetch         FetchInfo
}

// ClientListResult is returned by ListClients.
type ClientListResult struct {
	Clients []core.Client
	Fetch   FetchInfo
}

// InvoiceListResult is returned by ListInvoices.
type InvoiceListResult struct {
	Invoices []core.Invoice
	Fetch    FetchInfo
}

// EntryListResult is returned by ListEntries.
type EntryListResult struct {
	Entries []core.LedgerEntry
	Fetch   FetchInfo
}

// OrderListResult is returned by ListPurchaseOrders.
type OrderListResult struct {
	Orders []core.PurchaseOrder
	Fetch  FetchInfo
}

// SupplierListResult is returned by ListSuppliers.
type SupplierListResult struct {
	Suppliers []core.Supplier
	Fetch     FetchInfo
}

// CatalogSearchResult is returned by SearchCatalog.
type CatalogSearchResult struct {
	Result core.SearchResult
	Fetch  FetchInfo
}

// PriceComparisonResult is returned by ComparePrices.
type PriceComparisonResult struct {
	Result core.ComparisonResult
	Fetch  FetchInfo
}

// SupplierFiltersResult is returned by SupplierFilters.
type SupplierFiltersResult struct {
	Categories []string
	Stores     []string
	Fetch      FetchInfo
}

// CompanySettingsResult is returned by CompanySettings.
type CompanySettingsResult struct {
	Company core.CompanyConfig
	Fetch   FetchInfo
}

// UserListResult is returned by ListUsers.
type UserListResult struct {
	Users []core.User
	Fetch FetchInfo
}

// IntegrationListResult is returned by ListIntegrations.
type IntegrationListResult struct {
	Integrations []core.Integration
	Fetch        FetchInfo
}

// UsageStatsResult is returned by UsageStats.
type UsageStatsResult struct {
	Stats core.UsageStats
	Fetch FetchInfo
}

// BankListResult is returned by ListBanks.
type BankListResult struct {
	Banks []core.Bank
	Fetch FetchInfo
}
