package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// Notification is a backend-owned alert. The only client-side mutation is the
// one-way false→true read flip, done through the API.
type Notification struct {
	ID        int       `json:"id"`
	Type      string    `json:"type"`
	Priority  string    `json:"priority"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	ActionURL string    `json:"action_url,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// Client is a customer record of the company.
type Client struct {
	ID      int    `json:"id"`
	RUT     string `json:"rut"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	Active  bool   `json:"active"`
}

// InvoiceStatus follows the backend's billing lifecycle.
type InvoiceStatus string

const (
	InvoiceIssued InvoiceStatus = "issued"
	InvoiceSent   InvoiceStatus = "sent"
	InvoicePaid   InvoiceStatus = "paid"
	InvoiceVoided InvoiceStatus = "voided"
)

// Invoice is read by the dashboard to derive the overdue KPI. Issuing and
// collection live server-side.
type Invoice struct {
	ID       int             `json:"id"`
	Number   string          `json:"number"`
	ClientID int             `json:"client_id"`
	Date     string          `json:"date"`     // YYYY-MM-DD
	DueDate  string          `json:"due_date"` // YYYY-MM-DD
	Total    decimal.Decimal `json:"total"`
	Status   InvoiceStatus   `json:"status"`
}

// LedgerLine is one debit or credit row of a ledger entry. Exactly one of
// Debit and Credit is non-zero on a valid line.
type LedgerLine struct {
	Account     string          `json:"account"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// LedgerEntry is one balanced bookkeeping transaction. TotalDebit and
// TotalCredit are derived from Lines, never set directly.
type LedgerEntry struct {
	ID          int             `json:"id,omitempty"`
	Date        string          `json:"date"` // YYYY-MM-DD
	Reference   string          `json:"reference"`
	Description string          `json:"description"`
	Lines       []LedgerLine    `json:"lines"`
	TotalDebit  decimal.Decimal `json:"total_debit"`
	TotalCredit decimal.Decimal `json:"total_credit"`
}

// OrderItem is one row of a purchase order. Total is derived from
// Quantity × UnitPrice and recomputed on every edit.
type OrderItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// PurchaseOrder is an order placed with a supplier. Subtotal, Tax and Total
// are derived from Items.
type PurchaseOrder struct {
	ID           int             `json:"id,omitempty"`
	OrderNumber  string          `json:"order_number"`
	SupplierID   int             `json:"supplier_id"`
	Date         string          `json:"date"`          // YYYY-MM-DD
	DeliveryDate string          `json:"delivery_date"` // YYYY-MM-DD
	Items        []OrderItem     `json:"items"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Tax          decimal.Decimal `json:"tax"`
	Total        decimal.Decimal `json:"total"`
	Status       OrderStatus     `json:"status"`
}

// Supplier is a vendor record.
type Supplier struct {
	ID      int    `json:"id"`
	RUT     string `json:"rut"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Product is a read-only projection from the supplier aggregation service.
type Product struct {
	SKU      string          `json:"sku"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Store    string          `json:"store"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
	URL      string          `json:"url,omitempty"`
}

// SearchResult is one catalog page from the supplier search endpoint.
type SearchResult struct {
	Query    string    `json:"query"`
	Products []Product `json:"products"`
}

// ComparisonResult lists the same product across stores, cheapest first.
type ComparisonResult struct {
	ProductName string    `json:"product_name"`
	Offers      []Product `json:"offers"`
}

// CompanyConfig is the settings record for the company, fully replaced on
// save (PUT semantics).
type CompanyConfig struct {
	RUT          string `json:"rut"`
	BusinessName string `json:"business_name"`
	FantasyName  string `json:"fantasy_name"`
	Activity     string `json:"activity"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
}

// User is a settings-page user row.
type User struct {
	ID     int    `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
}

// Integration is the configuration of one external connector.
type Integration struct {
	ID      int               `json:"id"`
	Name    string            `json:"name"`
	Kind    string            `json:"kind"` // "sii", "banking", "supplier"
	Enabled bool              `json:"enabled"`
	Params  map[string]string `json:"params,omitempty"`
}

// UsageStats is the read-only stats block on the settings page.
type UsageStats struct {
	Invoices      int    `json:"invoices"`
	Clients       int    `json:"clients"`
	Entries       int    `json:"entries"`
	StorageUsedMB int    `json:"storage_used_mb"`
	Plan          string `json:"plan"`
}

// Bank is one entry of the banking integration's bank list.
type Bank struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// BankBalance is the response to a balance query.
type BankBalance struct {
	BankCode  string          `json:"bank_code"`
	Account   string          `json:"account"`
	Balance   decimal.Decimal `json:"balance"`
	Currency  string          `json:"currency"`
	FetchedAt time.Time       `json:"fetched_at"`
}

// TaxStatus is the SII standing of a taxpayer.
type TaxStatus struct {
	RUT          string `json:"rut"`
	BusinessName string `json:"business_name"`
	Active       bool   `json:"active"`
	Segment      string `json:"segment"`
	LastFiling   string `json:"last_filing"` // YYYY-MM
}

// RUTValidation is the SII answer to a check-digit validation request.
type RUTValidation struct {
	RUT   string `json:"rut"`
	Valid bool   `json:"valid"`
}
