package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"pymerp/internal/core"
)

const epAccounting = "accounting"

// entryPayload is a LedgerEntry plus the idempotency key that lets the
// backend drop duplicate submissions from retried saves.
type entryPayload struct {
	core.LedgerEntry
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

// ListEntries fetches the ledger entries, newest first.
func (c *Client) ListEntries(ctx context.Context) Result[[]core.LedgerEntry] {
	return list(ctx, c, epAccounting, "/accounting/entries", nil, fallbackEntries)
}

// CreateEntry posts a new ledger entry. The entry must already be validated
// and materialized; idempotencyKey deduplicates retries.
func (c *Client) CreateEntry(ctx context.Context, e core.LedgerEntry, idempotencyKey string) (core.LedgerEntry, error) {
	var out core.LedgerEntry
	payload := entryPayload{LedgerEntry: e, IdempotencyKey: idempotencyKey}
	if err := c.send(ctx, epAccounting, http.MethodPost, "/accounting/entries", payload, &out); err != nil {
		return core.LedgerEntry{}, err
	}
	return out, nil
}

// UpdateEntry replaces an existing ledger entry.
func (c *Client) UpdateEntry(ctx context.Context, e core.LedgerEntry) (core.LedgerEntry, error) {
	var out core.LedgerEntry
	path := fmt.Sprintf("/accounting/entries/%d", e.ID)
	if err := c.send(ctx, epAccounting, http.MethodPut, path, e, &out); err != nil {
		return core.LedgerEntry{}, err
	}
	return out, nil
}

// BalanceSheet fetches the balance sheet as of dateTo (empty means today).
func (c *Client) BalanceSheet(ctx context.Context, dateTo string) (core.FinancialReport, error) {
	return c.report(ctx, "/accounting/balance-sheet", "", dateTo, "")
}

// IncomeStatement fetches the income statement for a period.
func (c *Client) IncomeStatement(ctx context.Context, dateFrom, dateTo string) (core.FinancialReport, error) {
	return c.report(ctx, "/accounting/income-statement", dateFrom, dateTo, "")
}

// GeneralLedger fetches account movements for a period, optionally filtered
// to one account.
func (c *Client) GeneralLedger(ctx context.Context, dateFrom, dateTo, account string) (core.FinancialReport, error) {
	return c.report(ctx, "/accounting/general-ledger", dateFrom, dateTo, account)
}

func (c *Client) report(ctx context.Context, path, dateFrom, dateTo, account string) (core.FinancialReport, error) {
	query := url.Values{}
	if dateFrom != "" {
		query.Set("date_from", dateFrom)
	}
	if dateTo != "" {
		query.Set("date_to", dateTo)
	}
	if account != "" {
		query.Set("account", account)
	}
	var out core.FinancialReport
	if _, err := c.get(ctx, epAccounting, path, query, &out); err != nil {
		return core.FinancialReport{}, err
	}
	return out, nil
}

// ReportRequest names one accounting report PDF.
type ReportRequest struct {
	Type     string // "balance-sheet", "income-statement", "general-ledger"
	DateFrom string
	DateTo   string
	Account  string // optional account filter for the general ledger
}

// DownloadAccountingReport fetches a report as PDF and saves it under
// destDir, returning the written path.
func (c *Client) DownloadAccountingReport(ctx context.Context, req ReportRequest, destDir string) (string, error) {
	query := url.Values{}
	query.Set("type", req.Type)
	if req.DateFrom != "" {
		query.Set("date_from", req.DateFrom)
	}
	if req.DateTo != "" {
		query.Set("date_to", req.DateTo)
	}
	if req.Account != "" {
		query.Set("account", req.Account)
	}
	name := fmt.Sprintf("reporte-%s.pdf", req.Type)
	return c.download(ctx, epAccounting, "/accounting/report/pdf", query, destDir, name)
}
