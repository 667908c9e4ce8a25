package core

import "github.com/shopspring/decimal"

// ReportLine is one account row of a financial report.
type ReportLine struct {
	Account string          `json:"account"`
	Name    string          `json:"name"`
	Amount  decimal.Decimal `json:"amount"`
}

// ReportSection groups report lines under a heading with a section total
// (e.g. Activos / Pasivos / Patrimonio on the balance sheet).
type ReportSection struct {
	Name  string          `json:"name"`
	Lines []ReportLine    `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

// FinancialReport is the shared shape of the balance sheet, income statement
// and general ledger endpoints. The backend computes everything; the client
// only renders.
type FinancialReport struct {
	Type     string          `json:"type"` // "balance-sheet", "income-statement", "general-ledger"
	DateFrom string          `json:"date_from,omitempty"`
	DateTo   string          `json:"date_to,omitempty"`
	Sections []ReportSection `json:"sections"`
}
