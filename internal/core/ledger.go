package core

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MinLedgerLines is the floor for a ledger entry: double-entry bookkeeping
// needs at least one debit and one credit row.
const MinLedgerLines = 2

// Normalize cleans up an entry before validation: trims text fields and
// defaults a missing date to today. Amount fields are already decimals here;
// string-to-amount coercion happens at the form edge.
func (e *LedgerEntry) Normalize() {
	e.Reference = strings.TrimSpace(e.Reference)
	e.Description = strings.TrimSpace(e.Description)
	e.Date = strings.TrimSpace(e.Date)
	if e.Date == "" {
		e.Date = time.Now().Format("2006-01-02")
	}
	for i := range e.Lines {
		e.Lines[i].Account = strings.TrimSpace(e.Lines[i].Account)
		e.Lines[i].Description = strings.TrimSpace(e.Lines[i].Description)
	}
}

// Validate enforces the invariants the backend assumes but a careless client
// could break:
//   - at least MinLedgerLines lines
//   - every line names an account and is a debit XOR a credit, non-negative
//   - the entry balances: sum of debits equals sum of credits
//
// It never mutates the entry.
func (e *LedgerEntry) Validate() error {
	if e.Date == "" {
		return errors.New("entry must have a date")
	}
	if _, err := time.Parse("2006-01-02", e.Date); err != nil {
		return fmt.Errorf("invalid entry date %q: %w", e.Date, err)
	}
	if len(e.Lines) < MinLedgerLines {
		return fmt.Errorf("entry must have at least %d lines, got %d", MinLedgerLines, len(e.Lines))
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for i, line := range e.Lines {
		if line.Account == "" {
			return fmt.Errorf("line %d has no account", i+1)
		}
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return fmt.Errorf("line %d (account %s): amounts cannot be negative", i+1, line.Account)
		}
		debit := !line.Debit.IsZero()
		credit := !line.Credit.IsZero()
		if debit == credit {
			return fmt.Errorf("line %d (account %s): exactly one of debit and credit must be set", i+1, line.Account)
		}
		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)
	}

	if !totalDebit.Equal(totalCredit) {
		return fmt.Errorf("entry is out of balance: debits %s != credits %s",
			totalDebit.String(), totalCredit.String())
	}
	return nil
}

// Materialize recomputes the derived totals from the lines. It is the only
// writer of TotalDebit/TotalCredit; everything else treats them as read-only.
func (e *LedgerEntry) Materialize() {
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, line := range e.Lines {
		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)
	}
	e.TotalDebit = totalDebit
	e.TotalCredit = totalCredit
}

// Balanced reports whether debits equal credits over the current lines.
func (e *LedgerEntry) Balanced() bool {
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, line := range e.Lines {
		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)
	}
	return totalDebit.Equal(totalCredit)
}
