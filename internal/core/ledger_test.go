package core_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"pymerp/internal/core"
)

func clp(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func TestLedgerEntry_Validate(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		lines     []core.LedgerLine
		expectErr bool
	}{
		{
			name: "balanced sale with IVA",
			date: "2026-08-14",
			lines: []core.LedgerLine{
				{Account: "1120", Debit: clp(119000)},
				{Account: "4101", Credit: clp(100000)},
				{Account: "2110", Credit: clp(19000)},
			},
			expectErr: false,
		},
		{
			name: "out of balance",
			date: "2026-08-14",
			lines: []core.LedgerLine{
				{Account: "1101", Debit: clp(50000)},
				{Account: "4101", Credit: clp(45000)},
			},
			expectErr: true,
		},
		{
			name: "single line",
			date: "2026-08-14",
			lines: []core.LedgerLine{
				{Account: "1101", Debit: clp(50000)},
			},
			expectErr: true,
		},
		{
			name: "line with both debit and credit",
			date: "2026-08-14",
			lines: []core.LedgerLine{
				{Account: "1101", Debit: clp(50000), Credit: clp(50000)},
				{Account: "4101", Credit: clp(50000)},
			},
			expectErr: true,
		},
		{
			name: "line with neither debit nor credit",
			date: "2026-08-14",
			lines: []core.LedgerLine{
				{Account: "1101"},
				{Account: "4101", Credit: clp(50000)},
			},
			expectErr: true,
		},
		{
			name: "negative amount",
			date: "2026-08-14",
			lines: []core.LedgerLine{
				{Account: "1101", Debit: clp(-50000)},
				{Account: "4101", Credit: clp(-50000)},
			},
			expectErr: true,
		},
		{
			name: "missing account",
			date: "2026-08-14",
			lines: []core.LedgerLine{
				{Debit: clp(50000)},
				{Account: "4101", Credit: clp(50000)},
			},
			expectErr: true,
		},
		{
			name: "bad date",
			date: "14-08-2026",
			lines: []core.LedgerLine{
				{Account: "1101", Debit: clp(50000)},
				{Account: "4101", Credit: clp(50000)},
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := core.LedgerEntry{Date: tt.date, Description: "test", Lines: tt.lines}
			err := e.Validate()
			if tt.expectErr && err == nil {
				t.Errorf("expected error, got nil")
			}
			if !tt.expectErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLedgerEntry_MaterializeDerivesTotals(t *testing.T) {
	e := core.LedgerEntry{
		Date: "2026-08-14",
		Lines: []core.LedgerLine{
			{Account: "1120", Debit: clp(119000)},
			{Account: "4101", Credit: clp(100000)},
			{Account: "2110", Credit: clp(19000)},
		},
	}
	e.Materialize()

	if !e.TotalDebit.Equal(clp(119000)) {
		t.Errorf("total_debit = %s, want 119000", e.TotalDebit)
	}
	if !e.TotalCredit.Equal(clp(119000)) {
		t.Errorf("total_credit = %s, want 119000", e.TotalCredit)
	}
	if !e.Balanced() {
		t.Error("entry should be balanced")
	}
}

func TestLedgerEntry_NormalizeDefaultsDate(t *testing.T) {
	e := core.LedgerEntry{Description: "  sueldo agosto  "}
	e.Normalize()
	if e.Date == "" {
		t.Error("Normalize should default a missing date")
	}
	if e.Description != "sueldo agosto" {
		t.Errorf("description not trimmed: %q", e.Description)
	}
}
