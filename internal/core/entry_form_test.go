package core_test

import (
	"testing"

	"pymerp/internal/core"
)

// checkDerived asserts the form invariant: the derived totals always equal
// the sum over the current lines.
func checkDerived(t *testing.T, f *core.EntryForm) {
	t.Helper()
	var debit, credit = clp(0), clp(0)
	for _, l := range f.Lines() {
		debit = debit.Add(l.Debit)
		credit = credit.Add(l.Credit)
	}
	if !f.TotalDebit().Equal(debit) {
		t.Errorf("TotalDebit %s != sum of lines %s", f.TotalDebit(), debit)
	}
	if !f.TotalCredit().Equal(credit) {
		t.Errorf("TotalCredit %s != sum of lines %s", f.TotalCredit(), credit)
	}
}

func TestEntryForm_TotalsTrackEveryMutation(t *testing.T) {
	f := core.NewEntryForm()
	checkDerived(t, f)

	f.SetAccount(0, "1120")
	f.SetDebit(0, clp(119000))
	checkDerived(t, f)

	f.SetAccount(1, "4101")
	f.SetCredit(1, clp(100000))
	checkDerived(t, f)

	f.AddLine()
	checkDerived(t, f)

	f.SetAccount(2, "2110")
	f.SetCredit(2, clp(19000))
	checkDerived(t, f)

	if !f.Balanced() {
		t.Fatalf("form should balance: debit %s credit %s", f.TotalDebit(), f.TotalCredit())
	}

	f.AddLine()
	if removed := f.RemoveLine(3); !removed {
		t.Error("RemoveLine above the minimum should succeed")
	}
	checkDerived(t, f)
}

func TestEntryForm_RemoveLineFloor(t *testing.T) {
	f := core.NewEntryForm()
	if f.LineCount() != core.MinLedgerLines {
		t.Fatalf("new form has %d lines, want %d", f.LineCount(), core.MinLedgerLines)
	}

	// Any order of removals must never go below the double-entry minimum.
	for _, i := range []int{0, 1, -1, 5, 0, 0} {
		if f.RemoveLine(i) {
			t.Errorf("RemoveLine(%d) at the floor should be a no-op", i)
		}
	}
	if f.LineCount() != core.MinLedgerLines {
		t.Fatalf("line count dropped below minimum: %d", f.LineCount())
	}

	f.AddLine()
	f.AddLine()
	f.RemoveLine(0)
	f.RemoveLine(0)
	if f.RemoveLine(0) {
		t.Error("third removal should hit the floor")
	}
	if f.LineCount() != core.MinLedgerLines {
		t.Fatalf("line count = %d, want %d", f.LineCount(), core.MinLedgerLines)
	}
}

func TestEntryForm_AccountAutoFillsDescription(t *testing.T) {
	f := core.NewEntryForm()

	f.SetAccount(0, "1110")
	if got := f.Lines()[0].Description; got != "Banco" {
		t.Errorf("description = %q, want catalog name", got)
	}

	// A description typed by the user survives a later account change.
	f.SetLineDescription(0, "Cuenta corriente Bci")
	f.SetAccount(0, "1101")
	if got := f.Lines()[0].Description; got != "Cuenta corriente Bci" {
		t.Errorf("user description overwritten: %q", got)
	}

	// Unknown codes fill nothing.
	f.SetAccount(1, "9999")
	if got := f.Lines()[1].Description; got != "" {
		t.Errorf("unknown account should not auto-fill, got %q", got)
	}
}

func TestEntryForm_DebitAndCreditAreExclusive(t *testing.T) {
	f := core.NewEntryForm()
	f.SetDebit(0, clp(5000))
	f.SetCredit(0, clp(7000))

	line := f.Lines()[0]
	if !line.Debit.IsZero() {
		t.Errorf("setting a credit should zero the debit, got %s", line.Debit)
	}
	if !line.Credit.Equal(clp(7000)) {
		t.Errorf("credit = %s, want 7000", line.Credit)
	}
}

func TestEntryForm_EntryMaterializesBalancedTotals(t *testing.T) {
	f := core.NewEntryForm()
	f.Date = "2026-08-20"
	f.Description = "Venta con IVA"
	f.SetAccount(0, "1120")
	f.SetDebit(0, clp(119000))
	f.SetAccount(1, "4101")
	f.SetCredit(1, clp(100000))
	f.AddLine()
	f.SetAccount(2, "2110")
	f.SetCredit(2, clp(19000))

	e, err := f.Entry()
	if err != nil {
		t.Fatalf("Entry() error: %v", err)
	}
	if !e.TotalDebit.Equal(clp(119000)) || !e.TotalCredit.Equal(clp(119000)) {
		t.Errorf("totals = %s / %s, want 119000 / 119000", e.TotalDebit, e.TotalCredit)
	}
}

func TestEntryForm_EntryRejectsImbalance(t *testing.T) {
	f := core.NewEntryForm()
	f.SetAccount(0, "1101")
	f.SetDebit(0, clp(10000))
	f.SetAccount(1, "4101")
	f.SetCredit(1, clp(9000))

	if _, err := f.Entry(); err == nil {
		t.Fatal("expected imbalance error")
	}
}
