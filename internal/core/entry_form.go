package core

import (
	"github.com/shopspring/decimal"
)

// EntryForm is the editing state for one ledger entry: header fields plus an
// ordered list of lines. All mutations go through methods so the derived
// totals can only ever be recomputed, never set. The zero-value form is not
// usable; NewEntryForm seeds the double-entry minimum of two blank lines.
type EntryForm struct {
	Date        string
	Reference   string
	Description string

	lines []LedgerLine
}

// NewEntryForm returns a form with the minimum two blank lines.
func NewEntryForm() *EntryForm {
	return &EntryForm{lines: make([]LedgerLine, MinLedgerLines)}
}

// EditEntry returns a form pre-filled from an existing entry.
func EditEntry(e LedgerEntry) *EntryForm {
	f := &EntryForm{
		Date:        e.Date,
		Reference:   e.Reference,
		Description: e.Description,
		lines:       make([]LedgerLine, len(e.Lines)),
	}
	copy(f.lines, e.Lines)
	for len(f.lines) < MinLedgerLines {
		f.lines = append(f.lines, LedgerLine{})
	}
	return f
}

// Lines returns a copy of the current lines.
func (f *EntryForm) Lines() []LedgerLine {
	out := make([]LedgerLine, len(f.lines))
	copy(out, f.lines)
	return out
}

// LineCount returns the number of lines.
func (f *EntryForm) LineCount() int { return len(f.lines) }

// AddLine appends a blank line with zeroed amounts. There is no upper bound.
func (f *EntryForm) AddLine() {
	f.lines = append(f.lines, LedgerLine{})
}

// RemoveLine deletes the line at index i. Removing below the double-entry
// minimum of two lines is a no-op and returns false, as does an index out of
// range.
func (f *EntryForm) RemoveLine(i int) bool {
	if len(f.lines) <= MinLedgerLines || i < 0 || i >= len(f.lines) {
		return false
	}
	f.lines = append(f.lines[:i], f.lines[i+1:]...)
	return true
}

// SetAccount sets the account code of line i. When the code is known to the
// catalog and the line has no description yet, the catalog name is filled in.
func (f *EntryForm) SetAccount(i int, code string) {
	if i < 0 || i >= len(f.lines) {
		return
	}
	f.lines[i].Account = code
	if name, ok := AccountName(code); ok && f.lines[i].Description == "" {
		f.lines[i].Description = name
	}
}

// SetLineDescription sets the free-text description of line i.
func (f *EntryForm) SetLineDescription(i int, s string) {
	if i < 0 || i >= len(f.lines) {
		return
	}
	f.lines[i].Description = s
}

// SetDebit sets the debit amount of line i and zeroes its credit: a ledger
// line is one or the other, never both.
func (f *EntryForm) SetDebit(i int, amount decimal.Decimal) {
	if i < 0 || i >= len(f.lines) || amount.IsNegative() {
		return
	}
	f.lines[i].Debit = amount
	if !amount.IsZero() {
		f.lines[i].Credit = decimal.Zero
	}
}

// SetCredit sets the credit amount of line i and zeroes its debit.
func (f *EntryForm) SetCredit(i int, amount decimal.Decimal) {
	if i < 0 || i >= len(f.lines) || amount.IsNegative() {
		return
	}
	f.lines[i].Credit = amount
	if !amount.IsZero() {
		f.lines[i].Debit = decimal.Zero
	}
}

// TotalDebit is the derived sum of debit amounts over the current lines.
func (f *EntryForm) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range f.lines {
		total = total.Add(l.Debit)
	}
	return total
}

// TotalCredit is the derived sum of credit amounts over the current lines.
func (f *EntryForm) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range f.lines {
		total = total.Add(l.Credit)
	}
	return total
}

// Balanced reports whether the form currently balances.
func (f *EntryForm) Balanced() bool {
	return f.TotalDebit().Equal(f.TotalCredit())
}

// Entry validates the form and materializes a LedgerEntry with derived
// totals. The form is unchanged; an invalid form returns the validation
// error and a zero entry.
func (f *EntryForm) Entry() (LedgerEntry, error) {
	e := LedgerEntry{
		Date:        f.Date,
		Reference:   f.Reference,
		Description: f.Description,
		Lines:       f.Lines(),
	}
	e.Normalize()
	if err := e.Validate(); err != nil {
		return LedgerEntry{}, err
	}
	e.Materialize()
	return e, nil
}
