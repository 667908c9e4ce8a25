package core_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"pymerp/internal/core"
)

func TestOrderForm_ItemTotalRecomputes(t *testing.T) {
	f := core.NewOrderForm(3)
	f.SetDescription(0, "Resma papel carta")
	f.SetQuantity(0, decimal.NewFromInt(10))
	f.SetUnitPrice(0, clp(3500))

	if got := f.Items()[0].Total; !got.Equal(clp(35000)) {
		t.Errorf("item total = %s, want 35000", got)
	}

	f.SetQuantity(0, decimal.NewFromInt(4))
	if got := f.Items()[0].Total; !got.Equal(clp(14000)) {
		t.Errorf("item total after quantity edit = %s, want 14000", got)
	}
}

func TestOrderForm_SubtotalEqualsSumOfItems(t *testing.T) {
	f := core.NewOrderForm(1)
	f.SetDescription(0, "Tóner HP 85A")
	f.SetQuantity(0, decimal.NewFromInt(2))
	f.SetUnitPrice(0, clp(45000))

	f.AddItem()
	f.SetDescription(1, "Caja archivadores")
	f.SetQuantity(1, decimal.NewFromInt(5))
	f.SetUnitPrice(1, clp(2000))

	var sum = clp(0)
	for _, it := range f.Items() {
		sum = sum.Add(it.Total)
	}
	if !f.Subtotal().Equal(sum) {
		t.Errorf("Subtotal %s != sum of item totals %s", f.Subtotal(), sum)
	}
	if !f.Subtotal().Equal(clp(100000)) {
		t.Errorf("Subtotal = %s, want 100000", f.Subtotal())
	}
	if !f.Tax().Equal(clp(19000)) {
		t.Errorf("Tax = %s, want 19000 (19%% IVA)", f.Tax())
	}
	if !f.Total().Equal(clp(119000)) {
		t.Errorf("Total = %s, want 119000", f.Total())
	}

	// Removing an item shrinks the derived totals with it.
	if !f.RemoveItem(1) {
		t.Fatal("RemoveItem above the floor should succeed")
	}
	if !f.Subtotal().Equal(clp(90000)) {
		t.Errorf("Subtotal after removal = %s, want 90000", f.Subtotal())
	}
}

func TestOrderForm_RemoveItemFloor(t *testing.T) {
	f := core.NewOrderForm(1)
	if f.RemoveItem(0) {
		t.Error("removing the last item should be a no-op")
	}
	if f.ItemCount() != core.MinOrderItems {
		t.Fatalf("item count = %d, want %d", f.ItemCount(), core.MinOrderItems)
	}
}

func TestOrderForm_NegativeInputIgnored(t *testing.T) {
	f := core.NewOrderForm(1)
	f.SetQuantity(0, decimal.NewFromInt(3))
	f.SetUnitPrice(0, clp(1000))

	f.SetQuantity(0, decimal.NewFromInt(-5))
	f.SetUnitPrice(0, clp(-100))

	it := f.Items()[0]
	if !it.Quantity.Equal(decimal.NewFromInt(3)) || !it.UnitPrice.Equal(clp(1000)) {
		t.Errorf("negative input should be ignored, got qty %s price %s", it.Quantity, it.UnitPrice)
	}
}

func TestOrderForm_OrderValidation(t *testing.T) {
	t.Run("valid order", func(t *testing.T) {
		f := core.NewOrderForm(7)
		f.Date = "2026-08-25"
		f.DeliveryDate = "2026-09-01"
		f.SetDescription(0, "Notebook Lenovo V15")
		f.SetQuantity(0, decimal.NewFromInt(1))
		f.SetUnitPrice(0, clp(500000))

		o, err := f.Order()
		if err != nil {
			t.Fatalf("Order() error: %v", err)
		}
		if o.Status != core.StatusPending {
			t.Errorf("new order status = %s, want pending", o.Status)
		}
		if !o.Total.Equal(clp(595000)) {
			t.Errorf("total = %s, want 595000", o.Total)
		}
	})

	t.Run("missing supplier", func(t *testing.T) {
		f := core.NewOrderForm(0)
		f.SetDescription(0, "x")
		f.SetQuantity(0, decimal.NewFromInt(1))
		f.SetUnitPrice(0, clp(1))
		if _, err := f.Order(); err == nil {
			t.Error("expected supplier error")
		}
	})

	t.Run("zero quantity", func(t *testing.T) {
		f := core.NewOrderForm(1)
		f.SetDescription(0, "x")
		f.SetUnitPrice(0, clp(1000))
		if _, err := f.Order(); err == nil {
			t.Error("expected quantity error")
		}
	})
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"595000", 595000},
		{"595.000", 595000},
		{"$1.190.000", 1190000},
		{" 35000 ", 35000},
		{"abc", 0},
		{"", 0},
		{"-500", 0},
	}
	for _, tt := range tests {
		if got := core.ParseAmount(tt.in); !got.Equal(decimal.NewFromInt(tt.want)) {
			t.Errorf("ParseAmount(%q) = %s, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFormatCLP(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "$0"},
		{950, "$950"},
		{35000, "$35.000"},
		{595000, "$595.000"},
		{1190000, "$1.190.000"},
		{-19000, "-$19.000"},
	}
	for _, tt := range tests {
		if got := core.FormatCLP(decimal.NewFromInt(tt.in)); got != tt.want {
			t.Errorf("FormatCLP(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
