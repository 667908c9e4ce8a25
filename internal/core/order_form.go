package core

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MinOrderItems is the floor for a purchase order's item list.
const MinOrderItems = 1

// OrderForm is the editing state for one purchase order. Item totals and the
// order subtotal/tax/total are derived, recomputed from the items on every
// read.
type OrderForm struct {
	SupplierID   int
	Date         string
	DeliveryDate string

	items []OrderItem
}

// NewOrderForm returns a form with one blank item.
func NewOrderForm(supplierID int) *OrderForm {
	return &OrderForm{
		SupplierID: supplierID,
		items:      make([]OrderItem, MinOrderItems),
	}
}

// Items returns a copy of the current items.
func (f *OrderForm) Items() []OrderItem {
	out := make([]OrderItem, len(f.items))
	copy(out, f.items)
	return out
}

// ItemCount returns the number of items.
func (f *OrderForm) ItemCount() int { return len(f.items) }

// AddItem appends a blank item with zeroed numeric fields.
func (f *OrderForm) AddItem() {
	f.items = append(f.items, OrderItem{})
}

// RemoveItem deletes the item at index i. Going below one item is a no-op
// and returns false.
func (f *OrderForm) RemoveItem(i int) bool {
	if len(f.items) <= MinOrderItems || i < 0 || i >= len(f.items) {
		return false
	}
	f.items = append(f.items[:i], f.items[i+1:]...)
	return true
}

// SetDescription sets the description of item i.
func (f *OrderForm) SetDescription(i int, s string) {
	if i < 0 || i >= len(f.items) {
		return
	}
	f.items[i].Description = s
}

// SetQuantity sets the quantity of item i and recomputes its total.
func (f *OrderForm) SetQuantity(i int, qty decimal.Decimal) {
	if i < 0 || i >= len(f.items) || qty.IsNegative() {
		return
	}
	f.items[i].Quantity = qty
	f.recompute(i)
}

// SetUnitPrice sets the unit price of item i and recomputes its total.
func (f *OrderForm) SetUnitPrice(i int, price decimal.Decimal) {
	if i < 0 || i >= len(f.items) || price.IsNegative() {
		return
	}
	f.items[i].UnitPrice = price
	f.recompute(i)
}

func (f *OrderForm) recompute(i int) {
	f.items[i].Total = f.items[i].Quantity.Mul(f.items[i].UnitPrice).Round(0)
}

// Subtotal is the derived sum of item totals.
func (f *OrderForm) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range f.items {
		total = total.Add(it.Total)
	}
	return total
}

// Tax is the IVA on the subtotal, rounded to whole pesos.
func (f *OrderForm) Tax() decimal.Decimal {
	return f.Subtotal().Mul(IVARate).Round(0)
}

// Total is subtotal plus tax.
func (f *OrderForm) Total() decimal.Decimal {
	return f.Subtotal().Add(f.Tax())
}

// Order validates the form and materializes a PurchaseOrder in the pending
// state with derived amounts.
func (f *OrderForm) Order() (PurchaseOrder, error) {
	if f.SupplierID <= 0 {
		return PurchaseOrder{}, errors.New("order must name a supplier")
	}
	date := strings.TrimSpace(f.Date)
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return PurchaseOrder{}, fmt.Errorf("invalid order date %q: %w", f.Date, err)
	}
	if len(f.items) < MinOrderItems {
		return PurchaseOrder{}, fmt.Errorf("order must have at least %d item", MinOrderItems)
	}
	for i, it := range f.items {
		if strings.TrimSpace(it.Description) == "" {
			return PurchaseOrder{}, fmt.Errorf("item %d has no description", i+1)
		}
		if it.Quantity.IsZero() || it.UnitPrice.IsZero() {
			return PurchaseOrder{}, fmt.Errorf("item %d (%s): quantity and unit price must be > 0", i+1, it.Description)
		}
	}

	return PurchaseOrder{
		SupplierID:   f.SupplierID,
		Date:         date,
		DeliveryDate: strings.TrimSpace(f.DeliveryDate),
		Items:        f.Items(),
		Subtotal:     f.Subtotal(),
		Tax:          f.Tax(),
		Total:        f.Total(),
		Status:       StatusPending,
	}, nil
}
