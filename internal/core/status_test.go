package core_test

import (
	"testing"

	"pymerp/internal/core"
)

func TestOrderStatus_Transitions(t *testing.T) {
	tests := []struct {
		from, to core.OrderStatus
		ok       bool
	}{
		{core.StatusPending, core.StatusApproved, true},
		{core.StatusApproved, core.StatusOrdered, true},
		{core.StatusOrdered, core.StatusDelivered, true},
		{core.StatusPending, core.StatusCancelled, true},
		{core.StatusApproved, core.StatusCancelled, true},
		{core.StatusOrdered, core.StatusCancelled, true},

		{core.StatusPending, core.StatusOrdered, false},     // skips approved
		{core.StatusApproved, core.StatusPending, false},    // backward
		{core.StatusDelivered, core.StatusCancelled, false}, // terminal
		{core.StatusCancelled, core.StatusPending, false},   // absorbing
		{core.StatusDelivered, core.StatusDelivered, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransition(tt.to); got != tt.ok {
			t.Errorf("CanTransition(%s → %s) = %v, want %v", tt.from, tt.to, got, tt.ok)
		}
	}
}

func TestOrderStatus_Advance(t *testing.T) {
	s := core.StatusPending
	want := []core.OrderStatus{core.StatusApproved, core.StatusOrdered, core.StatusDelivered}
	for _, w := range want {
		n, err := s.Advance()
		if err != nil {
			t.Fatalf("Advance(%s): %v", s, err)
		}
		if n != w {
			t.Fatalf("Advance(%s) = %s, want %s", s, n, w)
		}
		s = n
	}
	if _, err := s.Advance(); err == nil {
		t.Error("Advance(delivered) should fail")
	}
	if _, err := core.StatusCancelled.Advance(); err == nil {
		t.Error("Advance(cancelled) should fail")
	}
}

// Presentation must cover every known status so list screens never render a
// blank cell when the backend adds rows in any state.
func TestOrderStatus_InfoIsExhaustive(t *testing.T) {
	for _, s := range core.AllStatuses() {
		info := s.Info()
		if info.Label == "" || info.Symbol == "" || info.Tone == "" {
			t.Errorf("status %s has incomplete presentation: %+v", s, info)
		}
	}

	unknown := core.OrderStatus("archived")
	if info := unknown.Info(); info.Label != "archived" {
		t.Errorf("unknown status should fall back to its raw name, got %q", info.Label)
	}
}

func TestValidRUT(t *testing.T) {
	valid := []string{"76.123.456-0", "76123456-0", "12.345.678-5", "60.803.000-K", "60803000-k"}
	for _, r := range valid {
		if !core.ValidRUT(r) {
			t.Errorf("ValidRUT(%q) = false, want true", r)
		}
	}
	invalid := []string{"", "1", "76.123.456-1", "12.345.678-K", "abc-0"}
	for _, r := range invalid {
		if core.ValidRUT(r) {
			t.Errorf("ValidRUT(%q) = true, want false", r)
		}
	}
}
