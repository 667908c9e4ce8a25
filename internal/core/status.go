package core

import "fmt"

// OrderStatus is the purchase order lifecycle state. The forward path is
// pending → approved → ordered → delivered; cancelled is absorbing and
// reachable from any non-terminal state.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusApproved  OrderStatus = "approved"
	StatusOrdered   OrderStatus = "ordered"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// next maps each state to the single forward transition.
var next = map[OrderStatus]OrderStatus{
	StatusPending:  StatusApproved,
	StatusApproved: StatusOrdered,
	StatusOrdered:  StatusDelivered,
}

// Terminal reports whether no further transition is possible.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransition reports whether moving from s to target is legal: one step
// forward, or cancellation from any non-terminal state.
func (s OrderStatus) CanTransition(target OrderStatus) bool {
	if target == StatusCancelled {
		return !s.Terminal()
	}
	return next[s] == target
}

// Advance returns the next forward state, or an error when s is terminal.
func (s OrderStatus) Advance() (OrderStatus, error) {
	n, ok := next[s]
	if !ok {
		return s, fmt.Errorf("order status %s has no forward transition", s)
	}
	return n, nil
}

// StatusInfo is the presentation of a status: label, list symbol and tone.
// The tone names a semantic color the terminal renderer maps however it
// likes; nothing branches on the raw status string outside this table.
type StatusInfo struct {
	Label  string
	Symbol string
	Tone   string // "warn", "info", "ok", "muted"
}

var statusInfo = map[OrderStatus]StatusInfo{
	StatusPending:   {Label: "Pendiente", Symbol: "○", Tone: "warn"},
	StatusApproved:  {Label: "Aprobada", Symbol: "◐", Tone: "info"},
	StatusOrdered:   {Label: "Ordenada", Symbol: "◑", Tone: "info"},
	StatusDelivered: {Label: "Entregada", Symbol: "●", Tone: "ok"},
	StatusCancelled: {Label: "Anulada", Symbol: "✕", Tone: "muted"},
}

// Info returns the presentation entry for s. Unknown statuses (a backend
// newer than this client) get a neutral fallback rather than a blank row.
func (s OrderStatus) Info() StatusInfo {
	if info, ok := statusInfo[s]; ok {
		return info
	}
	return StatusInfo{Label: string(s), Symbol: "?", Tone: "muted"}
}

// AllStatuses lists every known status in lifecycle order, for filters.
func AllStatuses() []OrderStatus {
	return []OrderStatus{StatusPending, StatusApproved, StatusOrdered, StatusDelivered, StatusCancelled}
}
