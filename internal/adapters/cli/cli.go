// Package cli runs one-shot scriptable commands that print JSON to stdout.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"pymerp/internal/api"
	"pymerp/internal/app"
	"pymerp/internal/core"
)

// output wraps every listing so scripts can tell live data from the bundled
// samples served when the backend is down.
type output struct {
	Source api.Source `json:"source"`
	Reason string     `json:"reason,omitempty"`
	Data   any        `json:"data"`
}

func emit(fetch app.FetchInfo, data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(output{Source: fetch.Source, Reason: fetch.Reason, Data: data})
}

// Run executes a one-shot CLI command and exits.
// args is os.Args[1:] — the first element is the subcommand name.
func Run(ctx context.Context, svc app.ApplicationService, args []string) {
	switch args[0] {
	case "dashboard", "dash":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(svc.GetDashboard(ctx))

	case "notifications", "notif":
		result := svc.ListNotifications(ctx, 0)
		emit(result.Fetch, result.Notifications)

	case "clients":
		result := svc.ListClients(ctx)
		emit(result.Fetch, result.Clients)

	case "invoices":
		result := svc.ListInvoices(ctx)
		emit(result.Fetch, result.Invoices)

	case "entries":
		result := svc.ListEntries(ctx)
		emit(result.Fetch, result.Entries)

	case "orders":
		var status core.OrderStatus
		if len(args) > 1 {
			status = core.OrderStatus(args[1])
		}
		result := svc.ListPurchaseOrders(ctx, status)
		emit(result.Fetch, result.Orders)

	case "suppliers":
		result := svc.ListSuppliers(ctx)
		emit(result.Fetch, result.Suppliers)

	case "search":
		if len(args) < 2 {
			log.Fatal("Usage: app search \"<texto>\"")
		}
		result := svc.SearchCatalog(ctx, args[1])
		emit(result.Fetch, result.Result)

	case "validate-entry", "val":
		// Validates a ledger entry read from stdin without posting it.
		var entry core.LedgerEntry
		if err := json.NewDecoder(os.Stdin).Decode(&entry); err != nil {
			log.Fatalf("Invalid JSON: %v", err)
		}
		entry.Normalize()
		if err := entry.Validate(); err != nil {
			log.Fatalf("Validation failed: %v", err)
		}
		fmt.Println("El asiento es válido.")

	case "post-entry":
		var entry core.LedgerEntry
		if err := json.NewDecoder(os.Stdin).Decode(&entry); err != nil {
			log.Fatalf("Invalid JSON: %v", err)
		}
		created, err := svc.CreateEntry(ctx, core.EditEntry(entry))
		if err != nil {
			log.Fatalf("Post failed: %v", err)
		}
		fmt.Printf("Asiento %d registrado.\n", created.ID)

	case "rut":
		if len(args) < 2 {
			log.Fatal("Usage: app rut <rut>")
		}
		validation, err := svc.ValidateRUT(ctx, args[1])
		if err != nil {
			log.Fatalf("Validation error: %v", err)
		}
		if !validation.Valid {
			fmt.Printf("RUT %s NO es válido.\n", validation.RUT)
			os.Exit(1)
		}
		fmt.Printf("RUT %s es válido.\n", validation.RUT)

	default:
		log.Fatalf("Unknown command: %s\nAvailable: dashboard, notifications, clients, invoices, entries, orders, suppliers, search, validate-entry, post-entry, rut", args[0])
	}
}
