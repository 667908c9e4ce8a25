package repl

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"pymerp/internal/app"
	"pymerp/internal/core"
	"pymerp/internal/notify"
)

// Run starts the interactive REPL loop. It reads slash commands from reader
// and dispatches them deterministically; the poller feeds the unread badge
// shown in the prompt.
func Run(ctx context.Context, svc app.ApplicationService, poller *notify.Poller, reader *bufio.Reader) {
	user := svc.CurrentUser()

	fmt.Println("PymERP")
	fmt.Printf("Sesión: %s <%s> (%s)\n", user.Name, user.Email, user.Role)
	fmt.Println("Escriba /help para ver los comandos disponibles.")
	fmt.Println(strings.Repeat("-", 70))

	errExit := fmt.Errorf("exit")

	dispatchSlash := func(input string) error {
		tokens := strings.Fields(strings.TrimPrefix(input, "/"))
		if len(tokens) == 0 {
			return nil
		}
		cmd := strings.ToLower(tokens[0])
		args := tokens[1:]

		switch cmd {
		case "dash", "dashboard":
			printDashboard(svc.GetDashboard(ctx))

		case "notif", "notifications":
			limit := 0
			if len(args) > 0 {
				limit, _ = strconv.Atoi(args[0])
			}
			printNotifications(svc.ListNotifications(ctx, limit))

		case "read":
			if len(args) < 1 {
				fmt.Println("Uso: /read <id|all>")
				return nil
			}
			if strings.ToLower(args[0]) == "all" {
				if err := poller.MarkAllRead(ctx); err != nil {
					return err
				}
				fmt.Println("Todas las notificaciones quedaron marcadas como leídas.")
				return nil
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Printf("ID inválido: %s\n", args[0])
				return nil
			}
			if err := poller.MarkRead(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Notificación %d marcada como leída.\n", id)

		case "clients", "clientes":
			printClients(svc.ListClients(ctx))

		case "new-client":
			handleClientForm(ctx, reader, svc, nil)

		case "edit-client":
			if len(args) < 1 {
				fmt.Println("Uso: /edit-client <id>")
				return nil
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Printf("ID inválido: %s\n", args[0])
				return nil
			}
			client, ok := findClient(svc.ListClients(ctx).Clients, id)
			if !ok {
				fmt.Printf("Cliente %d no encontrado.\n", id)
				return nil
			}
			handleClientForm(ctx, reader, svc, &client)

		case "del-client":
			if len(args) < 1 {
				fmt.Println("Uso: /del-client <id>")
				return nil
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Printf("ID inválido: %s\n", args[0])
				return nil
			}
			if !confirm(reader, fmt.Sprintf("¿Eliminar el cliente %d?", id)) {
				fmt.Println("Cancelado.")
				return nil
			}
			if err := svc.DeleteClient(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Cliente %d eliminado.\n", id)

		case "invoices", "facturas":
			printInvoices(svc.ListInvoices(ctx))

		case "entries", "asientos":
			printEntries(svc.ListEntries(ctx))

		case "new-entry":
			handleNewEntry(ctx, reader, svc)

		case "edit-entry":
			if len(args) < 1 {
				fmt.Println("Uso: /edit-entry <id>")
				return nil
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Printf("ID inválido: %s\n", args[0])
				return nil
			}
			entry, ok := findEntry(svc.ListEntries(ctx).Entries, id)
			if !ok {
				fmt.Printf("Asiento %d no encontrado.\n", id)
				return nil
			}
			handleEditEntry(ctx, reader, svc, entry)

		case "report", "reporte":
			if len(args) < 1 {
				fmt.Println("Uso: /report <balance-sheet|income-statement|general-ledger> [desde] [hasta]")
				return nil
			}
			report, err := svc.GetReport(ctx, reportArgs(args))
			if err != nil {
				return err
			}
			printReport(report)

		case "report-pdf":
			if len(args) < 1 {
				fmt.Println("Uso: /report-pdf <balance-sheet|income-statement|general-ledger> [desde] [hasta]")
				return nil
			}
			path, err := svc.DownloadReport(ctx, reportArgs(args))
			if err != nil {
				return err
			}
			fmt.Printf("Reporte guardado en %s\n", path)

		case "orders", "ordenes":
			var status core.OrderStatus
			if len(args) > 0 {
				status = core.OrderStatus(strings.ToLower(args[0]))
			}
			printOrders(svc.ListPurchaseOrders(ctx, status))

		case "new-order":
			if len(args) < 1 {
				fmt.Println("Uso: /new-order <id-proveedor>")
				return nil
			}
			supplierID, err := strconv.Atoi(args[0])
			if err != nil || supplierID <= 0 {
				fmt.Printf("ID de proveedor inválido: %s\n", args[0])
				return nil
			}
			handleNewOrder(ctx, reader, svc, supplierID)

		case "status", "estado":
			if len(args) < 2 {
				fmt.Println("Uso: /status <id-orden> <pending|approved|ordered|delivered|cancelled>")
				return nil
			}
			return changeOrderStatus(ctx, svc, args[0], core.OrderStatus(strings.ToLower(args[1])))

		case "cancel-order":
			if len(args) < 1 {
				fmt.Println("Uso: /cancel-order <id-orden>")
				return nil
			}
			if !confirm(reader, fmt.Sprintf("¿Anular la orden %s?", args[0])) {
				fmt.Println("Cancelado.")
				return nil
			}
			return changeOrderStatus(ctx, svc, args[0], core.StatusCancelled)

		case "order-pdf":
			if len(args) < 1 {
				fmt.Println("Uso: /order-pdf <id-orden>")
				return nil
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Printf("ID inválido: %s\n", args[0])
				return nil
			}
			path, err := svc.DownloadOrderPDF(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("Orden guardada en %s\n", path)

		case "suppliers", "proveedores":
			printSuppliers(svc.ListSuppliers(ctx))

		case "search", "buscar":
			if len(args) < 1 {
				fmt.Println("Uso: /search <texto>")
				return nil
			}
			printSearch(svc.SearchCatalog(ctx, strings.Join(args, " ")))

		case "compare", "comparar":
			if len(args) < 1 {
				fmt.Println("Uso: /compare <producto>")
				return nil
			}
			printComparison(svc.ComparePrices(ctx, strings.Join(args, " ")))

		case "filters", "filtros":
			printFilters(svc.SupplierFilters(ctx))

		case "company", "empresa":
			printCompany(svc.CompanySettings(ctx))

		case "edit-company":
			handleCompanyForm(ctx, reader, svc)

		case "users", "usuarios":
			printUsers(svc.ListUsers(ctx))

		case "del-user":
			if len(args) < 1 {
				fmt.Println("Uso: /del-user <id>")
				return nil
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Printf("ID inválido: %s\n", args[0])
				return nil
			}
			if !confirm(reader, fmt.Sprintf("¿Eliminar el usuario %d?", id)) {
				fmt.Println("Cancelado.")
				return nil
			}
			if err := svc.DeleteUser(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Usuario %d eliminado.\n", id)

		case "user-role":
			if len(args) < 2 {
				fmt.Println("Uso: /user-role <id> <admin|user|accountant>")
				return nil
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Printf("ID inválido: %s\n", args[0])
				return nil
			}
			users := svc.ListUsers(ctx)
			if users.Fetch.Sample() {
				fmt.Println("Sin conexión con el servidor; no se pueden editar usuarios.")
				return nil
			}
			found := false
			for i := range users.Users {
				if users.Users[i].ID == id {
					users.Users[i].Role = strings.ToLower(args[1])
					found = true
				}
			}
			if !found {
				fmt.Printf("Usuario %d no encontrado.\n", id)
				return nil
			}
			if err := svc.SaveUsers(ctx, users.Users); err != nil {
				return err
			}
			fmt.Printf("Usuario %d ahora tiene rol %s.\n", id, strings.ToLower(args[1]))

		case "integrations", "integraciones":
			printIntegrations(svc.ListIntegrations(ctx))

		case "toggle-integration":
			if len(args) < 1 {
				fmt.Println("Uso: /toggle-integration <id>")
				return nil
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Printf("ID inválido: %s\n", args[0])
				return nil
			}
			integrations := svc.ListIntegrations(ctx)
			if integrations.Fetch.Sample() {
				fmt.Println("Sin conexión con el servidor; no se pueden editar integraciones.")
				return nil
			}
			found := false
			state := false
			for i := range integrations.Integrations {
				if integrations.Integrations[i].ID == id {
					integrations.Integrations[i].Enabled = !integrations.Integrations[i].Enabled
					state = integrations.Integrations[i].Enabled
					found = true
				}
			}
			if !found {
				fmt.Printf("Integración %d no encontrada.\n", id)
				return nil
			}
			if err := svc.SaveIntegrations(ctx, integrations.Integrations); err != nil {
				return err
			}
			if state {
				fmt.Printf("Integración %d habilitada.\n", id)
			} else {
				fmt.Printf("Integración %d deshabilitada.\n", id)
			}

		case "stats", "uso":
			printStats(svc.UsageStats(ctx))

		case "banks", "bancos":
			printBanks(svc.ListBanks(ctx))

		case "balance", "saldo":
			if len(args) < 2 {
				fmt.Println("Uso: /balance <código-banco> <número-cuenta>")
				return nil
			}
			balance, err := svc.BankBalance(ctx, app.BalanceRequest{BankCode: args[0], Account: args[1]})
			if err != nil {
				return err
			}
			fmt.Printf("Saldo %s cuenta %s: %s %s (consultado %s)\n",
				balance.BankCode, balance.Account, core.FormatCLP(balance.Balance),
				balance.Currency, balance.FetchedAt.Format("15:04:05"))

		case "tax", "sii":
			if len(args) < 1 {
				fmt.Println("Uso: /tax <rut>")
				return nil
			}
			status, err := svc.TaxStatus(ctx, args[0])
			if err != nil {
				return err
			}
			printTaxStatus(status)

		case "rut":
			if len(args) < 1 {
				fmt.Println("Uso: /rut <rut>")
				return nil
			}
			validation, err := svc.ValidateRUT(ctx, args[0])
			if err != nil {
				return err
			}
			if validation.Valid {
				fmt.Printf("RUT %s es válido.\n", validation.RUT)
			} else {
				fmt.Printf("RUT %s NO es válido.\n", validation.RUT)
			}

		case "help", "h":
			printHelp()

		case "exit", "quit", "e", "q":
			return errExit

		default:
			fmt.Printf("Comando desconocido: /%s  (escriba /help)\n", cmd)
		}
		return nil
	}

	for {
		if n := poller.UnreadCount(); n > 0 {
			fmt.Printf("\n(%d) > ", n)
		} else {
			fmt.Print("\n> ")
		}
		input, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			return
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if !strings.HasPrefix(input, "/") {
			fmt.Println("Los comandos comienzan con '/'. Escriba /help.")
			continue
		}
		if err := dispatchSlash(input); err != nil {
			if err == errExit {
				fmt.Println("Hasta luego.")
				return
			}
			fmt.Printf("Error: %v\n", err)
		}
	}
}

// changeOrderStatus resolves the order from the current list so the
// transition check runs against its real state.
func changeOrderStatus(ctx context.Context, svc app.ApplicationService, rawID string, target core.OrderStatus) error {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		fmt.Printf("ID inválido: %s\n", rawID)
		return nil
	}
	order, ok := findOrder(svc.ListPurchaseOrders(ctx, "").Orders, id)
	if !ok {
		fmt.Printf("Orden %d no encontrada.\n", id)
		return nil
	}
	updated, err := svc.ChangeOrderStatus(ctx, order, target)
	if err != nil {
		return err
	}
	info := updated.Status.Info()
	fmt.Printf("Orden %s ahora está %s %s.\n", updated.OrderNumber, info.Symbol, info.Label)
	return nil
}

func reportArgs(args []string) app.ReportRequest {
	req := app.ReportRequest{Type: strings.ToLower(args[0])}
	if len(args) > 1 {
		req.DateFrom = args[1]
	}
	if len(args) > 2 {
		req.DateTo = args[2]
	}
	if len(args) > 3 {
		req.Account = args[3]
	}
	return req
}

func findClient(clients []core.Client, id int) (core.Client, bool) {
	for _, c := range clients {
		if c.ID == id {
			return c, true
		}
	}
	return core.Client{}, false
}

func findEntry(entries []core.LedgerEntry, id int) (core.LedgerEntry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return core.LedgerEntry{}, false
}

func findOrder(orders []core.PurchaseOrder, id int) (core.PurchaseOrder, bool) {
	for _, o := range orders {
		if o.ID == id {
			return o, true
		}
	}
	return core.PurchaseOrder{}, false
}

func confirm(reader *bufio.Reader, question string) bool {
	fmt.Printf("%s (s/n): ", question)
	raw, _ := reader.ReadString('\n')
	raw = strings.TrimSpace(strings.ToLower(raw))
	return raw == "s" || raw == "si" || raw == "sí" || raw == "y"
}
