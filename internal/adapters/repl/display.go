package repl

import (
	"fmt"
	"strings"

	"pymerp/internal/app"
	"pymerp/internal/core"
	"pymerp/internal/dashboard"
)

// printFetchNote labels sample data. Every list screen calls it so bundled
// data can never pass for live backend state.
func printFetchNote(f app.FetchInfo) {
	if f.Sample() {
		fmt.Printf("  [datos de ejemplo: sin conexión con el servidor (%s)]\n", f.Reason)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func printDashboard(sum dashboard.Summary) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("  RESUMEN — %s\n", sum.GeneratedAt.Format("2006-01-02 15:04"))
	fmt.Println(strings.Repeat("=", 70))

	section := func(name string, degraded bool, reason string, body func()) {
		fmt.Printf("  %s\n", name)
		if degraded {
			fmt.Printf("    sin datos (%s)\n", reason)
			return
		}
		body()
	}

	section("FACTURACIÓN", sum.Invoices.Degraded, sum.Invoices.Reason, func() {
		fmt.Printf("    Facturas: %d   Vencidas: %d por %s\n",
			sum.Invoices.Count, sum.Invoices.OverdueCount, core.FormatCLP(sum.Invoices.OverdueAmount))
	})
	section("ÓRDENES DE COMPRA", sum.Orders.Degraded, sum.Orders.Reason, func() {
		fmt.Printf("    Órdenes: %d   Pendiente: %s   Entregado: %s\n",
			sum.Orders.Count, core.FormatCLP(sum.Orders.PendingAmount), core.FormatCLP(sum.Orders.DeliveredAmount))
	})
	section("CLIENTES", sum.Clients.Degraded, sum.Clients.Reason, func() {
		fmt.Printf("    Total: %d   Activos: %d\n", sum.Clients.Total, sum.Clients.Active)
	})
	section("CONTABILIDAD", sum.Ledger.Degraded, sum.Ledger.Reason, func() {
		fmt.Printf("    Asientos: %d   Debe: %s   Haber: %s\n",
			sum.Ledger.Entries, core.FormatCLP(sum.Ledger.DebitVolume), core.FormatCLP(sum.Ledger.CreditVolume))
	})
	section("NOTIFICACIONES", sum.Notifications.Degraded, sum.Notifications.Reason, func() {
		fmt.Printf("    Sin leer: %d\n", sum.Notifications.Unread)
	})
	fmt.Println(strings.Repeat("=", 70))
}

func printNotifications(result *app.NotificationListResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 72))
	fmt.Printf("  NOTIFICACIONES — %d sin leer\n", result.Unread)
	fmt.Println(strings.Repeat("=", 72))
	printFetchNote(result.Fetch)
	if len(result.Notifications) == 0 {
		fmt.Println("  No hay notificaciones.")
		fmt.Println(strings.Repeat("=", 72))
		return
	}
	for _, n := range result.Notifications {
		marker := " "
		if !n.Read {
			marker = "●"
		}
		fmt.Printf("  %s %-4d %-8s %-28s %s\n",
			marker, n.ID, n.Priority, truncate(n.Title, 28), truncate(n.Message, 24))
	}
	fmt.Println(strings.Repeat("=", 72))
}

func printClients(result *app.ClientListResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 76))
	fmt.Println("  CLIENTES")
	fmt.Println(strings.Repeat("=", 76))
	printFetchNote(result.Fetch)
	if len(result.Clients) == 0 {
		fmt.Println("  No hay clientes.")
		fmt.Println(strings.Repeat("=", 76))
		return
	}
	fmt.Printf("  %-5s %-13s %-26s %-22s %s\n", "ID", "RUT", "NOMBRE", "EMAIL", "ACTIVO")
	fmt.Println(strings.Repeat("-", 76))
	for _, c := range result.Clients {
		active := "no"
		if c.Active {
			active = "sí"
		}
		fmt.Printf("  %-5d %-13s %-26s %-22s %s\n",
			c.ID, c.RUT, truncate(c.Name, 26), truncate(c.Email, 22), active)
	}
	fmt.Println(strings.Repeat("=", 76))
}

var invoiceStatusLabels = map[core.InvoiceStatus]string{
	core.InvoiceIssued: "Emitida",
	core.InvoiceSent:   "Enviada",
	core.InvoicePaid:   "Pagada",
	core.InvoiceVoided: "Anulada",
}

func invoiceStatusLabel(s core.InvoiceStatus) string {
	if label, ok := invoiceStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

func printInvoices(result *app.InvoiceListResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 72))
	fmt.Println("  FACTURAS")
	fmt.Println(strings.Repeat("=", 72))
	printFetchNote(result.Fetch)
	if len(result.Invoices) == 0 {
		fmt.Println("  No hay facturas.")
		fmt.Println(strings.Repeat("=", 72))
		return
	}
	fmt.Printf("  %-5s %-10s %-12s %-12s %-10s %14s\n", "ID", "NÚMERO", "EMISIÓN", "VENCE", "ESTADO", "TOTAL")
	fmt.Println(strings.Repeat("-", 72))
	for _, inv := range result.Invoices {
		fmt.Printf("  %-5d %-10s %-12s %-12s %-10s %14s\n",
			inv.ID, inv.Number, inv.Date, inv.DueDate, invoiceStatusLabel(inv.Status), core.FormatCLP(inv.Total))
	}
	fmt.Println(strings.Repeat("=", 72))
}

func printEntries(result *app.EntryListResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 78))
	fmt.Println("  LIBRO DIARIO")
	fmt.Println(strings.Repeat("=", 78))
	printFetchNote(result.Fetch)
	if len(result.Entries) == 0 {
		fmt.Println("  No hay asientos.")
		fmt.Println(strings.Repeat("=", 78))
		return
	}
	fmt.Printf("  %-5s %-12s %-12s %-28s %14s\n", "ID", "FECHA", "REF", "GLOSA", "TOTAL")
	fmt.Println(strings.Repeat("-", 78))
	for _, e := range result.Entries {
		fmt.Printf("  %-5d %-12s %-12s %-28s %14s\n",
			e.ID, e.Date, e.Reference, truncate(e.Description, 28), core.FormatCLP(e.TotalDebit))
	}
	fmt.Println(strings.Repeat("=", 78))
}

func printEntryDetail(e *core.LedgerEntry) {
	fmt.Println()
	fmt.Println(strings.Repeat("-", 72))
	fmt.Printf("  Asiento:  %d\n", e.ID)
	fmt.Printf("  Fecha:    %s\n", e.Date)
	fmt.Printf("  Ref:      %s\n", e.Reference)
	fmt.Printf("  Glosa:    %s\n", e.Description)
	fmt.Println(strings.Repeat("-", 72))
	fmt.Printf("  %-8s %-30s %14s %14s\n", "CUENTA", "DETALLE", "DEBE", "HABER")
	fmt.Println(strings.Repeat("-", 72))
	for _, l := range e.Lines {
		fmt.Printf("  %-8s %-30s %14s %14s\n",
			l.Account, truncate(l.Description, 30), core.FormatCLP(l.Debit), core.FormatCLP(l.Credit))
	}
	fmt.Println(strings.Repeat("-", 72))
	fmt.Printf("  %-39s %14s %14s\n", "TOTALES", core.FormatCLP(e.TotalDebit), core.FormatCLP(e.TotalCredit))
	fmt.Println(strings.Repeat("-", 72))
}

func printReport(r *core.FinancialReport) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("  REPORTE: %s", r.Type)
	if r.DateFrom != "" || r.DateTo != "" {
		fmt.Printf("  (%s a %s)", r.DateFrom, r.DateTo)
	}
	fmt.Println()
	fmt.Println(strings.Repeat("=", 70))
	for _, section := range r.Sections {
		fmt.Printf("  %s\n", strings.ToUpper(section.Name))
		fmt.Println(strings.Repeat("-", 70))
		for _, line := range section.Lines {
			fmt.Printf("  %-8s %-40s %16s\n", line.Account, truncate(line.Name, 40), core.FormatCLP(line.Amount))
		}
		fmt.Printf("  %-49s %16s\n", "TOTAL "+strings.ToUpper(section.Name), core.FormatCLP(section.Total))
		fmt.Println(strings.Repeat("-", 70))
	}
	fmt.Println(strings.Repeat("=", 70))
}

func printOrders(result *app.OrderListResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 78))
	fmt.Println("  ÓRDENES DE COMPRA")
	fmt.Println(strings.Repeat("=", 78))
	printFetchNote(result.Fetch)
	if len(result.Orders) == 0 {
		fmt.Println("  No hay órdenes.")
		fmt.Println(strings.Repeat("=", 78))
		return
	}
	fmt.Printf("  %-5s %-14s %-6s %-12s %-14s %14s\n", "ID", "NÚMERO", "PROV", "FECHA", "ESTADO", "TOTAL")
	fmt.Println(strings.Repeat("-", 78))
	for _, o := range result.Orders {
		info := o.Status.Info()
		fmt.Printf("  %-5d %-14s %-6d %-12s %s %-12s %14s\n",
			o.ID, o.OrderNumber, o.SupplierID, o.Date, info.Symbol, info.Label, core.FormatCLP(o.Total))
	}
	fmt.Println(strings.Repeat("=", 78))
}

func printOrderDetail(o *core.PurchaseOrder) {
	info := o.Status.Info()
	fmt.Println()
	fmt.Println(strings.Repeat("-", 72))
	fmt.Printf("  Orden:     %s (ID %d)\n", o.OrderNumber, o.ID)
	fmt.Printf("  Proveedor: %d\n", o.SupplierID)
	fmt.Printf("  Estado:    %s %s\n", info.Symbol, info.Label)
	fmt.Printf("  Fecha:     %s", o.Date)
	if o.DeliveryDate != "" {
		fmt.Printf("   Entrega: %s", o.DeliveryDate)
	}
	fmt.Println()
	fmt.Println(strings.Repeat("-", 72))
	fmt.Printf("  %-34s %8s %12s %12s\n", "DESCRIPCIÓN", "CANT", "PRECIO", "TOTAL")
	fmt.Println(strings.Repeat("-", 72))
	for _, it := range o.Items {
		fmt.Printf("  %-34s %8s %12s %12s\n",
			truncate(it.Description, 34), it.Quantity.String(),
			core.FormatCLP(it.UnitPrice), core.FormatCLP(it.Total))
	}
	fmt.Println(strings.Repeat("-", 72))
	fmt.Printf("  %-44s %24s\n", "Neto", core.FormatCLP(o.Subtotal))
	fmt.Printf("  %-44s %24s\n", "IVA (19%)", core.FormatCLP(o.Tax))
	fmt.Printf("  %-44s %24s\n", "TOTAL", core.FormatCLP(o.Total))
	fmt.Println(strings.Repeat("-", 72))
}

func printSuppliers(result *app.SupplierListResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 72))
	fmt.Println("  PROVEEDORES")
	fmt.Println(strings.Repeat("=", 72))
	printFetchNote(result.Fetch)
	if len(result.Suppliers) == 0 {
		fmt.Println("  No hay proveedores.")
		fmt.Println(strings.Repeat("=", 72))
		return
	}
	fmt.Printf("  %-5s %-13s %-28s %s\n", "ID", "RUT", "NOMBRE", "EMAIL")
	fmt.Println(strings.Repeat("-", 72))
	for _, s := range result.Suppliers {
		fmt.Printf("  %-5d %-13s %-28s %s\n", s.ID, s.RUT, truncate(s.Name, 28), s.Email)
	}
	fmt.Println(strings.Repeat("=", 72))
}

func printSearch(result *app.CatalogSearchResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 80))
	fmt.Printf("  CATÁLOGO — búsqueda: %q\n", result.Result.Query)
	fmt.Println(strings.Repeat("=", 80))
	printFetchNote(result.Fetch)
	if len(result.Result.Products) == 0 {
		fmt.Println("  Sin resultados.")
		fmt.Println(strings.Repeat("=", 80))
		return
	}
	fmt.Printf("  %-10s %-30s %-12s %-10s %12s %6s\n", "SKU", "PRODUCTO", "TIENDA", "CATEGORÍA", "PRECIO", "STOCK")
	fmt.Println(strings.Repeat("-", 80))
	for _, p := range result.Result.Products {
		fmt.Printf("  %-10s %-30s %-12s %-10s %12s %6d\n",
			p.SKU, truncate(p.Name, 30), truncate(p.Store, 12), truncate(p.Category, 10),
			core.FormatCLP(p.Price), p.Stock)
	}
	fmt.Println(strings.Repeat("=", 80))
}

func printComparison(result *app.PriceComparisonResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 64))
	fmt.Printf("  COMPARACIÓN DE PRECIOS — %s\n", result.Result.ProductName)
	fmt.Println(strings.Repeat("=", 64))
	printFetchNote(result.Fetch)
	if len(result.Result.Offers) == 0 {
		fmt.Println("  Sin ofertas.")
		fmt.Println(strings.Repeat("=", 64))
		return
	}
	fmt.Printf("  %-16s %12s %8s\n", "TIENDA", "PRECIO", "STOCK")
	fmt.Println(strings.Repeat("-", 64))
	for i, offer := range result.Result.Offers {
		marker := " "
		if i == 0 {
			marker = "*" // cheapest
		}
		fmt.Printf("%s %-16s %12s %8d\n", marker, offer.Store, core.FormatCLP(offer.Price), offer.Stock)
	}
	fmt.Println(strings.Repeat("=", 64))
}

func printFilters(result *app.SupplierFiltersResult) {
	fmt.Println()
	printFetchNote(result.Fetch)
	fmt.Printf("  Categorías: %s\n", strings.Join(result.Categories, ", "))
	fmt.Printf("  Tiendas:    %s\n", strings.Join(result.Stores, ", "))
}

func printCompany(result *app.CompanySettingsResult) {
	c := result.Company
	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("  EMPRESA")
	fmt.Println(strings.Repeat("=", 60))
	printFetchNote(result.Fetch)
	fmt.Printf("  RUT:           %s\n", c.RUT)
	fmt.Printf("  Razón social:  %s\n", c.BusinessName)
	fmt.Printf("  Fantasía:      %s\n", c.FantasyName)
	fmt.Printf("  Giro:          %s\n", c.Activity)
	fmt.Printf("  Dirección:     %s, %s\n", c.Address, c.City)
	fmt.Printf("  Email:         %s\n", c.Email)
	fmt.Printf("  Teléfono:      %s\n", c.Phone)
	fmt.Println(strings.Repeat("=", 60))
}

func printUsers(result *app.UserListResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 70))
	fmt.Println("  USUARIOS")
	fmt.Println(strings.Repeat("=", 70))
	printFetchNote(result.Fetch)
	fmt.Printf("  %-5s %-26s %-20s %-12s %s\n", "ID", "EMAIL", "NOMBRE", "ROL", "ACTIVO")
	fmt.Println(strings.Repeat("-", 70))
	for _, u := range result.Users {
		active := "no"
		if u.Active {
			active = "sí"
		}
		fmt.Printf("  %-5d %-26s %-20s %-12s %s\n",
			u.ID, truncate(u.Email, 26), truncate(u.Name, 20), u.Role, active)
	}
	fmt.Println(strings.Repeat("=", 70))
}

func printIntegrations(result *app.IntegrationListResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("  INTEGRACIONES")
	fmt.Println(strings.Repeat("=", 60))
	printFetchNote(result.Fetch)
	for _, ing := range result.Integrations {
		state := "deshabilitada"
		if ing.Enabled {
			state = "habilitada"
		}
		fmt.Printf("  %-4d %-24s %-10s %s\n", ing.ID, truncate(ing.Name, 24), ing.Kind, state)
	}
	fmt.Println(strings.Repeat("=", 60))
}

func printStats(result *app.UsageStatsResult) {
	s := result.Stats
	fmt.Println()
	printFetchNote(result.Fetch)
	fmt.Printf("  Plan: %s\n", s.Plan)
	fmt.Printf("  Facturas: %d   Clientes: %d   Asientos: %d\n", s.Invoices, s.Clients, s.Entries)
	fmt.Printf("  Almacenamiento: %d MB\n", s.StorageUsedMB)
}

func printBanks(result *app.BankListResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 48))
	fmt.Println("  BANCOS")
	fmt.Println(strings.Repeat("=", 48))
	printFetchNote(result.Fetch)
	for _, b := range result.Banks {
		fmt.Printf("  %-6s %s\n", b.Code, b.Name)
	}
	fmt.Println(strings.Repeat("=", 48))
}

func printTaxStatus(s *core.TaxStatus) {
	state := "NO vigente"
	if s.Active {
		state = "vigente"
	}
	fmt.Println()
	fmt.Printf("  RUT:           %s\n", s.RUT)
	fmt.Printf("  Razón social:  %s\n", s.BusinessName)
	fmt.Printf("  Situación:     %s\n", state)
	fmt.Printf("  Segmento:      %s\n", s.Segment)
	fmt.Printf("  Última decl.:  %s\n", s.LastFiling)
}

func printHelp() {
	fmt.Println()
	fmt.Println("PYMERP — COMANDOS")
	fmt.Println(strings.Repeat("=", 66))
	fmt.Println()
	fmt.Println("  GENERAL")
	fmt.Println("  /dash                         Resumen con indicadores")
	fmt.Println("  /notif [n]                    Últimas notificaciones")
	fmt.Println("  /read <id|all>                Marcar notificación(es) como leída(s)")
	fmt.Println()
	fmt.Println("  CLIENTES Y FACTURAS")
	fmt.Println("  /clients                      Listar clientes")
	fmt.Println("  /new-client                   Crear cliente (interactivo)")
	fmt.Println("  /edit-client <id>             Editar cliente")
	fmt.Println("  /del-client <id>              Eliminar cliente")
	fmt.Println("  /invoices                     Listar facturas")
	fmt.Println()
	fmt.Println("  CONTABILIDAD")
	fmt.Println("  /entries                      Libro diario")
	fmt.Println("  /new-entry                    Nuevo asiento (interactivo)")
	fmt.Println("  /edit-entry <id>              Editar asiento")
	fmt.Println("  /report <tipo> [desde] [hasta]     Ver reporte en pantalla")
	fmt.Println("  /report-pdf <tipo> [desde] [hasta] Descargar reporte en PDF")
	fmt.Println("      tipos: balance-sheet, income-statement, general-ledger")
	fmt.Println()
	fmt.Println("  ÓRDENES DE COMPRA")
	fmt.Println("  /orders [estado]              Listar órdenes")
	fmt.Println("  /new-order <id-proveedor>     Nueva orden (interactivo)")
	fmt.Println("  /status <id> <estado>         Cambiar estado (un paso adelante)")
	fmt.Println("  /cancel-order <id>            Anular orden")
	fmt.Println("  /order-pdf <id>               Descargar orden en PDF")
	fmt.Println()
	fmt.Println("  PROVEEDORES")
	fmt.Println("  /suppliers                    Listar proveedores")
	fmt.Println("  /search <texto>               Buscar en catálogos de proveedores")
	fmt.Println("  /compare <producto>           Comparar precios entre tiendas")
	fmt.Println("  /filters                      Categorías y tiendas disponibles")
	fmt.Println()
	fmt.Println("  CONFIGURACIÓN")
	fmt.Println("  /company                      Datos de la empresa")
	fmt.Println("  /edit-company                 Editar datos de la empresa")
	fmt.Println("  /users                        Listar usuarios")
	fmt.Println("  /user-role <id> <rol>         Cambiar rol de un usuario")
	fmt.Println("  /del-user <id>                Eliminar usuario")
	fmt.Println("  /integrations                 Integraciones")
	fmt.Println("  /toggle-integration <id>      Habilitar/deshabilitar integración")
	fmt.Println("  /stats                        Uso del plan")
	fmt.Println()
	fmt.Println("  BANCOS Y SII")
	fmt.Println("  /banks                        Bancos disponibles")
	fmt.Println("  /balance <banco> <cuenta>     Consultar saldo bancario")
	fmt.Println("  /tax <rut>                    Situación tributaria (SII)")
	fmt.Println("  /rut <rut>                    Validar dígito verificador")
	fmt.Println()
	fmt.Println("  SESIÓN")
	fmt.Println("  /help                         Esta ayuda")
	fmt.Println("  /exit                         Salir")
	fmt.Println(strings.Repeat("=", 66))
}
