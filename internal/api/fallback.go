package api

import (
	"time"

	"github.com/shopspring/decimal"

	"pymerp/internal/core"
)

// Built-in sample datasets, adopted when a live load fails so screens keep
// rendering. Every adopter is marked SourceFallback and labeled as sample
// data in the UI; the dashboard excludes these numbers from KPIs.

func clp(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

var fallbackNotifications = []core.Notification{
	{ID: 1, Type: "invoice", Priority: "high", Title: "Factura vencida",
		Message:   "La factura F-00124 de Comercial Andina venció hace 3 días.",
		ActionURL: "/invoices/124", Read: false,
		CreatedAt: time.Date(2026, 8, 28, 9, 15, 0, 0, time.UTC)},
	{ID: 2, Type: "order", Priority: "normal", Title: "Orden aprobada",
		Message:   "La orden de compra OC-2026-018 fue aprobada.",
		Read:      false,
		CreatedAt: time.Date(2026, 8, 27, 16, 40, 0, 0, time.UTC)},
	{ID: 3, Type: "system", Priority: "low", Title: "Respaldo completado",
		Message:   "El respaldo mensual de agosto se completó sin errores.",
		Read:      true,
		CreatedAt: time.Date(2026, 8, 25, 3, 0, 0, 0, time.UTC)},
}

var fallbackClients = []core.Client{
	{ID: 1, RUT: "76.123.456-0", Name: "Comercial Andina SpA", Email: "contacto@andina.cl",
		Phone: "+56 2 2345 6789", Address: "Av. Providencia 1208", City: "Santiago", Active: true},
	{ID: 2, RUT: "77.555.888-1", Name: "Ferretería El Volcán Ltda.", Email: "ventas@elvolcan.cl",
		Phone: "+56 45 221 0034", Address: "Calle Bulnes 455", City: "Temuco", Active: true},
	{ID: 3, RUT: "12.345.678-5", Name: "María Fuentes EIRL", Email: "maria@fuentes.cl",
		Phone: "+56 9 8765 4321", Address: "Pasaje Los Aromos 12", City: "Valparaíso", Active: false},
}

var fallbackInvoices = []core.Invoice{
	{ID: 124, Number: "F-00124", ClientID: 1, Date: "2026-07-15", DueDate: "2026-08-14",
		Total: clp(1190000), Status: core.InvoiceSent},
	{ID: 125, Number: "F-00125", ClientID: 2, Date: "2026-08-01", DueDate: "2026-08-31",
		Total: clp(416500), Status: core.InvoicePaid},
	{ID: 126, Number: "F-00126", ClientID: 3, Date: "2026-08-10", DueDate: "2026-09-09",
		Total: clp(238000), Status: core.InvoiceIssued},
}

var fallbackEntries = []core.LedgerEntry{
	{
		ID: 41, Date: "2026-08-14", Reference: "F-00124", Description: "Venta Comercial Andina",
		Lines: []core.LedgerLine{
			{Account: "1120", Description: "Clientes por cobrar", Debit: clp(1190000)},
			{Account: "4101", Description: "Ingresos por ventas", Credit: clp(1000000)},
			{Account: "2110", Description: "IVA débito fiscal", Credit: clp(190000)},
		},
		TotalDebit: clp(1190000), TotalCredit: clp(1190000),
	},
	{
		ID: 42, Date: "2026-08-30", Reference: "REM-08", Description: "Remuneraciones agosto",
		Lines: []core.LedgerLine{
			{Account: "5120", Description: "Remuneraciones", Debit: clp(2400000)},
			{Account: "1110", Description: "Banco", Credit: clp(2400000)},
		},
		TotalDebit: clp(2400000), TotalCredit: clp(2400000),
	},
}

var fallbackOrders = []core.PurchaseOrder{
	{
		ID: 18, OrderNumber: "OC-2026-018", SupplierID: 1, Date: "2026-08-20",
		DeliveryDate: "2026-09-03",
		Items: []core.OrderItem{
			{Description: "Notebook Lenovo V15", Quantity: clp(1), UnitPrice: clp(500000), Total: clp(500000)},
		},
		Subtotal: clp(500000), Tax: clp(95000), Total: clp(595000), Status: core.StatusPending,
	},
	{
		ID: 17, OrderNumber: "OC-2026-017", SupplierID: 2, Date: "2026-08-05",
		DeliveryDate: "2026-08-12",
		Items: []core.OrderItem{
			{Description: "Resma papel carta", Quantity: clp(40), UnitPrice: clp(5000), Total: clp(200000)},
		},
		Subtotal: clp(200000), Tax: clp(38000), Total: clp(238000), Status: core.StatusDelivered,
	},
}

var fallbackSuppliers = []core.Supplier{
	{ID: 1, RUT: "78.901.234-2", Name: "Distribuidora Central SpA", Email: "ventas@dcentral.cl",
		Phone: "+56 2 2987 1100", Address: "Camino Lo Boza 120, Pudahuel"},
	{ID: 2, RUT: "65.432.109-4", Name: "Papeles del Sur Ltda.", Email: "pedidos@papelsur.cl",
		Phone: "+56 41 246 8800", Address: "Av. Colón 8801, Talcahuano"},
}

var fallbackSearch = core.SearchResult{
	Query: "",
	Products: []core.Product{
		{SKU: "LV15-G4", Name: "Notebook Lenovo V15 G4", Category: "Computación",
			Store: "Distribuidora Central", Price: clp(489990), Stock: 12},
		{SKU: "HP85A", Name: "Tóner HP 85A negro", Category: "Impresión",
			Store: "Papeles del Sur", Price: clp(42990), Stock: 40},
	},
}

var fallbackComparison = core.ComparisonResult{
	ProductName: "Tóner HP 85A negro",
	Offers: []core.Product{
		{SKU: "HP85A", Name: "Tóner HP 85A negro", Store: "Papeles del Sur", Price: clp(42990), Stock: 40},
		{SKU: "HP85A", Name: "Tóner HP 85A negro", Store: "Distribuidora Central", Price: clp(45490), Stock: 7},
	},
}

var fallbackCategories = []string{"Computación", "Impresión", "Oficina", "Aseo"}

var fallbackStores = []string{"Distribuidora Central", "Papeles del Sur"}

var fallbackCompany = core.CompanyConfig{
	RUT:          "76.000.111-2",
	BusinessName: "Servicios PymERP Demo SpA",
	FantasyName:  "PymERP Demo",
	Activity:     "Comercio al por menor",
	Address:      "Av. Apoquindo 4501, of. 703",
	City:         "Santiago",
	Email:        "hola@pymerp.cl",
	Phone:        "+56 2 2750 9000",
}

var fallbackUsers = []core.User{
	{ID: 1, Email: "admin@pymerp.cl", Name: "Administrador", Role: "admin", Active: true},
	{ID: 2, Email: "contadora@pymerp.cl", Name: "María Soto", Role: "accountant", Active: true},
}

var fallbackIntegrations = []core.Integration{
	{ID: 1, Name: "SII", Kind: "sii", Enabled: true},
	{ID: 2, Name: "Banco de Chile", Kind: "banking", Enabled: false},
	{ID: 3, Name: "Buscador de proveedores", Kind: "supplier", Enabled: true},
}

var fallbackStats = core.UsageStats{
	Invoices: 126, Clients: 3, Entries: 42, StorageUsedMB: 180, Plan: "pyme",
}

var fallbackBanks = []core.Bank{
	{Code: "001", Name: "Banco de Chile"},
	{Code: "012", Name: "Banco Estado"},
	{Code: "016", Name: "Bci"},
	{Code: "037", Name: "Santander"},
}
