package core

// accountCatalog is the client-side copy of the chart of accounts used to
// auto-fill line descriptions when an account code is picked. It is a
// convenience lookup, not a source of truth: the backend validates codes.
var accountCatalog = map[string]string{
	"1101": "Caja",
	"1110": "Banco",
	"1120": "Clientes por cobrar",
	"1130": "IVA crédito fiscal",
	"1140": "Existencias",
	"1150": "Anticipos a proveedores",
	"2101": "Proveedores por pagar",
	"2110": "IVA débito fiscal",
	"2120": "Remuneraciones por pagar",
	"2130": "Préstamos bancarios",
	"3101": "Capital",
	"3110": "Utilidades acumuladas",
	"4101": "Ingresos por ventas",
	"4110": "Otros ingresos",
	"5101": "Costo de ventas",
	"5110": "Gastos de administración",
	"5120": "Remuneraciones",
	"5130": "Arriendos",
	"5140": "Servicios básicos",
}

// AccountName returns the catalog description for an account code.
func AccountName(code string) (string, bool) {
	name, ok := accountCatalog[code]
	return name, ok
}

// AccountCodes lists every catalog code in no particular order, for pickers.
func AccountCodes() []string {
	codes := make([]string, 0, len(accountCatalog))
	for code := range accountCatalog {
		codes = append(codes, code)
	}
	return codes
}
