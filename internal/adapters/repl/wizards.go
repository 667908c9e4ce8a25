package repl

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"pymerp/internal/app"
	"pymerp/internal/core"
)

// prompt asks for one field, keeping current on empty input.
func prompt(reader *bufio.Reader, label, current string) string {
	if current != "" {
		fmt.Printf("%s [%s]: ", label, current)
	} else {
		fmt.Printf("%s: ", label)
	}
	raw, _ := reader.ReadString('\n')
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return current
	}
	return raw
}

// handleNewEntry runs the interactive editor over a fresh two-line form.
func handleNewEntry(ctx context.Context, reader *bufio.Reader, svc app.ApplicationService) {
	form := core.NewEntryForm()
	runEntryEditor(reader, form, func(f *core.EntryForm) error {
		entry, err := svc.CreateEntry(ctx, f)
		if err != nil {
			return err
		}
		fmt.Printf("\nAsiento %d registrado.\n", entry.ID)
		printEntryDetail(entry)
		return nil
	})
}

// handleEditEntry pre-fills the editor from an existing entry.
func handleEditEntry(ctx context.Context, reader *bufio.Reader, svc app.ApplicationService, existing core.LedgerEntry) {
	form := core.EditEntry(existing)
	runEntryEditor(reader, form, func(f *core.EntryForm) error {
		entry, err := svc.UpdateEntry(ctx, existing.ID, f)
		if err != nil {
			return err
		}
		fmt.Printf("\nAsiento %d actualizado.\n", entry.ID)
		printEntryDetail(entry)
		return nil
	})
}

// runEntryEditor drives the multi-line entry form. Each data row fills the
// next line of the form; the form enforces the two-line floor, the
// debit/credit exclusivity and the derived totals.
func runEntryEditor(reader *bufio.Reader, form *core.EntryForm, save func(*core.EntryForm) error) {
	form.Date = prompt(reader, "Fecha (YYYY-MM-DD, vacío = hoy)", form.Date)
	form.Reference = prompt(reader, "Referencia", form.Reference)
	form.Description = prompt(reader, "Glosa", form.Description)

	fmt.Println()
	fmt.Println("Líneas del asiento. Formato: <cuenta> <d|h> <monto> [detalle]")
	fmt.Println("  Ejemplo: 1110 d 119.000")
	fmt.Println("  Ejemplo: 4101 h 100000 Venta de servicios")
	fmt.Println("Comandos: rm <n> elimina la línea n, ok guarda, cancel aborta.")

	next := 0
	showEntryForm(form)
	for {
		fmt.Printf("  Línea %d: ", next+1)
		raw, _ := reader.ReadString('\n')
		raw = strings.TrimSpace(raw)
		switch strings.ToLower(raw) {
		case "cancel":
			fmt.Println("Asiento descartado.")
			return
		case "ok":
			if err := save(form); err != nil {
				fmt.Printf("No se pudo guardar: %v\n", err)
				continue
			}
			return
		case "":
			continue
		}

		if rest, ok := strings.CutPrefix(strings.ToLower(raw), "rm "); ok {
			i, err := strconv.Atoi(strings.TrimSpace(rest))
			if err != nil || !form.RemoveLine(i-1) {
				fmt.Println("  No se puede eliminar esa línea (mínimo dos líneas).")
				continue
			}
			if next > 0 {
				next--
			}
			showEntryForm(form)
			continue
		}

		parts := strings.Fields(raw)
		if len(parts) < 3 {
			fmt.Println("  Formato inválido. Use: <cuenta> <d|h> <monto> [detalle]")
			continue
		}
		side := strings.ToLower(parts[1])
		if side != "d" && side != "h" {
			fmt.Println("  Indique d (debe) o h (haber).")
			continue
		}
		amount := core.ParseAmount(parts[2])
		if amount.IsZero() {
			fmt.Printf("  Monto inválido: %s\n", parts[2])
			continue
		}

		for next >= form.LineCount() {
			form.AddLine()
		}
		form.SetAccount(next, parts[0])
		if len(parts) > 3 {
			form.SetLineDescription(next, strings.Join(parts[3:], " "))
		}
		if side == "d" {
			form.SetDebit(next, amount)
		} else {
			form.SetCredit(next, amount)
		}
		next++
		showEntryForm(form)
	}
}

func showEntryForm(form *core.EntryForm) {
	fmt.Println()
	for i, l := range form.Lines() {
		fmt.Printf("  %2d. %-8s %-26s %12s %12s\n",
			i+1, l.Account, truncate(l.Description, 26), core.FormatCLP(l.Debit), core.FormatCLP(l.Credit))
	}
	balance := "DESCUADRADO"
	if form.Balanced() {
		balance = "cuadrado"
	}
	fmt.Printf("      Debe %s / Haber %s (%s)\n",
		core.FormatCLP(form.TotalDebit()), core.FormatCLP(form.TotalCredit()), balance)
}

// handleNewOrder runs the interactive purchase order creation session.
func handleNewOrder(ctx context.Context, reader *bufio.Reader, svc app.ApplicationService, supplierID int) {
	form := core.NewOrderForm(supplierID)
	form.Date = prompt(reader, "Fecha (YYYY-MM-DD, vacío = hoy)", "")
	form.DeliveryDate = prompt(reader, "Fecha de entrega (opcional)", "")

	fmt.Println()
	fmt.Println("Ítems de la orden. Formato: <cantidad> <precio-unitario> <descripción>")
	fmt.Println("  Ejemplo: 10 45.000 Resmas papel carta")
	fmt.Println("Comandos: rm <n> elimina el ítem n, ok guarda, cancel aborta.")

	next := 0
	for {
		fmt.Printf("  Ítem %d: ", next+1)
		raw, _ := reader.ReadString('\n')
		raw = strings.TrimSpace(raw)
		switch strings.ToLower(raw) {
		case "cancel":
			fmt.Println("Orden descartada.")
			return
		case "ok":
			order, err := svc.CreatePurchaseOrder(ctx, form)
			if err != nil {
				fmt.Printf("No se pudo crear la orden: %v\n", err)
				continue
			}
			fmt.Printf("\nOrden creada: %s\n", order.OrderNumber)
			printOrderDetail(order)
			return
		case "":
			continue
		}

		if rest, ok := strings.CutPrefix(strings.ToLower(raw), "rm "); ok {
			i, err := strconv.Atoi(strings.TrimSpace(rest))
			if err != nil || !form.RemoveItem(i-1) {
				fmt.Println("  No se puede eliminar ese ítem (mínimo un ítem).")
				continue
			}
			if next > 0 {
				next--
			}
			showOrderForm(form)
			continue
		}

		parts := strings.Fields(raw)
		if len(parts) < 3 {
			fmt.Println("  Formato inválido. Use: <cantidad> <precio-unitario> <descripción>")
			continue
		}
		qty := core.ParseAmount(parts[0])
		if qty.IsZero() {
			fmt.Printf("  Cantidad inválida: %s\n", parts[0])
			continue
		}
		price := core.ParseAmount(parts[1])
		if price.IsZero() {
			fmt.Printf("  Precio inválido: %s\n", parts[1])
			continue
		}

		for next >= form.ItemCount() {
			form.AddItem()
		}
		form.SetQuantity(next, qty)
		form.SetUnitPrice(next, price)
		form.SetDescription(next, strings.Join(parts[2:], " "))
		next++
		showOrderForm(form)
	}
}

func showOrderForm(form *core.OrderForm) {
	fmt.Println()
	for i, it := range form.Items() {
		fmt.Printf("  %2d. %-32s %8s %12s %12s\n",
			i+1, truncate(it.Description, 32), it.Quantity.String(),
			core.FormatCLP(it.UnitPrice), core.FormatCLP(it.Total))
	}
	fmt.Printf("      Neto %s + IVA %s = %s\n",
		core.FormatCLP(form.Subtotal()), core.FormatCLP(form.Tax()), core.FormatCLP(form.Total()))
}

// handleClientForm creates or edits one customer record. A nil existing
// means create.
func handleClientForm(ctx context.Context, reader *bufio.Reader, svc app.ApplicationService, existing *core.Client) {
	var req app.ClientRequest
	if existing != nil {
		req = app.ClientRequest{
			RUT: existing.RUT, Name: existing.Name, Email: existing.Email,
			Phone: existing.Phone, Address: existing.Address, City: existing.City,
			Active: existing.Active,
		}
	} else {
		req.Active = true
	}

	req.RUT = prompt(reader, "RUT", req.RUT)
	req.Name = prompt(reader, "Nombre", req.Name)
	req.Email = prompt(reader, "Email", req.Email)
	req.Phone = prompt(reader, "Teléfono", req.Phone)
	req.Address = prompt(reader, "Dirección", req.Address)
	req.City = prompt(reader, "Ciudad", req.City)
	req.Active = confirm(reader, "¿Cliente activo?")

	var (
		client *core.Client
		err    error
	)
	if existing != nil {
		client, err = svc.UpdateClient(ctx, existing.ID, req)
	} else {
		client, err = svc.CreateClient(ctx, req)
	}
	if err != nil {
		fmt.Printf("No se pudo guardar el cliente: %v\n", err)
		return
	}
	fmt.Printf("Cliente %d guardado: %s (%s)\n", client.ID, client.Name, client.RUT)
}

// handleCompanyForm edits the company record pre-filled from the backend.
func handleCompanyForm(ctx context.Context, reader *bufio.Reader, svc app.ApplicationService) {
	current := svc.CompanySettings(ctx)
	if current.Fetch.Sample() {
		fmt.Println("Sin conexión con el servidor; no se puede editar la empresa.")
		return
	}
	c := current.Company

	req := app.CompanyRequest{
		RUT:          prompt(reader, "RUT", c.RUT),
		BusinessName: prompt(reader, "Razón social", c.BusinessName),
		FantasyName:  prompt(reader, "Nombre de fantasía", c.FantasyName),
		Activity:     prompt(reader, "Giro", c.Activity),
		Address:      prompt(reader, "Dirección", c.Address),
		City:         prompt(reader, "Ciudad", c.City),
		Email:        prompt(reader, "Email", c.Email),
		Phone:        prompt(reader, "Teléfono", c.Phone),
	}
	if err := svc.SaveCompanySettings(ctx, req); err != nil {
		fmt.Printf("No se pudo guardar: %v\n", err)
		return
	}
	fmt.Println("Datos de la empresa guardados.")
}
