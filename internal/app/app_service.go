package app

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"pymerp/internal/api"
	"pymerp/internal/core"
	"pymerp/internal/dashboard"
	"pymerp/internal/session"
)

type appService struct {
	api         *api.Client
	board       *dashboard.Aggregator
	sess        *session.Session
	validate    *validator.Validate
	downloadDir string
	log         zerolog.Logger
}

// NewAppService constructs an appService that satisfies ApplicationService.
func NewAppService(client *api.Client, sess *session.Session, downloadDir string, log zerolog.Logger) ApplicationService {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("rut", func(fl validator.FieldLevel) bool {
		return core.ValidRUT(fl.Field().String())
	})
	return &appService{
		api:         client,
		board:       dashboard.New(client, log),
		sess:        sess,
		validate:    v,
		downloadDir: downloadDir,
		log:         log.With().Str("component", "app").Logger(),
	}
}

// CurrentUser returns the identity of the active session.
func (s *appService) CurrentUser() session.Identity {
	return s.sess.Identity()
}

// GetDashboard derives the home-screen KPIs from live data only.
func (s *appService) GetDashboard(ctx context.Context) dashboard.Summary {
	return s.board.Load(ctx, nowFunc())
}

// ListNotifications returns the newest notifications.
func (s *appService) ListNotifications(ctx context.Context, limit int) *NotificationListResult {
	res := s.api.ListNotifications(ctx, limit)
	unread := 0
	for _, n := range res.Data {
		if !n.Read {
			unread++
		}
	}
	return &NotificationListResult{Notifications: res.Data, Unread: unread, Fetch: fetchInfo(res)}
}

// MarkNotificationRead flips one notification to read on the backend.
func (s *appService) MarkNotificationRead(ctx context.Context, id int) error {
	return s.api.MarkNotificationRead(ctx, id)
}

// MarkAllNotificationsRead flips every unread notification to read.
func (s *appService) MarkAllNotificationsRead(ctx context.Context) error {
	return s.api.MarkAllNotificationsRead(ctx)
}

// ListClients returns the customer base.
func (s *appService) ListClients(ctx context.Context) *ClientListResult {
	res := s.api.ListClients(ctx)
	return &ClientListResult{Clients: res.Data, Fetch: fetchInfo(res)}
}

// CreateClient validates and creates a customer record.
func (s *appService) CreateClient(ctx context.Context, req ClientRequest) (*core.Client, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid client: %w", err)
	}
	created, err := s.api.CreateClient(ctx, clientFromRequest(0, req))
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateClient validates and replaces a customer record.
func (s *appService) UpdateClient(ctx context.Context, id int, req ClientRequest) (*core.Client, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid client: %w", err)
	}
	updated, err := s.api.UpdateClient(ctx, clientFromRequest(id, req))
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteClient removes a customer record.
func (s *appService) DeleteClient(ctx context.Context, id int) error {
	return s.api.DeleteClient(ctx, id)
}

// ListInvoices returns the sales invoices, newest first.
func (s *appService) ListInvoices(ctx context.Context) *InvoiceListResult {
	res := s.api.ListInvoices(ctx)
	return &InvoiceListResult{Invoices: res.Data, Fetch: fetchInfo(res)}
}

// ListEntries returns the ledger entries, newest first.
func (s *appService) ListEntries(ctx context.Context) *EntryListResult {
	res := s.api.ListEntries(ctx)
	return &EntryListResult{Entries: res.Data, Fetch: fetchInfo(res)}
}

// CreateEntry validates the form, materializes totals and posts the entry.
func (s *appService) CreateEntry(ctx context.Context, form *core.EntryForm) (*core.LedgerEntry, error) {
	entry, err := form.Entry()
	if err != nil {
		return nil, err
	}
	created, err := s.api.CreateEntry(ctx, entry, uuid.NewString())
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateEntry validates the form and replaces the entry with the given ID.
func (s *appService) UpdateEntry(ctx context.Context, id int, form *core.EntryForm) (*core.LedgerEntry, error) {
	entry, err := form.Entry()
	if err != nil {
		return nil, err
	}
	entry.ID = id
	updated, err := s.api.UpdateEntry(ctx, entry)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// GetReport fetches a financial report for on-screen rendering.
func (s *appService) GetReport(ctx context.Context, req ReportRequest) (*core.FinancialReport, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid report request: %w", err)
	}

	var (
		report core.FinancialReport
		err    error
	)
	switch req.Type {
	case "balance-sheet":
		report, err = s.api.BalanceSheet(ctx, req.DateTo)
	case "income-statement":
		report, err = s.api.IncomeStatement(ctx, req.DateFrom, req.DateTo)
	case "general-ledger":
		report, err = s.api.GeneralLedger(ctx, req.DateFrom, req.DateTo, req.Account)
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// DownloadReport saves a report PDF and returns the written path.
func (s *appService) DownloadReport(ctx context.Context, req ReportRequest) (string, error) {
	if err := s.validate.Struct(req); err != nil {
		return "", fmt.Errorf("invalid report request: %w", err)
	}
	return s.api.DownloadAccountingReport(ctx, api.ReportRequest{
		Type:     req.Type,
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
		Account:  req.Account,
	}, s.downloadDir)
}

// ListPurchaseOrders returns purchase orders, optionally filtered by status.
func (s *appService) ListPurchaseOrders(ctx context.Context, status core.OrderStatus) *OrderListResult {
	res := s.api.ListPurchaseOrders(ctx, status)
	return &OrderListResult{Orders: res.Data, Fetch: fetchInfo(res)}
}

// CreatePurchaseOrder validates the form and posts a new pending order.
func (s *appService) CreatePurchaseOrder(ctx context.Context, form *core.OrderForm) (*core.PurchaseOrder, error) {
	order, err := form.Order()
	if err != nil {
		return nil, err
	}
	created, err := s.api.CreatePurchaseOrder(ctx, order, uuid.NewString())
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ChangeOrderStatus moves an order to target after checking the transition.
func (s *appService) ChangeOrderStatus(ctx context.Context, order core.PurchaseOrder, target core.OrderStatus) (*core.PurchaseOrder, error) {
	if !order.Status.CanTransition(target) {
		return nil, fmt.Errorf("order %s cannot go from %s to %s",
			order.OrderNumber, order.Status.Info().Label, target.Info().Label)
	}
	updated, err := s.api.ChangeOrderStatus(ctx, order.ID, target)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DownloadOrderPDF saves the printable order and returns the written path.
func (s *appService) DownloadOrderPDF(ctx context.Context, id int) (string, error) {
	return s.api.DownloadOrderPDF(ctx, id, s.downloadDir)
}

// ListSuppliers returns the vendor records.
func (s *appService) ListSuppliers(ctx context.Context) *SupplierListResult {
	res := s.api.ListSuppliers(ctx)
	return &SupplierListResult{Suppliers: res.Data, Fetch: fetchInfo(res)}
}

// SearchCatalog queries the supplier aggregation service for products.
func (s *appService) SearchCatalog(ctx context.Context, query string) *CatalogSearchResult {
	res := s.api.SearchSupplierCatalog(ctx, query)
	return &CatalogSearchResult{Result: res.Data, Fetch: fetchInfo(res)}
}

// ComparePrices lists one product across supplier stores, cheapest first.
func (s *appService) ComparePrices(ctx context.Context, product string) *PriceComparisonResult {
	res := s.api.CompareSupplierPrices(ctx, product)
	return &PriceComparisonResult{Result: res.Data, Fetch: fetchInfo(res)}
}

// SupplierFilters returns the category and store lists for catalog searches.
// The combined fetch info degrades when either source does.
func (s *appService) SupplierFilters(ctx context.Context) *SupplierFiltersResult {
	categories := s.api.SupplierCategories(ctx)
	stores := s.api.SupplierStores(ctx)
	fetch := fetchInfo(categories)
	if stores.Degraded() {
		fetch = fetchInfo(stores)
	}
	return &SupplierFiltersResult{Categories: categories.Data, Stores: stores.Data, Fetch: fetch}
}

// CompanySettings returns the company configuration record.
func (s *appService) CompanySettings(ctx context.Context) *CompanySettingsResult {
	res := s.api.CompanySettings(ctx)
	return &CompanySettingsResult{Company: res.Data, Fetch: fetchInfo(res)}
}

// SaveCompanySettings validates and fully replaces the company record.
func (s *appService) SaveCompanySettings(ctx context.Context, req CompanyRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("invalid company settings: %w", err)
	}
	return s.api.SaveCompanySettings(ctx, core.CompanyConfig{
		RUT:          core.NormalizeRUT(req.RUT),
		BusinessName: req.BusinessName,
		FantasyName:  req.FantasyName,
		Activity:     req.Activity,
		Address:      req.Address,
		City:         req.City,
		Email:        req.Email,
		Phone:        req.Phone,
	})
}

// ListUsers returns the settings-page user list.
func (s *appService) ListUsers(ctx context.Context) *UserListResult {
	res := s.api.ListUsers(ctx)
	return &UserListResult{Users: res.Data, Fetch: fetchInfo(res)}
}

// SaveUsers replaces the user list.
func (s *appService) SaveUsers(ctx context.Context, users []core.User) error {
	return s.api.SaveUsers(ctx, users)
}

// DeleteUser removes one user.
func (s *appService) DeleteUser(ctx context.Context, id int) error {
	return s.api.DeleteUser(ctx, id)
}

// ListIntegrations returns the external connector configurations.
func (s *appService) ListIntegrations(ctx context.Context) *IntegrationListResult {
	res := s.api.ListIntegrations(ctx)
	return &IntegrationListResult{Integrations: res.Data, Fetch: fetchInfo(res)}
}

// SaveIntegrations replaces the connector configurations.
func (s *appService) SaveIntegrations(ctx context.Context, integrations []core.Integration) error {
	return s.api.SaveIntegrations(ctx, integrations)
}

// UsageStats returns the read-only plan usage block.
func (s *appService) UsageStats(ctx context.Context) *UsageStatsResult {
	res := s.api.UsageStats(ctx)
	return &UsageStatsResult{Stats: res.Data, Fetch: fetchInfo(res)}
}

// ListBanks returns the banks supported by the banking integration.
func (s *appService) ListBanks(ctx context.Context) *BankListResult {
	res := s.api.ListBanks(ctx)
	return &BankListResult{Banks: res.Data, Fetch: fetchInfo(res)}
}

// BankBalance queries a live account balance.
func (s *appService) BankBalance(ctx context.Context, req BalanceRequest) (*core.BankBalance, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid balance request: %w", err)
	}
	balance, err := s.api.BankBalance(ctx, req.BankCode, req.Account)
	if err != nil {
		return nil, err
	}
	return &balance, nil
}

// TaxStatus queries the SII standing of a taxpayer.
func (s *appService) TaxStatus(ctx context.Context, rut string) (*core.TaxStatus, error) {
	if !core.ValidRUT(rut) {
		return nil, fmt.Errorf("invalid RUT: %s", rut)
	}
	status, err := s.api.TaxStatus(ctx, core.NormalizeRUT(rut))
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// ValidateRUT checks a RUT's verification digit.
func (s *appService) ValidateRUT(ctx context.Context, rut string) (*core.RUTValidation, error) {
	validation, err := s.api.ValidateRUT(ctx, rut)
	if err != nil {
		return nil, err
	}
	return &validation, nil
}

func clientFromRequest(id int, req ClientRequest) core.Client {
	return core.Client{
		ID:      id,
		RUT:     core.NormalizeRUT(req.RUT),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		City:    req.City,
		Active:  req.Active,
	}
}

// nowFunc is swapped in tests.
var nowFunc = time.Now
