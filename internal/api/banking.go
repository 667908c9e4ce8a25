package api

import (
	"context"
	"net/http"
	"net/url"

	"pymerp/internal/core"
)

const (
	epBanking = "banking"
	epSII     = "sii"
)

// ListBanks fetches the banks supported by the banking integration.
func (c *Client) ListBanks(ctx context.Context) Result[[]core.Bank] {
	return list(ctx, c, epBanking, "/banking/banks", nil, fallbackBanks)
}

// BankBalance queries a live account balance. Balances are never substituted
// with sample data: a wrong number here is worse than an error.
func (c *Client) BankBalance(ctx context.Context, bankCode, account string) (core.BankBalance, error) {
	body := map[string]string{"bank_code": bankCode, "account": account}
	var out core.BankBalance
	if err := c.send(ctx, epBanking, http.MethodPost, "/banking/balance", body, &out); err != nil {
		return core.BankBalance{}, err
	}
	return out, nil
}

// TaxStatus queries the SII standing of a taxpayer. Like balances, tax
// standing is never faked.
func (c *Client) TaxStatus(ctx context.Context, rut string) (core.TaxStatus, error) {
	var out core.TaxStatus
	path := "/sii/tax-status/" + url.PathEscape(core.NormalizeRUT(rut))
	if _, err := c.get(ctx, epSII, path, nil, &out); err != nil {
		return core.TaxStatus{}, err
	}
	return out, nil
}

// ValidateRUT asks the SII integration to validate a RUT. The local check
// digit test runs first so obviously bad input never leaves the client.
func (c *Client) ValidateRUT(ctx context.Context, rut string) (core.RUTValidation, error) {
	normalized := core.NormalizeRUT(rut)
	if !core.ValidRUT(normalized) {
		return core.RUTValidation{RUT: normalized, Valid: false}, nil
	}
	body := map[string]string{"rut": normalized}
	var out core.RUTValidation
	if err := c.send(ctx, epSII, http.MethodPost, "/sii/validate-rut", body, &out); err != nil {
		return core.RUTValidation{}, err
	}
	return out, nil
}
