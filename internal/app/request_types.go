package app

// ClientRequest is the input for creating or updating a customer record.
type ClientRequest struct {
	RUT     string `validate:"required,rut"`
	Name    string `validate:"required"`
	Email   string `validate:"omitempty,email"`
	Phone   string
	Address string
	City    string
	Active  bool
}

// CompanyRequest is the input for replacing the company configuration.
type CompanyRequest struct {
	RUT          string `validate:"required,rut"`
	BusinessName string `validate:"required"`
	FantasyName  string
	Activity     string
	Address      string
	City         string
	Email        string `validate:"omitempty,email"`
	Phone        string
}

// ReportRequest names one financial report and its period.
type ReportRequest struct {
	Type     string `validate:"required,oneof=balance-sheet income-statement general-ledger"`
	DateFrom string `validate:"omitempty,datetime=2006-01-02"`
	DateTo   string `validate:"omitempty,datetime=2006-01-02"`
	Account  string // optional account filter for the general ledger
}

// BalanceRequest is the input for a bank balance query.
type BalanceRequest struct {
	BankCode string `validate:"required"`
	Account  string `validate:"required"`
}
