package domain

// Account represents a customer money account identified by its IBAN.
type Account struct {
	IBAN         string `json:"iban"`
	CurrencyCode string `json:"currencyCode"` // ISO 4217, e.g. "GBP", "EUR", "CHF"
	CustomerID   string `json:"customerID"`
	AuditFields
}
