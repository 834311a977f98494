package models

// Account represents a row in the accounts table.
type Account struct {
	IBAN         string `db:"iban"`
	CurrencyCode string `db:"currency_code"`
	CustomerID   string `db:"customer_id"`
	AuditFields
}
