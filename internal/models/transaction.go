package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a row in the transactions table.
// Amount is signed; the currency always matches the owning account.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	AccountIBAN   string          `db:"account_iban"`
	Amount        decimal.Decimal `db:"amount"`
	CurrencyCode  string          `db:"currency_code"`
	ValueDate     time.Time       `db:"value_date"`
	Description   string          `db:"description"`
	AuditFields
}
