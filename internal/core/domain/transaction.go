package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a money account transaction.
// Amount is signed: positive amounts are credits, negative amounts debits.
// CurrencyCode is always the currency of the owning account.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // UUID
	AccountIBAN   string          `json:"accountIBAN"`
	Amount        decimal.Decimal `json:"amount"`
	CurrencyCode  string          `json:"currencyCode"`
	ValueDate     time.Time       `json:"valueDate"`
	Description   string          `json:"description"`
	AuditFields
}

// IsCredit reports whether the transaction increases the account balance.
func (t Transaction) IsCredit() bool {
	return t.Amount.IsPositive()
}

// IsDebit reports whether the transaction decreases the account balance.
func (t Transaction) IsDebit() bool {
	return t.Amount.IsNegative()
}

// AbsoluteAmount returns the unsigned amount for aggregation.
func (t Transaction) AbsoluteAmount() decimal.Decimal {
	return t.Amount.Abs()
}
