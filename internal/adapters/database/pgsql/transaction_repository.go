package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/ebanking/portal_backend/internal/core/domain"
	portsrepo "github.com/ebanking/portal_backend/internal/core/ports/repositories"
	"github.com/ebanking/portal_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	db *pgxpool.Pool
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{db: db}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func toModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		AccountIBAN:   d.AccountIBAN,
		Amount:        d.Amount,
		CurrencyCode:  d.CurrencyCode,
		ValueDate:     d.ValueDate,
		Description:   d.Description,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		AccountIBAN:   m.AccountIBAN,
		Amount:        m.Amount,
		CurrencyCode:  m.CurrencyCode,
		ValueDate:     m.ValueDate,
		Description:   m.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// SaveTransaction upserts by transaction ID so queue redeliveries stay idempotent.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)
	query := `
        INSERT INTO transactions (transaction_id, account_iban, amount, currency_code, value_date, description, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (transaction_id) DO UPDATE SET
            amount = EXCLUDED.amount,
            value_date = EXCLUDED.value_date,
            description = EXCLUDED.description,
            last_updated_at = EXCLUDED.last_updated_at;
    `
	_, err := r.db.Exec(ctx, query,
		m.TransactionID,
		m.AccountIBAN,
		m.Amount,
		m.CurrencyCode,
		m.ValueDate,
		m.Description,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionsByCustomerAndDateRange(ctx context.Context, customerID string, from, to time.Time, limit, offset int) ([]domain.Transaction, int, error) {
	countQuery := `
        SELECT COUNT(*)
        FROM transactions t
        JOIN accounts a ON a.iban = t.account_iban
        WHERE a.customer_id = $1 AND t.value_date BETWEEN $2 AND $3;
    `
	var total int
	if err := r.db.QueryRow(ctx, countQuery, customerID, from, to).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions for customer %s: %w", customerID, err)
	}

	query := `
        SELECT t.transaction_id, t.account_iban, t.amount, t.currency_code, t.value_date, t.description, t.created_at, t.last_updated_at
        FROM transactions t
        JOIN accounts a ON a.iban = t.account_iban
        WHERE a.customer_id = $1 AND t.value_date BETWEEN $2 AND $3
        ORDER BY t.value_date DESC, t.transaction_id
        LIMIT $4 OFFSET $5;
    `
	rows, err := r.db.Query(ctx, query, customerID, from, to, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query transactions for customer %s: %w", customerID, err)
	}
	defer rows.Close()

	txns, err := scanTransactions(rows)
	if err != nil {
		return nil, 0, err
	}
	return txns, total, nil
}

func (r *PgxTransactionRepository) FindTransactionsByAccountIBAN(ctx context.Context, iban string) ([]domain.Transaction, error) {
	query := `
        SELECT transaction_id, account_iban, amount, currency_code, value_date, description, created_at, last_updated_at
        FROM transactions
        WHERE account_iban = $1
        ORDER BY value_date DESC, transaction_id;
    `
	rows, err := r.db.Query(ctx, query, iban)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for account %s: %w", iban, err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

func scanTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	var txns []domain.Transaction
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(&m.TransactionID, &m.AccountIBAN, &m.Amount, &m.CurrencyCode, &m.ValueDate, &m.Description, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, toDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating transaction rows: %w", err)
	}
	return txns, nil
}
