package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/ebanking/portal_backend/internal/apperrors"
	"github.com/ebanking/portal_backend/internal/core/domain"
	portsrepo "github.com/ebanking/portal_backend/internal/core/ports/repositories"
	"github.com/ebanking/portal_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRepository struct {
	db *pgxpool.Pool
}

func newPgxAccountRepository(db *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{db: db}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func toModelAccount(d domain.Account) models.Account {
	return models.Account{
		IBAN:         d.IBAN,
		CurrencyCode: d.CurrencyCode,
		CustomerID:   d.CustomerID,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

func toDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		IBAN:         m.IBAN,
		CurrencyCode: m.CurrencyCode,
		CustomerID:   m.CustomerID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := toModelAccount(account)
	query := `
        INSERT INTO accounts (iban, currency_code, customer_id, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err := r.db.Exec(ctx, query,
		m.IBAN,
		m.CurrencyCode,
		m.CustomerID,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save account %s: %w", m.IBAN, err)
	}
	return nil
}

func (r *PgxAccountRepository) FindAccountByIBAN(ctx context.Context, iban string) (*domain.Account, error) {
	query := `
        SELECT iban, currency_code, customer_id, created_at, last_updated_at
        FROM accounts
        WHERE iban = $1;
    `
	var m models.Account
	err := r.db.QueryRow(ctx, query, iban).Scan(
		&m.IBAN,
		&m.CurrencyCode,
		&m.CustomerID,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("account %s: %w", iban, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find account %s: %w", iban, err)
	}
	d := toDomainAccount(m)
	return &d, nil
}

func (r *PgxAccountRepository) FindAccountsByCustomerID(ctx context.Context, customerID string) ([]domain.Account, error) {
	query := `
        SELECT iban, currency_code, customer_id, created_at, last_updated_at
        FROM accounts
        WHERE customer_id = $1
        ORDER BY iban;
    `
	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for customer %s: %w", customerID, err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var m models.Account
		if err := rows.Scan(&m.IBAN, &m.CurrencyCode, &m.CustomerID, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, toDomainAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating account rows: %w", err)
	}
	return accounts, nil
}
