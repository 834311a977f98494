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

type PgxCustomerRepository struct {
	db *pgxpool.Pool
}

func newPgxCustomerRepository(db *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{db: db}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

func toModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID:   d.CustomerID,
		PasswordHash: d.PasswordHash,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

func toDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID:   m.CustomerID,
		PasswordHash: m.PasswordHash,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	m := toModelCustomer(customer)
	query := `
        INSERT INTO customers (customer_id, password_hash, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4);
    `
	_, err := r.db.Exec(ctx, query,
		m.CustomerID,
		m.PasswordHash,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save customer %s: %w", m.CustomerID, err)
	}
	return nil
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `
        SELECT customer_id, password_hash, created_at, last_updated_at
        FROM customers
        WHERE customer_id = $1;
    `
	var m models.Customer
	err := r.db.QueryRow(ctx, query, customerID).Scan(
		&m.CustomerID,
		&m.PasswordHash,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("customer %s: %w", customerID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find customer %s: %w", customerID, err)
	}
	d := toDomainCustomer(m)
	return &d, nil
}
