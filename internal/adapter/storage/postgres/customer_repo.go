package postgres

import (
	"context"
	"errors"
	"fmt"

	"gold-ledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// CustomerRepo implements ports.CustomerRepository.
type CustomerRepo struct {
	pool Pool
}

// NewCustomerRepo creates a new CustomerRepo.
func NewCustomerRepo(pool Pool) *CustomerRepo {
	return &CustomerRepo{pool: pool}
}

// Create inserts a customer.
func (r *CustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO customers (phone, name, created_at) VALUES ($1, $2, $3)`,
		c.Phone, c.Name, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByPhone fetches a customer, returning nil when absent.
func (r *CustomerRepo) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	c := &domain.Customer{}
	err := r.pool.QueryRow(ctx,
		`SELECT phone, name, created_at FROM customers WHERE phone = $1`, phone,
	).Scan(&c.Phone, &c.Name, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// Exists reports whether the phone belongs to a registered customer.
func (r *CustomerRepo) Exists(ctx context.Context, phone string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM customers WHERE phone = $1)`, phone,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check customer exists: %w", err)
	}
	return exists, nil
}
