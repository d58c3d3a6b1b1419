package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/tacicek/core-desk-sub002/internal/domain/entity"
	"github.com/tacicek/core-desk-sub002/internal/domain/repository"
)

type CompanyRepo struct {
	pool *pgxpool.Pool
}

func NewCompanyRepo(pool *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{pool: pool}
}

func (r *CompanyRepo) Get(ctx context.Context) (*entity.Company, error) {
	var name, address, qrIBAN string
	err := r.pool.QueryRow(ctx,
		`SELECT name, address, qr_iban FROM company_settings ORDER BY created_at DESC LIMIT 1`,
	).Scan(&name, &address, &qrIBAN)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotConfigured
	}
	if err != nil {
		return nil, err
	}
	return entity.NewCompany(name, address, qrIBAN), nil
}

type CustomerRepo struct {
	pool *pgxpool.Pool
}

func NewCustomerRepo(pool *pgxpool.Pool) *CustomerRepo {
	return &CustomerRepo{pool: pool}
}

func (r *CustomerRepo) FindByName(ctx context.Context, name string) (*entity.Customer, error) {
	var id uuid.UUID
	var address string
	err := r.pool.QueryRow(ctx,
		`SELECT id, COALESCE(address, '') FROM customers WHERE name = $1`,
		name,
	).Scan(&id, &address)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entity.ReconstructCustomer(id, name, address), nil
}

type InvoiceRepo struct {
	pool *pgxpool.Pool
}

func NewInvoiceRepo(pool *pgxpool.Pool) *InvoiceRepo {
	return &InvoiceRepo{pool: pool}
}

func (r *InvoiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var (
		number       string
		totalText    string
		currency     string
		dueDate      *time.Time
		customerName string
		issuedAt     time.Time
	)
	err := r.pool.QueryRow(ctx,
		`SELECT number, total::text, currency, due_date, COALESCE(customer_name, ''), created_at
		 FROM invoices WHERE id = $1`,
		id,
	).Scan(&number, &totalText, &currency, &dueDate, &customerName, &issuedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	total, err := decimal.NewFromString(totalText)
	if err != nil {
		return nil, err
	}

	var due time.Time
	if dueDate != nil {
		due = *dueDate
	}

	return entity.ReconstructInvoice(id, number, total, currency, due, customerName, issuedAt), nil
}
