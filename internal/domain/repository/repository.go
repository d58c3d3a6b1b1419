package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/tacicek/core-desk-sub002/internal/domain/entity"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrNotConfigured = errors.New("creditor profile not configured")
)

type CompanyRepository interface {
	// Get returns the configured creditor profile, or ErrNotConfigured
	// when none has been set up yet.
	Get(ctx context.Context) (*entity.Company, error)
}

type CustomerRepository interface {
	// FindByName is best-effort: an unknown customer yields (nil, nil),
	// not an error. The bill is then rendered with a bare debtor name.
	FindByName(ctx context.Context, name string) (*entity.Customer, error)
}

type InvoiceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
}
