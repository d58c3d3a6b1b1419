package renderbill

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tacicek/core-desk-sub002/internal/domain/qrbill"
	"github.com/tacicek/core-desk-sub002/internal/domain/qrcode"
	"github.com/tacicek/core-desk-sub002/internal/domain/repository"
)

type Request struct {
	InvoiceID uuid.UUID
}

type Response struct {
	PNG           []byte
	Payload       string
	ReferenceType string
	Reference     string
}

// UseCase renders the QR bill for a single invoice: it loads the
// creditor profile, the invoice and (best-effort) the billed customer,
// assembles and self-validates the payload, and hands it to the
// renderer. Each execution is independent; nothing is cached or shared
// between renders.
type UseCase struct {
	companies repository.CompanyRepository
	customers repository.CustomerRepository
	invoices  repository.InvoiceRepository
	renderer  qrcode.Renderer
}

func NewUseCase(
	companies repository.CompanyRepository,
	customers repository.CustomerRepository,
	invoices repository.InvoiceRepository,
	renderer qrcode.Renderer,
) *UseCase {
	return &UseCase{
		companies: companies,
		customers: customers,
		invoices:  invoices,
		renderer:  renderer,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	invoice, err := uc.invoices.FindByID(ctx, req.InvoiceID)
	if err != nil {
		return nil, fmt.Errorf("load invoice: %w", err)
	}

	company, err := uc.companies.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load creditor profile: %w", err)
	}

	var debtor *qrbill.DebtorInput
	if invoice.CustomerName() != "" {
		customer, err := uc.customers.FindByName(ctx, invoice.CustomerName())
		if err != nil {
			return nil, fmt.Errorf("load customer: %w", err)
		}
		d := qrbill.DebtorInput{Name: invoice.CustomerName()}
		if customer != nil {
			d.Address = customer.Address()
		}
		debtor = &d
	}

	payload, err := qrbill.BuildPayload(
		qrbill.CreditorInput{
			Name:    company.Name(),
			Address: company.Address(),
			IBAN:    company.QRIBAN(),
		},
		debtor,
		qrbill.InvoiceInput{
			Number:        invoice.Number(),
			Total:         invoice.Total(),
			Currency:      qrbill.Currency(invoice.Currency()),
			DueDate:       invoice.DueDate(),
			ReferenceSeed: invoice.IssuedAt(),
		},
	)
	if err != nil {
		return nil, err
	}

	serialized := payload.Serialize()
	if err := qrbill.ValidateSerialized(serialized, qrbill.Currency(payload.Currency)); err != nil {
		return nil, err
	}

	png, err := uc.renderer.Render(serialized)
	if err != nil {
		return nil, fmt.Errorf("render qr code: %w", err)
	}

	return &Response{
		PNG:           png,
		Payload:       serialized,
		ReferenceType: payload.ReferenceType,
		Reference:     payload.Reference,
	}, nil
}
