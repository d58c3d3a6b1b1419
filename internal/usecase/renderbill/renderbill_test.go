package renderbill_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tacicek/core-desk-sub002/internal/domain/entity"
	"github.com/tacicek/core-desk-sub002/internal/domain/qrbill"
	"github.com/tacicek/core-desk-sub002/internal/domain/repository"
	"github.com/tacicek/core-desk-sub002/internal/usecase/renderbill"
	"github.com/tacicek/core-desk-sub002/internal/usecase/renderbill/mocks"
)

type fixture struct {
	companies *mocks.MockCompanyRepository
	customers *mocks.MockCustomerRepository
	invoices  *mocks.MockInvoiceRepository
	renderer  *mocks.MockRenderer
	uc        *renderbill.UseCase
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		companies: mocks.NewMockCompanyRepository(ctrl),
		customers: mocks.NewMockCustomerRepository(ctrl),
		invoices:  mocks.NewMockInvoiceRepository(ctrl),
		renderer:  mocks.NewMockRenderer(ctrl),
	}
	f.uc = renderbill.NewUseCase(f.companies, f.customers, f.invoices, f.renderer)
	return f
}

func testCompany() *entity.Company {
	return entity.NewCompany("Muster AG", "Musterstrasse 1\n8000 Zürich", "CH93 0076 2011 6238 5295 7")
}

func testInvoice(id uuid.UUID) *entity.Invoice {
	return entity.ReconstructInvoice(
		id,
		"INV-2024-001",
		decimal.NewFromInt(100),
		"CHF",
		time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC),
		"Hans Beispiel",
		time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC),
	)
}

func TestRenderBill_Success(t *testing.T) {
	f := newFixture(t)
	invoiceID := uuid.New()

	f.invoices.EXPECT().FindByID(gomock.Any(), invoiceID).Return(testInvoice(invoiceID), nil)
	f.companies.EXPECT().Get(gomock.Any()).Return(testCompany(), nil)
	f.customers.EXPECT().FindByName(gomock.Any(), "Hans Beispiel").
		Return(entity.ReconstructCustomer(uuid.New(), "Hans Beispiel", "Seeweg 3\n6000 Luzern"), nil)
	f.renderer.EXPECT().Render(gomock.Any()).Return([]byte("fake-png"), nil)

	resp, err := f.uc.Execute(context.Background(), renderbill.Request{InvoiceID: invoiceID})

	require.NoError(t, err)
	assert.Equal(t, []byte("fake-png"), resp.PNG)
	assert.Equal(t, "SCOR", resp.ReferenceType)
	assert.Equal(t, "RF78INV2024001", resp.Reference)

	lines := strings.Split(resp.Payload, "\n")
	require.Len(t, lines, 33)
	assert.Equal(t, "SPC", lines[0])
	assert.Equal(t, "Hans Beispiel", lines[21])
	assert.Equal(t, "Luzern", lines[25])
}

func TestRenderBill_CustomerLookupMissIsNotAnError(t *testing.T) {
	f := newFixture(t)
	invoiceID := uuid.New()

	f.invoices.EXPECT().FindByID(gomock.Any(), invoiceID).Return(testInvoice(invoiceID), nil)
	f.companies.EXPECT().Get(gomock.Any()).Return(testCompany(), nil)
	f.customers.EXPECT().FindByName(gomock.Any(), "Hans Beispiel").Return(nil, nil)
	f.renderer.EXPECT().Render(gomock.Any()).Return([]byte("fake-png"), nil)

	resp, err := f.uc.Execute(context.Background(), renderbill.Request{InvoiceID: invoiceID})

	require.NoError(t, err)
	lines := strings.Split(resp.Payload, "\n")
	require.Len(t, lines, 33)
	assert.Equal(t, "", lines[20], "debtor address type must stay empty")
	assert.Equal(t, "Hans Beispiel", lines[21])
	assert.Equal(t, "", lines[22])
	assert.Equal(t, "", lines[24])
}

func TestRenderBill_InvoiceNotFound(t *testing.T) {
	f := newFixture(t)
	invoiceID := uuid.New()

	f.invoices.EXPECT().FindByID(gomock.Any(), invoiceID).Return(nil, repository.ErrNotFound)

	_, err := f.uc.Execute(context.Background(), renderbill.Request{InvoiceID: invoiceID})

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRenderBill_CreditorNotConfigured(t *testing.T) {
	f := newFixture(t)
	invoiceID := uuid.New()

	f.invoices.EXPECT().FindByID(gomock.Any(), invoiceID).Return(testInvoice(invoiceID), nil)
	f.companies.EXPECT().Get(gomock.Any()).Return(nil, repository.ErrNotConfigured)

	_, err := f.uc.Execute(context.Background(), renderbill.Request{InvoiceID: invoiceID})

	assert.ErrorIs(t, err, repository.ErrNotConfigured)
}

func TestRenderBill_InvalidCreditorIBAN(t *testing.T) {
	f := newFixture(t)
	invoiceID := uuid.New()

	f.invoices.EXPECT().FindByID(gomock.Any(), invoiceID).Return(testInvoice(invoiceID), nil)
	f.companies.EXPECT().Get(gomock.Any()).
		Return(entity.NewCompany("Muster AG", "Musterstrasse 1\n8000 Zürich", "CH93 0076"), nil)
	f.customers.EXPECT().FindByName(gomock.Any(), "Hans Beispiel").Return(nil, nil)

	_, err := f.uc.Execute(context.Background(), renderbill.Request{InvoiceID: invoiceID})

	assert.ErrorIs(t, err, qrbill.ErrInvalidIBAN)
}

func TestRenderBill_RendererFailurePropagates(t *testing.T) {
	f := newFixture(t)
	invoiceID := uuid.New()

	f.invoices.EXPECT().FindByID(gomock.Any(), invoiceID).Return(testInvoice(invoiceID), nil)
	f.companies.EXPECT().Get(gomock.Any()).Return(testCompany(), nil)
	f.customers.EXPECT().FindByName(gomock.Any(), "Hans Beispiel").Return(nil, nil)
	f.renderer.EXPECT().Render(gomock.Any()).Return(nil, errors.New("encoder exploded"))

	_, err := f.uc.Execute(context.Background(), renderbill.Request{InvoiceID: invoiceID})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "encoder exploded")
}
