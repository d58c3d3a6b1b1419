package qrbill

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Error kinds of the assembly pipeline. All of them are terminal for
// the current render request; none is retried.
var (
	ErrInvalidIBAN           = errors.New("invalid creditor IBAN")
	ErrMissingCreditorConfig = errors.New("creditor profile incomplete")
	ErrRequiredFieldEmpty    = errors.New("required field empty after truncation")
	ErrPayloadStructure      = errors.New("payload structure invalid")
)

const (
	payloadLineCount = 33

	headerQRType     = "SPC"
	headerVersion    = "0200"
	headerCodingType = "1"

	addressTypeStructured = "S"
)

// Field length limits from the Swiss implementation guidelines.
const (
	maxNameLen     = 70
	maxStreetLen   = 70
	maxBuildingLen = 16
	maxPostalLen   = 16
	maxTownLen     = 35
	maxMessageLen  = 140
)

// Currency of the billed amount. Only CHF and EUR are admitted on a
// Swiss QR bill.
type Currency string

const (
	CurrencyCHF Currency = "CHF"
	CurrencyEUR Currency = "EUR"
)

// CreditorInput is the company profile consumed by the assembler.
type CreditorInput struct {
	Name    string
	Address string
	IBAN    string
}

// DebtorInput is the billed party. Address may be empty when the
// customer lookup came back without a postal address.
type DebtorInput struct {
	Name    string
	Address string
}

// InvoiceInput carries the billing data of a single invoice.
type InvoiceInput struct {
	Number   string
	Total    decimal.Decimal
	Currency Currency
	DueDate  time.Time

	// ReferenceSeed anchors the date component of a QRR reference.
	// Callers pass the persisted invoice issue date so that rendering
	// the same bill on different days yields the same reference.
	ReferenceSeed time.Time
}

// Payload is the Swiss QR-bill data record: exactly 33 ordered fields,
// serialized LF-separated. The struct pins the field order, so an
// accidental reordering shows up as a source change rather than a
// silently shifted wire record.
type Payload struct {
	QRType     string
	Version    string
	CodingType string

	Account string

	CreditorAddressType    string
	CreditorName           string
	CreditorStreet         string
	CreditorBuildingNumber string
	CreditorPostalCode     string
	CreditorTown           string
	CreditorCountry        string

	// Ultimate creditor block, reserved by the standard and always
	// empty in this implementation.
	UltimateCreditorAddressType    string
	UltimateCreditorName           string
	UltimateCreditorStreet         string
	UltimateCreditorBuildingNumber string
	UltimateCreditorPostalCode     string
	UltimateCreditorTown           string
	UltimateCreditorCountry        string

	Amount   string
	Currency string

	DebtorAddressType    string
	DebtorName           string
	DebtorStreet         string
	DebtorBuildingNumber string
	DebtorPostalCode     string
	DebtorTown           string
	DebtorCountry        string

	ReferenceType string
	Reference     string

	UnstructuredMessage string
	BillInformation     string

	AlternativeScheme1 string
	AlternativeScheme2 string
}

func (p *Payload) fields() [payloadLineCount]string {
	return [payloadLineCount]string{
		p.QRType,
		p.Version,
		p.CodingType,
		p.Account,
		p.CreditorAddressType,
		p.CreditorName,
		p.CreditorStreet,
		p.CreditorBuildingNumber,
		p.CreditorPostalCode,
		p.CreditorTown,
		p.CreditorCountry,
		p.UltimateCreditorAddressType,
		p.UltimateCreditorName,
		p.UltimateCreditorStreet,
		p.UltimateCreditorBuildingNumber,
		p.UltimateCreditorPostalCode,
		p.UltimateCreditorTown,
		p.UltimateCreditorCountry,
		p.Amount,
		p.Currency,
		p.DebtorAddressType,
		p.DebtorName,
		p.DebtorStreet,
		p.DebtorBuildingNumber,
		p.DebtorPostalCode,
		p.DebtorTown,
		p.DebtorCountry,
		p.ReferenceType,
		p.Reference,
		p.UnstructuredMessage,
		p.BillInformation,
		p.AlternativeScheme1,
		p.AlternativeScheme2,
	}
}

// Serialize joins the 33 fields with a single line feed. No carriage
// returns, no trailing newline.
func (p *Payload) Serialize() string {
	f := p.fields()
	return strings.Join(f[:], "\n")
}

// BuildPayload assembles a complete QR-bill payload from the company
// profile, the optional billed customer and the invoice. Either a fully
// populated payload comes back, or a classified error; a partially
// valid payload is never returned.
func BuildPayload(creditor CreditorInput, debtor *DebtorInput, inv InvoiceInput) (*Payload, error) {
	if strings.TrimSpace(creditor.Name) == "" {
		return nil, fmt.Errorf("%w: company name is required", ErrMissingCreditorConfig)
	}
	if strings.TrimSpace(creditor.Address) == "" {
		return nil, fmt.Errorf("%w: company address is required", ErrMissingCreditorConfig)
	}

	iban := NormalizeIBAN(creditor.IBAN)
	if iban == "" {
		return nil, fmt.Errorf("%w: company IBAN is required", ErrMissingCreditorConfig)
	}
	if !ValidateIBAN(iban) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidIBAN, iban)
	}

	currency := inv.Currency
	if currency == "" {
		currency = CurrencyCHF
	}
	if currency != CurrencyCHF && currency != CurrencyEUR {
		return nil, fmt.Errorf("%w: unsupported currency %q", ErrPayloadStructure, currency)
	}

	ref, err := ReferenceFor(iban, inv.Number, inv.ReferenceSeed)
	if err != nil {
		return nil, err
	}

	creditorName, err := truncateRequired(creditor.Name, maxNameLen, "creditor name")
	if err != nil {
		return nil, err
	}
	creditorAddr := ParseAddress(creditor.Address)
	creditorStreet, err := truncateRequired(creditorAddr.Street, maxStreetLen, "creditor street")
	if err != nil {
		return nil, err
	}

	p := &Payload{
		QRType:     headerQRType,
		Version:    headerVersion,
		CodingType: headerCodingType,

		Account: iban,

		CreditorAddressType:    addressTypeStructured,
		CreditorName:           creditorName,
		CreditorStreet:         creditorStreet,
		CreditorBuildingNumber: truncate(creditorAddr.BuildingNumber, maxBuildingLen),
		CreditorPostalCode:     truncate(creditorAddr.PostalCode, maxPostalLen),
		CreditorTown:           truncate(creditorAddr.Town, maxTownLen),
		CreditorCountry:        DefaultCountry,

		Amount:   formatAmount(inv.Total),
		Currency: string(currency),

		ReferenceType: string(ref.Type),
		Reference:     ref.Value,

		UnstructuredMessage: truncate(unstructuredMessage(inv), maxMessageLen),
	}

	if debtor != nil && strings.TrimSpace(debtor.Name) != "" {
		p.DebtorName = truncate(debtor.Name, maxNameLen)

		addr := ParseAddress(debtor.Address)
		p.DebtorStreet = truncate(addr.Street, maxStreetLen)
		p.DebtorBuildingNumber = truncate(addr.BuildingNumber, maxBuildingLen)
		p.DebtorPostalCode = truncate(addr.PostalCode, maxPostalLen)
		p.DebtorTown = truncate(addr.Town, maxTownLen)

		// A structured debtor address needs at least a postal code or
		// a town; a bare name is carried without an address type.
		if p.DebtorPostalCode != "" || p.DebtorTown != "" {
			p.DebtorAddressType = addressTypeStructured
			p.DebtorCountry = DefaultCountry
		}
	}

	return p, nil
}

// ValidateSerialized is the last check before the payload reaches the
// renderer: exact line count, header constants and the declared
// currency. Any mismatch means an assembly defect upstream.
func ValidateSerialized(s string, currency Currency) error {
	lines := strings.Split(s, "\n")
	if len(lines) != payloadLineCount {
		return fmt.Errorf("%w: got %d lines, want %d", ErrPayloadStructure, len(lines), payloadLineCount)
	}
	if lines[0] != headerQRType {
		return fmt.Errorf("%w: QR type %q", ErrPayloadStructure, lines[0])
	}
	if lines[1] != headerVersion {
		return fmt.Errorf("%w: version %q", ErrPayloadStructure, lines[1])
	}
	if lines[2] != headerCodingType {
		return fmt.Errorf("%w: coding type %q", ErrPayloadStructure, lines[2])
	}
	if lines[19] != string(CurrencyCHF) && lines[19] != string(CurrencyEUR) {
		return fmt.Errorf("%w: currency %q", ErrPayloadStructure, lines[19])
	}
	if lines[19] != string(currency) {
		return fmt.Errorf("%w: currency %q does not match declared %q", ErrPayloadStructure, lines[19], currency)
	}
	return nil
}

// formatAmount renders a positive total with exactly two decimals. A
// zero or negative total becomes the empty string: an open-amount bill,
// not "0.00".
func formatAmount(total decimal.Decimal) string {
	if !total.IsPositive() {
		return ""
	}
	return total.StringFixed(2)
}

func unstructuredMessage(inv InvoiceInput) string {
	if inv.Number == "" {
		return ""
	}
	msg := "Invoice " + inv.Number
	if !inv.DueDate.IsZero() {
		msg += ", due " + inv.DueDate.Format("02.01.2006")
	}
	return msg
}

func truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	if runes := []rune(s); len(runes) > max {
		s = strings.TrimSpace(string(runes[:max]))
	}
	return s
}

func truncateRequired(s string, max int, field string) (string, error) {
	t := truncate(s, max)
	if t == "" {
		return "", fmt.Errorf("%w: %s", ErrRequiredFieldEmpty, field)
	}
	return t, nil
}
