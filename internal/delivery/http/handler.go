package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tacicek/core-desk-sub002/internal/domain/qrbill"
	"github.com/tacicek/core-desk-sub002/internal/domain/repository"
	"github.com/tacicek/core-desk-sub002/internal/usecase/renderbill"
)

type Handler struct {
	renderUC *renderbill.UseCase
}

func NewHandler(renderUC *renderbill.UseCase) *Handler {
	return &Handler{renderUC: renderUC}
}

// HandleQRBillPNG serves the scannable payment part for an invoice.
func (h *Handler) HandleQRBillPNG(w http.ResponseWriter, r *http.Request) {
	resp, ok := h.render(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(resp.PNG)
}

// HandleQRBillText serves the serialized 33-line payload, useful for
// diagnostics and for banking-app import tools.
func (h *Handler) HandleQRBillText(w http.ResponseWriter, r *http.Request) {
	resp, ok := h.render(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(resp.Payload))
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request) (*renderbill.Response, bool) {
	invoiceID, err := uuid.Parse(chi.URLParam(r, "invoice_id"))
	if err != nil {
		http.Error(w, `{"error":"invalid invoice_id"}`, http.StatusBadRequest)
		return nil, false
	}

	resp, err := h.renderUC.Execute(r.Context(), renderbill.Request{InvoiceID: invoiceID})
	if err != nil {
		writeError(w, err)
		return nil, false
	}
	return resp, true
}

// writeError maps the pipeline's error kinds onto HTTP statuses. All of
// them stem from configuration or data defects, so nothing is reported
// as retryable.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		http.Error(w, `{"error":"invoice not found"}`, http.StatusNotFound)
	case errors.Is(err, repository.ErrNotConfigured),
		errors.Is(err, qrbill.ErrMissingCreditorConfig):
		http.Error(w, `{"error":"company profile is incomplete"}`, http.StatusUnprocessableEntity)
	case errors.Is(err, qrbill.ErrInvalidIBAN):
		http.Error(w, `{"error":"invalid IBAN format"}`, http.StatusUnprocessableEntity)
	case errors.Is(err, qrbill.ErrEmptyReference),
		errors.Is(err, qrbill.ErrRequiredFieldEmpty),
		errors.Is(err, qrbill.ErrPayloadStructure):
		http.Error(w, `{"error":"qr bill cannot be generated for this invoice"}`, http.StatusUnprocessableEntity)
	default:
		http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
	}
}
