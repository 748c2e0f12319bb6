package invoicehandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ushnuel/next-dashboard/internal/domain"
	"github.com/ushnuel/next-dashboard/internal/pagecache"
	"github.com/ushnuel/next-dashboard/internal/schema"
	"github.com/ushnuel/next-dashboard/internal/service"
	"github.com/ushnuel/next-dashboard/pkg/dto"
	"github.com/ushnuel/next-dashboard/pkg/logger"
)

type InvoiceService interface {
	Create(form schema.InvoiceForm) service.MutationResult
	Update(id string, form schema.InvoiceForm) service.MutationResult
	Delete(id string) service.MutationResult
	Invoices() ([]domain.Invoice, error)
}

type InvoiceHandler struct {
	srv   InvoiceService
	cache *pagecache.Cache
}

func New(srv InvoiceService, cache *pagecache.Cache) *InvoiceHandler {
	return &InvoiceHandler{
		srv:   srv,
		cache: cache,
	}
}

func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	form, ok := invoiceForm(w, r)
	if !ok {
		return
	}

	h.finish(w, r, h.srv.Create(form))
}

func (h *InvoiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	form, ok := invoiceForm(w, r)
	if !ok {
		return
	}

	h.finish(w, r, h.srv.Update(chi.URLParam(r, "id"), form))
}

func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.finish(w, r, h.srv.Delete(chi.URLParam(r, "id")))
}

func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	if body, ok := h.cache.Get(r.URL.Path); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
		return
	}

	invoices, err := h.srv.Invoices()
	if err != nil {
		logger.Log.Error("error while fetching invoices", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	dtos := make([]dto.Invoice, len(invoices))
	for i, invoice := range invoices {
		dtos[i] = dto.Invoice{
			ID:         invoice.ID,
			CustomerID: invoice.CustomerID,
			Amount:     invoice.Amount,
			Status:     string(invoice.Status),
			Date:       invoice.Date,
		}
	}

	body, err := json.Marshal(dtos)
	if err != nil {
		logger.Log.Error("error while encoding invoices to JSON", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.cache.Set(r.URL.Path, body)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// finish applies the mutation's effects: invalidate the stale listing, then
// either redirect or report the message. A result without effects is a
// failed mutation and carries its errors back to the form.
func (h *InvoiceHandler) finish(w http.ResponseWriter, r *http.Request, res service.MutationResult) {
	if res.Effects == nil {
		writeJSON(w, http.StatusUnprocessableEntity, dto.MutationResponse{
			Message: res.Message,
			Errors:  res.Errors,
		})
		return
	}

	h.cache.Invalidate(res.Effects.Revalidate)

	if res.Effects.Redirect != "" {
		http.Redirect(w, r, res.Effects.Redirect, http.StatusSeeOther)
		return
	}

	writeJSON(w, http.StatusOK, dto.MutationResponse{Message: res.Message})
}

func invoiceForm(w http.ResponseWriter, r *http.Request) (schema.InvoiceForm, bool) {
	if err := r.ParseForm(); err != nil {
		logger.Log.Warn("error while parsing invoice form", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return schema.InvoiceForm{}, false
	}

	return schema.InvoiceForm{
		CustomerID: r.PostFormValue("customerId"),
		Amount:     r.PostFormValue("amount"),
		Status:     r.PostFormValue("status"),
	}, true
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Error("error while encoding response", logger.Error(err))
	}
}
