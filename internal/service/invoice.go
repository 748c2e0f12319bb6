package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/ushnuel/next-dashboard/internal/domain"
	"github.com/ushnuel/next-dashboard/internal/schema"
	"github.com/ushnuel/next-dashboard/pkg/logger"
)

// InvoicesPath is the listing route every invoice mutation revalidates.
const InvoicesPath = "/dashboard/invoices"

const dateLayout = "2006-01-02"

// Effects describes the page side effects a successful mutation asks its
// caller to perform. They are returned rather than executed here so the
// pipeline stays testable without an HTTP stack.
type Effects struct {
	Revalidate string
	Redirect   string
}

// MutationResult carries either the failure surface of a mutation (field
// violations and a message) or, on success, the effects to apply. Effects is
// nil exactly when the mutation failed.
type MutationResult struct {
	Errors  schema.FieldErrors
	Message string
	Effects *Effects
}

type InvoiceRepository interface {
	CreateInvoice(invoice domain.Invoice) error
	UpdateInvoice(id, customerID string, amount int64, status domain.InvoiceStatus) error
	DeleteInvoice(id string) error
	Invoices() ([]domain.Invoice, error)
}

type InvoiceService struct {
	repo InvoiceRepository
	now  func() time.Time
}

func NewInvoiceService(repo InvoiceRepository) *InvoiceService {
	return &InvoiceService{
		repo: repo,
		now:  time.Now,
	}
}

// Create validates the form collecting every field violation, and on success
// inserts a new invoice with a generated id and the current calendar date.
// Data-store failures are logged and reduced to a fixed message.
func (s *InvoiceService) Create(form schema.InvoiceForm) MutationResult {
	input, fieldErrs := schema.Validate(form)
	if len(fieldErrs) > 0 {
		logger.Log.Warn("invalid invoice form", logger.Int("invalid_fields", len(fieldErrs)))
		return MutationResult{
			Errors:  fieldErrs,
			Message: "Missing Fields. Failed to Create Invoice.",
		}
	}

	invoice := domain.Invoice{
		ID:         uuid.NewString(),
		CustomerID: input.CustomerID,
		Amount:     input.AmountInCents(),
		Status:     input.Status,
		Date:       s.now().Format(dateLayout),
	}

	if err := s.repo.CreateInvoice(invoice); err != nil {
		logger.Log.Error("error creating invoice", logger.String("invoice_id", invoice.ID), logger.Error(err))
		return MutationResult{Message: "Database Error: Failed to Create Invoice."}
	}

	return MutationResult{Effects: &Effects{Revalidate: InvoicesPath, Redirect: InvoicesPath}}
}

// Update validates the form aborting on the first violation, then rewrites
// customer, amount and status for the given id. The date keeps its creation
// value. A missing id updates zero rows and still counts as success.
func (s *InvoiceService) Update(id string, form schema.InvoiceForm) MutationResult {
	input, err := schema.ValidateStrict(form)
	if err != nil {
		logger.Log.Warn("invalid invoice form", logger.String("invoice_id", id), logger.Error(err))
		return MutationResult{Message: err.Error()}
	}

	if err := s.repo.UpdateInvoice(id, input.CustomerID, input.AmountInCents(), input.Status); err != nil {
		logger.Log.Error("error updating invoice", logger.String("invoice_id", id), logger.Error(err))
		return MutationResult{Message: "Database Error: Failed to Update Invoice."}
	}

	return MutationResult{Effects: &Effects{Revalidate: InvoicesPath, Redirect: InvoicesPath}}
}

// Delete removes the invoice and revalidates the listing. Deleting an id
// that is already gone reports success the same way.
func (s *InvoiceService) Delete(id string) MutationResult {
	if err := s.repo.DeleteInvoice(id); err != nil {
		logger.Log.Error("error deleting invoice", logger.String("invoice_id", id), logger.Error(err))
		return MutationResult{Message: "Database Error: Failed to Delete Invoice."}
	}

	return MutationResult{
		Message: "Deleted Invoice.",
		Effects: &Effects{Revalidate: InvoicesPath},
	}
}

func (s *InvoiceService) Invoices() ([]domain.Invoice, error) {
	return s.repo.Invoices()
}
