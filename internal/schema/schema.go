// Package schema validates and coerces the raw invoice form fields.
package schema

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/ushnuel/next-dashboard/internal/domain"
)

// InvoiceForm is the field set submitted by the invoice form, untrusted and
// still in string form. The id and date fields are never taken from input:
// create generates both, update and delete receive the id out of band.
type InvoiceForm struct {
	CustomerID string `validate:"required"`
	Amount     string `validate:"required"`
	Status     string `validate:"required,oneof=paid pending"`
}

// Invoice is the coerced result of a successful validation. Amount is kept
// as a decimal in currency units until persistence.
type Invoice struct {
	CustomerID string
	Amount     decimal.Decimal
	Status     domain.InvoiceStatus
}

// AmountInCents converts the amount to the integer-cents representation
// invoices are stored in.
func (i Invoice) AmountInCents() int64 {
	return i.Amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// FieldErrors maps a form field name to its violation messages.
type FieldErrors map[string][]string

var validate = validator.New()

var fieldNames = map[string]string{
	"CustomerID": "customerId",
	"Amount":     "amount",
	"Status":     "status",
}

var fieldOrder = []string{"customerId", "amount", "status"}

var messages = map[string]string{
	"CustomerID.required": "customerId is required",
	"Amount.required":     "amount is required",
	"Status.required":     "status is required",
	"Status.oneof":        "status must be one of paid/pending",
}

// Validate checks every field and collects all violations, so a form can be
// re-rendered with the complete error set.
func Validate(form InvoiceForm) (*Invoice, FieldErrors) {
	fieldErrs := FieldErrors{}

	if err := validate.Struct(form); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			for _, e := range validationErrs {
				name := fieldNames[e.StructField()]
				msg, ok := messages[e.StructField()+"."+e.Tag()]
				if !ok {
					msg = name + " is invalid"
				}
				fieldErrs[name] = append(fieldErrs[name], msg)
			}
		}
	}

	amount := decimal.Zero
	if form.Amount != "" {
		parsed, err := decimal.NewFromString(form.Amount)
		switch {
		case err != nil:
			fieldErrs["amount"] = append(fieldErrs["amount"], "amount must be a number")
		case !parsed.IsPositive():
			fieldErrs["amount"] = append(fieldErrs["amount"], "amount must be greater than 0")
		default:
			amount = parsed
		}
	}

	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	return &Invoice{
		CustomerID: form.CustomerID,
		Amount:     amount,
		Status:     domain.InvoiceStatus(form.Status),
	}, nil
}

// ValidateStrict aborts on the first violation in form field order instead
// of collecting all of them.
func ValidateStrict(form InvoiceForm) (*Invoice, error) {
	invoice, fieldErrs := Validate(form)
	if len(fieldErrs) == 0 {
		return invoice, nil
	}

	return nil, errors.New(fieldErrs.First())
}

// First returns the first violation message in form field order.
func (fe FieldErrors) First() string {
	for _, name := range fieldOrder {
		if msgs := fe[name]; len(msgs) > 0 {
			return msgs[0]
		}
	}

	return ""
}
