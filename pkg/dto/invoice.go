package dto

/**
  {
      "id": "3958dc9e-712f-4377-85e9-fec4b6a6442a",
      "customer_id": "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa",
      "amount": 4500,
      "status": "pending",
      "date": "2026-08-31"
  }
*/

type Invoice struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Amount     int64  `json:"amount"`
	Status     string `json:"status"`
	Date       string `json:"date"`
}

// MutationResponse is the body returned when a mutation does not redirect:
// a confirmation or generic failure message, plus per-field violations for
// the create form.
type MutationResponse struct {
	Message string              `json:"message,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}
