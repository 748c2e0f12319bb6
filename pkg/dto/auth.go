package dto

import "github.com/go-playground/validator/v10"

// Credentials is a candidate email/password pair from a login attempt.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

var validate = validator.New()

// IsValid reports whether the pair has a plausible shape: an email-looking
// address and a password of at least six characters.
func (c Credentials) IsValid() error {
	return validate.Struct(c)
}
