package domain

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrIncorrectCredentials = errors.New("incorrect credentials")
	ErrCustomerNotFound     = errors.New("customer not found")
)
