package domain

import "errors"

var (
	// ErrEmptyCustomer indicates a sale was submitted without a customer name.
	ErrEmptyCustomer = errors.New("customer name is required")

	// ErrNonPositiveWeight indicates a sale weight of zero or less.
	ErrNonPositiveWeight = errors.New("weight sold must be greater than zero")

	// ErrNegativeWeight indicates a negative initial or returned weight.
	ErrNegativeWeight = errors.New("weight cannot be negative")

	// ErrInvalidWeight indicates input that could not be parsed as a weight.
	ErrInvalidWeight = errors.New("invalid weight")

	// ErrRecordIndexOutOfRange indicates a delete targeting a row that does not exist.
	ErrRecordIndexOutOfRange = errors.New("record index out of range")
)
