package models

import "errors"

var (
	ErrNegativePrice     = errors.New("price must not be negative")
	ErrNegativeDiscount  = errors.New("discount value must not be negative")
	ErrPercentOutOfRange = errors.New("percent discount must be between 0 and 100")
)
