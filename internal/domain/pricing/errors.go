package pricing

import "errors"

var (
	ErrPackageNotFound   = errors.New("package not found")
	ErrInvalidRange      = errors.New("invalid date range")
	ErrRuleNotFound      = errors.New("surcharge rule not found")
	ErrInventoryNotFound = errors.New("inventory record not found")
)
