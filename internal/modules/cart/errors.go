package cart

import "errors"

var (
	ErrClassNotFound    = errors.New("class_not_found")
	ErrInvalidSelection = errors.New("invalid_selection")
	ErrInvalidDate      = errors.New("invalid_date")
)
