package admin

import "errors"

var ErrInvalidPIN = errors.New("invalid_pin")
