package estimator

import "errors"

var (
	ErrMissingAddress  = errors.New("missing address")
	ErrAddressNotFound = errors.New("address not found")
	ErrNoRoute         = errors.New("no driving route between addresses")
	ErrNetwork         = errors.New("estimation network error")
)
