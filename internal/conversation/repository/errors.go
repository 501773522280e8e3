package repository

import "errors"

var (
	// ErrMalformedAck is returned when the store accepted a write without confirming exactly one new row.
	ErrMalformedAck = errors.New("store did not acknowledge exactly one row")
)
