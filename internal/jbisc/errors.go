package jbisc

import "errors"

// Sentinel errors for the parse failure modes. All of them abort the whole
// batch: the reference data is deterministic, so a failed record means the
// input needs fixing, not retrying.
var (
	ErrMalformedLine        = errors.New("malformed line")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrUnparseableDate      = errors.New("unparseable date")
)
