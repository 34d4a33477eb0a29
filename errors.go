package jdxi

import "errors"

// Error taxonomy. Composer errors are always fatal to that call; the parser
// only fails hard on framing, header and checksum problems. Per-parameter
// misses during parsing are recorded in ToneData.Failures instead.
var (
	ErrHeaderMismatch    = errors.New("jdxi: header mismatch")
	ErrTruncatedMessage  = errors.New("jdxi: truncated message")
	ErrChecksumMismatch  = errors.New("jdxi: checksum mismatch")
	ErrUnknownParameter  = errors.New("jdxi: unknown parameter")
	ErrValueOutOfRange   = errors.New("jdxi: value out of range")
	ErrAddressResolution = errors.New("jdxi: address resolution failed")
)
