package unpack

import (
	"fmt"
)

// AddressTooHighError indicates that a data record's end address exceeds the
// capacity of the image buffer. The violating record is rejected whole; no
// partial write of it occurs.
type AddressTooHighError struct {
	// EndAddress is the absolute end address the record would have written to
	EndAddress uint64

	// Capacity is the image buffer length in bytes
	Capacity int
}

func (e *AddressTooHighError) Error() string {
	return fmt.Sprintf("address %d (0x%X) is greater than the image capacity %d",
		e.EndAddress, e.EndAddress, e.Capacity)
}

// SourceError indicates that the record source reported a failure.
// The cause is typically an *ihex.ParseError for malformed input, or the
// underlying I/O error when reading failed.
type SourceError struct {
	Err error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("record source failed: %v", e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// BaseOffsetError indicates that the configured base offset exceeds an
// extended base address established by the record stream, which would
// underflow the rebased address.
type BaseOffsetError struct {
	// BaseOffset is the configured base offset
	BaseOffset uint64

	// Base is the shifted extended base address from the record
	Base uint64
}

func (e *BaseOffsetError) Error() string {
	return fmt.Sprintf("base offset 0x%X exceeds the extended base address 0x%X",
		e.BaseOffset, e.Base)
}
