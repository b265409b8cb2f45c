package ihex

import (
	"encoding/binary"
	"fmt"
)

// RecordType identifies the kind of an Intel HEX record.
type RecordType byte

// Record type tags as defined by the Intel HEX specification.
const (
	// TypeData carries data bytes at a 16-bit offset
	TypeData RecordType = 0x00

	// TypeEndOfFile terminates the file
	TypeEndOfFile RecordType = 0x01

	// TypeExtendedSegmentAddress redefines the base address as value << 4
	TypeExtendedSegmentAddress RecordType = 0x02

	// TypeStartSegmentAddress carries the CS:IP program entry point
	TypeStartSegmentAddress RecordType = 0x03

	// TypeExtendedLinearAddress redefines the base address as value << 16
	TypeExtendedLinearAddress RecordType = 0x04

	// TypeStartLinearAddress carries the EIP program entry point
	TypeStartLinearAddress RecordType = 0x05
)

// String returns a human-readable name for the record type.
func (t RecordType) String() string {
	switch t {
	case TypeData:
		return "data"
	case TypeEndOfFile:
		return "end of file"
	case TypeExtendedSegmentAddress:
		return "extended segment address"
	case TypeStartSegmentAddress:
		return "start segment address"
	case TypeExtendedLinearAddress:
		return "extended linear address"
	case TypeStartLinearAddress:
		return "start linear address"
	default:
		return fmt.Sprintf("unknown (0x%02X)", byte(t))
	}
}

// Record represents a single decoded Intel HEX record.
type Record struct {
	// Type is the record type tag
	Type RecordType

	// Offset is the 16-bit offset field. Only meaningful for data records.
	Offset uint16

	// Data is the record payload. Empty for end-of-file records.
	Data []byte
}

// ExtendedAddress returns the big-endian 16-bit payload of an extended
// segment or extended linear address record. Returns 0 for any other
// record type.
func (r Record) ExtendedAddress() uint16 {
	if r.Type != TypeExtendedSegmentAddress && r.Type != TypeExtendedLinearAddress {
		return 0
	}
	return binary.BigEndian.Uint16(r.Data)
}

// String returns a compact description of the record for diagnostics.
func (r Record) String() string {
	switch r.Type {
	case TypeData:
		return fmt.Sprintf("data: offset=0x%04X len=%d", r.Offset, len(r.Data))
	case TypeExtendedSegmentAddress, TypeExtendedLinearAddress:
		return fmt.Sprintf("%s: 0x%04X", r.Type, r.ExtendedAddress())
	case TypeEndOfFile:
		return "end of file"
	default:
		return fmt.Sprintf("%s: % 02X", r.Type, r.Data)
	}
}
