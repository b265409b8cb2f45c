package ihex

import (
	"bufio"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// Constants for Intel HEX record parsing.
const (
	// StartCode is the character every record line begins with
	StartCode = ':'

	// RecordOverhead is the number of non-data bytes in a decoded record
	// (count + offset + type + checksum)
	RecordOverhead = 5

	// MinRecordLength is the minimum length of a record line in characters:
	// start code plus two hex characters per overhead byte
	MinRecordLength = 1 + RecordOverhead*2
)

// Reader decodes Intel HEX records lazily, one line per Scan call.
//
// Example:
//
//	r := ihex.NewReader(file)
//	for r.Scan() {
//	    rec := r.Record()
//	    // process rec
//	}
//	if err := r.Err(); err != nil {
//	    // handle parse or I/O failure
//	}
type Reader struct {
	scanner *bufio.Scanner
	rec     Record
	err     error
	line    int
}

// NewReader returns a Reader that decodes records from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// Scan advances to the next record, skipping blank lines. It returns false
// when the input is exhausted or a line fails to parse; Err distinguishes
// the two.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}

	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" {
			continue
		}

		rec, err := parseRecord(line)
		if err != nil {
			r.err = &ParseError{Line: r.line, Err: err}
			return false
		}

		r.rec = rec
		return true
	}

	if err := r.scanner.Err(); err != nil {
		r.err = err
	}
	return false
}

// Record returns the record produced by the last successful Scan.
func (r *Reader) Record() Record {
	return r.rec
}

// Err returns the first failure encountered, or nil. Parse failures are
// reported as *ParseError; read failures from the underlying io.Reader are
// returned as-is.
func (r *Reader) Err() error {
	return r.err
}

// ReadAll decodes every record from r into a slice.
// Returns the records parsed before the first failure along with the error.
func ReadAll(r io.Reader) ([]Record, error) {
	reader := NewReader(r)
	var recs []Record
	for reader.Scan() {
		recs = append(recs, reader.Record())
	}
	return recs, reader.Err()
}

// parseRecord decodes a single record line.
//
// Line format (after trimming):
//
//	[':'][Count(2)][Offset(4)][Type(2)][Data(Count*2)][Checksum(2)]
//
// All multi-byte fields are big-endian hex.
func parseRecord(line string) (Record, error) {
	if line[0] != StartCode {
		return Record{}, fmt.Errorf("missing start code '%c'", StartCode)
	}

	if len(line) < MinRecordLength {
		return Record{}, fmt.Errorf("record too short: got %d characters, minimum is %d",
			len(line), MinRecordLength)
	}

	data, err := hex.DecodeString(line[1:])
	if err != nil {
		return Record{}, fmt.Errorf("invalid hex data: %w", err)
	}

	count := data[0]
	expectedLen := int(count) + RecordOverhead
	if len(data) != expectedLen {
		return Record{}, fmt.Errorf("data length mismatch: got %d bytes, expected %d (count=%d + overhead=%d)",
			len(data), expectedLen, count, RecordOverhead)
	}

	checksum := data[len(data)-1]
	calculated := calculateChecksum(data[:len(data)-1])
	if checksum != calculated {
		return Record{}, fmt.Errorf("checksum mismatch: got 0x%02X, expected 0x%02X",
			checksum, calculated)
	}

	rec := Record{
		Type:   RecordType(data[3]),
		Offset: binary.BigEndian.Uint16(data[1:3]),
		Data:   data[4 : 4+count],
	}

	if err := validatePayload(rec.Type, count); err != nil {
		return Record{}, err
	}

	return rec, nil
}

// validatePayload enforces the per-type data length rules.
func validatePayload(t RecordType, count byte) error {
	switch t {
	case TypeData:
		return nil
	case TypeEndOfFile:
		if count != 0 {
			return fmt.Errorf("end of file record must carry no data, got %d bytes", count)
		}
	case TypeExtendedSegmentAddress, TypeExtendedLinearAddress:
		if count != 2 {
			return fmt.Errorf("%s record requires a 2-byte payload, got %d bytes", t, count)
		}
	case TypeStartSegmentAddress, TypeStartLinearAddress:
		if count != 4 {
			return fmt.Errorf("%s record requires a 4-byte payload, got %d bytes", t, count)
		}
	default:
		return fmt.Errorf("unknown record type 0x%02X", byte(t))
	}
	return nil
}

// calculateChecksum computes the 8-bit record checksum.
// Uses basic summation with 2's complement.
func calculateChecksum(data []byte) byte {
	var sum byte
	for _, b := range data {
		sum += b
	}
	return ^sum + 1 // 2's complement
}
