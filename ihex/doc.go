// Package ihex provides record-level parsing for Intel HEX files.
//
// # Intel HEX Format
//
// An Intel HEX file is a sequence of text lines, each encoding one record:
//
//	:LLAAAATT[DD...]CC
//
// Where:
//   - ':' = start code
//   - LL = byte count of the data field (2 hex characters)
//   - AAAA = 16-bit offset, big-endian (4 hex characters)
//   - TT = record type (2 hex characters)
//   - DD = data bytes (LL * 2 hex characters)
//   - CC = checksum (2 hex characters, 2's complement of the byte sum)
//
// Record types:
//
//	0x00 Data                       data bytes at the 16-bit offset
//	0x01 End Of File                terminates the file, no data
//	0x02 Extended Segment Address   2-byte base, effective address = base << 4
//	0x03 Start Segment Address      4-byte CS:IP entry point
//	0x04 Extended Linear Address    2-byte base, effective address = base << 16
//	0x05 Start Linear Address       4-byte EIP entry point
//
// Example record:
//
//	:020000000102FB
//	  02 = 2 data bytes
//	  0000 = offset 0
//	  00 = Data record
//	  0102 = data bytes [0x01, 0x02]
//	  FB = checksum
//
// # Usage
//
// Records are consumed lazily through a Reader:
//
//	r := ihex.NewReader(file)
//	for r.Scan() {
//	    rec := r.Record()
//	    fmt.Printf("%s\n", rec)
//	}
//	if err := r.Err(); err != nil {
//	    log.Fatal(err)
//	}
//
// Or materialized in one call:
//
//	recs, err := ihex.ReadAll(file)
//
// # Error Handling
//
// The Reader validates every line before yielding its record:
//   - Missing start code
//   - Invalid hex encoding
//   - Declared length not matching the actual data field
//   - Checksum mismatches
//   - Per-type payload rules (EOF records carry no data, extended address
//     records carry exactly 2 bytes, start address records exactly 4)
//
// Failures are reported as *ParseError carrying the 1-based line number.
package ihex
