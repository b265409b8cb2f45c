// Package unpack converts a stream of Intel HEX records into a flat binary
// image suitable for flashing into firmware or loading into an emulator's
// address space.
//
// # Overview
//
// The unpacker consumes records one at a time, maintaining the running base
// address established by extended segment and extended linear address
// records, and copies each data record's bytes at its computed absolute
// offset into a fixed-capacity buffer. Positions never written keep the fill
// byte 0xFF, the conventional value of unprogrammed flash.
//
// # Basic Usage
//
// Load a file into a freshly allocated image:
//
//	u := unpack.New()
//	image, used, err := u.LoadFile("firmware.hex", 0x40000)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d bytes used of %d\n", used, len(image))
//
// Or unpack into a caller-owned buffer (which must be pre-filled):
//
//	buf := make([]byte, 0x40000)
//	for i := range buf {
//	    buf[i] = 0xFF
//	}
//	used, err := u.Unpack(ihex.NewReader(f), buf)
//
// # Rebasing
//
// Images that do not start at absolute address 0 are handled with a base
// offset, subtracted from every base address the record stream establishes:
//
//	u := unpack.New(unpack.WithBaseOffset(0x08000000))
//
// # Logging
//
// An optional logger traces every record together with the base address in
// effect when it was applied:
//
//	u := unpack.New(unpack.WithLogger(myLogger))
//
// # Error Handling
//
// The package provides structured error types:
//   - AddressTooHighError: a data record extends past the end of the image
//   - SourceError: the record source reported a failure (wraps the cause,
//     typically an *ihex.ParseError or an I/O error)
//   - BaseOffsetError: the configured base offset exceeds an extended base
//     address established by the stream
//
// Errors are fatal to the call and nothing is rolled back: bytes written by
// records before the failure remain in the buffer, and the returned count
// covers exactly those bytes. Callers wanting a best-effort image can use
// the partial buffer after inspecting the error.
package unpack
