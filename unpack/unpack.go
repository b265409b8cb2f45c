package unpack

import (
	"fmt"
	"os"

	"github.com/moffa90/go-ihex/ihex"
)

// Source produces a finite sequence of decoded records.
// *ihex.Reader satisfies it; any other record producer can be plugged in.
type Source interface {
	// Scan advances to the next record, returning false when the sequence
	// is exhausted or a failure occurred
	Scan() bool

	// Record returns the record produced by the last successful Scan
	Record() ihex.Record

	// Err returns the failure that stopped Scan, or nil
	Err() error
}

// Unpacker converts record sequences into flat binary images.
// The zero configuration (unpack.New()) unpacks images based at address 0
// with a 0xFF fill.
//
// Unpacker is safe for concurrent use; each call operates only on its own
// arguments and local state.
type Unpacker struct {
	config Config
}

// New creates a new Unpacker with the given options.
//
// Example:
//
//	u := unpack.New(
//	    unpack.WithBaseOffset(0x08000000),
//	    unpack.WithLogger(myLogger),
//	)
func New(opts ...Option) *Unpacker {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Unpacker{config: cfg}
}

// Unpack drives src to exhaustion or early termination, copying data records
// into buf at their computed absolute offsets, and returns the number of
// bytes written.
//
// The caller owns buf and is responsible for pre-filling it; Unpack only
// writes positions covered by data records. Overlapping records are applied
// in sequence order (last write wins) and each contributes its full length
// to the returned count.
//
// Processing stops at the first end-of-file record; anything after it is
// not consumed. A source failure is returned as *SourceError, a data record
// extending past len(buf) as *AddressTooHighError. On error, bytes written
// by prior records remain in buf and the returned count covers exactly
// those bytes.
func (u *Unpacker) Unpack(src Source, buf []byte) (int, error) {
	var baseAddress uint64
	used := 0

	for src.Scan() {
		rec := src.Record()
		u.logDebug("record", "base_address", fmt.Sprintf("0x%04X", baseAddress), "rec", rec.String())

		switch rec.Type {
		case ihex.TypeData:
			start := baseAddress + uint64(rec.Offset)
			end := start + uint64(len(rec.Data))
			if end > uint64(len(buf)) {
				return used, &AddressTooHighError{
					EndAddress: end,
					Capacity:   len(buf),
				}
			}

			copy(buf[start:end], rec.Data)
			used += len(rec.Data)

		case ihex.TypeExtendedSegmentAddress:
			base, err := u.rebase(uint64(rec.ExtendedAddress()) << 4)
			if err != nil {
				return used, err
			}
			baseAddress = base

		case ihex.TypeExtendedLinearAddress:
			base, err := u.rebase(uint64(rec.ExtendedAddress()) << 16)
			if err != nil {
				return used, err
			}
			baseAddress = base

		case ihex.TypeEndOfFile:
			return used, nil

		case ihex.TypeStartSegmentAddress, ihex.TypeStartLinearAddress:
			// Program entry point, not part of the image.
		}
	}

	if err := src.Err(); err != nil {
		return used, &SourceError{Err: err}
	}

	// A missing end-of-file record is tolerated.
	return used, nil
}

// UnpackNew allocates an image of the given size, fills it, and unpacks src
// into it. On error the partially written image is still returned together
// with the count of bytes applied before the failure.
func (u *Unpacker) UnpackNew(src Source, size int) ([]byte, int, error) {
	buf := make([]byte, size)
	for i := range buf {
		buf[i] = u.config.Fill
	}

	used, err := u.Unpack(src, buf)
	return buf, used, err
}

// LoadFile reads the Intel HEX file at path and unpacks it into a freshly
// allocated image of the given size.
//
// Example:
//
//	image, used, err := u.LoadFile("firmware.hex", 0x40000)
func (u *Unpacker) LoadFile(path string, size int) ([]byte, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return u.UnpackNew(ihex.NewReader(f), size)
}

// rebase applies the configured base offset to a shifted extended base
// address, refusing to underflow.
func (u *Unpacker) rebase(base uint64) (uint64, error) {
	if u.config.BaseOffset > base {
		return 0, &BaseOffsetError{
			BaseOffset: u.config.BaseOffset,
			Base:       base,
		}
	}
	return base - u.config.BaseOffset, nil
}

// logDebug logs a debug message if a logger is configured.
func (u *Unpacker) logDebug(msg string, keysAndValues ...interface{}) {
	if u.config.Logger != nil {
		u.config.Logger.Debug(msg, keysAndValues...)
	}
}
