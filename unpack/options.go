package unpack

// FillByte is the default fill value for unwritten image positions,
// conventionally representing unprogrammed flash.
const FillByte byte = 0xFF

// Config holds the unpacker configuration.
type Config struct {
	// BaseOffset is subtracted from every base address established by an
	// extended segment or extended linear address record. Used to rebase
	// images that do not start at absolute address 0.
	BaseOffset uint64

	// Fill is the byte value unwritten image positions are initialized to
	// by UnpackNew and LoadFile. Default is FillByte (0xFF).
	Fill byte

	// Logger is used to trace records as they are applied (optional)
	Logger Logger
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Fill: FillByte,
	}
}

// Option is a functional option for configuring the Unpacker.
type Option func(*Config)

// WithBaseOffset sets the offset subtracted from every computed base address.
//
// Example:
//
//	u := unpack.New(unpack.WithBaseOffset(0x08000000))
func WithBaseOffset(offset uint64) Option {
	return func(c *Config) {
		c.BaseOffset = offset
	}
}

// WithFill sets the fill byte for buffers allocated by UnpackNew and
// LoadFile. Default is 0xFF.
//
// Example:
//
//	u := unpack.New(unpack.WithFill(0x00))
func WithFill(fill byte) Option {
	return func(c *Config) {
		c.Fill = fill
	}
}

// WithLogger sets a logger for tracing unpack operations.
//
// Example:
//
//	u := unpack.New(unpack.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}
