package streambuf

// DefaultBufferSize is the storage size used for channels the caller does not
// supply storage for.
const DefaultBufferSize = 64

// Config defines storage for a Stream's channels. Nil values are default.
type Config struct {
	// TxStorage backs the transmit channel. One byte is reserved for the
	// content terminator, so an n-byte slice holds n-1 content bytes.
	TxStorage []byte

	// RxStorage backs the receive channel.
	RxStorage []byte
}

func (c *Config) copyAndFill() *Config {
	config := new(Config)
	if c != nil {
		*config = *c
	}

	if config.TxStorage == nil {
		config.TxStorage = make([]byte, DefaultBufferSize)
	}
	if config.RxStorage == nil {
		config.RxStorage = make([]byte, DefaultBufferSize)
	}

	return config
}
