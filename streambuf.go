// Package streambuf provides buffered byte-stream endpoints for
// resource-constrained devices, with deterministic behaviour when capacity runs
// out.
//
// Goals include:
//
// Caller-owned memory: backing storage is supplied by the caller and fixed at bind
// time. Nothing in the core allocates, grows or retains buffers of its own.
//
// Newest-data-wins overflow: writes that exceed capacity evict the oldest bytes
// rather than refusing the write, so the freshest data is always what a consumer
// drains. Overflow is reported, never silently absorbed.
//
// Modular and open: the sliding-window buffer lives in streambuf/window and the
// textual scalar codec in streambuf/scalar; both are usable on their own, and
// Stream is only a thin composition of two window.Buffer channels.
//
// streambuf/window provides the bounded sliding-window byte buffer.
//
// streambuf/scalar provides validation and conversion between textual tokens and
// fixed-width scalar values.
package streambuf

import (
	"io"

	"github.com/stewi1014/streambuf/window"
)

// Stream is a pair of bounded byte channels; writes accumulate in the transmit
// buffer and reads drain the receive buffer. It behaves like a conventional
// readable and writable byte stream without adding state of its own.
//
// A Stream is not thread-safe; serialize access per direction.
type Stream struct {
	tx window.Buffer
	rx window.Buffer
}

var (
	_ io.Reader       = (*Stream)(nil)
	_ io.Writer       = (*Stream)(nil)
	_ io.ByteReader   = (*Stream)(nil)
	_ io.ByteWriter   = (*Stream)(nil)
	_ io.StringWriter = (*Stream)(nil)
)

// New returns a Stream with both channels bound per config.
// Nil config and nil storage fields fall back to DefaultBufferSize allocations;
// this construction-time convenience is the only allocation Stream ever makes.
func New(config *Config) *Stream {
	config = config.copyAndFill()

	s := new(Stream)
	s.BindTx(config.TxStorage)
	s.BindRx(config.RxStorage)
	return s
}

// BindTx rebinds the transmit channel to storage, discarding its content.
func (s *Stream) BindTx(storage []byte) {
	warnInert("transmit", storage)
	s.tx.Bind(storage)
}

// BindRx rebinds the receive channel to storage, discarding its content.
func (s *Stream) BindRx(storage []byte) {
	warnInert("receive", storage)
	s.rx.Bind(storage)
}

// Available returns the number of bytes waiting in the receive channel.
func (s *Stream) Available() int { return s.rx.Len() }

// ReadByte pops the next byte from the receive channel.
// It returns io.EOF if the channel is empty.
func (s *Stream) ReadByte() (byte, error) {
	var b [1]byte
	if s.rx.Len() == 0 {
		return 0, io.EOF
	}
	s.rx.PopFront(b[:])
	return b[0], nil
}

// PeekByte returns the next byte from the receive channel without removing it.
// It returns io.EOF if the channel is empty.
func (s *Stream) PeekByte() (byte, error) {
	c, ok := s.rx.First()
	if !ok {
		return 0, io.EOF
	}
	return c, nil
}

// Read pops up to len(p) bytes from the receive channel into p.
// It returns io.EOF if the channel is empty and len(p) > 0.
func (s *Stream) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if s.rx.Len() == 0 {
		return 0, io.EOF
	}
	n, _ := s.rx.PopAll(p)
	return n, nil
}

// ReadString pops up to max bytes from the receive channel as a string.
func (s *Stream) ReadString(max int) string {
	if max > s.rx.Len() {
		max = s.rx.Len()
	}
	if max <= 0 {
		return ""
	}
	out := make([]byte, max)
	n, _ := s.rx.PopAll(out)
	return string(out[:n])
}

// Write appends p to the transmit channel with sliding-window overflow,
// returning the number of bytes retained. Overflow does not surface as an
// error here; the evicted write still lands, and TxErr reports it.
func (s *Stream) Write(p []byte) (int, error) {
	if !s.tx.Append(p) {
		if err := s.tx.Err(); err != window.ErrOverflow {
			return 0, err
		}
	}

	accepted := len(p)
	if usable := s.tx.Cap() - 1; accepted > usable {
		if usable < 0 {
			usable = 0
		}
		accepted = usable
	}
	return accepted, nil
}

// WriteByte appends c to the transmit channel.
// It returns the latched transmit error if c could not be appended cleanly.
func (s *Stream) WriteByte(c byte) error {
	b := [1]byte{c}
	if !s.tx.Append(b[:]) {
		return s.tx.Err()
	}
	return nil
}

// WriteString appends str to the transmit channel.
func (s *Stream) WriteString(str string) (int, error) {
	return s.Write([]byte(str))
}

// Flush clears the transmit channel, signalling its content as delivered.
func (s *Stream) Flush() { s.tx.Clear() }

// TxErr returns the transmit channel's latched error.
func (s *Stream) TxErr() error { return s.tx.Err() }

// RxErr returns the receive channel's latched error.
func (s *Stream) RxErr() error { return s.rx.Err() }

// ClearErr resets both channels' latched errors.
func (s *Stream) ClearErr() {
	s.tx.ClearErr()
	s.rx.ClearErr()
}

// Tx returns the transmit channel for callers needing the full buffer surface.
func (s *Stream) Tx() *window.Buffer { return &s.tx }

// Rx returns the receive channel for callers needing the full buffer surface.
func (s *Stream) Rx() *window.Buffer { return &s.rx }
