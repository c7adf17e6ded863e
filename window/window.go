// Package window provides a fixed-capacity byte buffer with sliding-window overflow.
//
// The buffer operates on caller-owned storage; it never allocates, grows or retains
// memory of its own. One byte of the storage is reserved so a NUL terminator can
// always be written after the logical content, which keeps the content usable as a
// bounded C-style string by codecs layered on top.
//
// When a write exceeds free space the newest data wins; exactly as many of the
// oldest bytes as needed are evicted from the front. Buffers are not thread-safe.
package window

// Buffer is a bounded byte buffer over caller-owned storage.
//
// The zero Buffer is inert; Bind it to storage before use. Capacity is the length
// of the bound storage, of which at most capacity-1 bytes hold content.
type Buffer struct {
	storage []byte
	used    int
	err     error
}

// Bind replaces the backing storage, zero-filling it and resetting the content
// length to zero. Binding nil or empty storage leaves the buffer inert.
// It cannot fail and does not touch the latched error.
func (b *Buffer) Bind(storage []byte) {
	b.storage = storage
	b.used = 0
	for i := range b.storage {
		b.storage[i] = 0
	}
}

// Clear zero-fills the storage and resets the content length to zero.
func (b *Buffer) Clear() {
	b.used = 0
	for i := range b.storage {
		b.storage[i] = 0
	}
}

// Len returns the number of content bytes currently held.
func (b *Buffer) Len() int { return b.used }

// Cap returns the size of the bound storage.
func (b *Buffer) Cap() int { return len(b.storage) }

// Free returns the number of content bytes that fit without eviction.
func (b *Buffer) Free() int { return b.free() }

// Err returns the error latched by the most recent fallible operation,
// or nil if it succeeded.
func (b *Buffer) Err() error { return b.err }

// ClearErr resets the latched error.
func (b *Buffer) ClearErr() { b.err = nil }

// At returns the content byte at index i.
// It returns false if i is outside the content.
func (b *Buffer) At(i int) (byte, bool) {
	if i < 0 || i >= b.used {
		return 0, false
	}
	return b.storage[i], true
}

// First returns the oldest content byte.
// It returns false if the buffer is empty.
func (b *Buffer) First() (byte, bool) {
	if b.used == 0 {
		return 0, false
	}
	return b.storage[0], true
}

// String returns the content as a string. Intended for diagnostics.
func (b *Buffer) String() string { return string(b.storage[:b.used]) }

// Overwrite replaces the entire content with data.
//
// It fails with ErrOverflow, leaving the buffer untouched, if data does not fit
// in capacity-1 bytes. The bound is capacity-1 rather than capacity so the
// terminator byte is writable on every path, matching Append's accounting.
func (b *Buffer) Overwrite(data []byte) bool {
	if data == nil {
		b.err = ErrNilData
		return false
	}
	if len(data) > b.max() {
		b.err = ErrOverflow
		return false
	}

	copy(b.storage, data)
	b.used = len(data)
	b.terminate()
	b.err = nil
	return true
}

// Append copies data to the tail of the buffer.
//
// If data exceeds free space, exactly the deficit of oldest bytes is evicted from
// the front first, ErrOverflow is latched and Append returns false. If data is
// larger than capacity-1 even an empty buffer cannot hold it, and only the last
// capacity-1 bytes of data are kept. Append returns true only when the entire
// data was accepted with nothing evicted or dropped.
func (b *Buffer) Append(data []byte) bool {
	if data == nil {
		b.err = ErrNilData
		return false
	}

	free := b.free()
	if len(data) <= free {
		copy(b.storage[b.used:], data)
		b.used += len(data)
		b.terminate()
		b.err = nil
		return true
	}

	b.err = ErrOverflow

	max := b.max()
	if max == 0 {
		return false
	}
	if len(data) > max {
		data = data[len(data)-max:]
	}

	deficit := len(data) - free
	copy(b.storage, b.storage[deficit:b.used])
	b.used -= deficit

	copy(b.storage[b.used:], data)
	b.used += len(data)
	b.terminate()
	return false
}

// PopFront copies len(out) bytes from the front into out, removing them.
//
// If fewer than len(out) bytes are held, the copy and removal clamp to what is
// available, ErrNotEnoughData is latched and PopFront returns false; out[:Len()]
// still receives the popped bytes. Nil or empty out fails with ErrNilData or
// ErrSizeZero without touching the buffer.
func (b *Buffer) PopFront(out []byte) bool {
	if out == nil {
		b.err = ErrNilData
		return false
	}
	if len(out) == 0 {
		b.err = ErrSizeZero
		return false
	}

	n := len(out)
	ok := true
	if n > b.used {
		n = b.used
		b.err = ErrNotEnoughData
		ok = false
	} else {
		b.err = nil
	}

	copy(out, b.storage[:n])
	b.remove(n)
	return ok
}

// PopAll copies up to len(out) bytes from the front into out, removing exactly
// the copied bytes. It returns the number of bytes popped, and true when either
// the whole of out was filled or the buffer was drained empty.
func (b *Buffer) PopAll(out []byte) (int, bool) {
	if out == nil {
		b.err = ErrNilData
		return 0, false
	}

	n := b.used
	if n > len(out) {
		n = len(out)
	}

	copy(out, b.storage[:n])
	b.remove(n)
	b.err = nil
	return n, n == len(out) || b.used == 0
}

// RemoveFront removes n bytes from the front without copying them out.
// It fails with ErrNotEnoughData, leaving the buffer untouched, if fewer than
// n bytes are held.
func (b *Buffer) RemoveFront(n int) bool {
	if n <= 0 {
		b.err = ErrSizeZero
		return false
	}
	if n > b.used {
		b.err = ErrNotEnoughData
		return false
	}

	b.remove(n)
	b.err = nil
	return true
}

// max returns the largest content length the storage can hold.
func (b *Buffer) max() int {
	if len(b.storage) == 0 {
		return 0
	}
	return len(b.storage) - 1
}

// free returns content bytes available without eviction.
func (b *Buffer) free() int {
	if b.used >= b.max() {
		return 0
	}
	return b.max() - b.used
}

// remove drops n front bytes, compacting the remainder left.
// n must not exceed b.used.
func (b *Buffer) remove(n int) {
	copy(b.storage, b.storage[n:b.used])
	b.used -= n
	b.terminate()
}

func (b *Buffer) terminate() {
	if len(b.storage) > 0 {
		b.storage[b.used] = 0
	}
}
