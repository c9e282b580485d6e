package dicomio

import (
	"io"

	"github.com/pkg/errors"
)

// ByteSource is a seekable, read only stream of bytes. It is the only
// thing RangeBuffer needs from the outside world.
//
// The contract is stricter than io.Reader in one respect: a Read
// returning 0 bytes with a nil error means the source is exhausted for
// now, the same as io.EOF. A Read returning fewer bytes than len(buf)
// is a short read and implies nothing about the bytes that follow -
// the caller must keep reading.
//
// Sources carry a single cursor, so they are not safe for concurrent
// use. Callers sharing a source between consumers must serialize
// access, or give each consumer its own source.
type ByteSource interface {
	io.ReadSeeker

	// Readable reports whether the source can currently be read. It
	// returns false once the source is closed.
	Readable() bool
}

// MemoryByteSource is a ByteSource over a byte slice. It is the
// reference implementation of the contract: reads fill as much of the
// destination as the remaining data allows, and seeking beyond the end
// is legal (subsequent reads return 0 bytes).
type MemoryByteSource struct {
	data     []byte
	position int64
	closed   bool
}

func NewMemoryByteSource(data []byte) *MemoryByteSource {
	return &MemoryByteSource{data: data}
}

func (self *MemoryByteSource) Read(buf []byte) (int, error) {
	if self.closed {
		return 0, ErrSourceUnavailable
	}

	if self.position >= int64(len(self.data)) {
		return 0, io.EOF
	}

	n := copy(buf, self.data[self.position:])
	self.position += int64(n)
	return n, nil
}

func (self *MemoryByteSource) Seek(offset int64, whence int) (int64, error) {
	abs, err := resolveSeek(self.position, self.Size(), offset, whence)
	if err != nil {
		return 0, err
	}
	self.position = abs
	return abs, nil
}

func (self *MemoryByteSource) Readable() bool {
	return !self.closed
}

func (self *MemoryByteSource) Size() int64 {
	return int64(len(self.data))
}

// Close keeps the data but makes the source report unreadable, the way
// a file backed source does after closing.
func (self *MemoryByteSource) Close() error {
	self.closed = true
	return nil
}

func resolveSeek(position, size, offset int64, whence int) (int64, error) {
	var abs int64

	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = position + offset
	case io.SeekEnd:
		abs = size + offset
	default:
		return 0, errors.Errorf("invalid whence %v", whence)
	}

	if abs < 0 {
		return 0, errors.Errorf("negative position %v", abs)
	}

	return abs, nil
}
