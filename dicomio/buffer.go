package dicomio

import "github.com/pkg/errors"

// ByteBuffer is a handle to a defined-length sequence of bytes that
// may or may not be resident in memory. Lazy implementations pay their
// I/O cost in Data and ByteRange, never earlier.
type ByteBuffer interface {
	// IsMemory reports whether Data is free of I/O.
	IsMemory() bool

	// Size returns the defined length of the buffer without any I/O.
	Size() int64

	// Data returns the complete byte sequence.
	Data() ([]byte, error)

	// ByteRange returns count bytes starting at offset within the
	// buffer.
	ByteRange(offset, count int64) ([]byte, error)
}

// MemoryBuffer is a ByteBuffer over bytes already in memory. Data
// returns the backing slice without copying, so callers must not
// modify the result.
type MemoryBuffer struct {
	data []byte
}

func NewMemoryBuffer(data []byte) *MemoryBuffer {
	return &MemoryBuffer{data: data}
}

func (self *MemoryBuffer) IsMemory() bool {
	return true
}

func (self *MemoryBuffer) Size() int64 {
	return int64(len(self.data))
}

func (self *MemoryBuffer) Data() ([]byte, error) {
	return self.data, nil
}

func (self *MemoryBuffer) ByteRange(offset, count int64) ([]byte, error) {
	if err := checkRange(offset, count, self.Size()); err != nil {
		return nil, err
	}

	res := make([]byte, count)
	copy(res, self.data[offset:offset+count])
	return res, nil
}

// EmptyBuffer is the canonical zero length buffer.
var EmptyBuffer ByteBuffer = &MemoryBuffer{}

// Materialize reads b fully and returns it as a MemoryBuffer. This is
// the caching decision the lazy buffers leave to the caller:
// materialize once, then access repeatedly without further I/O. A
// MemoryBuffer is returned as is.
func Materialize(b ByteBuffer) (*MemoryBuffer, error) {
	if mem, ok := b.(*MemoryBuffer); ok {
		return mem, nil
	}

	data, err := b.Data()
	if err != nil {
		return nil, err
	}
	return NewMemoryBuffer(data), nil
}

func checkRange(offset, count, size int64) error {
	// count > size-offset rather than offset+count > size: the sum
	// can overflow, the subtraction cannot.
	if offset < 0 || count < 0 || count > size-offset {
		return errors.Errorf("byte range at offset %v count %v outside buffer of %v bytes",
			offset, count, size)
	}
	return nil
}

var _ ByteBuffer = (*MemoryBuffer)(nil)
