package dicomio

import "io"

// RangeBuffer is a lazily materialized view over a (position, size)
// range of a ByteSource. Construction costs no I/O regardless of size,
// so a header scanner can describe thousands of ranges - one per image
// frame, say - before any byte is read.
//
// The buffer does not own the source and adds no synchronization: if
// the source is shared, the caller serializes access. Results are not
// cached; every Data call seeks back to the start of the range and
// reads it again. Callers accessing a range repeatedly should
// Materialize it once.
type RangeBuffer struct {
	source   ByteSource
	position int64
	size     int64
	strategy ReadStrategy
}

// NewRangeBuffer describes the size bytes starting at position in
// source. Nothing is read, sought or validated here: the source may be
// closed, empty or shorter than the range, and only Data will say so.
// A non-positive size behaves as an empty range.
func NewRangeBuffer(source ByteSource, position, size int64) *RangeBuffer {
	return NewRangeBufferStrategy(source, position, size, ReadUntilFull)
}

// NewRangeBufferStrategy is NewRangeBuffer with an explicit fill
// strategy.
func NewRangeBufferStrategy(source ByteSource, position, size int64,
	strategy ReadStrategy) *RangeBuffer {
	return &RangeBuffer{
		source:   source,
		position: position,
		size:     size,
		strategy: strategy,
	}
}

func (self *RangeBuffer) IsMemory() bool {
	return false
}

// Size returns the defined length of the range without touching the
// source.
func (self *RangeBuffer) Size() int64 {
	if self.size < 0 {
		return 0
	}
	return self.size
}

// Position returns the absolute offset in the source where the range
// begins.
func (self *RangeBuffer) Position() int64 {
	return self.position
}

// Data materializes the range. The source is seeked to the range start
// and read until the full size is obtained, tolerating any short read
// behavior the source exhibits. If the source runs out first, the
// result is an IncompleteRangeError carrying the byte count obtained -
// a full size sequence with a silently zeroed tail is never returned.
// Read and seek errors from the source propagate unmodified.
//
// The source cursor is left wherever the last read finished.
func (self *RangeBuffer) Data() ([]byte, error) {
	if !self.source.Readable() {
		return nil, ErrSourceUnavailable
	}

	size := self.Size()
	if size == 0 {
		return []byte{}, nil
	}

	_, err := self.source.Seek(self.position, io.SeekStart)
	if err != nil {
		return nil, err
	}

	data := make([]byte, size)
	n, err := self.strategy.Fill(self.source, data)
	if err != nil {
		return nil, err
	}

	if int64(n) < size {
		return nil, &IncompleteRangeError{
			Position: self.position,
			Want:     size,
			Got:      int64(n),
		}
	}

	return data, nil
}

// ByteRange materializes count bytes starting at offset within the
// range, reading only that slice of the source.
func (self *RangeBuffer) ByteRange(offset, count int64) ([]byte, error) {
	if err := checkRange(offset, count, self.Size()); err != nil {
		return nil, err
	}

	sub := NewRangeBufferStrategy(
		self.source, self.position+offset, count, self.strategy)
	return sub.Data()
}

var _ ByteBuffer = (*RangeBuffer)(nil)
