package dicomio

import "io"

// ReaderAtSource adapts an io.ReaderAt with a known size into a
// ByteSource. This is the usual way to feed a paged or caching reader
// into the buffer layer.
type ReaderAtSource struct {
	reader   io.ReaderAt
	size     int64
	position int64
	closed   bool

	closer func()
}

func NewReaderAtSource(reader io.ReaderAt, size int64) *ReaderAtSource {
	return &ReaderAtSource{reader: reader, size: size}
}

// NewReaderAtSourceCloser also registers closer to run when the source
// is closed.
func NewReaderAtSourceCloser(
	reader io.ReaderAt, size int64, closer func()) *ReaderAtSource {
	return &ReaderAtSource{reader: reader, size: size, closer: closer}
}

func (self *ReaderAtSource) Read(buf []byte) (int, error) {
	if self.closed {
		return 0, ErrSourceUnavailable
	}

	if self.position >= self.size {
		return 0, io.EOF
	}

	to_read := int64(len(buf))
	available_length := self.size - self.position
	if to_read > available_length {
		to_read = available_length
	}

	n, err := self.reader.ReadAt(buf[:to_read], self.position)
	self.position += int64(n)
	if err == io.EOF && n > 0 {
		err = nil
	}
	return n, err
}

func (self *ReaderAtSource) Seek(offset int64, whence int) (int64, error) {
	abs, err := resolveSeek(self.position, self.size, offset, whence)
	if err != nil {
		return 0, err
	}
	self.position = abs
	return abs, nil
}

func (self *ReaderAtSource) Readable() bool {
	return !self.closed
}

func (self *ReaderAtSource) Size() int64 {
	return self.size
}

func (self *ReaderAtSource) Close() error {
	if self.closed {
		return nil
	}
	self.closed = true
	if self.closer != nil {
		self.closer()
	}
	return nil
}
