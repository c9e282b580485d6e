package dicomio

import (
	"io"
	"os"

	mmap "github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
)

// MmapByteSource maps a file read only and serves reads straight out
// of the mapping. Close unmaps the memory, so the source must not be
// used after Close - Readable reports this.
type MmapByteSource struct {
	file     *os.File
	mapping  mmap.MMap
	position int64
	closed   bool
}

func OpenMmapSource(path string) (*MmapByteSource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open mmap source")
	}

	st, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, errors.Wrap(err, "stat mmap source")
	}

	// Mapping an empty file is an error on most platforms. An empty
	// source needs no mapping at all.
	var mapping mmap.MMap
	if st.Size() > 0 {
		mapping, err = mmap.Map(file, mmap.RDONLY, 0)
		if err != nil {
			file.Close()
			return nil, errors.Wrap(err, "mmap source")
		}
	}

	return &MmapByteSource{file: file, mapping: mapping}, nil
}

func (self *MmapByteSource) Read(buf []byte) (int, error) {
	if self.closed {
		return 0, ErrSourceUnavailable
	}

	if self.position >= int64(len(self.mapping)) {
		return 0, io.EOF
	}

	n := copy(buf, self.mapping[self.position:])
	self.position += int64(n)
	return n, nil
}

func (self *MmapByteSource) Seek(offset int64, whence int) (int64, error) {
	abs, err := resolveSeek(self.position, self.Size(), offset, whence)
	if err != nil {
		return 0, err
	}
	self.position = abs
	return abs, nil
}

func (self *MmapByteSource) Readable() bool {
	return !self.closed
}

func (self *MmapByteSource) Size() int64 {
	return int64(len(self.mapping))
}

func (self *MmapByteSource) Close() error {
	if self.closed {
		return nil
	}
	self.closed = true

	var err error
	if self.mapping != nil {
		err = self.mapping.Unmap()
	}
	if close_err := self.file.Close(); err == nil {
		err = close_err
	}
	return err
}
