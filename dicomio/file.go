package dicomio

import (
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// FileByteSource is a ByteSource backed by a file. The filesystem is
// abstracted behind afero so tests can run against an in-memory one.
type FileByteSource struct {
	file   afero.File
	path   string
	size   int64
	closed bool
}

// OpenFileSource opens path on fs for reading. The size is captured at
// open time.
func OpenFileSource(fs afero.Fs, path string) (*FileByteSource, error) {
	file, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open byte source")
	}

	st, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, errors.Wrap(err, "stat byte source")
	}

	return &FileByteSource{file: file, path: path, size: st.Size()}, nil
}

func (self *FileByteSource) Read(buf []byte) (int, error) {
	if self.closed {
		return 0, ErrSourceUnavailable
	}
	return self.file.Read(buf)
}

func (self *FileByteSource) Seek(offset int64, whence int) (int64, error) {
	if self.closed {
		return 0, ErrSourceUnavailable
	}
	return self.file.Seek(offset, whence)
}

func (self *FileByteSource) Readable() bool {
	return !self.closed
}

func (self *FileByteSource) Size() int64 {
	return self.size
}

func (self *FileByteSource) Path() string {
	return self.path
}

func (self *FileByteSource) Close() error {
	if self.closed {
		return nil
	}
	self.closed = true
	return self.file.Close()
}
