package dicomio

// CompositeBuffer presents an ordered list of buffers as one
// contiguous sequence, the shape of multi-fragment pixel data.
type CompositeBuffer struct {
	buffers []ByteBuffer
}

func NewCompositeBuffer(buffers ...ByteBuffer) *CompositeBuffer {
	return &CompositeBuffer{buffers: buffers}
}

func (self *CompositeBuffer) Append(buffers ...ByteBuffer) {
	self.buffers = append(self.buffers, buffers...)
}

func (self *CompositeBuffer) IsMemory() bool {
	for _, b := range self.buffers {
		if !b.IsMemory() {
			return false
		}
	}
	return true
}

func (self *CompositeBuffer) Size() int64 {
	total := int64(0)
	for _, b := range self.buffers {
		total += b.Size()
	}
	return total
}

func (self *CompositeBuffer) Data() ([]byte, error) {
	res := make([]byte, 0, self.Size())

	for _, b := range self.buffers {
		data, err := b.Data()
		if err != nil {
			return nil, err
		}
		res = append(res, data...)
	}

	return res, nil
}

func (self *CompositeBuffer) ByteRange(offset, count int64) ([]byte, error) {
	if err := checkRange(offset, count, self.Size()); err != nil {
		return nil, err
	}

	res := make([]byte, 0, count)
	remaining := count

	for _, b := range self.buffers {
		if remaining == 0 {
			break
		}

		size := b.Size()
		if offset >= size {
			offset -= size
			continue
		}

		take := size - offset
		if take > remaining {
			take = remaining
		}

		part, err := b.ByteRange(offset, take)
		if err != nil {
			return nil, err
		}

		res = append(res, part...)
		remaining -= take
		offset = 0
	}

	return res, nil
}

var _ ByteBuffer = (*CompositeBuffer)(nil)
