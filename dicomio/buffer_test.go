package dicomio

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBuffer(t *testing.T) {
	data := makeData(32)
	buffer := NewMemoryBuffer(data)

	assert.True(t, buffer.IsMemory())
	assert.Equal(t, int64(32), buffer.Size())

	t.Run("data does not copy", func(t *testing.T) {
		res, err := buffer.Data()
		require.NoError(t, err)
		assert.Same(t, unsafe.SliceData(data), unsafe.SliceData(res))
	})

	t.Run("byte range copies", func(t *testing.T) {
		res, err := buffer.ByteRange(4, 8)
		require.NoError(t, err)
		assert.Equal(t, data[4:12], res)

		res[0] = 0xff
		assert.NotEqual(t, res[0], data[4])
	})

	t.Run("byte range bounds", func(t *testing.T) {
		_, err := buffer.ByteRange(30, 8)
		assert.Error(t, err)

		// Bounds that overflow when summed must still be rejected.
		_, err = buffer.ByteRange(1<<62, 1<<62)
		assert.Error(t, err)
	})
}

func TestEmptyBuffer(t *testing.T) {
	assert.True(t, EmptyBuffer.IsMemory())
	assert.Equal(t, int64(0), EmptyBuffer.Size())

	res, err := EmptyBuffer.Data()
	require.NoError(t, err)
	assert.Empty(t, res)

	_, err = EmptyBuffer.ByteRange(0, 1)
	assert.Error(t, err)
}

func TestMaterialize(t *testing.T) {
	data := makeData(50)

	t.Run("range buffer", func(t *testing.T) {
		source := newChunkedSource(data, 7)
		mem, err := Materialize(NewRangeBuffer(source, 10, 20))
		require.NoError(t, err)

		assert.True(t, mem.IsMemory())
		res, err := mem.Data()
		require.NoError(t, err)
		assert.Equal(t, data[10:30], res)
	})

	t.Run("memory buffer passes through", func(t *testing.T) {
		buffer := NewMemoryBuffer(data)
		mem, err := Materialize(buffer)
		require.NoError(t, err)
		assert.Same(t, buffer, mem)
	})

	t.Run("errors surface", func(t *testing.T) {
		source := NewMemoryByteSource(data)
		_, err := Materialize(NewRangeBuffer(source, 0, 100))

		var incomplete *IncompleteRangeError
		assert.ErrorAs(t, err, &incomplete)
	})
}

func TestCompositeBuffer(t *testing.T) {
	data := makeData(40)
	source := newChunkedSource(data, 9)

	composite := NewCompositeBuffer(
		NewMemoryBuffer(data[0:5]),
		NewRangeBuffer(source, 5, 10),
		NewRangeBuffer(source, 15, 25),
	)

	assert.False(t, composite.IsMemory())
	assert.Equal(t, int64(40), composite.Size())

	t.Run("data concatenates children", func(t *testing.T) {
		res, err := composite.Data()
		require.NoError(t, err)
		assert.Equal(t, data, res)
	})

	t.Run("byte range spans children", func(t *testing.T) {
		res, err := composite.ByteRange(3, 20)
		require.NoError(t, err)
		assert.Equal(t, data[3:23], res)
	})

	t.Run("byte range within one child", func(t *testing.T) {
		res, err := composite.ByteRange(16, 4)
		require.NoError(t, err)
		assert.Equal(t, data[16:20], res)
	})

	t.Run("byte range bounds", func(t *testing.T) {
		_, err := composite.ByteRange(30, 20)
		assert.Error(t, err)
	})

	t.Run("all memory children", func(t *testing.T) {
		mem := NewCompositeBuffer(
			NewMemoryBuffer(data[:10]), NewMemoryBuffer(data[10:]))
		assert.True(t, mem.IsMemory())
	})

	t.Run("child errors surface", func(t *testing.T) {
		closed := NewMemoryByteSource(data)
		require.NoError(t, closed.Close())

		broken := NewCompositeBuffer(
			NewMemoryBuffer(data[:5]),
			NewRangeBuffer(closed, 5, 5),
		)

		_, err := broken.Data()
		assert.ErrorIs(t, err, ErrSourceUnavailable)
	})
}

func TestCompositeBufferAppend(t *testing.T) {
	data := makeData(20)

	composite := NewCompositeBuffer(NewMemoryBuffer(data[:10]))
	composite.Append(NewMemoryBuffer(data[10:]))

	assert.Equal(t, int64(20), composite.Size())

	res, err := composite.Data()
	require.NoError(t, err)
	assert.Equal(t, data, res)
}
