package dicomio

import "fmt"

// Fragment identifies one contiguous byte span within a source.
type Fragment struct {
	Offset int64 `json:"Offset"`
	Length int64 `json:"Length"`
}

// FrameFragments builds the fragment table for count fixed size frames
// laid out back to back starting at base. O(count), no I/O. A
// non-positive count behaves as an empty table.
func FrameFragments(base, frame_size int64, count int) []Fragment {
	if count < 0 {
		count = 0
	}
	res := make([]Fragment, 0, count)
	for i := 0; i < count; i++ {
		res = append(res, Fragment{
			Offset: base + int64(i)*frame_size,
			Length: frame_size,
		})
	}
	return res
}

// FragmentBuffers describes every fragment as a RangeBuffer over
// source. Like all range construction this issues no reads, so a table
// of thousands of frames stays cheap until individual frames are
// materialized.
func FragmentBuffers(source ByteSource, fragments []Fragment) []*RangeBuffer {
	res := make([]*RangeBuffer, 0, len(fragments))
	for _, frag := range fragments {
		res = append(res, NewRangeBuffer(source, frag.Offset, frag.Length))
	}
	return res
}

// CompositeFromFragments is FragmentBuffers collapsed into a single
// contiguous view.
func CompositeFromFragments(
	source ByteSource, fragments []Fragment) *CompositeBuffer {

	res := NewCompositeBuffer()
	for _, b := range FragmentBuffers(source, fragments) {
		res.Append(b)
	}
	return res
}

// FormatFragmentTable renders a fragment table one line per fragment.
func FormatFragmentTable(fragments []Fragment) string {
	res := ""
	for i, frag := range fragments {
		res += fmt.Sprintf("%d: offset %d length %d\n",
			i, frag.Offset, frag.Length)
	}
	return res
}
