// Package dicomio provides lazy access to byte ranges inside seekable
// image streams.
//
// A RangeBuffer describes a (position, size) span of a ByteSource
// without touching it. The bytes are only read when Data is called,
// and the read loop issues as many calls as the source needs: a source
// that delivers a range in several short reads still yields the
// complete range, never a silently truncated or zero padded one.
// Concrete sources cover in-memory data, plain files, memory mapped
// files and arbitrary io.ReaderAt implementations.
package dicomio
