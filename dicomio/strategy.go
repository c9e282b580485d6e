package dicomio

import "io"

// ReadStrategy is the policy for filling a destination buffer from a
// source already positioned at the start of a range. Fill returns the
// number of bytes placed at the front of buf. Running out of source
// before buf is full is not an error at this level - the caller
// decides what a shortfall means.
type ReadStrategy interface {
	Fill(source ByteSource, buf []byte) (int, error)
}

// ReadUntilFull keeps issuing reads until the buffer is full or the
// source reports exhaustion (a zero byte read or io.EOF). This is the
// default strategy: a source is free to split a range over several
// short reads, and only this strategy is correct for such sources.
var ReadUntilFull ReadStrategy = readUntilFull{}

// SingleRead issues exactly one read call. It is only sound for
// sources that always fill the destination while data remains, such as
// in-memory and memory mapped sources. On a chunked source it obtains
// a prefix of the range and nothing else; RangeBuffer reports the
// shortfall rather than passing the unfilled tail off as data.
var SingleRead ReadStrategy = singleRead{}

type readUntilFull struct{}

func (readUntilFull) Fill(source ByteSource, buf []byte) (int, error) {
	total := 0

	for total < len(buf) {
		n, err := source.Read(buf[total:])
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			return total, err
		}
		if n == 0 {
			// Exhausted for now, per the ByteSource contract.
			break
		}
	}

	return total, nil
}

type singleRead struct{}

func (singleRead) Fill(source ByteSource, buf []byte) (int, error) {
	n, err := source.Read(buf)
	if err == io.EOF {
		err = nil
	}
	return n, err
}
