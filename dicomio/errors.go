package dicomio

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrSourceUnavailable is returned when a retrieval starts on a source
// that reports itself unreadable, typically because it was closed.
var ErrSourceUnavailable = errors.New("byte source is not readable")

// IncompleteRangeError reports that the source was exhausted before a
// full range could be read. Got carries the number of bytes that were
// actually obtained.
type IncompleteRangeError struct {
	Position int64
	Want     int64
	Got      int64
}

func (self *IncompleteRangeError) Error() string {
	return fmt.Sprintf("incomplete range at offset %v: got %v of %v bytes",
		self.Position, self.Got, self.Want)
}
