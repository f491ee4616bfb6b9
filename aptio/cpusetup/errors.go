package cpusetup

import (
	"errors"
	"fmt"
)

var (
	ErrorTruncatedRecord = errors.New("Record extends past end of image")
)

// OffsetError is returned when a record at Offset does not fit in an image
// of Length bytes.
type OffsetError struct {
	Offset int
	Length int
}

func (e *OffsetError) Error() string {
	return fmt.Sprintf("record at 0x%x needs %d bytes, image is 0x%x bytes", e.Offset, Size, e.Length)
}

func (e *OffsetError) Unwrap() error {
	return ErrorTruncatedRecord
}
