package stringify

import (
	"fmt"
)

// DecodeError is returned when byte content cannot be decoded as UTF-8.
type DecodeError struct {
	// Offset is the number of leading bytes that decoded successfully.
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode bytes as utf-8 at offset %d: %v", e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
