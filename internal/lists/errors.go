package lists

import "errors"

// ErrInvalidIndex indicates the caller referenced an entry index outside the list bounds.
var ErrInvalidIndex = errors.New("entry index out of range")
