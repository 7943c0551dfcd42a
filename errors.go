package chaskey

import "errors"

// ErrInvalidTagLength is returned when the requested tag length is not
// between 1 and 16 bytes.
var ErrInvalidTagLength = errors.New("chaskey: tag length must be between 1 and 16 bytes")
