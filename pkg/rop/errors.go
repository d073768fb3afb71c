package rop

import (
	"errors"
	"fmt"
)

// ErrInvalidPayload is matched by every error raised for an absent payload.
var ErrInvalidPayload = errors.New("rop: invalid payload")

// InvalidPayloadError reports an attempt to build an outcome around an absent value.
type InvalidPayloadError struct {
	Variant string
	Type    string
}

func (e *InvalidPayloadError) Error() string {
	return fmt.Sprintf("%s: absent %s value of type %s", ErrInvalidPayload, e.Variant, e.Type)
}

func (e *InvalidPayloadError) Unwrap() error {
	return ErrInvalidPayload
}
