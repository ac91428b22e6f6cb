package codec

import (
	"fmt"
)

// DecodeError is returned by Decode when the input is not valid
// JSON. It keeps the offending text, so callers can show the user
// exactly what failed to parse.
type DecodeError struct {
	// Text is the input that failed to decode, verbatim.
	Text string
	// Err is the underlying syntax error.
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("can't decode %q as JSON: %s", e.Text, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeError is returned by Encode when a value has no JSON
// representation and no EncodeHook is configured, or the hook
// declined it.
type EncodeError struct {
	// Value is the value which couldn't be encoded.
	Value interface{}
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("can't encode value of type %T as JSON", e.Value)
}
