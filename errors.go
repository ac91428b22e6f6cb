package jsonfield

// ValidationError is a field-level validation failure, carrying a
// message suitable for showing next to the field's widget.
type ValidationError struct {
	// Field is the name of the field the error belongs to. It may
	// be empty for unnamed fields.
	Field string
	// Message is the user-facing error message.
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}
