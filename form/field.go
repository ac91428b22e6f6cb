// Package form bridges JSON column fields to text-based form
// input: it validates submitted text, detects changes against the
// initial value ignoring formatting differences, and renders values
// back with stable indentation for redisplay.
package form

import (
	"fmt"

	"github.com/meadmaker/jsonfield"
	"github.com/meadmaker/jsonfield/codec"
)

// DisplayIndent is the indentation used when rendering values into
// a widget: 4 spaces per level, one element per line.
const DisplayIndent = 4

// Field is the form-side counterpart of a jsonfield.Field. Create
// one per rendered form with NewField, optionally set its initial
// value, then Bind the submitted text. After Bind, Err reports the
// validation outcome, CleanedValue the decoded value and Value the
// string to redisplay in the widget.
type Field struct {
	// Disabled fields ignore submitted data and keep their
	// initial value, like a read-only widget.
	Disabled bool

	field   *jsonfield.Field
	initial interface{}
	bound   bool
	raw     string
	value   interface{}
	err     error
}

// NewField returns a form field for f, with the field's default as
// its initial value.
func NewField(f *jsonfield.Field) *Field {
	return &Field{field: f, initial: f.DefaultValue()}
}

// SetInitial replaces the field's initial value, typically with the
// value loaded from an existing record.
func (f *Field) SetInitial(v interface{}) {
	f.initial = v
}

// Bind takes the submitted text and validates it. Disabled fields
// ignore the text and clean to their initial value.
func (f *Field) Bind(raw string) {
	f.bound = true
	f.raw = raw
	if f.Disabled {
		f.value, f.err = f.initial, nil
		return
	}
	f.value, f.err = f.Clean(raw)
}

// Clean decodes and validates submitted text. Invalid JSON produces
// a *jsonfield.ValidationError quoting the submitted text verbatim.
// Empty submissions decode to codec.NoValue and are then subject to
// the field's emptiness policy, so a required field rejects them.
func (f *Field) Clean(raw string) (interface{}, error) {
	v, err := f.field.Decode(raw)
	if err != nil {
		return nil, &jsonfield.ValidationError{
			Field:   f.field.Name,
			Message: fmt.Sprintf("\"%s\" value must be valid JSON.", raw),
		}
	}
	if err := f.field.Validate(v); err != nil {
		return nil, err
	}
	return v, nil
}

// HasChanged reports whether the bound text represents a value
// different from the initial one. The comparison is structural:
// reformatting the same document is not a change. Submitting
// nothing when the initial value is empty under the field's policy
// is not a change either. Text that doesn't decode always counts
// as changed. Unbound and disabled fields never change.
func (f *Field) HasChanged() bool {
	if !f.bound || f.Disabled {
		return false
	}
	if f.raw == "" && f.field.IsEmpty(f.initial) {
		return false
	}
	v, err := f.field.Decode(f.raw)
	if err != nil {
		return true
	}
	return !jsonfield.Equal(f.initial, v)
}

// Err returns the validation error from the last Bind, or nil.
func (f *Field) Err() error {
	return f.err
}

// CleanedValue returns the decoded value from the last Bind. Only
// meaningful when Err returns nil.
func (f *Field) CleanedValue() interface{} {
	return f.value
}

// Value returns the text to display in the field's widget. Bound
// fields redisplay their submission: re-encoded with the display
// formatting when it was valid JSON, verbatim when it wasn't, so
// the user sees exactly what they typed next to the error message.
// Unbound and disabled fields render their initial value.
func (f *Field) Value() string {
	if f.bound && !f.Disabled {
		v, err := f.field.Decode(f.raw)
		if err != nil {
			return f.raw
		}
		return f.render(v)
	}
	return f.render(f.initial)
}

func (f *Field) render(v interface{}) string {
	opts := codec.Options{Indent: DisplayIndent}
	if fo := f.field.Options; fo != nil {
		opts = *fo
		if opts.Indent == 0 {
			opts.Indent = DisplayIndent
		}
	}
	text, err := codec.Encode(v, &opts)
	if err != nil {
		// Unencodable values can only get here through
		// SetInitial. Show nothing rather than fail rendering.
		return ""
	}
	return text
}
