package jsonfield

import (
	"fmt"

	"github.com/meadmaker/jsonfield/codec"
)

// DefaultEmptyValues lists the values a Field treats as empty when
// it doesn't declare its own set: no value at all, JSON null, the
// empty string, the empty array and the empty object. Membership is
// decided with Equal, so an empty *ordered.Map also matches the
// empty object.
var DefaultEmptyValues = []interface{}{
	codec.NoValue,
	nil,
	"",
	[]interface{}{},
	map[string]interface{}{},
}

// Field describes a JSON column: how its values are encoded and
// decoded, what its default is and which values count as empty.
// Construct fields with New, which validates the configuration.
// A Field is immutable after construction and safe for concurrent
// use.
type Field struct {
	// Name identifies the field in error messages and in
	// serialized records.
	Name string
	// Blank allows empty values. Fields are required by default,
	// matching the persistence layer's NOT NULL columns.
	Blank bool
	// Default is the value new records start with. Mutable
	// defaults (objects, arrays) are deep-copied on every
	// materialization, so records never share them.
	Default interface{}
	// DefaultFunc produces the default value for each new record.
	// The function owns freshness: its result is used verbatim,
	// without copying. Mutually exclusive with Default.
	DefaultFunc func() interface{}
	// EmptyValues overrides DefaultEmptyValues. The distinction
	// between a nil and an empty slice matters: nil means "use the
	// defaults", an empty non-nil slice means nothing is empty.
	EmptyValues []interface{}
	// AllowedEmptyValues exempts values from the empty check even
	// though they appear in the empty set. Declaring {} here lets
	// a required field accept an empty object while still
	// rejecting an empty array.
	AllowedEmptyValues []interface{}
	// MaxLength bounds the encoded text, in bytes, for fields
	// backed by VARCHAR columns. Zero means unbounded.
	MaxLength int
	// Options configures the field's codec. nil is the zero
	// configuration.
	Options *codec.Options
}

// New validates f and returns it as a usable field. It fails when
// both Default and DefaultFunc are set, when the codec options
// combine OrderedObjects with a DecodeHook (the hook only receives
// plain maps), or when Default has no JSON representation under the
// field's options.
func New(f Field) (*Field, error) {
	if f.Default != nil && f.DefaultFunc != nil {
		return nil, fmt.Errorf("field %q declares both Default and DefaultFunc", f.Name)
	}
	if f.Options != nil && f.Options.OrderedObjects && f.Options.DecodeHook != nil {
		return nil, fmt.Errorf("field %q: OrderedObjects and DecodeHook are mutually exclusive", f.Name)
	}
	if f.Default != nil {
		if _, err := codec.Encode(f.Default, f.Options); err != nil {
			return nil, fmt.Errorf("field %q has an unencodable default: %w", f.Name, err)
		}
	}
	return &f, nil
}

// MustNew works like New but panics on invalid configuration. Meant
// for package-level field declarations.
func MustNew(f Field) *Field {
	field, err := New(f)
	if err != nil {
		panic(err)
	}
	return field
}

// DefaultValue materializes the field's default for a new record.
// Each call returns an independent value: literal defaults are
// deep-copied, DefaultFunc results are returned as produced. Fields
// without a default start with codec.NoValue.
func (f *Field) DefaultValue() interface{} {
	if f.DefaultFunc != nil {
		return f.DefaultFunc()
	}
	if f.Default != nil {
		return deepCopy(f.Default)
	}
	return codec.NoValue
}

// IsEmpty reports whether v counts as empty for this field: member
// of the field's empty set and not exempted by AllowedEmptyValues.
func (f *Field) IsEmpty(v interface{}) bool {
	empty := f.EmptyValues
	if empty == nil {
		empty = DefaultEmptyValues
	}
	if !containsValue(empty, v) {
		return false
	}
	return !containsValue(f.AllowedEmptyValues, v)
}

// Validate checks v against the field's emptiness policy. Required
// fields reject empty values with a *ValidationError. Emptiness is
// independent of JSON validity: an empty array is perfectly valid
// JSON and still rejected.
func (f *Field) Validate(v interface{}) error {
	if !f.Blank && f.IsEmpty(v) {
		return &ValidationError{Field: f.Name, Message: "this field cannot be blank"}
	}
	if f.MaxLength > 0 {
		text, err := codec.Encode(v, f.Options)
		if err != nil {
			return err
		}
		if len(text) > f.MaxLength {
			return &ValidationError{
				Field:   f.Name,
				Message: fmt.Sprintf("ensure this value has at most %d characters (it has %d)", f.MaxLength, len(text)),
			}
		}
	}
	return nil
}

// Normalize returns the decoded form of v. Text tagged as codec.Raw
// is decoded with the field's options; every other value is already
// decoded and passes through unchanged, so Normalize is idempotent.
func (f *Field) Normalize(v interface{}) (interface{}, error) {
	if raw, ok := v.(codec.Raw); ok {
		return codec.Decode(string(raw), f.Options)
	}
	return v, nil
}

// Encode serializes v with the field's options. See codec.Encode.
func (f *Field) Encode(v interface{}) (string, error) {
	return codec.Encode(v, f.Options)
}

// Decode parses stored text with the field's options. See
// codec.Decode.
func (f *Field) Decode(text string) (interface{}, error) {
	return codec.Decode(text, f.Options)
}

func containsValue(set []interface{}, v interface{}) bool {
	for _, member := range set {
		if Equal(member, v) {
			return true
		}
	}
	return false
}
