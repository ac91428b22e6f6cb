package form

import (
	"fmt"

	"github.com/meadmaker/jsonfield"
)

// Form groups form fields and validates a submission as a whole.
// Fields keep their declaration order for rendering and error
// reporting.
type Form struct {
	fields []*Field
	byName map[string]*Field
}

// New returns a form with one form field per given column field.
// It panics on unnamed or duplicate field names, which are
// programming errors.
func New(fields ...*jsonfield.Field) *Form {
	f := &Form{byName: make(map[string]*Field, len(fields))}
	for _, cf := range fields {
		name := cf.Name
		if name == "" {
			panic("form: field without a name")
		}
		if _, ok := f.byName[name]; ok {
			panic(fmt.Errorf("form: duplicate field %q", name))
		}
		field := NewField(cf)
		f.fields = append(f.fields, field)
		f.byName[name] = field
	}
	return f
}

// Field returns the form field with the given name, or nil.
func (f *Form) Field(name string) *Field {
	return f.byName[name]
}

// SetInitial sets initial values from record data. Fields missing
// from values keep their defaults.
func (f *Form) SetInitial(values map[string]interface{}) {
	for name, field := range f.byName {
		if v, ok := values[name]; ok {
			field.SetInitial(v)
		}
	}
}

// Bind submits data to every field. Fields missing from data are
// bound to the empty string, the way an empty textarea submits.
func (f *Form) Bind(data map[string]string) {
	for name, field := range f.byName {
		field.Bind(data[name])
	}
}

// Valid reports whether every bound field validated.
func (f *Form) Valid() bool {
	for _, field := range f.fields {
		if field.err != nil {
			return false
		}
	}
	return true
}

// Errors returns the validation messages per field name. Valid
// fields are absent from the result.
func (f *Form) Errors() map[string]string {
	errs := make(map[string]string)
	for _, field := range f.fields {
		if field.err != nil {
			msg := field.err.Error()
			if ve, ok := field.err.(*jsonfield.ValidationError); ok {
				msg = ve.Message
			}
			errs[field.field.Name] = msg
		}
	}
	return errs
}

// HasChanged reports whether any bound field changed from its
// initial value.
func (f *Form) HasChanged() bool {
	for _, field := range f.fields {
		if field.HasChanged() {
			return true
		}
	}
	return false
}

// CleanedValues returns every field's decoded value. Only
// meaningful when Valid returns true.
func (f *Form) CleanedValues() map[string]interface{} {
	values := make(map[string]interface{}, len(f.fields))
	for _, field := range f.fields {
		values[field.field.Name] = field.value
	}
	return values
}
