// Package serialize exports and imports batches of records whose
// fields are JSON columns. The wire format is a JSON array of
// records, each carrying a primary key and the stored column text
// per field, so a dump can be reloaded through the same per-field
// codecs that the database path uses.
package serialize

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/meadmaker/jsonfield"
)

// Record is the wire form of one object: its primary key and the
// stored text of each field, exactly as it would sit in the column.
type Record struct {
	PK     int64             `json:"pk"`
	Fields map[string]string `json:"fields"`
}

// Object is one decoded record: its primary key and the decoded
// value per field name.
type Object struct {
	PK     int64
	Values map[string]interface{}
}

// Error identifies the record and field which made a batch fail.
// It wraps the underlying decode or validation error.
type Error struct {
	// Index is the position of the failing record in the batch.
	Index int
	// Field is the name of the failing field.
	Field string
	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("record %d, field %q: %s", e.Index, e.Field, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Encode writes objects to w as a record batch. Every value goes
// through its field's codec, so the dump holds the same text the
// column would. Objects missing a field store its freshly
// materialized default.
func Encode(w io.Writer, fields []*jsonfield.Field, objects []*Object) error {
	records := make([]*Record, len(objects))
	for ii, obj := range objects {
		rec := &Record{PK: obj.PK, Fields: make(map[string]string, len(fields))}
		for _, f := range fields {
			v, ok := obj.Values[f.Name]
			if !ok {
				v = f.DefaultValue()
			}
			text, err := f.Encode(v)
			if err != nil {
				return &Error{Index: ii, Field: f.Name, Err: err}
			}
			rec.Fields[f.Name] = text
		}
		records[ii] = rec
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(records)
}

// Decode reads a record batch from r and decodes every field
// through its codec, validating against the field's emptiness
// policy. The batch is all-or-nothing: the first malformed record
// aborts it with an *Error wrapping the inner failure, and no
// partial results are returned.
func Decode(r io.Reader, fields []*jsonfield.Field) ([]*Object, error) {
	var records []*Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("can't decode record batch: %w", err)
	}
	byName := make(map[string]*jsonfield.Field, len(fields))
	for _, f := range fields {
		byName[f.Name] = f
	}
	objects := make([]*Object, 0, len(records))
	for ii, rec := range records {
		obj := &Object{PK: rec.PK, Values: make(map[string]interface{}, len(rec.Fields))}
		for name, text := range rec.Fields {
			f := byName[name]
			if f == nil {
				return nil, &Error{Index: ii, Field: name, Err: fmt.Errorf("unknown field")}
			}
			v, err := f.Decode(text)
			if err != nil {
				return nil, &Error{Index: ii, Field: name, Err: err}
			}
			if err := f.Validate(v); err != nil {
				return nil, &Error{Index: ii, Field: name, Err: err}
			}
			obj.Values[name] = v
		}
		objects = append(objects, obj)
	}
	return objects, nil
}
