package jsonfield

import (
	"database/sql/driver"
	"fmt"

	"github.com/meadmaker/jsonfield/codec"
)

// Column holds one record's value for a Field. It implements
// driver.Valuer and sql.Scanner, so it can be passed to
// database/sql both as a query argument and as a Scan target.
// The held value is always kept in decoded form: Set normalizes
// text tagged codec.Raw immediately, so Get never returns raw
// column text.
type Column struct {
	field *Field
	value interface{}
}

// NewColumn returns a Column for one new record, holding a fresh
// materialization of the field's default.
func (f *Field) NewColumn() *Column {
	return &Column{field: f, value: f.DefaultValue()}
}

// Field returns the field this column belongs to.
func (c *Column) Field() *Field {
	return c.field
}

// Set assigns v to the column. Text tagged codec.Raw is decoded
// first; already decoded values are stored as given.
func (c *Column) Set(v interface{}) error {
	decoded, err := c.field.Normalize(v)
	if err != nil {
		return err
	}
	c.value = decoded
	return nil
}

// Get returns the column's decoded value. Columns holding no value
// return codec.NoValue.
func (c *Column) Get() interface{} {
	return c.value
}

// Value implements driver.Valuer, producing the column text written
// to storage. A column holding codec.NoValue produces the empty
// string, bit-exact and distinct from the JSON literal null, which
// is stored as the 4-byte text "null".
func (c *Column) Value() (driver.Value, error) {
	text, err := c.field.Encode(c.value)
	if err != nil {
		return nil, err
	}
	return text, nil
}

// Scan implements sql.Scanner, decoding raw column data. TEXT and
// BLOB columns arrive as string or []byte; SQL NULL scans to
// codec.NoValue.
func (c *Column) Scan(src interface{}) error {
	switch x := src.(type) {
	case nil:
		c.value = codec.NoValue
		return nil
	case string:
		return c.scanText(x)
	case []byte:
		return c.scanText(string(x))
	}
	return fmt.Errorf("can't scan %T into JSON column %q", src, c.field.Name)
}

func (c *Column) scanText(text string) error {
	v, err := c.field.Decode(text)
	if err != nil {
		return err
	}
	c.value = v
	return nil
}

// String implements fmt.Stringer for debugging. It falls back to
// the Go representation when the value can't be encoded.
func (c *Column) String() string {
	text, err := c.field.Encode(c.value)
	if err != nil {
		return fmt.Sprintf("%v", c.value)
	}
	return text
}
