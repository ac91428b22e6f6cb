// Package jsonfield stores arbitrary JSON values in relational TEXT
// columns, keeping their types intact across the text boundary.
//
// A Field describes one column: its codec configuration, its default
// value and which values count as empty for required-field
// validation. Fields are plain configuration data, they hold no
// per-record state. The per-record state lives in a Column, which
// implements sql.Scanner and driver.Valuer so it can be passed
// directly to database/sql.
//
//	checks, _ := jsonfield.New(jsonfield.Field{
//		Name:    "checks",
//		Default: map[string]interface{}{"check": int64(12)},
//	})
//	col := checks.NewColumn()
//	col.Set([]interface{}{int64(1), int64(2)})
//	db.Exec("INSERT INTO t (checks) VALUES (?)", col)
//
// Form handling for these columns lives in the form subpackage and
// batch import/export in the serialize subpackage.
package jsonfield
