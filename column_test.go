package jsonfield

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/meadmaker/jsonfield/codec"
)

func openTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	if _, err := db.Exec("CREATE TABLE records (id INTEGER PRIMARY KEY AUTOINCREMENT, data TEXT)"); err != nil {
		t.Fatal(err)
	}
	return db
}

func TestColumnSQLiteRoundTrip(t *testing.T) {
	db := openTestDB(t)
	f := MustNew(Field{Name: "data", Blank: true})
	values := []interface{}{
		map[string]interface{}{"item_1": "this is a json blah", "blergh": "hey, hey, hey"},
		[]interface{}{"my", "list", "of", int64(1), "objs", map[string]interface{}{"hello": "there"}},
		"blah blah",
		"123",
		"true",
		int64(1234567),
		1.23,
		int64(0),
		"",
		false,
		nil,
		map[string]interface{}{},
		[]interface{}{},
		codec.NoValue,
	}
	for _, v := range values {
		col := f.NewColumn()
		if err := col.Set(v); err != nil {
			t.Fatal(err)
		}
		res, err := db.Exec("INSERT INTO records (data) VALUES (?)", col)
		if err != nil {
			t.Fatalf("can't insert %v: %s", v, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			t.Fatal(err)
		}
		out := f.NewColumn()
		if err := db.QueryRow("SELECT data FROM records WHERE id = ?", id).Scan(out); err != nil {
			t.Fatalf("can't load %v back: %s", v, err)
		}
		if !Equal(v, out.Get()) {
			t.Errorf("round trip changed %#v to %#v", v, out.Get())
		}
	}
}

func TestColumnSentinelStorage(t *testing.T) {
	db := openTestDB(t)
	f := MustNew(Field{Name: "data", Blank: true})

	// No value stores as the empty string, JSON null as the
	// 4-byte literal. The two must stay distinguishable in the
	// column.
	noValue := f.NewColumn()
	if _, err := db.Exec("INSERT INTO records (id, data) VALUES (1, ?)", noValue); err != nil {
		t.Fatal(err)
	}
	null := f.NewColumn()
	if err := null.Set(nil); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec("INSERT INTO records (id, data) VALUES (2, ?)", null); err != nil {
		t.Fatal(err)
	}
	var stored string
	if err := db.QueryRow("SELECT data FROM records WHERE id = 1").Scan(&stored); err != nil {
		t.Fatal(err)
	}
	if stored != "" {
		t.Errorf("no value stored as %q, want empty string", stored)
	}
	if err := db.QueryRow("SELECT data FROM records WHERE id = 2").Scan(&stored); err != nil {
		t.Fatal(err)
	}
	if stored != "null" {
		t.Errorf("null stored as %q, want the literal null", stored)
	}

	out := f.NewColumn()
	if err := db.QueryRow("SELECT data FROM records WHERE id = 1").Scan(out); err != nil {
		t.Fatal(err)
	}
	if out.Get() != codec.NoValue {
		t.Errorf("want NoValue, got %#v", out.Get())
	}
	if err := db.QueryRow("SELECT data FROM records WHERE id = 2").Scan(out); err != nil {
		t.Fatal(err)
	}
	if out.Get() != nil {
		t.Errorf("want nil, got %#v", out.Get())
	}
}

func TestColumnScanSQLNull(t *testing.T) {
	db := openTestDB(t)
	if _, err := db.Exec("INSERT INTO records (id, data) VALUES (1, NULL)"); err != nil {
		t.Fatal(err)
	}
	f := MustNew(Field{Name: "data", Blank: true})
	col := f.NewColumn()
	if err := db.QueryRow("SELECT data FROM records WHERE id = 1").Scan(col); err != nil {
		t.Fatal(err)
	}
	if col.Get() != codec.NoValue {
		t.Errorf("SQL NULL should scan to NoValue, got %#v", col.Get())
	}
}

func TestColumnDefault(t *testing.T) {
	f := MustNew(Field{Name: "data", Default: map[string]interface{}{"check": int64(12)}})
	a := f.NewColumn()
	b := f.NewColumn()
	a.Get().(map[string]interface{})["check"] = int64(144)
	if got := b.Get().(map[string]interface{})["check"]; got != int64(12) {
		t.Errorf("columns share their default: got %v", got)
	}
}

func TestColumnSetRaw(t *testing.T) {
	f := MustNew(Field{Name: "data", Blank: true})
	col := f.NewColumn()
	if err := col.Set(codec.Raw(`{"a": 1}`)); err != nil {
		t.Fatal(err)
	}
	// The access path always returns the decoded structure, even
	// right after assignment
	m, ok := col.Get().(map[string]interface{})
	if !ok {
		t.Fatalf("want a decoded map, got %T", col.Get())
	}
	if m["a"] != int64(1) {
		t.Errorf("want 1, got %v", m["a"])
	}
	if err := col.Set(codec.Raw("{]")); err == nil {
		t.Error("invalid raw text should fail")
	}
}

func TestColumnScanInvalid(t *testing.T) {
	f := MustNew(Field{Name: "data", Blank: true})
	col := f.NewColumn()
	if err := col.Scan(42); err == nil {
		t.Error("scanning an int should fail")
	}
	if err := col.Scan("{]"); err == nil {
		t.Error("scanning invalid JSON should fail")
	}
}

func TestColumnHooksThroughStorage(t *testing.T) {
	db := openTestDB(t)
	f := MustNew(Field{
		Name: "data",
		Options: &codec.Options{
			Indent: 4,
			EncodeHook: func(v interface{}) (interface{}, error) {
				c, ok := v.(complex128)
				if !ok {
					return nil, &codec.EncodeError{Value: v}
				}
				return map[string]interface{}{"__complex__": true, "real": real(c), "imag": imag(c)}, nil
			},
			DecodeHook: func(m map[string]interface{}) (interface{}, error) {
				if tag, ok := m["__complex__"].(bool); ok && tag {
					re, _ := m["real"].(float64)
					im, _ := m["imag"].(float64)
					return complex(re, im), nil
				}
				return m, nil
			},
		},
	})
	col := f.NewColumn()
	if err := col.Set(complex(1, 3)); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec("INSERT INTO records (id, data) VALUES (1, ?)", col); err != nil {
		t.Fatal(err)
	}
	out := f.NewColumn()
	if err := db.QueryRow("SELECT data FROM records WHERE id = 1").Scan(out); err != nil {
		t.Fatal(err)
	}
	if out.Get() != complex(1, 3) {
		t.Errorf("want 1+3i, got %#v", out.Get())
	}
}
