package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/meadmaker/jsonfield/ordered"
)

// Encode serializes v as JSON text. NoValue encodes to the empty
// string, which is the stored representation of "no value". Plain
// map keys are written in sorted order so the output is
// deterministic, while *ordered.Map keys keep their insertion
// order. Values outside the JSON domain are passed to
// Options.EncodeHook; without one, Encode fails with *EncodeError.
func Encode(v interface{}, o *Options) (string, error) {
	if o == nil {
		o = &Options{}
	}
	if v == NoValue {
		return "", nil
	}
	var buf bytes.Buffer
	if err := encodeValue(&buf, v, o, 0); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func encodeValue(buf *bytes.Buffer, v interface{}, o *Options, depth int) error {
	switch x := v.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		if x {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case string:
		writeQuoted(buf, x)
	case int:
		buf.WriteString(strconv.FormatInt(int64(x), 10))
	case int64:
		buf.WriteString(strconv.FormatInt(x, 10))
	case float64:
		// JSON has no representation for non-finite numbers.
		// Writing them would store undecodable text.
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return &EncodeError{Value: x}
		}
		writeFloat(buf, x)
	case json.Number:
		buf.WriteString(x.String())
	case []interface{}:
		return encodeArray(buf, x, o, depth)
	case map[string]interface{}:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return encodeObject(buf, keys, func(k string) interface{} { return x[k] }, o, depth)
	case *ordered.Map:
		get := func(k string) interface{} {
			v, _ := x.Get(k)
			return v
		}
		return encodeObject(buf, x.Keys(), get, o, depth)
	default:
		if o.EncodeHook == nil {
			return &EncodeError{Value: v}
		}
		hv, err := o.EncodeHook(v)
		if err != nil {
			return err
		}
		return encodeValue(buf, hv, o, depth)
	}
	return nil
}

func encodeArray(buf *bytes.Buffer, a []interface{}, o *Options, depth int) error {
	if len(a) == 0 {
		buf.WriteString("[]")
		return nil
	}
	buf.WriteByte('[')
	for ii, v := range a {
		if ii > 0 {
			buf.WriteByte(',')
		}
		writeNewline(buf, o, depth+1)
		if err := encodeValue(buf, v, o, depth+1); err != nil {
			return err
		}
	}
	writeNewline(buf, o, depth)
	buf.WriteByte(']')
	return nil
}

func encodeObject(buf *bytes.Buffer, keys []string, get func(string) interface{}, o *Options, depth int) error {
	if len(keys) == 0 {
		buf.WriteString("{}")
		return nil
	}
	buf.WriteByte('{')
	for ii, k := range keys {
		if ii > 0 {
			buf.WriteByte(',')
		}
		writeNewline(buf, o, depth+1)
		writeQuoted(buf, k)
		if o.Indent > 0 {
			buf.WriteString(": ")
		} else {
			buf.WriteByte(':')
		}
		if err := encodeValue(buf, get(k), o, depth+1); err != nil {
			return err
		}
	}
	writeNewline(buf, o, depth)
	buf.WriteByte('}')
	return nil
}

func writeNewline(buf *bytes.Buffer, o *Options, depth int) {
	if o.Indent > 0 {
		buf.WriteByte('\n')
		buf.WriteString(strings.Repeat(" ", o.Indent*depth))
	}
}

// writeFloat keeps float64 values recognizable as floating point,
// so decoding the output yields a float64 again rather than an
// int64.
func writeFloat(buf *bytes.Buffer, f float64) {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	buf.WriteString(s)
}

// writeQuoted writes s as a JSON string. Unlike encoding/json it
// doesn't escape HTML characters and keeps non-ASCII runes
// literal, so the stored and displayed text matches what the user
// typed.
func writeQuoted(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(buf, `\u%04x`, r)
			} else {
				buf.WriteRune(r)
			}
		}
	}
	buf.WriteByte('"')
}
