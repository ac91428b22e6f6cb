package codec

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/meadmaker/jsonfield/ordered"
)

// Decode parses text as a JSON document and returns the decoded
// value. The empty string decodes to NoValue rather than failing.
// Numbers keep their type: integer literals decode to int64, any
// literal with a fraction or exponent to float64, and integers
// beyond the int64 range stay json.Number so their digits survive
// a round trip. On invalid input Decode returns a *DecodeError
// carrying the offending text.
func Decode(text string, o *Options) (interface{}, error) {
	if o == nil {
		o = &Options{}
	}
	if text == "" {
		return NoValue, nil
	}
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	v, err := decodeValue(dec, o)
	if err != nil {
		return nil, &DecodeError{Text: text, Err: err}
	}
	// A valid document is a single value. Anything after it is
	// an error, since the column would not round-trip.
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = errors.New("trailing data after JSON document")
		}
		return nil, &DecodeError{Text: text, Err: err}
	}
	return v, nil
}

func decodeValue(dec *json.Decoder, o *Options) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		if t == '{' {
			return decodeObject(dec, o)
		}
		// '[': the Decoder rejects stray closing delimiters
		// itself, so no other delimiter reaches this point.
		return decodeArray(dec, o)
	case json.Number:
		return decodeNumber(t)
	default:
		// string, bool or nil
		return t, nil
	}
}

func decodeObject(dec *json.Decoder, o *Options) (interface{}, error) {
	if o.OrderedObjects {
		m := ordered.NewMap()
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key := tok.(string)
			v, err := decodeValue(dec, o)
			if err != nil {
				return nil, err
			}
			m.Set(key, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return m, nil
	}
	m := make(map[string]interface{})
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key := tok.(string)
		v, err := decodeValue(dec, o)
		if err != nil {
			return nil, err
		}
		m[key] = v
	}
	// Consume the closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if o.DecodeHook != nil {
		return o.DecodeHook(m)
	}
	return m, nil
}

func decodeArray(dec *json.Decoder, o *Options) (interface{}, error) {
	// Non-nil, so [] decodes to an empty array rather than null
	a := make([]interface{}, 0)
	for dec.More() {
		v, err := decodeValue(dec, o)
		if err != nil {
			return nil, err
		}
		a = append(a, v)
	}
	// Consume the closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return a, nil
}

func decodeNumber(n json.Number) (interface{}, error) {
	if !strings.ContainsAny(n.String(), ".eE") {
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
		// Beyond int64: keep the literal digits so the value
		// re-encodes without losing precision
		return n, nil
	}
	return n.Float64()
}
