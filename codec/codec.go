package codec

// Options configures how values are encoded and decoded. A nil
// *Options is equivalent to the zero value. Options hold no state
// between calls, so a single instance may be shared freely between
// goroutines as long as its hooks are themselves stateless.
type Options struct {
	// EncodeHook maps a value the base encoder can't represent to
	// a value inside the JSON domain, conventionally a tagged
	// object such as
	//
	//	{"__complex__": true, "real": 1.0, "imag": 3.0}
	//
	// The hook's output is encoded recursively, so it may itself
	// contain values which require the hook. Returning an error
	// aborts the encoding.
	EncodeHook func(v interface{}) (interface{}, error)
	// DecodeHook is invoked on every decoded object, innermost
	// first, and may replace it with an arbitrary value. This
	// is how tagged structures produced by an EncodeHook are
	// reconstructed into their original types. DecodeHook is
	// ignored when OrderedObjects is set, since the hook receives
	// plain maps.
	DecodeHook func(m map[string]interface{}) (interface{}, error)
	// OrderedObjects decodes JSON objects into *ordered.Map,
	// preserving key order. Takes precedence over DecodeHook.
	OrderedObjects bool
	// Indent is the number of spaces per nesting level. When it's
	// > 0 every array element and object key goes on its own line.
	// Form rendering uses 4. Zero produces compact output.
	Indent int
}

type noValue struct{}

func (noValue) String() string {
	return "<no value>"
}

// NoValue is the sentinel representing the absence of a stored
// value. It encodes to the empty string and is what Decode returns
// for empty input. It is distinct from nil, which represents the
// JSON literal null.
var NoValue interface{} = noValue{}

// Raw is text which has not been decoded yet. Values arriving as
// column text or user input are tagged with this type, so that code
// receiving an interface{} can tell undecoded text apart from an
// already decoded string value.
type Raw string
