// Package codec converts between in-memory JSON values and their
// canonical textual representation, as stored in database TEXT
// columns and shown in form widgets.
//
// The value domain is the set of Go types a JSON document can decode
// into: nil, bool, int64, float64, string, []interface{},
// map[string]interface{} and *ordered.Map. Values outside the domain
// can still be encoded and decoded by configuring hooks in Options.
//
// The empty string is not a JSON document. It represents the absence
// of a value, and the codec maps it to and from the NoValue sentinel,
// keeping it distinct from the JSON literal null.
package codec
