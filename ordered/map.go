// Package ordered implements a string-keyed map which remembers
// the order in which its keys were first inserted.
//
// The codec uses this type to decode JSON objects when key order
// is significant, since Go maps don't define an iteration order.
package ordered

// Map is a string-keyed map which iterates in insertion order.
// Setting an existing key replaces its value but keeps its
// original position. The zero value is not ready to use, call
// NewMap instead.
type Map struct {
	keys   []string
	values map[string]interface{}
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{
		values: make(map[string]interface{}),
	}
}

// Set stores value under key, appending the key at the end
// unless it was already present.
func (m *Map) Set(key string, value interface{}) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key and whether the key
// was present.
func (m *Map) Get(key string) (interface{}, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Delete removes key from the map. Deleting a missing key is
// a no-op.
func (m *Map) Delete(key string) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for ii, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:ii], m.keys[ii+1:]...)
			break
		}
	}
}

// Keys returns the map keys in insertion order. The returned
// slice is shared with the map and must not be modified.
func (m *Map) Keys() []string {
	return m.keys
}

// Len returns the number of keys in the map.
func (m *Map) Len() int {
	return len(m.keys)
}

// Plain returns the map contents as an ordinary Go map, losing
// the key order. Values are shared, not copied.
func (m *Map) Plain() map[string]interface{} {
	plain := make(map[string]interface{}, len(m.keys))
	for k, v := range m.values {
		plain[k] = v
	}
	return plain
}
