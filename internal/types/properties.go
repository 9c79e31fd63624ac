// Package types contains common types used across the addr package.
package types

import "maps"

// Properties maps a property name to its value.
// Names are case-sensitive and compared by exact equality.
type Properties map[string]string

// FromPairs builds Properties from a flat key1, value1, key2, value2, ... list.
// A repeated key overwrites the earlier value, the last occurrence wins.
// A trailing unpaired key is associated with an empty value.
func FromPairs(pairs []string) Properties {
	if len(pairs) == 0 {
		return nil
	}

	props := make(Properties, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		if i+1 < len(pairs) {
			props[pairs[i]] = pairs[i+1]
		} else {
			props[pairs[i]] = ""
		}
	}
	return props
}

// Get returns the value associated with the given name.
func (props Properties) Get(name string) (string, bool) {
	v, ok := props[name]
	return v, ok
}

// Set sets the name to value. It replaces any existing value.
func (props Properties) Set(name, value string) Properties {
	props[name] = value
	return props
}

// Has checks whether a given name is present.
func (props Properties) Has(name string) bool {
	_, ok := props[name]
	return ok
}

// Len returns the number of properties.
func (props Properties) Len() int { return len(props) }

// Clone returns a copy of the map.
func (props Properties) Clone() Properties {
	if props == nil {
		return nil
	}
	return maps.Clone(props)
}

// Equal compares two property sets by exact key and value equality.
func (props Properties) Equal(other Properties) bool {
	return maps.Equal(props, other)
}
