// Package query implements the in-memory criteria engine: filtering,
// sorting, projection, and pagination of record tuples under a
// Mongo/SQL-flavored clause language.
//
// Tuples are plain decoded maps (the shape encoding/json and yaml.v3
// produce). Every stage is a pure function from a tuple sequence and a
// modifier to a new sequence; input tuples are never mutated.
package query

// Tuple is one record in the collection being queried. Attribute presence
// matters: a missing key and a key holding nil are different states.
type Tuple map[string]any

// Has reports whether the attribute exists on the tuple, regardless of its
// value.
func (t Tuple) Has(attr string) bool {
	_, ok := t[attr]
	return ok
}

// clone returns a shallow copy of the tuple. Stages that rewrite attributes
// clone first so caller-owned tuples stay untouched.
func (t Tuple) clone() Tuple {
	out := make(Tuple, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}
