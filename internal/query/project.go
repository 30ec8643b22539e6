package query

// Project selects or omits tuple attributes per the projection spec.
//
// Spec forms:
//   - "*": passthrough
//   - a sequence of attribute names: inclusion set
//   - a mapping: true includes, false excludes, a nested mapping recurses
//     into that attribute's nested tuple or sequence
//
// A truthy "*" key switches the mapping to exclusion mode: everything
// passes except keys explicitly mapped to false. Without "*", only the
// spec's keys are retained. A nil nested spec recurses as passthrough.
// Any other spec shape is the identity.
func Project(tuples []Tuple, spec any) []Tuple {
	m := normalizeSpec(spec)
	if m == nil {
		out := make([]Tuple, len(tuples))
		copy(out, tuples)
		return out
	}

	out := make([]Tuple, len(tuples))
	for i, t := range tuples {
		out[i] = projectTuple(t, m)
	}
	return out
}

func normalizeSpec(spec any) map[string]any {
	if spec == "*" {
		return map[string]any{"*": true}
	}
	if list, ok := asList(spec); ok {
		m := make(map[string]any, len(list))
		for _, elem := range list {
			if name, ok := elem.(string); ok {
				m[name] = true
			}
		}
		return m
	}
	if m, ok := asTupleMap(spec); ok {
		return m
	}
	return nil
}

func projectTuple(t Tuple, spec map[string]any) Tuple {
	var out Tuple

	if isTruthy(spec["*"]) {
		// Exclusion mode: drop only explicit falses.
		out = t.clone()
		for k, sv := range spec {
			if k != "*" && isFalse(sv) {
				delete(out, k)
			}
		}
	} else {
		out = Tuple{}
		for k, sv := range spec {
			if k == "*" || isFalse(sv) {
				continue
			}
			if t.Has(k) {
				out[k] = t[k]
			}
		}
	}

	// Recursive sub-selects.
	for k, sv := range spec {
		if k == "*" {
			continue
		}
		nested, ok := nestedSpec(sv)
		if !ok {
			continue
		}
		val, ok := out[k]
		if !ok {
			continue
		}
		if list, isSeq := asList(val); isSeq {
			projected := make([]any, len(list))
			for i, elem := range list {
				if em, isMap := asTupleMap(elem); isMap {
					projected[i] = projectTuple(em, nested)
				} else {
					projected[i] = elem
				}
			}
			out[k] = projected
		} else if vm, isMap := asTupleMap(val); isMap {
			out[k] = projectTuple(vm, nested)
		}
	}

	return out
}

// nestedSpec recognizes a sub-select value. nil recurses as passthrough.
func nestedSpec(sv any) (map[string]any, bool) {
	if sv == nil {
		return map[string]any{"*": true}, true
	}
	if m, ok := asTupleMap(sv); ok {
		return m, true
	}
	return nil, false
}

func isFalse(v any) bool {
	b, ok := v.(bool)
	return ok && !b
}

func isTruthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	}
	if n, ok := toNumber(v); ok {
		return n != 0
	}
	return true
}
