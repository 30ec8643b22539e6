package query

// Filter returns the tuples satisfying the WHERE clause. The clause is
// parsed once up front; the only error source is a structurally illegal
// clause. The result is a fresh slice sharing the matching tuples.
func Filter(tuples []Tuple, where any, schema Schema) ([]Tuple, error) {
	clause, err := ParseWhere(where)
	if err != nil {
		return nil, err
	}

	var matched []Tuple
	for _, t := range tuples {
		if clause.Matches(t, schema) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}
