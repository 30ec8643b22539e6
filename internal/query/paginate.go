package query

// Skip drops the first n tuples. Zero or negative n is a no-op.
func Skip(tuples []Tuple, n int) []Tuple {
	if n <= 0 {
		return tuples
	}
	if n >= len(tuples) {
		return nil
	}
	return tuples[n:]
}

// Limit truncates to the first n tuples. Zero or negative n is a no-op,
// matching the "unset" convention of the clause language.
func Limit(tuples []Tuple, n int) []Tuple {
	if n <= 0 || n >= len(tuples) {
		return tuples
	}
	return tuples[:n]
}
