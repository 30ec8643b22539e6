package query

// Clause validation is the caller-facing collaborator that rejects
// structurally illegal clauses before the stages run. Both validators are
// parse-and-discard over the same normalized AST the evaluator uses, so
// "validates" and "evaluates" can never disagree.

// ValidateWhere checks that a raw WHERE clause is structurally legal.
// A nil clause is legal and matches everything.
func ValidateWhere(where any) error {
	_, err := ParseWhere(where)
	return err
}

// ValidateSort checks that a raw sort clause is structurally legal.
func ValidateSort(sortClause any) error {
	_, err := ParseSort(sortClause)
	return err
}
