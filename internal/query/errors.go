package query

import "fmt"

// WhereClauseError reports a WHERE clause that is not structurally legal.
// Fragment holds the offending sub-clause so callers can build an actionable
// message.
type WhereClauseError struct {
	Fragment any
	Message  string
}

func (e *WhereClauseError) Error() string {
	return fmt.Sprintf("unparseable where clause: %s (got %v)", e.Message, e.Fragment)
}

// SortClauseError reports a sort clause that is not structurally legal.
type SortClauseError struct {
	Fragment any
	Message  string
}

func (e *SortClauseError) Error() string {
	return fmt.Sprintf("unparseable sort clause: %s (got %v)", e.Message, e.Fragment)
}

// ModifierError reports an unrecognized sub-attribute modifier key.
type ModifierError struct {
	Attribute string
	Modifier  string
}

func (e *ModifierError) Error() string {
	return fmt.Sprintf("invalid modifier %q on attribute %q", e.Modifier, e.Attribute)
}

// PatternError reports a pattern argument that is neither a string nor a
// compiled regular expression.
type PatternError struct {
	Pattern any
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern argument: %T(%v)", e.Pattern, e.Pattern)
}
