package query

import (
	"regexp"
	"sort"
	"strings"
)

// WhereClause is the parsed form of a WHERE criterion. The raw decoded
// clause is resolved into a closed set of node variants exactly once;
// evaluation and validation both run over this normalized tree.
type WhereClause struct {
	nodes []whereNode
}

// whereNode is one entry of a criterion mapping. A plain mapping is an
// implicit AND over its nodes.
type whereNode interface {
	match(t Tuple, schema Schema) bool
}

// literalNode is an equality filter on one attribute.
type literalNode struct {
	attr  string
	value any
}

// inNode matches when the attribute equals any of the listed values.
type inNode struct {
	attr   string
	values []any
}

// modifiersNode applies sub-attribute modifiers (>, contains, ...) to one
// attribute. All modifiers must hold.
type modifiersNode struct {
	attr string
	mods []modifier
}

type modOp int

const (
	modEquals modOp = iota
	modNot
	modNotIn
	modGreaterThan
	modLessThan
	modGreaterThanOrEqual
	modLessThanOrEqual
	modStartsWith
	modEndsWith
	modContains
	modLike
)

type modifier struct {
	op     modOp
	value  any
	values []any          // NOT-IN list, op == modNotIn
	re     *regexp.Regexp // compiled pattern for the string operators
}

// andNode and orNode combine sub-criteria. An empty AND is vacuously true;
// an empty OR matches nothing.
type andNode struct {
	branches []*WhereClause
}

type orNode struct {
	branches []*WhereClause
}

// notNode negates a sub-criterion.
type notNode struct {
	clause *WhereClause
}

// likeBlockNode is the top-level "like" combinator: every attribute's
// pattern must match, always under string-pattern semantics.
type likeBlockNode struct {
	patterns []likePattern
}

type likePattern struct {
	attr string
	re   *regexp.Regexp
}

// ParseWhere resolves a raw decoded WHERE clause into its normalized AST.
// A nil or empty clause parses to the match-everything clause. Structural
// problems surface as *WhereClauseError, *ModifierError, or *PatternError.
func ParseWhere(raw any) (*WhereClause, error) {
	if raw == nil {
		return &WhereClause{}, nil
	}
	m, ok := asTupleMap(raw)
	if !ok {
		return nil, &WhereClauseError{Fragment: raw, Message: "criterion must be a mapping or nil"}
	}
	return parseCriterion(m)
}

func parseCriterion(m map[string]any) (*WhereClause, error) {
	clause := &WhereClause{}

	// Sorted key order keeps parse errors deterministic; entry order does
	// not affect AND semantics.
	for _, key := range sortedKeys(m) {
		value := m[key]
		node, err := parseEntry(key, value)
		if err != nil {
			return nil, err
		}
		clause.nodes = append(clause.nodes, node)
	}
	return clause, nil
}

func parseEntry(key string, value any) (whereNode, error) {
	// Combinator keys are case-insensitive.
	switch strings.ToLower(key) {
	case "or":
		branches, err := parseBranchList(key, value)
		if err != nil {
			return nil, err
		}
		return &orNode{branches: branches}, nil
	case "and":
		branches, err := parseBranchList(key, value)
		if err != nil {
			return nil, err
		}
		return &andNode{branches: branches}, nil
	case "not":
		m, ok := asTupleMap(value)
		if !ok {
			return nil, &WhereClauseError{Fragment: value, Message: "'not' takes a criterion mapping"}
		}
		sub, err := parseCriterion(m)
		if err != nil {
			return nil, err
		}
		return &notNode{clause: sub}, nil
	case "like":
		m, ok := asTupleMap(value)
		if !ok {
			return nil, &WhereClauseError{Fragment: value, Message: "'like' takes a mapping of attribute to pattern"}
		}
		block, err := parseLikeBlock(m)
		if err != nil {
			return nil, err
		}
		return block, nil
	}

	// Attribute entry: IN list, modifier mapping, or literal equality.
	if list, ok := asList(value); ok {
		return &inNode{attr: key, values: list}, nil
	}
	if m, ok := asTupleMap(value); ok && hasModifierKey(m) {
		mods, err := parseModifiers(key, m)
		if err != nil {
			return nil, err
		}
		return mods, nil
	}
	return &literalNode{attr: key, value: value}, nil
}

func parseBranchList(key string, value any) ([]*WhereClause, error) {
	list, ok := asList(value)
	if !ok {
		return nil, &WhereClauseError{Fragment: value, Message: "'" + strings.ToLower(key) + "' takes a sequence of criteria"}
	}
	branches := make([]*WhereClause, 0, len(list))
	for _, elem := range list {
		m, ok := asTupleMap(elem)
		if !ok {
			return nil, &WhereClauseError{Fragment: elem, Message: "'" + strings.ToLower(key) + "' elements must be criterion mappings"}
		}
		sub, err := parseCriterion(m)
		if err != nil {
			return nil, err
		}
		branches = append(branches, sub)
	}
	return branches, nil
}

func parseLikeBlock(m map[string]any) (*likeBlockNode, error) {
	node := &likeBlockNode{}
	for _, attr := range sortedKeys(m) {
		re, err := compilePattern(m[attr])
		if err != nil {
			return nil, err
		}
		node.patterns = append(node.patterns, likePattern{attr: attr, re: re})
	}
	return node, nil
}

// modifierOps maps the recognized sub-attribute modifier keys, compared
// case-insensitively.
var modifierOps = map[string]modOp{
	"equals":             modEquals,
	"not":                modNot,
	"!":                  modNot,
	"greaterthan":        modGreaterThan,
	">":                  modGreaterThan,
	"lessthan":           modLessThan,
	"<":                  modLessThan,
	"greaterthanorequal": modGreaterThanOrEqual,
	">=":                 modGreaterThanOrEqual,
	"lessthanorequal":    modLessThanOrEqual,
	"<=":                 modLessThanOrEqual,
	"startswith":         modStartsWith,
	"endswith":           modEndsWith,
	"contains":           modContains,
	"like":               modLike,
}

func hasModifierKey(m map[string]any) bool {
	for key := range m {
		if _, ok := modifierOps[strings.ToLower(key)]; ok {
			return true
		}
	}
	return false
}

func parseModifiers(attr string, m map[string]any) (*modifiersNode, error) {
	node := &modifiersNode{attr: attr}

	for _, key := range sortedKeys(m) {
		op, ok := modifierOps[strings.ToLower(key)]
		if !ok {
			return nil, &ModifierError{Attribute: attr, Modifier: key}
		}
		value := m[key]

		mod := modifier{op: op, value: value}
		switch op {
		case modNot:
			// An array RHS flips "not" into NOT-IN.
			if list, ok := asList(value); ok {
				mod.op = modNotIn
				mod.values = list
			}
		case modStartsWith, modEndsWith, modContains:
			operand, ok := patternOperand(value)
			if !ok {
				return nil, &PatternError{Pattern: value}
			}
			pattern := escapePercent(operand)
			switch op {
			case modStartsWith:
				pattern += "%"
			case modEndsWith:
				pattern = "%" + pattern
			default:
				pattern = "%" + pattern + "%"
			}
			re, err := compileLike(pattern)
			if err != nil {
				return nil, err
			}
			mod.re = re
		case modLike:
			re, err := compilePattern(value)
			if err != nil {
				return nil, err
			}
			mod.re = re
		}
		node.mods = append(node.mods, mod)
	}
	return node, nil
}

// compilePattern accepts the two legal pattern forms: a wildcard string
// (compiled anchored, case-insensitive) or a native regular expression
// (used as-is).
func compilePattern(value any) (*regexp.Regexp, error) {
	switch p := value.(type) {
	case string:
		return compileLike(p)
	case *regexp.Regexp:
		return p, nil
	}
	return nil, &PatternError{Pattern: value}
}

// patternOperand renders a startsWith/endsWith/contains argument. Numbers
// and booleans are accepted in their string forms; anything else is a
// usage error.
func patternOperand(value any) (string, bool) {
	return likeOperand(value)
}

// asTupleMap widens the map shapes produced by decoders and callers.
func asTupleMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Tuple:
		return m, true
	}
	return nil, false
}

func asList(v any) ([]any, bool) {
	switch l := v.(type) {
	case []any:
		return l, true
	case []string:
		out := make([]any, len(l))
		for i, s := range l {
			out[i] = s
		}
		return out, true
	}
	return nil, false
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
