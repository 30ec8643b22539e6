package query

import (
	"regexp"
	"strconv"
	"strings"
)

// literalPercent is the escape for a literal "%" inside a LIKE pattern.
const literalPercent = "%%%"

// percentSentinel temporarily stands in for escaped percents while the
// pattern is split on wildcards. NUL cannot appear in a decoded clause.
const percentSentinel = "\x00"

// compileLike translates a SQL-style "%" wildcard pattern into an anchored,
// case-insensitive regular expression. Literal "%" is written as "%%%" in
// the input.
func compileLike(pattern string) (*regexp.Regexp, error) {
	escaped := strings.ReplaceAll(pattern, literalPercent, percentSentinel)

	segments := strings.Split(escaped, "%")
	for i, seg := range segments {
		seg = strings.ReplaceAll(seg, percentSentinel, "%")
		segments[i] = regexp.QuoteMeta(seg)
	}

	// (?s) so a wildcard crosses newlines, matching SQL LIKE.
	return regexp.Compile(`(?is)^` + strings.Join(segments, ".*") + `$`)
}

// likeOperand renders a value into the string a LIKE pattern runs against.
// Numbers take their decimal form and booleans "true"/"false"; any other
// non-string (object, sequence, nil) never matches.
func likeOperand(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	}
	if n, ok := toNumber(value); ok {
		return strconv.FormatFloat(n, 'f', -1, 64), true
	}
	return "", false
}

// LikeMatch reports whether value matches pattern. The pattern is either a
// string using "%" as a zero-or-more-character wildcard ("%%%" escapes a
// literal "%") or a compiled *regexp.Regexp used as-is. Any other pattern
// type is a usage error.
func LikeMatch(value any, pattern any) (bool, error) {
	switch p := pattern.(type) {
	case string:
		re, err := compileLike(p)
		if err != nil {
			return false, err
		}
		return likeString(value, re), nil
	case *regexp.Regexp:
		s, ok := likeOperand(value)
		if !ok {
			return false, nil
		}
		return p.MatchString(s), nil
	}
	return false, &PatternError{Pattern: pattern}
}

// likeString runs a pre-compiled wildcard pattern against a value.
func likeString(value any, re *regexp.Regexp) bool {
	s, ok := likeOperand(value)
	if !ok {
		return false
	}
	return re.MatchString(s)
}

// escapePercent protects literal percents in an operand that will be
// embedded into a wildcard pattern.
func escapePercent(s string) string {
	return strings.ReplaceAll(s, "%", literalPercent)
}

// StartsWith reports whether value begins with prefix.
func StartsWith(value any, prefix string) bool {
	ok, _ := LikeMatch(value, escapePercent(prefix)+"%")
	return ok
}

// EndsWith reports whether value ends with suffix.
func EndsWith(value any, suffix string) bool {
	ok, _ := LikeMatch(value, "%"+escapePercent(suffix))
	return ok
}

// Contains reports whether value contains sub.
func Contains(value any, sub string) bool {
	ok, _ := LikeMatch(value, "%"+escapePercent(sub)+"%")
	return ok
}
