package tags

import (
	"fmt"
	"regexp"
	"regexp/syntax"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

const (
	ModeExact   = "exact"
	ModePattern = "pattern"
	ModeGlob    = "glob"
)

// Predicate reports whether a single tag satisfies a compiled query.
type Predicate func(tag string) bool

// Matcher turns a search query into a Predicate. Matching is always
// case-insensitive and covers the whole tag, never a substring.
type Matcher interface {
	Compile(query string) (Predicate, error)
}

// NewMatcher returns the matcher for a SEARCH_MODE value.
func NewMatcher(mode string) (Matcher, error) {
	switch mode {
	case "", ModeExact:
		return Exact{}, nil
	case ModePattern:
		return Pattern{}, nil
	case ModeGlob:
		return Glob{}, nil
	default:
		return nil, fmt.Errorf("unknown search mode %q", mode)
	}
}

// Matches is the default tag predicate: whole-string equality under Unicode
// case folding.
func Matches(tag, query string) bool {
	return strings.EqualFold(tag, query)
}

type Exact struct{}

func (Exact) Compile(query string) (Predicate, error) {
	return func(tag string) bool { return Matches(tag, query) }, nil
}

// Pattern treats the query as a regular expression anchored at both ends.
// RE2 semantics keep matching linear in the input.
type Pattern struct{}

func (Pattern) Compile(query string) (Predicate, error) {
	// The query must parse as a complete expression on its own, otherwise a
	// stray ")" could close the anchoring group below.
	if _, err := syntax.Parse(query, syntax.Perl); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearchPattern, err)
	}
	re, err := regexp.Compile("(?i)^(?:" + query + ")$")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearchPattern, err)
	}
	return re.MatchString, nil
}

// Glob treats the query as a shell glob (*, ?, [a-z], {a,b}). As with file
// paths, wildcards do not cross a '/'.
type Glob struct{}

func (Glob) Compile(query string) (Predicate, error) {
	pattern := strings.ToLower(query)
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: malformed glob %q", ErrSearchPattern, query)
	}
	return func(tag string) bool {
		return doublestar.MatchUnvalidated(pattern, strings.ToLower(tag))
	}, nil
}
