package search

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidPattern reports a pattern that failed to compile. It is returned
// before any worker starts.
var ErrInvalidPattern = errors.New("invalid pattern")

// Matcher tests candidate public key bodies against a pattern compiled once
// and shared read-only by every worker.
type Matcher struct {
	re *regexp.Regexp
}

// Compile builds the matcher. Case-insensitivity is applied through the
// regexp (?i) flag; the candidate text is never rewritten.
func Compile(pattern string, caseSensitive bool) (*Matcher, error) {
	expr := pattern
	if !caseSensitive {
		expr = "(?i)" + pattern
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidPattern, pattern, err)
	}
	return &Matcher{re: re}, nil
}

// Match reports whether the base64 body of a public key satisfies the
// pattern. Pure and safe for concurrent use.
func (m *Matcher) Match(body string) bool {
	return m.re.MatchString(body)
}
