package internal

import (
	"fmt"
	"regexp"
	"strconv"
)

// Compiled once at startup; matching never recompiles patterns.
var (
	userPattern    = regexp.MustCompile(PatternUser)
	articlePattern = regexp.MustCompile(PatternArticle)
)

// tagMatchers is consulted in order. The first pattern that matches decides
// the tag kind and stops evaluation, so a body containing both "user:" and
// "article:" always classifies as a user tag.
var tagMatchers = []struct {
	kind    TagKind
	pattern *regexp.Regexp
}{
	{TagKindUser, userPattern},
	{TagKindArticle, articlePattern},
}

// GrammarError reports why a bracket body could not be classified into a tag.
type GrammarError struct {
	Message string // One of the ErrMsg constants
	Body    string // The offending text; re-bracketed for unknown tags
	Cause   error  // Underlying error for identifier parse failures
}

// Error returns a human-readable error string
func (e *GrammarError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s %q: %v", e.Message, e.Body, e.Cause)
	}
	return fmt.Sprintf("%s %q", e.Message, e.Body)
}

// Unwrap returns the underlying cause, if any
func (e *GrammarError) Unwrap() error {
	return e.Cause
}

// ParseTagBody classifies the text found between (but not including) an
// opening and closing bracket. A failed classification never aborts the
// caller's traversal; the error describes this body only.
func ParseTagBody(body string) (Tag, *GrammarError) {
	for _, m := range tagMatchers {
		match := m.pattern.FindStringSubmatch(body)
		if match == nil {
			continue
		}

		// Defensive: a correctly authored pattern always carries the id
		// group, but a missing capture is reported, not assumed impossible.
		idx := m.pattern.SubexpIndex(PatternGroupID)
		if idx < 0 || idx >= len(match) || match[idx] == "" {
			return Tag{}, &GrammarError{Message: ErrMsgCaptureMissing, Body: body}
		}

		id, err := strconv.ParseUint(match[idx], 10, 64)
		if err != nil {
			// Covers overflow of the identifier width.
			return Tag{}, &GrammarError{Message: ErrMsgIdentifierParse, Body: body, Cause: err}
		}

		return Tag{Kind: m.kind, ID: id}, nil
	}

	// The payload keeps the bracketed form so diagnostics show the tag as it
	// appeared in the source.
	return Tag{}, &GrammarError{
		Message: ErrMsgUnknownTag,
		Body:    string(CharOpenBracket) + body + string(CharCloseBracket),
	}
}
