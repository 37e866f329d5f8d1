package taglex

import (
	"github.com/itsatony/go-taglex/internal"
)

// ParseTag classifies a bracket body (the text between "[" and "]") without
// running the lexer. The body is matched against the user pattern first and
// the article pattern second; the first match wins. Matching is an
// unanchored substring search, so "xxuser:5yy" classifies as USER(5).
func ParseTag(body string) (Tag, error) {
	tag, gerr := internal.ParseTagBody(body)
	if gerr != nil {
		return Tag{}, grammarError(gerr)
	}
	return tagFromInternal(tag), nil
}

// MustParseTag classifies a bracket body and panics on error.
func MustParseTag(body string) Tag {
	tag, err := ParseTag(body)
	if err != nil {
		panic(err)
	}
	return tag
}
