package taglex

import (
	"fmt"

	"github.com/itsatony/go-taglex/internal"
)

// TokenType represents the type of a lexical token
type TokenType string

// Token type constants
const (
	TokenTypeText TokenType = TokenType(internal.TokenTypeText)
	TokenTypeTag  TokenType = TokenType(internal.TokenTypeTag)
	TokenTypeEOF  TokenType = TokenType(internal.TokenTypeEOF)
)

// TagKind identifies which reference kind a bracket body resolved to
type TagKind string

// Tag kind constants
const (
	TagKindUser    TagKind = TagKind(internal.TagKindUser)
	TagKindArticle TagKind = TagKind(internal.TagKindArticle)
)

// Tag is a classified reference extracted from a bracket body.
// The identifier is the exact captured value, never clamped.
type Tag struct {
	Kind TagKind
	ID   uint64
}

// String returns a human-readable representation of the tag
func (t Tag) String() string {
	return fmt.Sprintf("%s(%d)", t.Kind, t.ID)
}

// Position represents a location in the source text. The line counter is
// 1-indexed and advances each time a newline is consumed; it never resets
// for the lifetime of one tokenizer.
type Position struct {
	Offset int // Byte offset from start
	Line   int // 1-indexed line number
	Column int // 1-indexed column number
}

// String returns the diagnostic rendering of the position, "line N".
func (p Position) String() string {
	return fmt.Sprintf("line %d", p.Line)
}

// Token is the unit produced by lexing: a non-empty literal text run, a
// resolved tag reference, or the end-of-input marker.
type Token struct {
	Type     TokenType // The type of token
	Value    string    // Literal contents for text tokens
	Tag      Tag       // The resolved tag for tag tokens
	Position Position  // Source position where the token began
}

// String returns a human-readable representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenTypeText:
		return fmt.Sprintf("Token{%s: %q @ %s}", t.Type, t.Value, t.Position)
	case TokenTypeTag:
		return fmt.Sprintf("Token{%s: %s @ %s}", t.Type, t.Tag, t.Position)
	default:
		return fmt.Sprintf("Token{%s @ %s}", t.Type, t.Position)
	}
}

// IsEOF returns true if this is an end-of-input token
func (t Token) IsEOF() bool {
	return t.Type == TokenTypeEOF
}

// IsText returns true if this is a text token
func (t Token) IsText() bool {
	return t.Type == TokenTypeText
}

// IsTag returns true if this is a tag token
func (t Token) IsTag() bool {
	return t.Type == TokenTypeTag
}

// Conversion from the internal lexer types

func tokenFromInternal(tok internal.Token) Token {
	return Token{
		Type:     TokenType(tok.Type),
		Value:    tok.Value,
		Tag:      tagFromInternal(tok.Tag),
		Position: positionFromInternal(tok.Position),
	}
}

func tagFromInternal(tag internal.Tag) Tag {
	return Tag{
		Kind: TagKind(tag.Kind),
		ID:   tag.ID,
	}
}

func positionFromInternal(pos internal.Position) Position {
	return Position{
		Offset: pos.Offset,
		Line:   pos.Line,
		Column: pos.Column,
	}
}
