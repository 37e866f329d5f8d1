package internal

import "fmt"

// Position represents a location in the source text
type Position struct {
	Offset int // Byte offset from start
	Line   int // 1-indexed line number
	Column int // 1-indexed column number
}

// String returns a human-readable position string
func (p Position) String() string {
	return fmt.Sprintf("line %d", p.Line)
}

// Tag is a classified reference extracted from a bracket body
type Tag struct {
	Kind TagKind // Which reference kind matched
	ID   uint64  // The captured numeric identifier, never clamped
}

// String returns a human-readable representation of the tag
func (t Tag) String() string {
	return fmt.Sprintf("%s(%d)", t.Kind, t.ID)
}

// Token represents a lexical token produced by the lexer
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

// NewTextToken creates a text token with the given content
func NewTextToken(content string, pos Position) Token {
	return Token{
		Type:     TokenTypeText,
		Value:    content,
		Position: pos,
	}
}

// NewTagToken creates a tag token for a resolved reference
func NewTagToken(tag Tag, pos Position) Token {
	return Token{
		Type:     TokenTypeTag,
		Tag:      tag,
		Position: pos,
	}
}

// NewEOFToken creates an end-of-input token at the given position
func NewEOFToken(pos Position) Token {
	return Token{
		Type:     TokenTypeEOF,
		Position: pos,
	}
}
