package internal

// TokenType represents the type of a lexical token
type TokenType string

// Token type constants
const (
	TokenTypeText TokenType = "TEXT"
	TokenTypeTag  TokenType = "TAG"
	TokenTypeEOF  TokenType = "EOF"
)

// TagKind identifies which reference kind a bracket body resolved to
type TagKind string

// Tag kind constants
const (
	TagKindUser    TagKind = "USER"
	TagKindArticle TagKind = "ARTICLE"
)

// Character constants
const (
	CharOpenBracket  = '['
	CharCloseBracket = ']'
	CharNewline      = '\n'
)

// Tag kind patterns. Matching is an unanchored substring search over the
// bracket body, so surrounding junk inside the brackets is tolerated:
// "xxuser:5yy" still classifies as a user tag with id 5.
const (
	PatternUser    = `user:\s*(?P<id>\d+)`
	PatternArticle = `article:\s*(?P<id>\d+)`
	PatternGroupID = "id"
)

// Log message constants
const (
	LogMsgLexerCreated = "lexer created"
	LogMsgTagScanned   = "tag scanned"
	LogMsgTagRejected  = "tag rejected"
)

// Log field name constants
const (
	LogFieldSource = "source_bytes"
	LogFieldBody   = "body"
	LogFieldKind   = "kind"
	LogFieldID     = "id"
)

// Error message constants for the grammar and lexer
const (
	ErrMsgUnknownTag      = "unknown tag"
	ErrMsgCaptureMissing  = "tag pattern matched without id capture"
	ErrMsgIdentifierParse = "tag identifier is not a valid number"
)
