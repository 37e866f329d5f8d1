package taglex

import "github.com/itsatony/go-taglex/internal"

// Bracket constants - the [ ] syntax is a fixed part of the notation
const (
	OpenBracket  = "["
	CloseBracket = "]"
)

// Metadata keys for cuserr.WithMetadata
const (
	MetaKeyLine   = "line"
	MetaKeyColumn = "column"
	MetaKeyOffset = "offset"
	MetaKeyBody   = "body"
	MetaKeyTag    = "tag"
)

// Error message constants - all error messages are constants (NO MAGIC STRINGS)
const (
	ErrMsgUnknownTag      = internal.ErrMsgUnknownTag
	ErrMsgCaptureMissing  = internal.ErrMsgCaptureMissing
	ErrMsgIdentifierParse = internal.ErrMsgIdentifierParse
)

// Error code constants for categorization
const (
	ErrCodeGrammar  = "TAGLEX_GRAMMAR"
	ErrCodeTokenize = "TAGLEX_TOKENIZE"
)

// Log message constants
const (
	LogMsgTokenizeDone = "tokenization complete"
	LogMsgInspectDone  = "inspection complete"
)

// Log field name constants
const (
	LogFieldTokens = "tokens"
	LogFieldErrors = "errors"
)
