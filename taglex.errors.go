package taglex

import (
	"strconv"

	"github.com/itsatony/go-cuserr"

	"github.com/itsatony/go-taglex/internal"
)

// NewUnknownTagError creates an error for a bracket body that matched no
// recognized pattern. The body keeps its bracketed form so diagnostics show
// the tag as it appeared in the source.
func NewUnknownTagError(body string) error {
	return cuserr.NewNotFoundError(MetaKeyTag, ErrMsgUnknownTag).
		WithMetadata(MetaKeyBody, body)
}

// NewCaptureMissingError creates an error for a pattern match without the
// expected id capture. Defensive: a correctly authored pattern never
// produces this.
func NewCaptureMissingError(body string) error {
	return cuserr.NewValidationError(ErrCodeGrammar, ErrMsgCaptureMissing).
		WithMetadata(MetaKeyBody, body)
}

// NewIdentifierParseError creates an error for an identifier capture that
// failed to parse, including overflow of the identifier width.
func NewIdentifierParseError(body string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeGrammar, ErrMsgIdentifierParse).
		WithMetadata(MetaKeyBody, body)
}

// NewTokenizeError creates a tokenization error with position context.
func NewTokenizeError(msg string, body string, pos Position, cause error) error {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeTokenize, msg)
	} else {
		err = cuserr.NewValidationError(ErrCodeTokenize, msg)
	}
	return err.
		WithMetadata(MetaKeyBody, body).
		WithMetadata(MetaKeyLine, strconv.Itoa(pos.Line)).
		WithMetadata(MetaKeyColumn, strconv.Itoa(pos.Column)).
		WithMetadata(MetaKeyOffset, strconv.Itoa(pos.Offset))
}

// grammarError maps an internal grammar failure onto the public error
// constructors. Used where no position context exists (direct ParseTag).
func grammarError(gerr *internal.GrammarError) error {
	switch gerr.Message {
	case ErrMsgCaptureMissing:
		return NewCaptureMissingError(gerr.Body)
	case ErrMsgIdentifierParse:
		return NewIdentifierParseError(gerr.Body, gerr.Cause)
	default:
		return NewUnknownTagError(gerr.Body)
	}
}

// tokenizeError maps an internal lexer failure onto a positioned error.
func tokenizeError(lexErr *internal.LexerError) error {
	return NewTokenizeError(
		lexErr.Err.Message,
		lexErr.Err.Body,
		positionFromInternal(lexErr.Position),
		lexErr.Err.Cause,
	)
}
