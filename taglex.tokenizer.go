package taglex

import (
	"errors"

	"go.uber.org/zap"

	"github.com/itsatony/go-taglex/internal"
)

// Tokenizer is the main entry point for lexing tagged text. It is a
// pull-based cursor: each call to Next produces exactly one token or error,
// and nothing is computed until requested. A Tokenizer is single-use; lex
// the same text again by constructing a new one.
type Tokenizer struct {
	lexer  *internal.Lexer
	logger *zap.Logger
}

// New creates a Tokenizer over source with the given options.
func New(source string, opts ...Option) *Tokenizer {
	config := defaultConfig()
	for _, opt := range opts {
		opt(config)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Tokenizer{
		lexer:  internal.NewLexer(source, logger),
		logger: logger,
	}
}

// Next returns the next token. Once the input is exhausted it returns an
// EOF token on this and every subsequent call.
//
// A malformed tag yields an error scoped to this call only, carrying line,
// column, offset and body metadata; the following call resumes lexing just
// past the discarded closing bracket.
func (t *Tokenizer) Next() (Token, error) {
	tok, err := t.lexer.Next()
	if err != nil {
		var lexErr *internal.LexerError
		if errors.As(err, &lexErr) {
			return Token{}, tokenizeError(lexErr)
		}
		return Token{}, err
	}
	return tokenFromInternal(tok), nil
}

// Tokenize is a convenience that lexes source to completion. It returns the
// tokens produced before the first malformed tag together with that tag's
// error, or the full token sequence (EOF excluded) when the input is clean.
// Use Inspect to scan past malformed tags instead of stopping.
func Tokenize(source string, opts ...Option) ([]Token, error) {
	t := New(source, opts...)

	var tokens []Token
	for {
		tok, err := t.Next()
		if err != nil {
			return tokens, err
		}
		if tok.IsEOF() {
			t.logger.Debug(LogMsgTokenizeDone, zap.Int(LogFieldTokens, len(tokens)))
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}
