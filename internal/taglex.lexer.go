package internal

import (
	"strings"

	"go.uber.org/zap"
)

// Lexer is a pull-based tokenizer over an in-memory string. Each call to
// Next produces exactly one token or error; no token is computed until
// requested. The only state carried between calls is the cursor and the
// running position, so a malformed tag is scoped to the call that hit it
// and the following call resumes just past the discarded closing bracket.
type Lexer struct {
	source string
	pos    int // Current byte position
	line   int // Current line (1-indexed)
	column int // Current column (1-indexed)
	logger *zap.Logger
}

// NewLexer creates a new lexer over source. A nil logger disables logging.
func NewLexer(source string, logger *zap.Logger) *Lexer {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgLexerCreated, zap.Int(LogFieldSource, len(source)))
	return &Lexer{
		source: source,
		pos:    0,
		line:   1,
		column: 1,
		logger: logger,
	}
}

// Next returns the next token from the input. Once the input is exhausted
// it returns an EOF token on this and every subsequent call. A malformed
// tag returns a *LexerError for this call only.
func (l *Lexer) Next() (Token, error) {
	if l.isAtEnd() {
		return NewEOFToken(l.currentPosition()), nil
	}
	if l.peek() == CharOpenBracket {
		return l.scanTag()
	}
	return l.scanText(), nil
}

// scanTag consumes an opening bracket and everything up to the closing
// bracket (discarded), then classifies the collected body. The closing
// bracket is consumed before classification, so lexing resumes past it
// even when the body is rejected. A missing closing bracket is not an
// error: whatever text remains is classified as-is.
func (l *Lexer) scanTag() (Token, error) {
	startPos := l.currentPosition()
	l.advance() // consume [

	body := l.scanTagBody()
	tag, gerr := ParseTagBody(body)
	if gerr != nil {
		l.logger.Debug(LogMsgTagRejected, zap.String(LogFieldBody, body), zap.Error(gerr))
		// Newlines inside the body have already advanced the line counter,
		// so the reported position reflects lines consumed so far.
		return Token{}, &LexerError{Err: gerr, Position: l.currentPosition()}
	}

	l.logger.Debug(LogMsgTagScanned,
		zap.String(LogFieldKind, string(tag.Kind)),
		zap.Uint64(LogFieldID, tag.ID))
	return NewTagToken(tag, startPos), nil
}

// scanTagBody collects characters up to the next closing bracket, which is
// consumed and discarded, or to end of input if none exists.
func (l *Lexer) scanTagBody() string {
	var sb strings.Builder
	for !l.isAtEnd() {
		if l.peek() == CharCloseBracket {
			l.advance()
			break
		}
		sb.WriteByte(l.advance())
	}
	return sb.String()
}

// scanText scans a text run from the current character up to (not
// including) the next opening bracket or end of input. The run always
// contains at least the character that started it.
func (l *Lexer) scanText() Token {
	startPos := l.currentPosition()
	var sb strings.Builder

	sb.WriteByte(l.advance())
	for !l.isAtEnd() && l.peek() != CharOpenBracket {
		sb.WriteByte(l.advance())
	}

	return NewTextToken(sb.String(), startPos)
}

// currentPosition returns the current position
func (l *Lexer) currentPosition() Position {
	return Position{
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

// isAtEnd returns true if we've reached the end of source
func (l *Lexer) isAtEnd() bool {
	return l.pos >= len(l.source)
}

// peek returns the current character without advancing
func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.pos]
}

// advance consumes and returns the current character. The line counter
// increments the moment a newline is consumed, whether it sits in a text
// run or inside a tag body; it never decreases for the lexer's lifetime.
func (l *Lexer) advance() byte {
	if l.isAtEnd() {
		return 0
	}
	ch := l.source[l.pos]
	l.pos++
	if ch == CharNewline {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

// LexerError pairs a grammar failure with the position the lexer had
// reached when the failure was detected.
type LexerError struct {
	Err      *GrammarError
	Position Position
}

// Error returns a human-readable error string
func (e *LexerError) Error() string {
	return e.Err.Error() + " at " + e.Position.String()
}

// Unwrap returns the underlying grammar error
func (e *LexerError) Unwrap() error {
	return e.Err
}
