package taglex

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// InspectResult contains the results of a full diagnostic scan of a source
// text. Unlike Tokenize, inspection never stops at a malformed tag: every
// tag reference and every diagnostic in the input is collected.
type InspectResult struct {
	// Valid indicates the input lexed without any malformed tags
	Valid bool

	// Tags lists all resolved tag references in source order
	Tags []TagReference

	// Tokens is the number of tokens produced (EOF excluded)
	Tokens int

	// TextBytes is the total size of all literal text runs
	TextBytes int

	// Errors contains one diagnostic per malformed tag
	Errors []string
}

// TagReference represents one resolved tag reference in the input.
type TagReference struct {
	Kind   TagKind // Reference kind
	ID     uint64  // Numeric identifier
	Line   int     // Source line number
	Column int     // Source column number
}

// Inspect scans source to end of input, collecting tag references and
// diagnostics. It always runs to completion and never returns an error;
// malformed tags appear in the result's Errors slice.
func Inspect(source string, opts ...Option) *InspectResult {
	t := New(source, opts...)
	result := &InspectResult{Valid: true}

	for {
		tok, err := t.Next()
		if err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
			continue
		}
		if tok.IsEOF() {
			t.logger.Debug(LogMsgInspectDone,
				zap.Int(LogFieldTokens, result.Tokens),
				zap.Int(LogFieldErrors, len(result.Errors)))
			return result
		}

		result.Tokens++
		switch tok.Type {
		case TokenTypeTag:
			result.Tags = append(result.Tags, TagReference{
				Kind:   tok.Tag.Kind,
				ID:     tok.Tag.ID,
				Line:   tok.Position.Line,
				Column: tok.Position.Column,
			})
		case TokenTypeText:
			result.TextBytes += len(tok.Value)
		}
	}
}

// String returns a human-readable summary of the inspection.
func (r *InspectResult) String() string {
	var sb strings.Builder

	if r.Valid {
		sb.WriteString("valid")
	} else {
		sb.WriteString("invalid")
	}
	fmt.Fprintf(&sb, ": %d tokens, %d tags, %d text bytes", r.Tokens, len(r.Tags), r.TextBytes)

	for _, ref := range r.Tags {
		fmt.Fprintf(&sb, "\n  %s(%d) at line %d, column %d", ref.Kind, ref.ID, ref.Line, ref.Column)
	}
	for _, msg := range r.Errors {
		fmt.Fprintf(&sb, "\n  error: %s", msg)
	}

	return sb.String()
}
