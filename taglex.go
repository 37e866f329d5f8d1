// Package taglex lexes a lightweight inline-tagging notation embedded in
// free text: plain prose interspersed with bracketed entity references.
//
// Two reference kinds are recognized, each carrying a numeric identifier:
//
//	Say hi to [user:42], who wrote [article:7].
//
// # Basic Usage
//
// Create a tokenizer and pull tokens until EOF:
//
//	tok := taglex.New("hello [user:5] world")
//	for {
//	    token, err := tok.Next()
//	    if err != nil {
//	        // malformed tag; err carries line information, lexing continues
//	        continue
//	    }
//	    if token.IsEOF() {
//	        break
//	    }
//	    // token.Type is TokenTypeText or TokenTypeTag
//	}
//
// Or collect everything in one call:
//
//	tokens, err := taglex.Tokenize("hello [user:5] world")
//	// tokens: Text("hello "), Tag(USER(5)), Text(" world")
//
// # Notation
//
// A tag is whatever sits between "[" and the next "]". The body is matched
// against the user pattern first and the article pattern second; matching is
// an unanchored substring search, so junk around a valid "kind:id" pair is
// tolerated. Bodies matching neither pattern are reported as unknown tags.
// A missing closing bracket is not an error: the remaining input is
// classified as-is.
//
// # Error Handling
//
// A malformed tag never aborts the traversal. The call that encountered it
// returns an error scoped to that single tag, and the next call resumes just
// past the discarded closing bracket. Errors include line information for
// diagnostics:
//
//	_, err := taglex.Tokenize("\n[unknown]")
//	// err message names the unknown tag, metadata carries line 2
//
// # Configuration
//
// The tokenizer takes functional options:
//
//	tok := taglex.New(source, taglex.WithLogger(logger))
package taglex
