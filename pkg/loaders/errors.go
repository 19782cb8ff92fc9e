package loaders

import (
	"errors"
	"fmt"
)

// Error kinds reported by the scene reader. Every failure returned by
// ParseScene wraps exactly one of these, so callers can use errors.Is.
var (
	// Syntax
	ErrUnexpectedCharacter = errors.New("unexpected character")

	// Lexical
	ErrUnsupportedEscape = errors.New("strings with escape character codes are not supported")
	ErrNonASCIICharacter = errors.New("strings can contain printable ascii characters only")
	ErrStringTooLong     = errors.New("string exceeds maximum length")
	ErrExpectedNumber    = errors.New("expected numeric value")

	// Semantic
	ErrUnknownField      = errors.New("unknown field")
	ErrUnknownObjectType = errors.New("unknown object type")
	ErrInvalidColorRange = errors.New("color channel outside [0, 1]")
	ErrFieldNotAllowed   = errors.New("field not allowed for object type")
	ErrMissingType       = errors.New("object has fields but no type")

	// Resource
	ErrUnexpectedEOF  = errors.New("unexpected end-of-file")
	ErrTooManyObjects = errors.New("too many objects in scene")
)

// ParseError records where in the scene file a failure happened
type ParseError struct {
	Line   int    // 1-based line number
	Kind   error  // One of the Err* kinds above
	Detail string // Offending or expected text, may be empty
}

func (e *ParseError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Kind)
	}
	return fmt.Sprintf("line %d: %v %s", e.Line, e.Kind, e.Detail)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

// quoteChar formats a byte for use in diagnostics
func quoteChar(c byte) string {
	return fmt.Sprintf("%q", rune(c))
}
