package loaders

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// charStream reads a scene one byte at a time with a single byte of pushback.
// It owns the line counter, so independent parses never share state.
type charStream struct {
	reader  *bufio.Reader
	line    int
	pending byte
	hasPend bool
}

func newCharStream(r io.Reader) *charStream {
	return &charStream{
		reader: bufio.NewReader(r),
		line:   1,
	}
}

// next returns the next byte. Running out of input is always an error here:
// every caller is in the middle of a token or still waiting for one.
func (s *charStream) next() (byte, error) {
	if s.hasPend {
		s.hasPend = false
		return s.pending, nil
	}

	c, err := s.reader.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, s.errorf(ErrUnexpectedEOF, "")
		}
		return 0, fmt.Errorf("error reading scene: %w", err)
	}

	if c == '\n' || c == '\r' || c == '\f' {
		s.line++
	}
	return c, nil
}

// unread pushes c back so the following next call returns it again.
// The line counter is not touched: c was already counted when first read.
func (s *charStream) unread(c byte) {
	s.pending = c
	s.hasPend = true
}

// skipWhitespace consumes whitespace and leaves the first other byte unread
func (s *charStream) skipWhitespace() error {
	for {
		c, err := s.next()
		if err != nil {
			return err
		}
		if !isSpace(c) {
			s.unread(c)
			return nil
		}
	}
}

// expect consumes one byte and fails unless it is want
func (s *charStream) expect(want byte) error {
	c, err := s.next()
	if err != nil {
		return err
	}
	if c != want {
		return s.unexpected(c, quoteChar(want))
	}
	return nil
}

func (s *charStream) unexpected(got byte, expected string) *ParseError {
	return s.errorf(ErrUnexpectedCharacter, "%s, expected %s", quoteChar(got), expected)
}

func (s *charStream) errorf(kind error, format string, args ...interface{}) *ParseError {
	detail := format
	if len(args) > 0 {
		detail = fmt.Sprintf(format, args...)
	}
	return &ParseError{Line: s.line, Kind: kind, Detail: detail}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
