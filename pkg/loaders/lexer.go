package loaders

import (
	"strconv"
	"strings"

	"github.com/df07/go-raycaster/pkg/core"
)

// maxStringLength bounds the length of a quoted string literal
const maxStringLength = 256

// readString reads a double-quoted string literal. Escapes are not supported.
func (s *charStream) readString() (string, error) {
	if err := s.expect('"'); err != nil {
		return "", err
	}

	var sb strings.Builder
	for {
		c, err := s.next()
		if err != nil {
			return "", err
		}
		if c == '"' {
			return sb.String(), nil
		}
		if sb.Len() >= maxStringLength {
			return "", s.errorf(ErrStringTooLong, "(limit %d characters)", maxStringLength)
		}
		if c == '\\' {
			return "", s.errorf(ErrUnsupportedEscape, "")
		}
		if c < 32 || c > 126 {
			return "", s.errorf(ErrNonASCIICharacter, "(byte 0x%02x)", c)
		}
		sb.WriteByte(c)
	}
}

// readNumber reads a decimal floating point literal with an optional exponent
func (s *charStream) readNumber() (float64, error) {
	var buf []byte

	c, err := s.next()
	if err != nil {
		return 0, err
	}
	if c == '+' || c == '-' {
		buf = append(buf, c)
		if c, err = s.next(); err != nil {
			return 0, err
		}
	}

	digits := 0
	for isDigit(c) {
		buf = append(buf, c)
		digits++
		if c, err = s.next(); err != nil {
			return 0, err
		}
	}
	if c == '.' {
		buf = append(buf, c)
		if c, err = s.next(); err != nil {
			return 0, err
		}
		for isDigit(c) {
			buf = append(buf, c)
			digits++
			if c, err = s.next(); err != nil {
				return 0, err
			}
		}
	}
	if digits == 0 {
		return 0, s.errorf(ErrExpectedNumber, "found %s", quoteChar(c))
	}

	if c == 'e' || c == 'E' {
		buf = append(buf, c)
		if c, err = s.next(); err != nil {
			return 0, err
		}
		if c == '+' || c == '-' {
			buf = append(buf, c)
			if c, err = s.next(); err != nil {
				return 0, err
			}
		}
		expDigits := 0
		for isDigit(c) {
			buf = append(buf, c)
			expDigits++
			if c, err = s.next(); err != nil {
				return 0, err
			}
		}
		if expDigits == 0 {
			return 0, s.errorf(ErrExpectedNumber, "malformed exponent in %q", string(buf))
		}
	}
	s.unread(c)

	value, err := strconv.ParseFloat(string(buf), 64)
	if err != nil {
		return 0, s.errorf(ErrExpectedNumber, "%q out of range", string(buf))
	}
	return value, nil
}

// readVector reads a bracketed three component vector: [x, y, z]
func (s *charStream) readVector() (core.Vec3, error) {
	var components [3]float64

	if err := s.expect('['); err != nil {
		return core.Vec3{}, err
	}
	for i := range components {
		if i > 0 {
			if err := s.expect(','); err != nil {
				return core.Vec3{}, err
			}
		}
		if err := s.skipWhitespace(); err != nil {
			return core.Vec3{}, err
		}
		value, err := s.readNumber()
		if err != nil {
			return core.Vec3{}, err
		}
		components[i] = value
		if err := s.skipWhitespace(); err != nil {
			return core.Vec3{}, err
		}
	}
	if err := s.expect(']'); err != nil {
		return core.Vec3{}, err
	}

	return core.NewVec3(components[0], components[1], components[2]), nil
}
