// Package scan turns a byte stream into a sequence of tokens: the
// lowest level of the interpreter's front end. It works one byte at a
// time and never needs more than a single byte of pushback, since the
// grammar's lookahead never extends past the start of the next token.
package scan

import (
	"bufio"
	"io"

	"github.com/sahwork21/seqlang/value"
)

// maxTokenLength bounds the length of any single token. It exists so
// that a missing closing quote, or a runaway identifier, fails fast
// with a diagnostic rather than reading unbounded amounts of input.
const maxTokenLength = 1023

// Token is a single lexeme together with the 1-based source line it
// started on.
type Token struct {
	Text string
	Line int
}

// Scanner reads Tokens from an underlying byte stream, skipping
// whitespace and "#"-to-end-of-line comments and tracking a line
// counter for diagnostics.
type Scanner struct {
	r    *bufio.Reader
	line int
}

// New returns a Scanner reading from r.
func New(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReader(r), line: 1}
}

func (s *Scanner) readByte() (byte, bool) {
	b, err := s.r.ReadByte()
	if err != nil {
		return 0, false
	}
	return b, true
}

func (s *Scanner) unread() {
	s.r.UnreadByte()
}

func (s *Scanner) appendByte(buf []byte, b byte) []byte {
	if len(buf) >= maxTokenLength {
		panic(value.Errorf("line %d: token too long", s.line))
	}
	return append(buf, b)
}

// Next reads and returns the next token. The boolean result is false
// at end of input.
func (s *Scanner) Next() (Token, bool) {
	b, ok := s.skipSpaceAndComments()
	if !ok {
		return Token{}, false
	}
	switch {
	case isAlpha(b) || b == '_':
		return s.lexIdentifier(b), true
	case b == '-' || isDigit(b):
		return s.lexNumber(b), true
	case b == '"' || b == '\'':
		return s.lexString(b), true
	default:
		return s.lexSymbol(b), true
	}
}

// skipSpaceAndComments consumes whitespace and comments, tracking
// line numbers, and returns the first byte that starts a real token.
func (s *Scanner) skipSpaceAndComments() (byte, bool) {
	for {
		b, ok := s.readByte()
		if !ok {
			return 0, false
		}
		if !isSpace(b) && b != '#' {
			return b, true
		}
		if b == '#' {
			for {
				nb, nok := s.readByte()
				if !nok {
					return 0, false
				}
				if nb == '\n' {
					b = nb
					break
				}
			}
		}
		if b == '\n' {
			s.line++
		}
	}
}

func (s *Scanner) lexIdentifier(first byte) Token {
	line := s.line
	buf := []byte{first}
	for {
		b, ok := s.readByte()
		if !ok {
			break
		}
		if isAlpha(b) || isDigit(b) || b == '_' {
			buf = s.appendByte(buf, b)
			continue
		}
		s.unread()
		break
	}
	return Token{Text: string(buf), Line: line}
}

// lexNumber handles both plain integers and a leading minus sign. An
// isolated "-" not followed by a digit is still the one-byte token
// "-", which the parser's unary-minus-free grammar accepts only as
// the infix subtraction operator.
func (s *Scanner) lexNumber(first byte) Token {
	line := s.line
	buf := []byte{first}
	if first == '-' {
		b, ok := s.readByte()
		if !ok || !isDigit(b) {
			if ok {
				s.unread()
			}
			return Token{Text: "-", Line: line}
		}
		buf = s.appendByte(buf, b)
	}
	for {
		b, ok := s.readByte()
		if !ok {
			break
		}
		if isDigit(b) {
			buf = s.appendByte(buf, b)
			continue
		}
		s.unread()
		break
	}
	return Token{Text: string(buf), Line: line}
}

// lexString handles both double-quoted string literals and
// single-quoted character literals, which share the same escaping
// rules and differ only in the quote byte and the one-character length
// restriction placed on single-quoted literals. The token's Text
// includes both delimiting quote bytes; the parser strips them while
// lowering the literal to its value representation.
func (s *Scanner) lexString(quote byte) Token {
	line := s.line
	buf := []byte{quote}
	escape := false
	for {
		b, ok := s.readByte()
		if !ok || b == '\n' {
			panic(value.Errorf("line %d: invalid string literal.", line))
		}
		if !escape && b == quote {
			buf = s.appendByte(buf, b)
			break
		}
		if !escape && b == '\\' {
			escape = true
			continue
		}
		if escape {
			switch b {
			case 'n':
				b = '\n'
			case 't':
				b = '\t'
			case '"':
				b = '"'
			case '\\':
				b = '\\'
			default:
				panic(value.Errorf("line %d: Invalid escape sequence \"\\%c\"", line, b))
			}
			escape = false
		}
		buf = s.appendByte(buf, b)
	}
	text := string(buf)
	if quote == '\'' && len(text) != 3 {
		panic(value.Errorf("line %d: Invalid single-quoted string", line))
	}
	return Token{Text: text, Line: line}
}

// lexSymbol classifies one- and two-character operator and
// punctuation tokens. Only "==", "&&" and "||" are two characters;
// everything else the grammar uses is a single byte.
func (s *Scanner) lexSymbol(first byte) Token {
	line := s.line
	second, ok := s.readByte()
	if ok {
		if (first == '=' && second == '=') ||
			(first == '&' && second == '&') ||
			(first == '|' && second == '|') {
			return Token{Text: string([]byte{first, second}), Line: line}
		}
		s.unread()
	}
	return Token{Text: string([]byte{first}), Line: line}
}

func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }
func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
