// Package charstream provides a cursor over UTF-8 source text with
// peek/backtrack and line/column tracking, shared by the lexer's
// sub-parsers.
package charstream

import "unicode/utf8"

// eof is the sentinel rune returned once the stream is exhausted.
const eof = rune(0)

// Stream is a read cursor over a source string. It tracks 1-based line and
// column positions and keeps enough rune history to support Backtrack, which
// identifier and number sub-parsers use after scanning one character past
// the end of their token.
type Stream struct {
	input string

	runes []rune // decoded once up front; simplifies peek/backtrack/substring
	byteOffsets []int // byte offset of runes[i] in input, for Substring

	pos  int // index into runes of the current character
	line int
	col  int
}

// New creates a Stream positioned before the first character of input.
func New(input string) *Stream {
	s := &Stream{input: input, line: 1, col: 0}
	for i := 0; i < len(input); {
		r, size := utf8.DecodeRuneInString(input[i:])
		s.runes = append(s.runes, r)
		s.byteOffsets = append(s.byteOffsets, i)
		i += size
	}
	s.byteOffsets = append(s.byteOffsets, len(input)) // sentinel for Substring's end bound
	return s
}

// Current returns the character at the cursor, or the eof sentinel if the
// stream is exhausted.
func (s *Stream) Current() rune {
	return s.at(s.pos)
}

// Peek returns the character offset characters ahead of the cursor (Peek(1)
// is the next character) without consuming anything.
func (s *Stream) Peek(offset int) rune {
	return s.at(s.pos + offset)
}

func (s *Stream) at(i int) rune {
	if i < 0 || i >= len(s.runes) {
		return eof
	}
	return s.runes[i]
}

// Advance moves the cursor forward one character, updating line/column.
// \n, a lone \r, and \r\n each count as exactly one line break; column
// resets to 0 on a break and becomes 1 on the first character of the new
// line.
func (s *Stream) Advance() {
	if s.IsAtEnd() {
		return
	}
	ch := s.runes[s.pos]
	s.pos++

	if ch == '\n' {
		s.line++
		s.col = 0
		return
	}
	if ch == '\r' {
		s.line++
		s.col = 0
		if s.at(s.pos) == '\n' {
			s.pos++
		}
		return
	}
	s.col++
}

// IsAtEnd reports whether the cursor has consumed the entire input.
func (s *Stream) IsAtEnd() bool {
	return s.pos >= len(s.runes)
}

// Position returns the 1-based line and column of the character most
// recently consumed by Advance.
func (s *Stream) Position() (line, column int) {
	return s.line, s.col
}

// Backtrack moves the cursor back n characters. It does not attempt to
// reverse line/column bookkeeping across a line break; callers only use it
// to step back within a single token that has no embedded newline (the
// identifier/number sub-parsers' one-character lookahead).
func (s *Stream) Backtrack(n int) {
	s.pos -= n
	if s.pos < 0 {
		s.pos = 0
	}
	s.col -= n
	if s.col < 0 {
		s.col = 0
	}
}

// Substring returns the raw source text between two rune indices, where
// start and end are rune offsets into the original input (as seen via
// Index, below). It is used by sub-parsers that need the literal text of a
// token they have already scanned.
func (s *Stream) Substring(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(s.byteOffsets)-1 {
		end = len(s.byteOffsets) - 1
	}
	if start > end {
		return ""
	}
	return s.input[s.byteOffsets[start]:s.byteOffsets[end]]
}

// Index returns the current rune index of the cursor, suitable for use with
// Substring to extract the text of a token just scanned.
func (s *Stream) Index() int {
	return s.pos
}
