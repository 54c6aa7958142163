package input

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"

	errs "github.com/matzehuels/citypaths/pkg/errors"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// Reader yields tokens, integers, and whole lines from a text stream.
// It is not safe for concurrent use.
type Reader struct {
	sc     *bufio.Scanner
	line   string // current line with the trailing CR removed
	pos    int    // byte offset of the next unread rune in line
	lineNo int    // 1-based number of line; 0 before the first read
	eof    bool
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &Reader{sc: sc}
}

// LineNo returns the 1-based number of the line last read from, or 0.
func (r *Reader) LineNo() int { return r.lineNo }

// advance loads the next line. It reports false at end of input.
func (r *Reader) advance() (bool, error) {
	if r.eof {
		return false, nil
	}
	if !r.sc.Scan() {
		r.eof = true
		if err := r.sc.Err(); err != nil {
			return false, errs.AtLine(errs.Wrap(errs.ErrCodeMalformedInput, err, "read line"), r.lineNo+1)
		}
		return false, nil
	}
	r.lineNo++
	r.line = strings.TrimSuffix(r.sc.Text(), "\r")
	r.pos = 0
	return true, nil
}

// Token returns the next whitespace-separated token. what names the expected
// item in error messages.
func (r *Reader) Token(what string) (string, error) {
	for {
		r.skipSpace()
		if r.pos < len(r.line) {
			start := r.pos
			for r.pos < len(r.line) && !isSpace(r.line[r.pos]) {
				r.pos++
			}
			return r.line[start:r.pos], nil
		}
		ok, err := r.advance()
		if err != nil {
			return "", err
		}
		if !ok {
			return "", r.unexpectedEOF(what)
		}
	}
}

// Int reads the next token as a base-10 integer.
func (r *Reader) Int(what string) (int, error) {
	tok, err := r.Token(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, r.errorf("expected %s (integer), got %q", what, tok)
	}
	return v, nil
}

// Count reads a non-negative integer.
func (r *Reader) Count(what string) (int, error) {
	v, err := r.Int(what)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, r.errorf("%s must not be negative, got %d", what, v)
	}
	return v, nil
}

// Line discards the rest of the current line and returns the next non-blank
// line with surrounding whitespace trimmed.
func (r *Reader) Line(what string) (string, error) {
	for {
		ok, err := r.advance()
		if err != nil {
			return "", err
		}
		if !ok {
			return "", r.unexpectedEOF(what)
		}
		if s := strings.TrimSpace(r.line); s != "" {
			r.pos = len(r.line)
			return s, nil
		}
	}
}

func (r *Reader) skipSpace() {
	for r.pos < len(r.line) && isSpace(r.line[r.pos]) {
		r.pos++
	}
}

func isSpace(b byte) bool {
	return b < 0x80 && unicode.IsSpace(rune(b))
}

func (r *Reader) unexpectedEOF(what string) error {
	return r.errorf("unexpected end of input, expected %s", what)
}

func (r *Reader) errorf(format string, args ...any) error {
	line := r.lineNo
	if line == 0 {
		line = 1
	}
	return errs.AtLine(errs.New(errs.ErrCodeMalformedInput, format, args...), line)
}
