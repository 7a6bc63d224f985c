// Package prompt provides a line and token oriented text source for
// interactive console input.
package prompt

import (
	"bufio"
	"io"
	"strings"
	"unicode"
)

// Source is the input side of an interactive session.
type Source interface {
	// ReadToken skips leading whitespace (including newlines) and returns the
	// next whitespace-delimited token. The delimiter is left unread.
	ReadToken() (string, error)
	// ReadLine returns the rest of the current line without the line ending.
	ReadLine() (string, error)
	// SkipSpace consumes whitespace, including newlines, up to the next
	// non-space character.
	SkipSpace() error
	// DiscardLine consumes input up to and including the next newline.
	DiscardLine() error
}

// Compile-time check that Reader implements Source.
var _ Source = (*Reader)(nil)

// Reader is a Source backed by a buffered io.Reader.
type Reader struct {
	r *bufio.Reader
}

// NewReader wraps r as a Source.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// FromString returns a Source reading the given text. Useful for scripted
// sessions and tests.
func FromString(s string) *Reader {
	return NewReader(strings.NewReader(s))
}

// ReadToken implements Source.
func (p *Reader) ReadToken() (string, error) {
	if err := p.SkipSpace(); err != nil {
		return "", err
	}

	var b strings.Builder
	for {
		r, _, err := p.r.ReadRune()
		if err != nil {
			if err == io.EOF && b.Len() > 0 {
				return b.String(), nil
			}
			return "", err
		}
		if unicode.IsSpace(r) {
			_ = p.r.UnreadRune()
			return b.String(), nil
		}
		b.WriteRune(r)
	}
}

// ReadLine implements Source.
func (p *Reader) ReadLine() (string, error) {
	line, err := p.r.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// SkipSpace implements Source.
func (p *Reader) SkipSpace() error {
	for {
		r, _, err := p.r.ReadRune()
		if err != nil {
			return err
		}
		if !unicode.IsSpace(r) {
			return p.r.UnreadRune()
		}
	}
}

// DiscardLine implements Source.
func (p *Reader) DiscardLine() error {
	_, err := p.r.ReadString('\n')
	if err == io.EOF {
		return nil
	}
	return err
}
