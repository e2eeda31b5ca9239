// Package lex splits calculator input into whitespace-separated words.
// There is no quoting, escaping or comment syntax: a token is any
// maximal run of non-space characters.
package lex

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Fields returns the tokens in text. Empty or all-space
// text yields no tokens.
func Fields(text string) []string {
	return strings.Fields(text)
}

// Iter reads lines from r and calls fn with each token found in them,
// in order. If a line exceeds the given maximum size, it will be
// truncated at the last space before the limit and the rest of the
// line discarded, so no token is ever cut short. If fn returns a non-nil
// error, reading ends and the error is returned from Iter. When EOF is
// encountered, Iter returns nil.
func Iter(r io.Reader, maxSize int, fn func(tok string) error) error {
	b := bufio.NewReader(r)
	for {
		line, isPrefix, err := b.ReadLine()
		if err != nil {
			return eofNilError(err)
		}
		if !isPrefix {
			if err := fields(clip(line, maxSize, false), fn); err != nil {
				return err
			}
			continue
		}
		buf := make([]byte, len(line), len(line)*2)
		copy(buf, line)
		for isPrefix {
			line, isPrefix, err = b.ReadLine()
			if err != nil {
				if err := fields(clip(buf, maxSize, false), fn); err != nil {
					return err
				}
				return eofNilError(err)
			}
			buf = append(buf, line...)
			if len(buf) >= maxSize {
				break
			}
		}
		if err := fields(clip(buf, maxSize, isPrefix), fn); err != nil {
			return err
		}
		// Discard any of the line that exceeds the maximum size
		for isPrefix {
			_, isPrefix, err = b.ReadLine()
			if err != nil {
				return eofNilError(err)
			}
		}
	}
}

// Read returns all the tokens read from r.
func Read(r io.Reader, maxSize int) ([]string, error) {
	var toks []string
	err := Iter(r, maxSize, func(tok string) error {
		toks = append(toks, tok)
		return nil
	})
	return toks, err
}

func fields(line []byte, fn func(tok string) error) error {
	for _, tok := range strings.Fields(string(line)) {
		if err := fn(tok); err != nil {
			return err
		}
	}
	return nil
}

// clip returns line truncated to at most size bytes without
// splitting a token. The more flag reports that the line continues
// beyond the bytes in line.
func clip(line []byte, size int, more bool) []byte {
	if len(line) <= size && !more {
		return line
	}
	p := truncate(line, size)
	if len(p) < len(line) && isSpace(line[len(p)]) {
		return p
	}
	return p[0 : bytes.LastIndexFunc(p, unicode.IsSpace)+1]
}

func isSpace(b byte) bool {
	return b < utf8.RuneSelf && unicode.IsSpace(rune(b))
}

// truncate returns s truncated to the given size,
// avoiding splitting a multibyte UTF-8 sequence.
func truncate(p []byte, size int) []byte {
	if len(p) <= size {
		return p
	}
	p = p[0:size]
	start := size - 1
	r := rune(p[start])
	if r < utf8.RuneSelf {
		return p
	}
	// Find the start of the last character and check
	// whether it's valid.
	lim := size - utf8.UTFMax
	if lim < 0 {
		lim = 0
	}
	for ; start >= lim; start-- {
		if utf8.RuneStart(p[start]) {
			break
		}
	}
	// If we can't find the start of the last character,
	// return the whole lot.
	if start < 0 {
		return p
	}
	_, rsize := utf8.DecodeRune(p[start:size])
	// The last rune was valid, so include it.
	if rsize > 1 {
		return p
	}
	// The last rune was invalid, so lose it.
	return p[0:start]
}

func eofNilError(err error) error {
	if err == io.EOF {
		return nil
	}
	return err
}
