package solution

import (
	"bufio"
	"io"
	"strings"
)

// lineScanner walks a character stream one logical line at a time, skipping
// blank lines and full-line comments while counting every physical line for
// error reporting. Construction primes the first logical line; no line is
// ever re-read once advanced past.
type lineScanner struct {
	src  *bufio.Scanner
	line string // Current logical line, trimmed
	num  int    // 1-based physical line number of the current line
	eof  bool
}

func newLineScanner(r io.Reader) (*lineScanner, error) {
	s := &lineScanner{src: bufio.NewScanner(r)}
	if err := s.advance(); err != nil {
		return nil, err
	}
	return s, nil
}

// advance discards the current line and loads the next non-blank, non-comment
// line, incrementing the line counter for every physical line consumed.
func (s *lineScanner) advance() error {
	for s.src.Scan() {
		text := s.src.Text()
		if s.num == 0 {
			// Solution files are frequently written with a UTF-8 BOM.
			text = strings.TrimPrefix(text, "\uFEFF")
		}
		s.num++
		line := strings.TrimSpace(text)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s.line = line
		return nil
	}
	if err := s.src.Err(); err != nil {
		return err
	}
	s.eof = true
	s.line = ""
	return nil
}

// current returns the most recently loaded logical line. The second result is
// false once the stream is exhausted.
func (s *lineScanner) current() (string, bool) {
	return s.line, !s.eof
}
