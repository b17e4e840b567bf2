package solution

import (
	"strings"
	"testing"
)

func TestLineScannerSkipsBlanksAndComments(t *testing.T) {
	input := "\n# comment\nfirst\n\n  # indented comment\n  second  \n"
	sc, err := newLineScanner(strings.NewReader(input))
	if err != nil {
		t.Fatalf("newLineScanner returned error: %v", err)
	}

	line, ok := sc.current()
	if !ok || line != "first" {
		t.Fatalf("current() = %q, %v, expected %q, true", line, ok, "first")
	}
	if sc.num != 3 {
		t.Fatalf("line number = %d, expected 3", sc.num)
	}

	if err := sc.advance(); err != nil {
		t.Fatalf("advance returned error: %v", err)
	}
	line, ok = sc.current()
	if !ok || line != "second" {
		t.Fatalf("current() = %q, %v, expected %q, true", line, ok, "second")
	}
	if sc.num != 6 {
		t.Fatalf("line number = %d, expected 6", sc.num)
	}

	if err := sc.advance(); err != nil {
		t.Fatalf("advance returned error: %v", err)
	}
	if _, ok = sc.current(); ok {
		t.Fatal("expected end of stream after last line")
	}
}

func TestLineScannerStripsBOM(t *testing.T) {
	sc, err := newLineScanner(strings.NewReader("\uFEFFheader line\n"))
	if err != nil {
		t.Fatalf("newLineScanner returned error: %v", err)
	}
	line, ok := sc.current()
	if !ok || line != "header line" {
		t.Fatalf("current() = %q, %v, expected %q, true", line, ok, "header line")
	}
}

func TestLineScannerEmptyInput(t *testing.T) {
	sc, err := newLineScanner(strings.NewReader("# only a comment\n\n"))
	if err != nil {
		t.Fatalf("newLineScanner returned error: %v", err)
	}
	if line, ok := sc.current(); ok {
		t.Fatalf("current() = %q, expected end of stream", line)
	}
}
