package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestReadInteractiveStopsAtBlankLine(t *testing.T) {
	in := strings.NewReader("The quick fox\njumps over\n\nthis is ignored\n")
	var out bytes.Buffer

	got, err := readInteractive(in, &out)
	if err != nil {
		t.Fatalf("readInteractive: %v", err)
	}
	if got != "The quick fox jumps over" {
		t.Fatalf("unexpected text: %q", got)
	}
	if !strings.Contains(out.String(), "Paste your text") {
		t.Fatalf("expected prompt message, got %q", out.String())
	}
}

func TestReadInteractiveEmptyInput(t *testing.T) {
	got, err := readInteractive(strings.NewReader("\n"), &bytes.Buffer{})
	if err != nil {
		t.Fatalf("readInteractive: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty text, got %q", got)
	}
}
