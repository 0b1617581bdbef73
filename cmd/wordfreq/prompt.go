package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// readInteractive collects multi-line pasted text terminated by a blank
// line, joined into a single string.
func readInteractive(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprintln(out, "Paste your text below and press Enter twice when you're done:")

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(strings.Join(lines, " ")), nil
}
