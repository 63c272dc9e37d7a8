// Package sample reads numeric samples from text.
package sample

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrEmpty is returned when the input holds no values.
var ErrEmpty = errors.New("sample: no values in input")

// Read parses every number in r. Values are separated by whitespace, commas
// or semicolons, and lines whose first non-blank character is '#' are
// skipped. A token that does not parse as a float is reported with its
// 1-based line number.
func Read(r io.Reader) ([]float64, error) {
	var values []float64

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		for _, tok := range strings.FieldsFunc(text, isSeparator) {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("sample: line %d: invalid number %q", line, tok)
			}
			values = append(values, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("sample: read: %w", err)
	}

	if len(values) == 0 {
		return nil, ErrEmpty
	}
	return values, nil
}

func isSeparator(r rune) bool {
	switch r {
	case ',', ';', ' ', '\t', '\r', '\v', '\f':
		return true
	}
	return false
}
