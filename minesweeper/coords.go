package minesweeper

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Row and column labels:
// - Letters: A-Y, one per row or column, A is index 0
// - Numbers: 1-25, 1 is index 0
// - Example: "C" and "3" both address index 2
//
// MaxSide is the largest width or height that still has a label.
const MaxSide = 25

// ErrInvalidLabel is returned for a row or column label that cannot be parsed.
var ErrInvalidLabel = errors.New("invalid label")

// Label returns the letter printed beside row or column i.
func Label(i int) string {
	if i < 0 || i >= MaxSide {
		return ""
	}
	return string(rune('A' + i))
}

// ParseLabel converts a letter or 1-based number to an index below limit.
func ParseLabel(label string, limit int) (int, error) {
	label = strings.TrimSpace(strings.ToUpper(label))
	if label == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidLabel)
	}

	var i int
	if n, err := strconv.Atoi(label); err == nil {
		i = n - 1
	} else if len(label) == 1 && label[0] >= 'A' && label[0] <= 'Z' {
		i = int(label[0] - 'A')
	} else {
		return 0, fmt.Errorf("%w: %s", ErrInvalidLabel, label)
	}

	if i < 0 || i >= limit {
		return 0, fmt.Errorf("%w: %s out of bounds", ErrInvalidLabel, label)
	}
	return i, nil
}
