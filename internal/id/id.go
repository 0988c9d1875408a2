// Package id formats and parses posting IDs. A posting ID looks like
// "2026-09-001": year, month, then a sequence number unique within that
// month's ledger file.
package id

import (
	"fmt"
	"strconv"
	"strings"
)

// Format returns a posting ID like "2026-09-001".
func Format(year, month, seq int) string {
	return fmt.Sprintf("%04d-%02d-%03d", year, month, seq)
}

// Parse splits a posting ID into year, month and sequence.
func Parse(id string) (year, month, seq int, err error) {
	parts := strings.SplitN(id, "-", 3)
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid posting ID format: %q", id)
	}

	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid year in posting ID %q: %w", id, err)
	}

	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid month in posting ID %q: %w", id, err)
	}

	seq, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid sequence in posting ID %q: %w", id, err)
	}

	return year, month, seq, nil
}
