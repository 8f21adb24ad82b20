package utils

import (
	"strconv"
	"strings"
)

// ParseIDList extracts numeric ids from a comma-separated string such as
// "1, 5, 8". Non-numeric tokens are dropped rather than failing the whole
// input, so hand-typed id lists degrade gracefully.
func ParseIDList(raw string) []int64 {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		token := strings.TrimSpace(part)
		if token == "" {
			continue
		}
		id, err := strconv.ParseInt(token, 10, 64)
		if err != nil || id <= 0 {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
