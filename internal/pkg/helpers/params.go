package helpers

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseID parses a numeric path parameter into a positive int64.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", raw)
	}
	if id <= 0 {
		return 0, fmt.Errorf("%d is not a positive id", id)
	}
	return id, nil
}
