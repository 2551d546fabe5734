package lifecycle

import (
	"fmt"
	"strings"
	"time"
)

// DateRange is the delivery window of a request. It is stored as a
// bracketed two-timestamp interval string, e.g.
// "[2024-01-01T00:00:00Z,2024-01-04T00:00:00Z]".
type DateRange struct {
	From time.Time
	To   time.Time
}

func (r DateRange) Validate() error {
	if r.From.IsZero() || r.To.IsZero() {
		return validationErr("delivery window bounds must be set")
	}
	if r.To.Before(r.From) {
		return validationErr("delivery window end precedes start")
	}
	return nil
}

func (r DateRange) String() string {
	return "[" + r.From.UTC().Format(time.RFC3339) + "," + r.To.UTC().Format(time.RFC3339) + "]"
}

func ParseDateRange(s string) (DateRange, error) {
	trimmed := strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
	bounds := strings.Split(trimmed, ",")
	if len(bounds) != 2 {
		return DateRange{}, fmt.Errorf("malformed date range %q", s)
	}

	from, err := time.Parse(time.RFC3339, bounds[0])
	if err != nil {
		return DateRange{}, fmt.Errorf("malformed date range start: %w", err)
	}
	to, err := time.Parse(time.RFC3339, bounds[1])
	if err != nil {
		return DateRange{}, fmt.Errorf("malformed date range end: %w", err)
	}

	return DateRange{From: from, To: to}, nil
}

// DisplayBounds extracts the two YYYY-MM-DD display dates from a
// serialized range by slicing the first 10 characters of each bound.
func DisplayBounds(serialized string) (string, string, error) {
	trimmed := strings.TrimSuffix(strings.TrimPrefix(serialized, "["), "]")
	bounds := strings.Split(trimmed, ",")
	if len(bounds) != 2 || len(bounds[0]) < 10 || len(bounds[1]) < 10 {
		return "", "", fmt.Errorf("malformed date range %q", serialized)
	}
	return bounds[0][:10], bounds[1][:10], nil
}
