package aggregate

import (
	"fmt"
	"strings"
	"time"
)

// DefaultDateLayouts covers the timestamp shapes seen in GitLab timelog exports.
var DefaultDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05Z07",
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05 MST",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// DateParser turns cell values into timezone-naive times
type DateParser struct {
	layouts []string
}

func NewDateParser(layouts ...string) *DateParser {
	if len(layouts) == 0 {
		layouts = DefaultDateLayouts
	}
	return &DateParser{layouts: append([]string{}, layouts...)}
}

// Parse accepts time.Time values and strings in one of the parser's layouts.
func (p *DateParser) Parse(v any) (time.Time, error) {
	t, _, err := p.parse(v)
	return t, err
}

// ParseEnd parses the inclusive upper bound of a window. A value without a
// clock part, such as "2024-03-31", covers that whole day.
func (p *DateParser) ParseEnd(v any) (time.Time, error) {
	t, layout, err := p.parse(v)
	if err != nil {
		return time.Time{}, err
	}
	if layout != "" && !hasClock(layout) {
		return t.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
	}
	return t, nil
}

func (p *DateParser) parse(v any) (time.Time, string, error) {
	switch val := v.(type) {
	case time.Time:
		return Naive(val), "", nil
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return time.Time{}, "", fmt.Errorf("empty date")
		}
		for _, layout := range p.layouts {
			t, err := time.Parse(layout, s)
			if err == nil {
				return Naive(t), layout, nil
			}
		}
		return time.Time{}, "", fmt.Errorf("no layout matches %q", s)
	case nil:
		return time.Time{}, "", fmt.Errorf("missing date")
	default:
		return time.Time{}, "", fmt.Errorf("unsupported date type %T", v)
	}
}

// hasClock reports whether a layout carries an hour field ("15", "3" or "03").
func hasClock(layout string) bool {
	return strings.Contains(layout, "15") || strings.Contains(layout, "3")
}

// Naive drops the zone, keeping the wall-clock reading.
func Naive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
