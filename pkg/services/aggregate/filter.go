package aggregate

import (
	"time"

	"github.com/de-tools/timelog-reporter/pkg/models/domain"
)

var defaultParser = NewDateParser()

// FilterNull keeps the rows whose column is null, preserving order.
func FilterNull(t domain.Table, column string) (domain.Table, error) {
	if !t.HasColumn(column) {
		return domain.Table{}, &domain.SchemaError{Op: "filter null", Column: column}
	}

	rows := make([]domain.Row, 0)
	for _, row := range t.Rows {
		if domain.IsNull(row[column]) {
			rows = append(rows, row)
		}
	}
	return t.WithRows(rows), nil
}

// FilterDateRange keeps rows with start <= column <= end using the default layouts.
func FilterDateRange(t domain.Table, column string, start, end time.Time) (domain.Table, []*domain.ParseError, error) {
	return defaultParser.FilterDateRange(t, column, start, end)
}

// FilterDateRange keeps rows whose date falls inside the closed interval
// [start, end]. Rows with unparsable dates are left out and returned as
// ParseErrors; they never fail the filter.
func (p *DateParser) FilterDateRange(
	t domain.Table,
	column string,
	start, end time.Time,
) (domain.Table, []*domain.ParseError, error) {
	if !t.HasColumn(column) {
		return domain.Table{}, nil, &domain.SchemaError{Op: "filter date range", Column: column}
	}

	start, end = Naive(start), Naive(end)

	var skipped []*domain.ParseError
	rows := make([]domain.Row, 0)
	for i, row := range t.Rows {
		v, err := p.Parse(row[column])
		if err != nil {
			skipped = append(skipped, &domain.ParseError{Column: column, Row: i, Value: row[column], Err: err})
			continue
		}
		if v.Before(start) || v.After(end) {
			continue
		}
		rows = append(rows, row)
	}
	return t.WithRows(rows), skipped, nil
}
