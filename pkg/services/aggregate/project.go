package aggregate

import (
	"github.com/de-tools/timelog-reporter/pkg/models/domain"
	"github.com/samber/lo"
)

// Project keeps only the named columns, in the given order.
func Project(t domain.Table, columns ...string) (domain.Table, error) {
	for _, column := range columns {
		if !t.HasColumn(column) {
			return domain.Table{}, &domain.SchemaError{Op: "project", Column: column}
		}
	}

	rows := make([]domain.Row, 0, len(t.Rows))
	for _, row := range t.Rows {
		rows = append(rows, lo.PickByKeys(row, columns))
	}
	return domain.Table{Columns: lo.Uniq(columns), Rows: rows}, nil
}

// Drop removes columns. Every required column must exist; optional ones are
// skipped when absent.
func Drop(t domain.Table, required []string, optional ...string) (domain.Table, error) {
	for _, column := range required {
		if !t.HasColumn(column) {
			return domain.Table{}, &domain.SchemaError{Op: "drop", Column: column}
		}
	}

	remaining := lo.Without(t.Columns, append(append([]string{}, required...), optional...)...)
	return Project(t, remaining...)
}
