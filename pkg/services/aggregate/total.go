package aggregate

import "github.com/de-tools/timelog-reporter/pkg/models/domain"

// AppendTotal adds a "Total Result" row holding the sum of the value column.
// Other cells of that row stay null.
func AppendTotal(t domain.Table, key, value string) (domain.Table, error) {
	values, err := t.Column(value)
	if err != nil {
		return domain.Table{}, &domain.SchemaError{Op: "total", Column: value}
	}
	if !t.HasColumn(key) {
		return domain.Table{}, &domain.SchemaError{Op: "total", Column: key}
	}

	rows := make([]domain.Row, 0, len(t.Rows)+1)
	rows = append(rows, t.Rows...)
	rows = append(rows, domain.Row{
		key:   domain.TotalLabel,
		value: Sum(values),
	})
	return t.WithRows(rows), nil
}
