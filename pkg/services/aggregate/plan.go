package aggregate

import "github.com/de-tools/timelog-reporter/pkg/models/domain"

// NewPlan classifies every column of t except key.
func NewPlan(t domain.Table, key string) (domain.Plan, error) {
	if !t.HasColumn(key) {
		return nil, &domain.SchemaError{Op: "plan", Column: key}
	}

	plan := make(domain.Plan, 0, len(t.Columns))
	for _, column := range t.Columns {
		if column == key {
			continue
		}
		values, err := t.Column(column)
		if err != nil {
			return nil, err
		}
		plan = append(plan, domain.ColumnPlan{Column: column, Verb: Classify(values)})
	}
	return plan, nil
}
