package aggregate

import (
	"fmt"
	"time"

	"github.com/de-tools/timelog-reporter/pkg/models/domain"
)

type groupKey struct {
	null bool
	repr string
}

func keyOf(v any) groupKey {
	if domain.IsNull(v) {
		return groupKey{null: true}
	}
	if t, ok := v.(time.Time); ok {
		return groupKey{repr: "time:" + t.Format(time.RFC3339Nano)}
	}
	return groupKey{repr: fmt.Sprintf("%T:%v", v, v)}
}

// Reduce partitions t by the key column and folds every planned column per
// group. Groups come out in order of first appearance; all null keys share a
// single group.
func Reduce(t domain.Table, key string, plan domain.Plan) (domain.Table, error) {
	if !t.HasColumn(key) {
		return domain.Table{}, &domain.SchemaError{Op: "reduce", Column: key}
	}
	for _, cp := range plan {
		if !t.HasColumn(cp.Column) {
			return domain.Table{}, &domain.SchemaError{Op: "reduce", Column: cp.Column}
		}
	}

	var order []groupKey
	groups := make(map[groupKey][]domain.Row)
	for _, row := range t.Rows {
		k := keyOf(row[key])
		if _, exists := groups[k]; !exists {
			order = append(order, k)
		}
		groups[k] = append(groups[k], row)
	}

	out := domain.NewTable(append([]string{key}, plan.Columns()...)...)
	for _, k := range order {
		rows := groups[k]

		reduced := domain.Row{key: rows[0][key]}
		if k.null {
			reduced[key] = nil
		}

		for _, cp := range plan {
			switch cp.Verb {
			case domain.VerbSum:
				reduced[cp.Column] = sumColumn(rows, cp.Column)
			case domain.VerbFirst:
				reduced[cp.Column] = rows[0][cp.Column]
			default:
				return domain.Table{}, fmt.Errorf("unknown aggregation verb %q for column %q", cp.Verb, cp.Column)
			}
		}
		out.Rows = append(out.Rows, reduced)
	}

	return out, nil
}

// GroupBy plans t against key and reduces it.
func GroupBy(t domain.Table, key string) (domain.Table, error) {
	plan, err := NewPlan(t, key)
	if err != nil {
		return domain.Table{}, err
	}
	return Reduce(t, key, plan)
}
