package aggregate

import (
	"math"

	"github.com/de-tools/timelog-reporter/pkg/models/domain"
	"github.com/shopspring/decimal"
)

// Sum adds the numeric values, treating nulls and non-numbers as 0.
func Sum(values []any) float64 {
	total := decimal.Zero
	var overflow float64

	for _, v := range values {
		f, ok := domain.AsFloat(v)
		if !ok {
			continue
		}
		if math.IsInf(f, 0) {
			overflow += f
			continue
		}
		total = total.Add(decimal.NewFromFloat(f))
	}

	if overflow != 0 || math.IsNaN(overflow) {
		return overflow
	}
	return total.InexactFloat64()
}

func sumColumn(rows []domain.Row, column string) float64 {
	values := make([]any, 0, len(rows))
	for _, row := range rows {
		values = append(values, row[column])
	}
	return Sum(values)
}
