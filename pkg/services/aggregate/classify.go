package aggregate

import "github.com/de-tools/timelog-reporter/pkg/models/domain"

// Classify picks the verb for a column: VerbSum when every non-null value is
// numeric, VerbFirst otherwise. A column without non-null values is VerbFirst.
func Classify(values []any) domain.Verb {
	seen := false
	for _, v := range values {
		if domain.IsNull(v) {
			continue
		}
		if _, ok := domain.AsFloat(v); !ok {
			return domain.VerbFirst
		}
		seen = true
	}

	if !seen {
		return domain.VerbFirst
	}
	return domain.VerbSum
}
