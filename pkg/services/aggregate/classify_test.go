package aggregate

import (
	"testing"
	"time"

	"github.com/de-tools/timelog-reporter/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		values []any
		want   domain.Verb
	}{
		{name: "integers", values: []any{int64(1), int64(2), int64(3)}, want: domain.VerbSum},
		{name: "floats", values: []any{1.5, 2.25}, want: domain.VerbSum},
		{name: "strings", values: []any{"x", "y"}, want: domain.VerbFirst},
		{name: "empty", values: []any{}, want: domain.VerbFirst},
		{name: "all null", values: []any{nil, nil}, want: domain.VerbFirst},
		{name: "numbers with null", values: []any{int64(1), nil, int64(3)}, want: domain.VerbSum},
		{name: "mixed number and text", values: []any{1.0, "2"}, want: domain.VerbFirst},
		{name: "times", values: []any{time.Now()}, want: domain.VerbFirst},
		{name: "booleans", values: []any{true, false}, want: domain.VerbFirst},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.values))
		})
	}
}

func TestNewPlan(t *testing.T) {
	table := domain.Table{
		Columns: []string{"issue", "user", "hours", "note"},
		Rows: []domain.Row{
			{"issue": "#1", "user": "a", "hours": 1.0, "note": nil},
		},
	}

	plan, err := NewPlan(table, "user")
	assert.NoError(t, err)
	assert.Equal(t, domain.Plan{
		{Column: "issue", Verb: domain.VerbFirst},
		{Column: "hours", Verb: domain.VerbSum},
		{Column: "note", Verb: domain.VerbFirst},
	}, plan)

	_, err = NewPlan(table, "missing")
	var schemaErr *domain.SchemaError
	assert.ErrorAs(t, err, &schemaErr)
}
