package aggregate

import (
	"testing"

	"github.com/de-tools/timelog-reporter/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduce_StableGroupsAndVerbs(t *testing.T) {
	table := domain.Table{
		Columns: []string{"user", "issue", "hours"},
		Rows: []domain.Row{
			{"user": "b", "issue": "#1", "hours": 1.0},
			{"user": "a", "issue": "#2", "hours": 2.0},
			{"user": "b", "issue": "#3", "hours": nil},
			{"user": "b", "issue": "#4", "hours": 0.5},
		},
	}
	plan := domain.Plan{
		{Column: "issue", Verb: domain.VerbFirst},
		{Column: "hours", Verb: domain.VerbSum},
	}

	got, err := Reduce(table, "user", plan)
	require.NoError(t, err)
	assert.Equal(t, []string{"user", "issue", "hours"}, got.Columns)
	assert.Equal(t, []domain.Row{
		{"user": "b", "issue": "#1", "hours": 1.5},
		{"user": "a", "issue": "#2", "hours": 2.0},
	}, got.Rows)
}

func TestReduce_NullKeysFormOneGroup(t *testing.T) {
	table := domain.Table{
		Columns: []string{"user", "label"},
		Rows: []domain.Row{
			{"user": nil, "label": "A"},
			{"user": nil, "label": "B"},
		},
	}

	got, err := GroupBy(table, "user")
	require.NoError(t, err)
	require.Len(t, got.Rows, 1)
	assert.Nil(t, got.Rows[0]["user"])
	assert.Equal(t, "A", got.Rows[0]["label"])
}

func TestReduce_OneRowPerDistinctKey(t *testing.T) {
	table := domain.Table{
		Columns: []string{"k", "v"},
		Rows: []domain.Row{
			{"k": "x", "v": int64(1)},
			{"k": nil, "v": int64(1)},
			{"k": "y", "v": int64(1)},
			{"k": "x", "v": int64(1)},
			{"v": int64(1)},
			{"k": int64(1), "v": int64(1)},
		},
	}

	got, err := GroupBy(table, "k")
	require.NoError(t, err)
	assert.Len(t, got.Rows, 4)
}

func TestReduce_EmptySumIsZero(t *testing.T) {
	table := domain.Table{
		Columns: []string{"k", "v"},
		Rows:    []domain.Row{{"k": "x", "v": nil}},
	}

	got, err := Reduce(table, "k", domain.Plan{{Column: "v", Verb: domain.VerbSum}})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.Rows[0]["v"])
}

func TestReduce_SchemaErrors(t *testing.T) {
	table := domain.NewTable("k", "v")
	var schemaErr *domain.SchemaError

	_, err := Reduce(table, "missing", nil)
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "missing", schemaErr.Column)

	_, err = Reduce(table, "k", domain.Plan{{Column: "other", Verb: domain.VerbSum}})
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "other", schemaErr.Column)
}
