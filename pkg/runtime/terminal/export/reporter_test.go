package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/de-tools/timelog-reporter/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_Handle(t *testing.T) {
	var buf bytes.Buffer

	err := NewReporter(&buf).Handle(&domain.Report{
		Title: "Time without account label",
		Table: reportTable(),
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Time without account label")
	assert.Contains(t, out, "time_spent (hours)")
	assert.Contains(t, out, "Total Result")
	assert.Contains(t, out, "3.5")
	assert.NotContains(t, out, "Active Period")
}

func TestReporter_Handle_WithPeriod(t *testing.T) {
	var buf bytes.Buffer
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	err := NewReporter(&buf).Handle(&domain.Report{
		Title:   "Time per issue",
		Period:  domain.NewTimePeriod(start, end),
		Table:   domain.Table{Columns: []string{"issue"}, Rows: []domain.Row{{"issue": "#1"}}},
		Skipped: 2,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Active Period: 2024-03-01 to 2024-03-31 (31 days)")
	assert.Contains(t, out, "Skipped rows with unreadable dates: 2")
	assert.True(t, strings.Contains(out, "#1"))
}
