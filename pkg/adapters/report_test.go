package adapters

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/de-tools/timelog-reporter/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapReportDomainToApi(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	got := MapReportDomainToApi(&domain.Report{
		Title:  "Time per issue",
		Kind:   domain.ReportIssueWindow,
		Period: domain.NewTimePeriod(start, end),
		Table: domain.Table{
			Columns: []string{"issue", "hours"},
			Rows: []domain.Row{
				{"issue": "a", "hours": 1.0},
				{"hours": math.NaN()},
			},
		},
		Skipped: 1,
	})

	assert.Equal(t, "issues", got.Kind)
	require.NotNil(t, got.Period)
	assert.Equal(t, 2, got.Period.Duration)
	assert.Equal(t, [][]any{{"a", 1.0}, {nil, nil}}, got.Rows)
}

func TestMapReportDomainToApi_InfiniteTotalsEncodeAsNull(t *testing.T) {
	got := MapReportDomainToApi(&domain.Report{
		Kind: domain.ReportAccountTime,
		Table: domain.Table{
			Columns: []string{"account_label", "hours"},
			Rows: []domain.Row{
				{"account_label": "ACME", "hours": math.MaxFloat64},
				{"account_label": domain.TotalLabel, "hours": math.Inf(1)},
				{"account_label": "refund", "hours": float32(math.Inf(-1))},
			},
		},
	})

	assert.Equal(t, [][]any{
		{"ACME", math.MaxFloat64},
		{domain.TotalLabel, nil},
		{"refund", nil},
	}, got.Rows)

	_, err := json.Marshal(got)
	assert.NoError(t, err)
}
