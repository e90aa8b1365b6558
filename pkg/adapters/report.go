package adapters

import (
	"math"

	"github.com/de-tools/timelog-reporter/pkg/models/api"
	"github.com/de-tools/timelog-reporter/pkg/models/domain"
)

func MapReportDomainToApi(report *domain.Report) api.Report {
	out := api.Report{
		Title:   report.Title,
		Kind:    string(report.Kind),
		Skipped: report.Skipped,
		Columns: append([]string{}, report.Table.Columns...),
		Rows:    make([][]any, 0, len(report.Table.Rows)),
	}

	if report.Period != nil {
		out.Period = &api.TimePeriod{
			Start:    report.Period.Start,
			End:      report.Period.End,
			Duration: report.Period.Duration,
		}
	}

	for _, row := range report.Table.Rows {
		values := make([]any, 0, len(report.Table.Columns))
		for _, column := range report.Table.Columns {
			values = append(values, jsonValue(row[column]))
		}
		out.Rows = append(out.Rows, values)
	}
	return out
}

// jsonValue maps nulls and non-finite floats, which JSON cannot carry, to nil.
func jsonValue(v any) any {
	if domain.IsNull(v) {
		return nil
	}
	switch f := v.(type) {
	case float64:
		if math.IsInf(f, 0) {
			return nil
		}
	case float32:
		if math.IsInf(float64(f), 0) {
			return nil
		}
	}
	return v
}

func MapReportKindsDomainToApi(kinds []domain.ReportKind) api.ReportKinds {
	out := api.ReportKinds{Kinds: make([]string, 0, len(kinds))}
	for _, k := range kinds {
		out.Kinds = append(out.Kinds, string(k))
	}
	return out
}
