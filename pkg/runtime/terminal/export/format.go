package export

import (
	"fmt"
	"strconv"
	"time"

	"github.com/de-tools/timelog-reporter/pkg/models/domain"
)

const timeLayout = "2006-01-02 15:04:05"

// FormatValue renders a cell for text output. Nulls become empty strings.
func FormatValue(v any) string {
	if domain.IsNull(v) {
		return ""
	}

	switch val := v.(type) {
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case time.Time:
		return val.Format(timeLayout)
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}

func formatRows(t domain.Table) [][]string {
	records := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		record := make([]string, 0, len(t.Columns))
		for _, column := range t.Columns {
			record = append(record, FormatValue(row[column]))
		}
		records = append(records, record)
	}
	return records
}
