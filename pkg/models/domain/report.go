package domain

import "time"

// Fixed column names of a GitLab timelog export
const (
	ColumnAccountLabel = "account_label"
	ColumnTimeSpent    = "time_spent (hours)"
	ColumnUser         = "user"
	ColumnDateOfWork   = "date_of_work"
	ColumnTimelogNote  = "timelog_note"
)

// TotalLabel marks the synthetic total row in the key column
const TotalLabel = "Total Result"

type ReportKind string

const (
	ReportEmptyAccount ReportKind = "empty-account"
	ReportAccountTime  ReportKind = "account-time"
	ReportIssueWindow  ReportKind = "issues"
)

// Report represents a complete summary report
type Report struct {
	Title   string
	Kind    ReportKind
	Period  *TimePeriod
	Table   Table
	Skipped int
}

// TimePeriod represents a time range for the report
type TimePeriod struct {
	Start    time.Time
	End      time.Time
	Duration int // in days
}

func NewTimePeriod(start, end time.Time) *TimePeriod {
	return &TimePeriod{
		Start:    start,
		End:      end,
		Duration: int(end.Sub(start).Hours()/24) + 1,
	}
}

// ReportParams carries the inputs a report shape may need
type ReportParams struct {
	Start     time.Time
	End       time.Time
	KeepNotes bool
}
