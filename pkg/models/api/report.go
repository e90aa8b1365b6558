package api

import "time"

type TimePeriod struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Duration int       `json:"duration_days"`
}

type Report struct {
	Title   string      `json:"title"`
	Kind    string      `json:"kind"`
	Period  *TimePeriod `json:"period,omitempty"`
	Skipped int         `json:"skipped"`
	Columns []string    `json:"columns"`
	Rows    [][]any     `json:"rows"`
}

type ReportKinds struct {
	Kinds []string `json:"kinds"`
}

type Error struct {
	Error string `json:"error"`
}
