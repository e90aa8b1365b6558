package domain

type Verb string

const (
	VerbSum   Verb = "sum"
	VerbFirst Verb = "first"
)

type ColumnPlan struct {
	Column string
	Verb   Verb
}

// Plan assigns an aggregation verb to every non-key column, in column order
type Plan []ColumnPlan

func (p Plan) Verb(column string) (Verb, bool) {
	for _, cp := range p {
		if cp.Column == column {
			return cp.Verb, true
		}
	}
	return "", false
}

func (p Plan) Columns() []string {
	columns := make([]string, 0, len(p))
	for _, cp := range p {
		columns = append(columns, cp.Column)
	}
	return columns
}
