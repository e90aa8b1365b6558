package export

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/de-tools/timelog-reporter/pkg/models/domain"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Reporter prints reports to the console as bordered tables, without a row index
type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(report *domain.Report) error {
	funcMap := template.FuncMap{
		"table": renderTable,
	}

	tmpl := `
{{.Title}}
{{- with .Period}}
Active Period: {{.Start.Format "2006-01-02"}} to {{.End.Format "2006-01-02"}} ({{.Duration}} days)
{{- end}}
{{- if .Skipped}}
Skipped rows with unreadable dates: {{.Skipped}}
{{- end}}

{{table .Table}}
`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}

func renderTable(t domain.Table) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(t.Columns...).
		Rows(formatRows(t)...).
		String()
}
