package terminal

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/timelog-reporter/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const timelogCSV = `issue,user,account_label,time_spent (hours),date_of_work,timelog_note
issue-1,alice,,2,2024-03-01 09:00:00,setup
issue-2,bob,ACME,3,2024-03-05 10:00:00,
issue-1,bob,,1.5,2024-03-10 11:00:00,review
issue-3,alice,ACME,4,2024-04-01 12:00:00,
`

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cli := NewCLI(Options{Output: &out, ErrOut: &errOut})
	cli.SetArgs(append(args, "--profiles", filepath.Join(t.TempDir(), "none")))
	err := cli.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCLI_EmptyAccount_WritesCSV(t *testing.T) {
	// Given
	source := writeFile(t, "timelogs.csv", timelogCSV)
	dest := filepath.Join(t.TempDir(), "out", "report.csv")

	// When
	out, err := runCLI(t, "empty-account", source, "--output", dest)

	// Then
	require.NoError(t, err)
	assert.Contains(t, out, "Time without account label")
	assert.Contains(t, out, domain.TotalLabel)

	file, err := os.Open(dest)
	require.NoError(t, err)
	defer file.Close()
	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"user", "time_spent (hours)"},
		{"alice", "2"},
		{"bob", "1.5"},
		{"Total Result", "3.5"},
	}, records)
}

func TestCLI_Issues_RequiresWindow(t *testing.T) {
	source := writeFile(t, "timelogs.csv", timelogCSV)

	_, err := runCLI(t, "issues", source)
	assert.Error(t, err)
}

func TestCLI_Issues(t *testing.T) {
	source := writeFile(t, "timelogs.csv", timelogCSV)

	out, err := runCLI(t, "issues", source, "--start", "2024-03-01", "--end", "2024-03-31")
	require.NoError(t, err)
	assert.Contains(t, out, "Active Period: 2024-03-01 to 2024-03-31")
	assert.Contains(t, out, "issue-1")
	assert.NotContains(t, out, "issue-3")
}

func TestCLI_Issues_IncludesWholeEndDay(t *testing.T) {
	// Given: entries late on the last day and just past it, with offsets
	source := writeFile(t, "timelogs.csv", `issue,user,date_of_work,time_spent (hours)
issue-1,alice,2024-03-01 01:00:00+02:00,2
issue-2,bob,2024-03-31 15:00:00,1
issue-3,bob,2024-04-01 00:30:00+02:00,3
`)
	output := filepath.Join(t.TempDir(), "issues.csv")

	// When
	_, err := runCLI(t, "issues", source, "--start", "2024-03-01", "--end", "2024-03-31", "-o", output)

	// Then
	require.NoError(t, err)
	f, err := os.Open(output)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"issue", "time_spent (hours)"},
		{"issue-1", "2"},
		{"issue-2", "1"},
	}, records)
}

func TestCLI_MissingSource(t *testing.T) {
	_, err := runCLI(t, "account-time", filepath.Join(t.TempDir(), "missing.csv"))

	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestCLI_Profiles(t *testing.T) {
	source := writeFile(t, "timelogs.csv", timelogCSV)
	profiles := writeFile(t, ".timelogcfg", "[team]\nsource = "+source+"\n")

	var out bytes.Buffer
	cli := NewCLI(Options{Output: &out, ErrOut: &bytes.Buffer{}})
	cli.SetArgs([]string{"profiles", "--profiles", profiles})
	require.NoError(t, cli.Execute())
	assert.Contains(t, out.String(), "team\t"+source)

	out.Reset()
	cli = NewCLI(Options{Output: &out, ErrOut: &bytes.Buffer{}})
	cli.SetArgs([]string{"account-time", "--profile", "team", "--profiles", profiles})
	require.NoError(t, cli.Execute())
	assert.Contains(t, out.String(), "ACME")
}
