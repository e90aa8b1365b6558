package timelog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"math/big"
	"os"
	"strings"

	"github.com/de-tools/timelog-reporter/pkg/models/domain"
	"github.com/duckdb/duckdb-go/v2"
	"github.com/rs/zerolog"
)

// Loader reads timelog exports into tables
type Loader interface {
	Load(ctx context.Context, source string) (domain.Table, error)
}

type csvLoader struct {
	db *sql.DB
}

// NewLoader returns a Loader that lets DuckDB sniff the CSV dialect and
// column types, so numbers and empty cells arrive typed. Timestamp columns
// are read back as text: DuckDB would shift offset values to UTC, while
// reports need the wall-clock reading written in the export.
func NewLoader(db *sql.DB) (Loader, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &csvLoader{db: db}, nil
}

func (l *csvLoader) Load(ctx context.Context, source string) (domain.Table, error) {
	if _, err := os.Stat(source); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Table{}, &domain.NotFoundError{Source: source}
		}
		return domain.Table{}, fmt.Errorf("stat source: %w", err)
	}

	textColumns, err := l.timestampColumns(ctx, source)
	if err != nil {
		return domain.Table{}, err
	}

	rows, err := l.db.QueryContext(ctx, readCSVQuery(source, textColumns...))
	if err != nil {
		return domain.Table{}, fmt.Errorf("read csv: %w", err)
	}
	defer rows.Close()

	t, err := scanTable(rows)
	if err != nil {
		return domain.Table{}, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("source", source).
		Int("rows", t.Len()).
		Strs("columns", t.Columns).
		Msg("loaded timelog export")
	return t, nil
}

// timestampColumns lists the columns DuckDB sniffs as any TIMESTAMP type.
func (l *csvLoader) timestampColumns(ctx context.Context, source string) ([]string, error) {
	rows, err := l.db.QueryContext(ctx, describeCSVQuery(source))
	if err != nil {
		return nil, fmt.Errorf("describe csv: %w", err)
	}
	defer rows.Close()

	fields, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read describe columns: %w", err)
	}

	var columns []string
	for rows.Next() {
		values := make([]any, len(fields))
		ptrs := make([]any, len(fields))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan describe row: %w", err)
		}
		if len(values) < 2 {
			continue
		}

		name, kind := fmt.Sprint(normalize(values[0])), fmt.Sprint(normalize(values[1]))
		if strings.HasPrefix(strings.ToUpper(kind), "TIMESTAMP") {
			columns = append(columns, name)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate describe rows: %w", err)
	}
	return columns, nil
}

func describeCSVQuery(path string) string {
	return "DESCRIBE " + readCSVQuery(path)
}

func readCSVQuery(path string, textColumns ...string) string {
	query := fmt.Sprintf("SELECT * FROM read_csv_auto('%s', header = true", quote(path))
	if len(textColumns) > 0 {
		types := make([]string, 0, len(textColumns))
		for _, column := range textColumns {
			types = append(types, fmt.Sprintf("'%s': 'VARCHAR'", quote(column)))
		}
		query += ", types = {" + strings.Join(types, ", ") + "}"
	}
	return query + ")"
}

func quote(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func scanTable(rows *sql.Rows) (domain.Table, error) {
	columns, err := rows.Columns()
	if err != nil {
		return domain.Table{}, fmt.Errorf("read columns: %w", err)
	}

	t := domain.NewTable(columns...)
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return domain.Table{}, fmt.Errorf("scan row %d: %w", t.Len(), err)
		}

		row := make(domain.Row, len(columns))
		for i, column := range columns {
			row[column] = normalize(values[i])
		}
		t.Rows = append(t.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return domain.Table{}, fmt.Errorf("iterate rows: %w", err)
	}
	return t, nil
}

func normalize(v any) any {
	switch val := v.(type) {
	case duckdb.Decimal:
		return val.Float64()
	case *big.Int:
		if val.IsInt64() {
			return val.Int64()
		}
		f, _ := new(big.Float).SetInt(val).Float64()
		return f
	case int8:
		return int64(val)
	case int16:
		return int64(val)
	case int32:
		return int64(val)
	case int:
		return int64(val)
	case uint8:
		return int64(val)
	case uint16:
		return int64(val)
	case uint32:
		return int64(val)
	case float32:
		return float64(val)
	case []byte:
		return string(val)
	default:
		return v
	}
}
