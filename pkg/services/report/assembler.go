package report

import (
	"context"
	"time"

	"github.com/de-tools/timelog-reporter/pkg/models/domain"
	"github.com/de-tools/timelog-reporter/pkg/services/aggregate"
	"github.com/rs/zerolog"
)

// IssueWindowOptions tunes the issues report
type IssueWindowOptions struct {
	KeepNotes bool
	Parser    *aggregate.DateParser
}

// EmptyAccountReport sums time per user over rows without an account label.
// Any failure yields an empty table shaped [user, time_spent (hours)].
func EmptyAccountReport(ctx context.Context, t domain.Table) domain.Table {
	out, err := timeReport(t, domain.ColumnUser, func(t domain.Table) (domain.Table, error) {
		return aggregate.FilterNull(t, domain.ColumnAccountLabel)
	})
	if err != nil {
		return emptyTimeReport(ctx, domain.ReportEmptyAccount, domain.ColumnUser, err)
	}
	return out
}

// AccountTimeReport sums time per account label over the whole table.
// Any failure yields an empty table shaped [account_label, time_spent (hours)].
func AccountTimeReport(ctx context.Context, t domain.Table) domain.Table {
	out, err := timeReport(t, domain.ColumnAccountLabel, nil)
	if err != nil {
		return emptyTimeReport(ctx, domain.ReportAccountTime, domain.ColumnAccountLabel, err)
	}
	return out
}

func timeReport(t domain.Table, key string, filter func(domain.Table) (domain.Table, error)) (domain.Table, error) {
	var err error
	if filter != nil {
		if t, err = filter(t); err != nil {
			return domain.Table{}, err
		}
	}

	projected, err := aggregate.Project(t, key, domain.ColumnTimeSpent)
	if err != nil {
		return domain.Table{}, err
	}

	grouped, err := aggregate.GroupBy(projected, key)
	if err != nil {
		return domain.Table{}, err
	}

	return aggregate.AppendTotal(grouped, key, domain.ColumnTimeSpent)
}

func emptyTimeReport(ctx context.Context, kind domain.ReportKind, key string, err error) domain.Table {
	zerolog.Ctx(ctx).Warn().
		Err(err).
		Str("report", string(kind)).
		Msg("report could not be built, returning an empty table")
	return domain.NewTable(key, domain.ColumnTimeSpent)
}

// IssueWindowReport summarises rows dated within [start, end] by the first
// column left after dropping date and user. Errors are returned to the caller.
func IssueWindowReport(
	ctx context.Context,
	t domain.Table,
	start, end time.Time,
	opts IssueWindowOptions,
) (domain.Table, []*domain.ParseError, error) {
	logger := zerolog.Ctx(ctx)

	parser := opts.Parser
	if parser == nil {
		parser = aggregate.NewDateParser()
	}

	filtered, skipped, err := parser.FilterDateRange(t, domain.ColumnDateOfWork, start, end)
	if err != nil {
		return domain.Table{}, nil, err
	}
	for _, pe := range skipped {
		logger.Debug().Err(pe).Msg("skipping row with unparsable date")
	}

	var optional []string
	if !opts.KeepNotes {
		optional = append(optional, domain.ColumnTimelogNote)
	}
	trimmed, err := aggregate.Drop(filtered, []string{domain.ColumnDateOfWork, domain.ColumnUser}, optional...)
	if err != nil {
		return domain.Table{}, skipped, err
	}
	if len(trimmed.Columns) == 0 {
		return domain.Table{}, skipped, &domain.SchemaError{Op: "issues report", Column: "<key>"}
	}

	grouped, err := aggregate.GroupBy(trimmed, trimmed.Columns[0])
	if err != nil {
		return domain.Table{}, skipped, err
	}
	return grouped, skipped, nil
}
