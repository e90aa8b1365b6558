package commands

import (
	"fmt"

	"github.com/de-tools/timelog-reporter/pkg/models/domain"
	"github.com/de-tools/timelog-reporter/pkg/store/duckdb"
	"github.com/de-tools/timelog-reporter/pkg/store/duckdb/timelog"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type ReportCmd struct {
	env       *Env
	kind      domain.ReportKind
	output    string
	profile   string
	start     string
	end       string
	keepNotes bool
}

func NewReportCmd(env *Env, kind domain.ReportKind, short string) *cobra.Command {
	rc := &ReportCmd{env: env, kind: kind}
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s [csv]", kind),
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE:  rc.run,
	}

	cmd.Flags().StringVarP(&rc.output, "output", "o", "", "Write the report to this file (.csv or .xlsx)")
	cmd.Flags().StringVar(&rc.profile, "profile", "", "Profile supplying the source and output")

	if kind == domain.ReportIssueWindow {
		cmd.Flags().StringVar(&rc.start, "start", "", "First day of the window (inclusive)")
		cmd.Flags().StringVar(&rc.end, "end", "", "Last day of the window (inclusive; a bare date covers the whole day)")
		cmd.Flags().BoolVar(&rc.keepNotes, "keep-notes", false, "Keep the timelog_note column")

		_ = cmd.MarkFlagRequired("start")
		_ = cmd.MarkFlagRequired("end")
	}

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)

	source, output, err := rc.resolve(cmd, args)
	if err != nil {
		return err
	}

	params, err := rc.params()
	if err != nil {
		return err
	}

	db, err := duckdb.NewDB(duckdb.Settings{})
	if err != nil {
		return fmt.Errorf("failed to create DuckDB instance: %w", err)
	}
	defer db.Close()

	loader, err := timelog.NewLoader(db)
	if err != nil {
		return err
	}

	table, err := loader.Load(ctx, source)
	if err != nil {
		return err
	}

	logger.Debug().
		Str("report", string(rc.kind)).
		Str("source", source).
		Int("rows", table.Len()).
		Msg("building report")

	rep, err := rc.env.Registry.Build(ctx, rc.kind, table, params)
	if err != nil {
		return err
	}

	if err := rc.env.Reporter.Handle(rep); err != nil {
		return fmt.Errorf("failed to print report: %w", err)
	}

	return rc.env.Writer.Write(ctx, rep.Table, output)
}

func (rc *ReportCmd) resolve(cmd *cobra.Command, args []string) (source, output string, err error) {
	if rc.profile != "" {
		profiles, err := rc.env.Profiles()
		if err != nil {
			return "", "", fmt.Errorf("failed to read profiles: %w", err)
		}
		p, err := profiles.GetProfile(cmd.Context(), rc.profile)
		if err != nil {
			return "", "", err
		}
		source, output = p.Source, p.Output
	}

	if len(args) == 1 {
		source = args[0]
	}
	if source == "" {
		return "", "", fmt.Errorf("no csv file given; pass a path or --profile")
	}

	if rc.output != "" {
		output = rc.output
	}
	if output == "" && rc.env.Settings != nil {
		output = rc.env.Settings.Output
	}
	return source, output, nil
}

func (rc *ReportCmd) params() (domain.ReportParams, error) {
	params := domain.ReportParams{KeepNotes: rc.keepNotes}
	if rc.kind != domain.ReportIssueWindow {
		return params, nil
	}

	if rc.env.Settings != nil && rc.env.Settings.KeepNotes {
		params.KeepNotes = true
	}

	parser := rc.env.Settings.DateParser()
	start, err := parser.Parse(rc.start)
	if err != nil {
		return params, fmt.Errorf("invalid --start: %w", err)
	}
	end, err := parser.ParseEnd(rc.end)
	if err != nil {
		return params, fmt.Errorf("invalid --end: %w", err)
	}

	params.Start, params.End = start, end
	return params, nil
}
