package report

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/de-tools/timelog-reporter/pkg/models/domain"
	"github.com/de-tools/timelog-reporter/pkg/services/aggregate"
)

// Builder turns a loaded table into a report
type Builder func(ctx context.Context, t domain.Table, params domain.ReportParams) (*domain.Report, error)

// Registry manages report builders by kind
type Registry interface {
	// Register adds a new report builder
	Register(kind domain.ReportKind, builder Builder) error
	// Build runs the builder registered for kind
	Build(ctx context.Context, kind domain.ReportKind, t domain.Table, params domain.ReportParams) (*domain.Report, error)
	// Kinds returns the registered report kinds, sorted
	Kinds() []domain.ReportKind
}

type registry struct {
	mu       sync.RWMutex
	builders map[domain.ReportKind]Builder
}

// NewRegistry creates an empty report registry
func NewRegistry() Registry {
	return &registry{
		builders: make(map[domain.ReportKind]Builder),
	}
}

// NewDefaultRegistry registers the three timelog report shapes.
func NewDefaultRegistry(parser *aggregate.DateParser) (Registry, error) {
	return registerAll(NewRegistry(), map[domain.ReportKind]Builder{
		domain.ReportEmptyAccount: EmptyAccountBuilder,
		domain.ReportAccountTime:  AccountTimeBuilder,
		domain.ReportIssueWindow:  IssueWindowBuilder(parser),
	})
}

func registerAll(r Registry, builders map[domain.ReportKind]Builder) (Registry, error) {
	for kind, builder := range builders {
		if err := r.Register(kind, builder); err != nil {
			return nil, fmt.Errorf("failed to register %q report: %w", kind, err)
		}
	}
	return r, nil
}

func (r *registry) Register(kind domain.ReportKind, builder Builder) error {
	if kind == "" {
		return fmt.Errorf("report kind cannot be empty")
	}
	if builder == nil {
		return fmt.Errorf("builder cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.builders[kind]; exists {
		return fmt.Errorf("report %q is already registered", kind)
	}

	r.builders[kind] = builder
	return nil
}

func (r *registry) Build(
	ctx context.Context,
	kind domain.ReportKind,
	t domain.Table,
	params domain.ReportParams,
) (*domain.Report, error) {
	r.mu.RLock()
	builder, exists := r.builders[kind]
	r.mu.RUnlock()

	if !exists {
		return nil, &UnknownKindError{Kind: kind}
	}

	return builder(ctx, t, params)
}

func (r *registry) Kinds() []domain.ReportKind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]domain.ReportKind, 0, len(r.builders))
	for kind := range r.builders {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// UnknownKindError is returned by Build for unregistered kinds
type UnknownKindError struct {
	Kind domain.ReportKind
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("report %q is not registered", e.Kind)
}

func EmptyAccountBuilder(ctx context.Context, t domain.Table, _ domain.ReportParams) (*domain.Report, error) {
	return &domain.Report{
		Title: "Time without account label",
		Kind:  domain.ReportEmptyAccount,
		Table: EmptyAccountReport(ctx, t),
	}, nil
}

func AccountTimeBuilder(ctx context.Context, t domain.Table, _ domain.ReportParams) (*domain.Report, error) {
	return &domain.Report{
		Title: "Time per account label",
		Kind:  domain.ReportAccountTime,
		Table: AccountTimeReport(ctx, t),
	}, nil
}

func IssueWindowBuilder(parser *aggregate.DateParser) Builder {
	return func(ctx context.Context, t domain.Table, params domain.ReportParams) (*domain.Report, error) {
		if params.End.Before(params.Start) {
			return nil, fmt.Errorf("invalid time range: start (%s) is after end (%s)",
				params.Start.Format("2006-01-02"),
				params.End.Format("2006-01-02"))
		}

		table, skipped, err := IssueWindowReport(ctx, t, params.Start, params.End, IssueWindowOptions{
			KeepNotes: params.KeepNotes,
			Parser:    parser,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to build issues report: %w", err)
		}

		return &domain.Report{
			Title:   "Time per issue",
			Kind:    domain.ReportIssueWindow,
			Period:  domain.NewTimePeriod(params.Start, params.End),
			Table:   table,
			Skipped: len(skipped),
		}, nil
	}
}
