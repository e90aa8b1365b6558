package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"

	"github.com/de-tools/timelog-reporter/pkg/adapters"
	"github.com/de-tools/timelog-reporter/pkg/models/api"
	"github.com/de-tools/timelog-reporter/pkg/models/domain"
	"github.com/de-tools/timelog-reporter/pkg/services/aggregate"
	"github.com/de-tools/timelog-reporter/pkg/services/report"
	"github.com/de-tools/timelog-reporter/pkg/store/duckdb/timelog"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const maxUploadBytes = 64 << 20

type Handler struct {
	registry report.Registry
	loader   timelog.Loader
	parser   *aggregate.DateParser
}

func NewHandler(registry report.Registry, loader timelog.Loader, parser *aggregate.DateParser) *Handler {
	if parser == nil {
		parser = aggregate.NewDateParser()
	}
	return &Handler{
		registry: registry,
		loader:   loader,
		parser:   parser,
	}
}

func (h *Handler) ListKinds(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, adapters.MapReportKindsDomainToApi(h.registry.Kinds()))
}

// BuildReport expects the timelog CSV as the request body.
func (h *Handler) BuildReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	kind := domain.ReportKind(chi.URLParam(r, "kind"))

	params, err := h.params(r)
	if err != nil {
		writeError(ctx, w, http.StatusBadRequest, err)
		return
	}

	path, err := spool(http.MaxBytesReader(w, r.Body, maxUploadBytes))
	if err != nil {
		writeError(ctx, w, http.StatusBadRequest, err)
		return
	}
	defer os.Remove(path)

	table, err := h.loader.Load(ctx, path)
	if err != nil {
		writeError(ctx, w, http.StatusBadRequest, err)
		return
	}

	rep, err := h.registry.Build(ctx, kind, table, params)
	if err != nil {
		writeError(ctx, w, statusFor(err), err)
		return
	}

	logger.Info().
		Str("report", string(kind)).
		Int("rows", rep.Table.Len()).
		Msg("report built")
	writeJSON(ctx, w, http.StatusOK, adapters.MapReportDomainToApi(rep))
}

func (h *Handler) params(r *http.Request) (domain.ReportParams, error) {
	var params domain.ReportParams
	q := r.URL.Query()

	if v := q.Get("keep_notes"); v != "" {
		keep, err := strconv.ParseBool(v)
		if err != nil {
			return params, fmt.Errorf("invalid keep_notes: %w", err)
		}
		params.KeepNotes = keep
	}

	if domain.ReportKind(chi.URLParam(r, "kind")) != domain.ReportIssueWindow {
		return params, nil
	}

	start, err := h.parser.Parse(q.Get("start"))
	if err != nil {
		return params, fmt.Errorf("invalid start: %w", err)
	}
	end, err := h.parser.ParseEnd(q.Get("end"))
	if err != nil {
		return params, fmt.Errorf("invalid end: %w", err)
	}
	params.Start, params.End = start, end
	return params, nil
}

func spool(body io.Reader) (string, error) {
	file, err := os.CreateTemp("", "timelog-*.csv")
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, body); err != nil {
		os.Remove(file.Name())
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	return file.Name(), nil
}

func statusFor(err error) int {
	var unknown *report.UnknownKindError
	var schemaErr *domain.SchemaError
	switch {
	case errors.As(err, &unknown):
		return http.StatusNotFound
	case errors.As(err, &schemaErr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, status int, err error) {
	zerolog.Ctx(ctx).Warn().Err(err).Int("status", status).Msg("request failed")
	writeJSON(ctx, w, status, api.Error{Error: err.Error()})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	payload, err := json.Marshal(body)
	if err != nil {
		zerolog.Ctx(ctx).Error().
			Err(err).
			Msg("failed to encode response")
		status = http.StatusInternalServerError
		payload, _ = json.Marshal(api.Error{Error: "failed to encode response"})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(payload, '
'))
}
