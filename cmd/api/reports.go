package main

import (
	"context"
	"net/http"
	"strings"
	"time"

	"rentora/internal/domain/reports"
)

type reportQueryParams struct {
	Month string `validate:"omitempty,yearmonth"`
}

// GetReport godoc
//
//	@Summary		Aggregated statistics report
//	@Description	Returns a full report snapshot: overall totals, revenue, recent activity, group-by breakdowns, and user summaries.
//	@Tags			admin-reports
//	@Produce		json
//	@Param			month	query		string	false	"Month filter (YYYY-MM)"
//	@Success		200		{object}	reports.Report
//	@Failure		400		{object}	error
//	@Failure		401		{object}	error
//	@Failure		403		{object}	error
//	@Failure		500		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/reports [get]
func (app *application) getReportHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 12*time.Second)
	defer cancel()

	params := reportQueryParams{
		Month: strings.TrimSpace(r.URL.Query().Get("month")),
	}
	if err := Validate.Struct(params); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	report, err := app.reports.GetReport(ctx, reports.ReportOptions{Month: params.Month})
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	_ = app.jsonResponse(w, http.StatusOK, report)
}
