package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rentora/internal/domain/reports"
	"rentora/internal/domain/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubStore struct{}

func (stubStore) Count(ctx context.Context, c reports.Collection, f *reports.Filter) (int64, error) {
	return 3, nil
}

func (stubStore) GroupCount(ctx context.Context, c reports.Collection, field string) (map[string]int64, error) {
	return map[string]int64{"AVAILABLE": 2, "RENTED": 1}, nil
}

func (stubStore) PaymentAmounts(ctx context.Context, status string) ([]reports.Cents, error) {
	return []reports.Cents{10050, 20000}, nil
}

func (stubStore) Users(ctx context.Context) ([]users.User, error) {
	return []users.User{{ID: 1, Name: "Asha Rai", Email: "asha@example.com", Role: users.RoleAdmin, CreatedAt: time.Now()}}, nil
}

func newTestApp() *application {
	return &application{
		logger:  zap.NewNop().Sugar(),
		reports: reports.NewService(stubStore{}),
	}
}

func TestGetReportHandler(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/reports", nil)
	rec := httptest.NewRecorder()

	app.getReportHandler(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data reports.Report `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	assert.Equal(t, int64(3), envelope.Data.Overall.TotalProperties)
	assert.Equal(t, reports.Cents(30050), envelope.Data.Overall.TotalRevenue)
	require.Len(t, envelope.Data.Users, 1)
	assert.Equal(t, "asha@example.com", envelope.Data.Users[0].Email)
}

func TestGetReportHandlerValidatesMonth(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/reports?month=2026-13", nil)
	rec := httptest.NewRecorder()

	app.getReportHandler(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/v1/admin/reports?month=2026-07", nil)
	rec = httptest.NewRecorder()

	app.getReportHandler(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
