package reports

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"rentora/internal/domain/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var testNow = time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func seededStore() *fakeStore {
	img := "https://cdn.example.com/u/1.png"
	return &fakeStore{
		userRecords: []users.User{
			{
				ID:        1,
				Name:      "Asha Rai",
				Email:     "asha@example.com",
				Role:      users.RoleAdmin,
				Image:     &img,
				CreatedAt: testNow.AddDate(0, -2, 0),
			},
			{
				ID:           2,
				Name:         "Bikram Thapa",
				Email:        "bikram@example.com",
				Role:         users.RoleTenant,
				Phone:        "9841234567",
				PasswordHash: []byte("$2a$10$notarealhashnotarealhash"),
				RefreshToken: "very-secret-refresh-token",
				CreatedAt:    testNow.AddDate(0, 0, -3),
			},
		},
		landlords: []time.Time{
			testNow.AddDate(0, 0, -40),
			testNow.AddDate(0, 0, -5),
		},
		agents: []time.Time{
			testNow.AddDate(0, -1, 0),
		},
		properties: []fakeProperty{
			{status: "AVAILABLE", propertyType: "APARTMENT", createdAt: testNow.AddDate(0, 0, -31)},
			{status: "AVAILABLE", propertyType: "HOUSE", createdAt: testNow.AddDate(0, 0, -2)},
			{status: "RENTED", propertyType: "APARTMENT", createdAt: testNow.AddDate(0, 0, -60)},
		},
		payments: []fakePayment{
			{status: PaymentCompleted, amountCents: 10050, createdAt: testNow.AddDate(0, 0, -10)},
			{status: PaymentCompleted, amountCents: 20000, createdAt: testNow.AddDate(0, 0, -7)},
			{status: PaymentPending, amountCents: 5000, createdAt: testNow.AddDate(0, 0, -1)},
		},
	}
}

func TestGetReportAggregatesCounts(t *testing.T) {
	svc := NewService(seededStore(), WithClock(fixedClock))

	report, err := svc.GetReport(context.Background(), ReportOptions{})
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Equal(t, int64(2), report.Overall.TotalUsers)
	assert.Equal(t, int64(2), report.Overall.TotalLandlords)
	assert.Equal(t, int64(3), report.Overall.TotalProperties)
	assert.Equal(t, int64(3), report.Overall.TotalPayments)
	assert.Equal(t, int64(1), report.Overall.TotalAgents)

	assert.Equal(t, []GroupCount{
		{Key: "AVAILABLE", Count: 2},
		{Key: "RENTED", Count: 1},
	}, report.Properties.ByStatus)
	assert.Equal(t, []GroupCount{
		{Key: "APARTMENT", Count: 2},
		{Key: "HOUSE", Count: 1},
	}, report.Properties.ByType)
	assert.Equal(t, []GroupCount{
		{Key: PaymentCompleted, Count: 2},
		{Key: PaymentPending, Count: 1},
	}, report.Payments.ByStatus)

	// 100.50 + 200.00 completed; the pending 50.00 does not count
	assert.Equal(t, Cents(30050), report.Overall.TotalRevenue)

	assert.Equal(t, report.Overall.TotalProperties, sumCounts(report.Properties.ByStatus))
	assert.Equal(t, report.Overall.TotalPayments, sumCounts(report.Payments.ByStatus))

	require.Len(t, report.Users, 2)
	assert.Equal(t, "Asha Rai", report.Users[0].Name)
	assert.Equal(t, users.RoleTenant, report.Users[1].Role)
}

func TestRecentActivityWindow(t *testing.T) {
	svc := NewService(seededStore(), WithClock(fixedClock))

	report, err := svc.GetReport(context.Background(), ReportOptions{})
	require.NoError(t, err)

	// one property is 31 days old, one 2 days, one 60 days
	assert.Equal(t, int64(1), report.Overall.RecentActivity.PropertiesCreated)
	// one landlord is 40 days old, one 5 days
	assert.Equal(t, int64(1), report.Overall.RecentActivity.LandlordsCreated)
}

func TestFailurePropagation(t *testing.T) {
	faults := []string{
		"count:users",
		"count:landlords",
		"count:properties",
		"count:payments",
		"count:field_agents",
		"count:properties:recent",
		"count:landlords:recent",
		"group:properties:status",
		"group:properties:property_type",
		"group:payments:status",
		"amounts",
		"users",
	}

	for _, fault := range faults {
		t.Run(fault, func(t *testing.T) {
			store := seededStore()
			store.failOn = fault
			svc := NewService(store, WithClock(fixedClock))

			report, err := svc.GetReport(context.Background(), ReportOptions{})
			require.Error(t, err)
			require.Nil(t, report)
			assert.ErrorContains(t, err, "connection reset")
		})
	}
}

func TestSubQueriesRunConcurrently(t *testing.T) {
	store := seededStore()
	store.perQueryDelay = 100 * time.Millisecond
	svc := NewService(store, WithClock(fixedClock))

	start := time.Now()
	_, err := svc.GetReport(context.Background(), ReportOptions{})
	elapsed := time.Since(start)

	require.NoError(t, err)
	// eleven sequential queries would take ~1.1s; concurrent dispatch should
	// stay near a single query's latency
	assert.Less(t, elapsed, 600*time.Millisecond)
}

func TestCancellationPropagates(t *testing.T) {
	store := seededStore()
	store.perQueryDelay = 500 * time.Millisecond
	svc := NewService(store, WithClock(fixedClock))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	report, err := svc.GetReport(ctx, ReportOptions{})
	require.Error(t, err)
	require.Nil(t, report)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestIdempotentUnderStaticStore(t *testing.T) {
	svc := NewService(seededStore(), WithClock(fixedClock))

	first, err := svc.GetReport(context.Background(), ReportOptions{})
	require.NoError(t, err)
	second, err := svc.GetReport(context.Background(), ReportOptions{Month: "2026-07"})
	require.NoError(t, err)

	// the month option scopes nothing yet, and the clock is pinned, so the
	// two snapshots must serialize identically
	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestUserSummaryAllowList(t *testing.T) {
	svc := NewService(seededStore(), WithClock(fixedClock))

	report, err := svc.GetReport(context.Background(), ReportOptions{})
	require.NoError(t, err)

	raw, err := json.Marshal(report)
	require.NoError(t, err)

	body := string(raw)
	assert.NotContains(t, body, "notarealhash")
	assert.NotContains(t, body, "very-secret-refresh-token")
	assert.NotContains(t, body, "9841234567")

	assert.Contains(t, body, "bikram@example.com")
	assert.Contains(t, body, `"role":"TENANT"`)
}

func TestCountDriftLogsWarning(t *testing.T) {
	store := seededStore()
	// pretend two properties were inserted between the group-count and the
	// total-count sub-queries
	store.countOverrides = map[Collection]int64{CollectionProperties: 5}

	core, logs := observer.New(zap.WarnLevel)
	logger := zap.New(core).Sugar()
	svc := NewService(store, WithLogger(logger), WithClock(fixedClock))

	report, err := svc.GetReport(context.Background(), ReportOptions{})
	require.NoError(t, err)
	require.NotNil(t, report)

	entries := logs.FilterMessage("property counts drifted during aggregation").All()
	require.Len(t, entries, 1)
}
