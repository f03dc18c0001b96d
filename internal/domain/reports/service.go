package reports

import (
	"context"
	"fmt"
	"time"

	"rentora/internal/domain/users"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Service orchestrates the report sub-queries and assembles their results.
type Service struct {
	store   Store
	logger  *zap.SugaredLogger
	metrics *Metrics
	now     func() time.Time
}

// Option configures a Service.
type Option func(s *Service)

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithMetrics(m *Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithClock overrides the time source. Tests use it to pin the
// recent-activity window.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(store Store, opts ...Option) *Service {
	s := &Service{
		store:  store,
		logger: zap.NewNop().Sugar(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// collectResult holds the raw results of the fan-out. Each goroutine writes
// only its own fields, so no synchronization beyond the errgroup join is
// needed before assembly.
type collectResult struct {
	totalUsers      int64
	totalLandlords  int64
	totalProperties int64
	totalPayments   int64
	totalAgents     int64

	recentProperties int64
	recentLandlords  int64

	propertiesByStatus map[string]int64
	propertiesByType   map[string]int64
	paymentsByStatus   map[string]int64

	completedAmounts []Cents
	users            []users.User
}

// GetReport recomputes a full report snapshot. The sub-queries are all
// independent reads and run concurrently; the first failure cancels the rest
// and fails the whole call. There is no partial report: callers get either a
// complete snapshot or an error.
//
// The store may be written to by other traffic while the sub-queries run, so
// the counts are a best-effort snapshot, not a transactionally consistent one.
// Drift between a group-count and its total is logged, never fatal.
func (s *Service) GetReport(ctx context.Context, opts ReportOptions) (*Report, error) {
	start := time.Now()
	generatedAt := s.now()
	since := generatedAt.AddDate(0, 0, -RecentWindowDays)

	// TODO: opts.Month is validated at the edge but applied to no sub-query.
	// Whether it should scope every count or only recent activity needs a
	// product decision before it can be wired through.
	_ = opts.Month

	g, ctx := errgroup.WithContext(ctx)
	var res collectResult

	s.launchCount(ctx, g, CollectionUsers, nil, &res.totalUsers)
	s.launchCount(ctx, g, CollectionLandlords, nil, &res.totalLandlords)
	s.launchCount(ctx, g, CollectionProperties, nil, &res.totalProperties)
	s.launchCount(ctx, g, CollectionPayments, nil, &res.totalPayments)
	s.launchCount(ctx, g, CollectionAgents, nil, &res.totalAgents)

	s.launchCount(ctx, g, CollectionProperties, &Filter{CreatedAfter: &since}, &res.recentProperties)
	s.launchCount(ctx, g, CollectionLandlords, &Filter{CreatedAfter: &since}, &res.recentLandlords)

	s.launchGroupCount(ctx, g, CollectionProperties, FieldStatus, &res.propertiesByStatus)
	s.launchGroupCount(ctx, g, CollectionProperties, FieldPropertyType, &res.propertiesByType)
	s.launchGroupCount(ctx, g, CollectionPayments, FieldStatus, &res.paymentsByStatus)

	g.Go(func() error {
		amounts, err := s.store.PaymentAmounts(ctx, PaymentCompleted)
		if err != nil {
			return fmt.Errorf("fetch completed payment amounts: %w", err)
		}
		res.completedAmounts = amounts
		return nil
	})

	g.Go(func() error {
		records, err := s.store.Users(ctx)
		if err != nil {
			return fmt.Errorf("fetch user records: %w", err)
		}
		res.users = records
		return nil
	})

	if err := g.Wait(); err != nil {
		if s.metrics != nil {
			s.metrics.ReportFailed.Inc()
		}
		return nil, err
	}

	report := assemble(res, generatedAt)
	s.checkCountDrift(report)

	if s.metrics != nil {
		s.metrics.ReportGenerated.Inc()
		s.metrics.ReportDuration.Observe(time.Since(start).Seconds())
	}

	return report, nil
}

func (s *Service) launchCount(ctx context.Context, g *errgroup.Group, c Collection, filter *Filter, dst *int64) {
	g.Go(func() error {
		n, err := s.store.Count(ctx, c, filter)
		if err != nil {
			return fmt.Errorf("count %s: %w", c, err)
		}
		*dst = n
		return nil
	})
}

func (s *Service) launchGroupCount(ctx context.Context, g *errgroup.Group, c Collection, field string, dst *map[string]int64) {
	g.Go(func() error {
		groups, err := s.store.GroupCount(ctx, c, field)
		if err != nil {
			return fmt.Errorf("group count %s by %s: %w", c, field, err)
		}
		*dst = groups
		return nil
	})
}

// checkCountDrift warns when a group-count disagrees with its total. Because
// the sub-queries run outside a shared transaction, writes landing mid-flight
// can skew them against each other; that is accepted, but worth a log line.
func (s *Service) checkCountDrift(r *Report) {
	if got := sumCounts(r.Properties.ByStatus); got != r.Overall.TotalProperties {
		s.logger.Warnw("property counts drifted during aggregation",
			"by_status_sum", got,
			"total", r.Overall.TotalProperties,
		)
	}
	if got := sumCounts(r.Payments.ByStatus); got != r.Overall.TotalPayments {
		s.logger.Warnw("payment counts drifted during aggregation",
			"by_status_sum", got,
			"total", r.Overall.TotalPayments,
		)
	}
}
