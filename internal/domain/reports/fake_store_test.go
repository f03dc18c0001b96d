package reports

import (
	"context"
	"fmt"
	"time"

	"rentora/internal/domain/users"
)

type fakeProperty struct {
	status       string
	propertyType string
	createdAt    time.Time
}

type fakePayment struct {
	status      string
	amountCents int64
	createdAt   time.Time
}

// fakeStore is an in-memory stand-in for the persistence collaborator. Faults
// and latency are injectable per sub-query so the orchestrator's failure and
// concurrency behavior can be exercised without a database.
type fakeStore struct {
	userRecords []users.User
	landlords   []time.Time
	agents      []time.Time
	properties  []fakeProperty
	payments    []fakePayment

	// countOverrides makes a Count lie, to simulate writes landing between
	// sub-queries.
	countOverrides map[Collection]int64

	failOn        string
	perQueryDelay time.Duration
}

func (s *fakeStore) wait(ctx context.Context) error {
	if s.perQueryDelay == 0 {
		return nil
	}
	select {
	case <-time.After(s.perQueryDelay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func countSince(times []time.Time, filter *Filter) int64 {
	var n int64
	for _, t := range times {
		if filter == nil || filter.CreatedAfter == nil || !t.Before(*filter.CreatedAfter) {
			n++
		}
	}
	return n
}

func (s *fakeStore) Count(ctx context.Context, c Collection, filter *Filter) (int64, error) {
	key := fmt.Sprintf("count:%s", c)
	if filter != nil && filter.CreatedAfter != nil {
		key = fmt.Sprintf("count:%s:recent", c)
	}
	if s.failOn == key {
		return 0, fmt.Errorf("connection reset")
	}
	if err := s.wait(ctx); err != nil {
		return 0, err
	}
	if n, ok := s.countOverrides[c]; ok && filter == nil {
		return n, nil
	}

	switch c {
	case CollectionUsers:
		times := make([]time.Time, 0, len(s.userRecords))
		for _, u := range s.userRecords {
			times = append(times, u.CreatedAt)
		}
		return countSince(times, filter), nil
	case CollectionLandlords:
		return countSince(s.landlords, filter), nil
	case CollectionAgents:
		return countSince(s.agents, filter), nil
	case CollectionProperties:
		times := make([]time.Time, 0, len(s.properties))
		for _, p := range s.properties {
			times = append(times, p.createdAt)
		}
		return countSince(times, filter), nil
	case CollectionPayments:
		times := make([]time.Time, 0, len(s.payments))
		for _, p := range s.payments {
			times = append(times, p.createdAt)
		}
		return countSince(times, filter), nil
	}
	return 0, ErrUnknownCollection
}

func (s *fakeStore) GroupCount(ctx context.Context, c Collection, field string) (map[string]int64, error) {
	if s.failOn == fmt.Sprintf("group:%s:%s", c, field) {
		return nil, fmt.Errorf("connection reset")
	}
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	out := make(map[string]int64)
	switch {
	case c == CollectionProperties && field == FieldStatus:
		for _, p := range s.properties {
			out[p.status]++
		}
	case c == CollectionProperties && field == FieldPropertyType:
		for _, p := range s.properties {
			out[p.propertyType]++
		}
	case c == CollectionPayments && field == FieldStatus:
		for _, p := range s.payments {
			out[p.status]++
		}
	default:
		return nil, ErrUnknownGroupField
	}
	return out, nil
}

func (s *fakeStore) PaymentAmounts(ctx context.Context, status string) ([]Cents, error) {
	if s.failOn == "amounts" {
		return nil, fmt.Errorf("connection reset")
	}
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	var out []Cents
	for _, p := range s.payments {
		if p.status == status {
			out = append(out, Cents(p.amountCents))
		}
	}
	return out, nil
}

func (s *fakeStore) Users(ctx context.Context) ([]users.User, error) {
	if s.failOn == "users" {
		return nil, fmt.Errorf("connection reset")
	}
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return s.userRecords, nil
}
