package reports

import (
	"context"

	"rentora/internal/domain/users"
)

// Store is the read-only persistence boundary the aggregator depends on. It
// is injected at construction so tests can substitute an in-memory fake; the
// aggregator never reaches for a shared database handle on its own.
//
// Every method is an independent read. No call holds a lock or transaction
// open for its siblings, which is why a report is a best-effort snapshot
// rather than a point-in-time one.
type Store interface {
	// Count returns the number of records in a collection, optionally
	// restricted by filter.
	Count(ctx context.Context, c Collection, filter *Filter) (int64, error)

	// GroupCount returns record counts partitioned by one field's values.
	GroupCount(ctx context.Context, c Collection, field string) (map[string]int64, error)

	// PaymentAmounts returns the amounts of all payments with the given status.
	PaymentAmounts(ctx context.Context, status string) ([]Cents, error)

	// Users returns user records for the report's user listing.
	Users(ctx context.Context) ([]users.User, error)
}
