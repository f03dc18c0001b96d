package reports

import (
	"context"
	"fmt"

	"rentora/internal/domain/users"

	"github.com/jackc/pgx/v5/pgxpool"
)

// collectionTables whitelists the tables the aggregator may read. Identifiers
// are interpolated from this map only, never from caller input.
var collectionTables = map[Collection]string{
	CollectionUsers:      "users",
	CollectionLandlords:  "landlords",
	CollectionProperties: "properties",
	CollectionPayments:   "payments",
	CollectionAgents:     "field_agents",
}

// groupFields whitelists the columns a group-count may partition by.
var groupFields = map[Collection]map[string]bool{
	CollectionProperties: {FieldStatus: true, FieldPropertyType: true},
	CollectionPayments:   {FieldStatus: true},
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Store {
	return &Repository{db: db}
}

func (r *Repository) Count(ctx context.Context, c Collection, filter *Filter) (int64, error) {
	table, ok := collectionTables[c]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCollection, c)
	}

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var n int64
	var err error
	if filter != nil && filter.CreatedAfter != nil {
		q := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE created_at >= $1`, table)
		err = r.db.QueryRow(ctx, q, *filter.CreatedAfter).Scan(&n)
	} else {
		q := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table)
		err = r.db.QueryRow(ctx, q).Scan(&n)
	}
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

func (r *Repository) GroupCount(ctx context.Context, c Collection, field string) (map[string]int64, error) {
	table, ok := collectionTables[c]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCollection, c)
	}
	if !groupFields[c][field] {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownGroupField, c, field)
	}

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	q := fmt.Sprintf(`SELECT %s, COUNT(*) FROM %s GROUP BY 1 ORDER BY 1`, field, table)
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("group count %s by %s: %w", table, field, err)
	}
	defer rows.Close()

	out := make(map[string]int64)
	for rows.Next() {
		var key string
		var count int64
		if err := rows.Scan(&key, &count); err != nil {
			return nil, fmt.Errorf("scan group count: %w", err)
		}
		out[key] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repository) PaymentAmounts(ctx context.Context, status string) ([]Cents, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT amount_cents FROM payments WHERE status = $1
	`, status)
	if err != nil {
		return nil, fmt.Errorf("list payment amounts: %w", err)
	}
	defer rows.Close()

	var out []Cents
	for rows.Next() {
		var amount int64
		if err := rows.Scan(&amount); err != nil {
			return nil, fmt.Errorf("scan payment amount: %w", err)
		}
		out = append(out, Cents(amount))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repository) Users(ctx context.Context) ([]users.User, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	// Only the report's allow-listed columns are selected; credential columns
	// stay in the database.
	rows, err := r.db.Query(ctx, `
		SELECT id, name, email, role, image_url, created_at
		FROM users
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var out []users.User
	for rows.Next() {
		var u users.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Image, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
