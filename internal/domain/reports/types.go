package reports

import (
	"errors"
	"time"
)

var (
	ErrUnknownCollection = errors.New("unknown collection")
	ErrUnknownGroupField = errors.New("unknown group field")
	QueryTimeoutDuration = time.Second * 5
)

// RecentWindowDays is the trailing period used for "recently created" counts.
// It is fixed on purpose; callers cannot widen or narrow it.
const RecentWindowDays = 30

// Collection names the entity sets the store can be asked about.
type Collection string

const (
	CollectionUsers      Collection = "users"
	CollectionLandlords  Collection = "landlords"
	CollectionProperties Collection = "properties"
	CollectionPayments   Collection = "payments"
	CollectionAgents     Collection = "field_agents"
)

// Fields a group-count may partition by.
const (
	FieldStatus       = "status"
	FieldPropertyType = "property_type"
)

const (
	PaymentCompleted = "COMPLETED"
	PaymentPending   = "PENDING"
	PaymentFailed    = "FAILED"
)

// Filter narrows a Count to records created at or after a point in time.
type Filter struct {
	CreatedAfter *time.Time
}

// ReportOptions carries the caller-supplied report parameters.
// Month is the admin SPA's "YYYY-MM" filter; it is accepted for wire
// compatibility but currently scopes nothing (see GetReport).
type ReportOptions struct {
	Month string
}

// GroupCount is one {key, count} pair of a group-by result. Order of pairs in
// a report carries no meaning.
type GroupCount struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

type RecentActivity struct {
	PropertiesCreated int64 `json:"propertiesCreated"`
	LandlordsCreated  int64 `json:"landlordsCreated"`
}

type Overall struct {
	TotalUsers      int64          `json:"totalUsers"`
	TotalLandlords  int64          `json:"totalLandlords"`
	TotalProperties int64          `json:"totalProperties"`
	TotalPayments   int64          `json:"totalPayments"`
	TotalAgents     int64          `json:"totalAgents"`
	TotalRevenue    Cents          `json:"totalRevenue"`
	RecentActivity  RecentActivity `json:"recentActivity"`
}

type PropertyStats struct {
	ByStatus []GroupCount `json:"byStatus"`
	ByType   []GroupCount `json:"byType"`
}

type PaymentStats struct {
	ByStatus []GroupCount `json:"byStatus"`
}

// UserSummary is the allow-listed projection of a user record that a report
// may carry. Fields are opt-in here so that anything later added to the user
// entity (credentials, tokens) stays out of reports by default.
type UserSummary struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Image     *string   `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}

// Report is the aggregated snapshot returned to the caller. It is built fresh
// on every call, never mutated afterwards, and never persisted. The JSON field
// names are the wire contract with the admin SPA.
type Report struct {
	GeneratedAt time.Time     `json:"generatedAt"`
	Overall     Overall       `json:"overall"`
	Properties  PropertyStats `json:"properties"`
	Payments    PaymentStats  `json:"payments"`
	Users       []UserSummary `json:"users"`
}
