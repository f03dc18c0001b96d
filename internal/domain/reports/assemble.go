package reports

import (
	"sort"
	"time"

	"rentora/internal/domain/users"
)

// assemble builds the final report from the raw fan-out results. It is a pure
// function of its inputs; two identical result sets produce byte-identical
// reports apart from the generation timestamp.
func assemble(res collectResult, generatedAt time.Time) *Report {
	summaries := make([]UserSummary, 0, len(res.users))
	for _, u := range res.users {
		summaries = append(summaries, summarize(u))
	}

	return &Report{
		GeneratedAt: generatedAt,
		Overall: Overall{
			TotalUsers:      res.totalUsers,
			TotalLandlords:  res.totalLandlords,
			TotalProperties: res.totalProperties,
			TotalPayments:   res.totalPayments,
			TotalAgents:     res.totalAgents,
			TotalRevenue:    sumAmounts(res.completedAmounts),
			RecentActivity: RecentActivity{
				PropertiesCreated: res.recentProperties,
				LandlordsCreated:  res.recentLandlords,
			},
		},
		Properties: PropertyStats{
			ByStatus: normalizeGroups(res.propertiesByStatus),
			ByType:   normalizeGroups(res.propertiesByType),
		},
		Payments: PaymentStats{
			ByStatus: normalizeGroups(res.paymentsByStatus),
		},
		Users: summaries,
	}
}

func sumAmounts(amounts []Cents) Cents {
	var total Cents
	for _, a := range amounts {
		total += a
	}
	return total
}

// normalizeGroups flattens a group-by mapping into {key, count} pairs. Keys
// are emitted in sorted order so repeated aggregations over an unchanged
// store serialize identically; the order itself means nothing.
func normalizeGroups(groups map[string]int64) []GroupCount {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]GroupCount, 0, len(keys))
	for _, k := range keys {
		out = append(out, GroupCount{Key: k, Count: groups[k]})
	}
	return out
}

func sumCounts(groups []GroupCount) int64 {
	var total int64
	for _, g := range groups {
		total += g.Count
	}
	return total
}

// summarize projects a user record down to the report's allow-listed fields.
func summarize(u users.User) UserSummary {
	return UserSummary{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Image:     u.Image,
		CreatedAt: u.CreatedAt,
	}
}
