package reports

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeGroupsIsDeterministic(t *testing.T) {
	groups := map[string]int64{
		"RENTED":      1,
		"AVAILABLE":   2,
		"MAINTENANCE": 4,
	}

	want := []GroupCount{
		{Key: "AVAILABLE", Count: 2},
		{Key: "MAINTENANCE", Count: 4},
		{Key: "RENTED", Count: 1},
	}
	for i := 0; i < 20; i++ {
		assert.Equal(t, want, normalizeGroups(groups))
	}

	assert.Empty(t, normalizeGroups(nil))
}

func TestSumAmounts(t *testing.T) {
	assert.Equal(t, Cents(0), sumAmounts(nil))
	assert.Equal(t, Cents(30050), sumAmounts([]Cents{10050, 20000}))
	assert.Equal(t, Cents(-150), sumAmounts([]Cents{100, -250}))
}

func TestCentsJSON(t *testing.T) {
	cases := []struct {
		cents Cents
		want  string
	}{
		{30050, "300.50"},
		{5, "0.05"},
		{0, "0.00"},
		{-12345, "-123.45"},
	}
	for _, tc := range cases {
		raw, err := json.Marshal(tc.cents)
		require.NoError(t, err)
		assert.Equal(t, tc.want, string(raw))

		var back Cents
		require.NoError(t, json.Unmarshal(raw, &back))
		assert.Equal(t, tc.cents, back)
	}

	// one fraction digit pads, three rejects
	var c Cents
	require.NoError(t, json.Unmarshal([]byte("300.5"), &c))
	assert.Equal(t, Cents(30050), c)
	assert.Error(t, json.Unmarshal([]byte("300.505"), &c))
}
