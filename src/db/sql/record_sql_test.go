package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSpendingQueryDefaults(t *testing.T) {
	query, args := buildSpendingQuery("user-1", SpendingFilters{})

	assert.Equal(t, []interface{}{"user-1"}, args)
	assert.Contains(t, query, "SUM(amount)")
	assert.Contains(t, query, "GROUP BY category")
	assert.Contains(t, query, "txn_type IN ('credit', 'debit')")
	assert.Contains(t, query, "amount IS NOT NULL")
	assert.Contains(t, query, "ORDER BY total_spent DESC")
	assert.NotContains(t, query, "INTERVAL")
}

func TestBuildSpendingQueryDirectionFilter(t *testing.T) {
	query, args := buildSpendingQuery("user-1", SpendingFilters{Direction: "debit"})
	require.Len(t, args, 2)
	assert.Equal(t, "debit", args[1])
	assert.Contains(t, query, "AND txn_type = $2")

	// Anything other than credit/debit is ignored, not interpolated.
	query, args = buildSpendingQuery("user-1", SpendingFilters{Direction: "unknown"})
	assert.Len(t, args, 1)
	assert.NotContains(t, query, "txn_type = $")
}

func TestBuildSpendingQueryPeriodTokens(t *testing.T) {
	tests := []struct {
		period string
		want   string
	}{
		{"weekly", "INTERVAL '7 days'"},
		{"week", "INTERVAL '7 days'"},
		{"monthly", "INTERVAL '30 days'"},
		{"month", "INTERVAL '30 days'"},
	}
	for _, tt := range tests {
		query, _ := buildSpendingQuery("user-1", SpendingFilters{Period: tt.period})
		assert.Contains(t, query, "created_at >= NOW() - "+tt.want, "period %q", tt.period)
	}

	query, _ := buildSpendingQuery("user-1", SpendingFilters{Period: "yearly"})
	assert.NotContains(t, query, "INTERVAL")
}

func TestBuildSpendingQuerySort(t *testing.T) {
	query, _ := buildSpendingQuery("user-1", SpendingFilters{Sort: "asc"})
	assert.Contains(t, query, "ORDER BY total_spent ASC")

	query, _ = buildSpendingQuery("user-1", SpendingFilters{Sort: "desc"})
	assert.Contains(t, query, "ORDER BY total_spent DESC")
}

func TestBuildSpendingQueryCombined(t *testing.T) {
	query, args := buildSpendingQuery("user-1", SpendingFilters{
		Direction: "credit",
		Period:    "monthly",
		Sort:      "asc",
	})
	assert.Equal(t, []interface{}{"user-1", "credit"}, args)
	assert.Contains(t, query, "AND txn_type = $2")
	assert.Contains(t, query, "INTERVAL '30 days'")
	assert.Contains(t, query, "ORDER BY total_spent ASC")
}
