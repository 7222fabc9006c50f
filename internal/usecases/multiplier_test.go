package usecases_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"refgate.backend/internal/usecases"
)

// The hard cap makes the base non-additive at the top: the totals for
// 0..4 completed referrals are exactly 2,3,3,3,3.
func TestCalculateMultiplier(t *testing.T) {
	cases := []struct {
		completed  int64
		bonus      int
		total      int
		maxReached bool
	}{
		{0, 0, 2, false},
		{1, 1, 3, false},
		{2, 2, 3, false},
		{3, 3, 3, true},
		{4, 3, 3, true},
		{100, 3, 3, true},
	}

	for _, tc := range cases {
		m := usecases.CalculateMultiplier(tc.completed)
		assert.Equal(t, usecases.BaseMultiplier, m.Base, "completed=%d", tc.completed)
		assert.Equal(t, tc.bonus, m.Bonus, "completed=%d", tc.completed)
		assert.Equal(t, tc.total, m.Total, "completed=%d", tc.completed)
		assert.Equal(t, tc.maxReached, m.MaxBonusReached, "completed=%d", tc.completed)
	}
}

// The total never decreases as the count grows.
func TestCalculateMultiplier_Monotonic(t *testing.T) {
	prev := usecases.CalculateMultiplier(0).Total
	for n := int64(1); n <= 10; n++ {
		total := usecases.CalculateMultiplier(n).Total
		assert.GreaterOrEqual(t, total, prev)
		prev = total
	}
}
