package enum_test

import (
	"testing"
	"time"

	"github.com/casavia/engage/internal/database/types/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsPeriodDays(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 7, enum.AnalyticsPeriod7D.Days())
	assert.Equal(t, 30, enum.AnalyticsPeriod30D.Days())
	assert.Equal(t, 90, enum.AnalyticsPeriod90D.Days())
}

func TestAnalyticsPeriodWindowStart(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 5, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 5, 8, 12, 0, 0, 0, time.UTC), enum.AnalyticsPeriod7D.WindowStart(now))
	assert.Equal(t, time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC), enum.AnalyticsPeriod30D.WindowStart(now))
	assert.Equal(t, time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC), enum.AnalyticsPeriod90D.WindowStart(now))
}

func TestAnalyticsPeriodString(t *testing.T) {
	t.Parallel()

	period, err := enum.AnalyticsPeriodString("90d")
	require.NoError(t, err)
	assert.Equal(t, enum.AnalyticsPeriod90D, period)

	_, err = enum.AnalyticsPeriodString("1y")
	require.Error(t, err)
}
