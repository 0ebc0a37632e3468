package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailySummary_EmptyRecordSet(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "summary-empty@test.com")
	svc := NewDashboardService(db)

	summary, err := svc.DailySummary(context.Background(), user.ID, time.Now())
	require.NoError(t, err)

	assert.Zero(t, summary.TotalCaloriesBurnt)
	assert.Zero(t, summary.TotalWorkouts)
	assert.Zero(t, summary.AvgCaloriesBurntPerWorkout)
	assert.Empty(t, summary.CategoryBreakdown)
}

func TestDailySummary_TotalsAndAverage(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "summary@test.com")
	svc := NewDashboardService(db)

	today := time.Now()
	addTestWorkout(t, db, user.ID, "Legs", 9000, today)
	addTestWorkout(t, db, user.ID, "Back", 1000, today)
	// outside the window
	addTestWorkout(t, db, user.ID, "Legs", 7777, today.AddDate(0, 0, -1))

	summary, err := svc.DailySummary(context.Background(), user.ID, today)
	require.NoError(t, err)

	assert.Equal(t, 10000.0, summary.TotalCaloriesBurnt)
	assert.Equal(t, int64(2), summary.TotalWorkouts)
	assert.Equal(t, 5000.0, summary.AvgCaloriesBurntPerWorkout)
}

func TestDailySummary_CategoryBreakdownSortedByLabel(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "breakdown@test.com")
	svc := NewDashboardService(db)

	today := time.Now()
	addTestWorkout(t, db, user.ID, "Legs", 9000, today)
	addTestWorkout(t, db, user.ID, "Back", 1000, today)
	addTestWorkout(t, db, user.ID, "Legs", 500, today)

	summary, err := svc.DailySummary(context.Background(), user.ID, today)
	require.NoError(t, err)
	require.Len(t, summary.CategoryBreakdown, 2)

	assert.Equal(t, 0, summary.CategoryBreakdown[0].ID)
	assert.Equal(t, "Back", summary.CategoryBreakdown[0].Label)
	assert.Equal(t, 1000.0, summary.CategoryBreakdown[0].Value)

	assert.Equal(t, 1, summary.CategoryBreakdown[1].ID)
	assert.Equal(t, "Legs", summary.CategoryBreakdown[1].Label)
	assert.Equal(t, 9500.0, summary.CategoryBreakdown[1].Value)
}

func TestDailySummary_Idempotent(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "idempotent@test.com")
	svc := NewDashboardService(db)

	today := time.Now()
	addTestWorkout(t, db, user.ID, "Legs", 9000, today)
	addTestWorkout(t, db, user.ID, "Cardio", 700, today)

	first, err := svc.DailySummary(context.Background(), user.ID, today)
	require.NoError(t, err)
	second, err := svc.DailySummary(context.Background(), user.ID, today)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestWeeklyTrend_AlwaysSevenEntries(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "trend@test.com")
	svc := NewDashboardService(db)

	trend, err := svc.WeeklyTrend(context.Background(), user.ID, time.Now())
	require.NoError(t, err)

	require.Len(t, trend.Weeks, 7)
	require.Len(t, trend.CaloriesBurned, 7)
	for _, total := range trend.CaloriesBurned {
		assert.Zero(t, total)
	}
}

func TestWeeklyTrend_DayOfMonthLabels(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "trend-labels@test.com")
	svc := NewDashboardService(db)

	endDay := time.Now()
	trend, err := svc.WeeklyTrend(context.Background(), user.ID, endDay)
	require.NoError(t, err)
	require.Len(t, trend.Weeks, 7)

	for i, label := range trend.Weeks {
		day := endDay.AddDate(0, 0, i-6)
		assert.Equal(t, fmt.Sprintf("%dth", day.Day()), label)
	}
}

func TestWeeklyTrend_OldestFirst(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "trend-order@test.com")
	svc := NewDashboardService(db)

	today := time.Now()
	addTestWorkout(t, db, user.ID, "Legs", 9000, today)
	addTestWorkout(t, db, user.ID, "Back", 3000, today.AddDate(0, 0, -6))
	// older than the window
	addTestWorkout(t, db, user.ID, "Back", 4000, today.AddDate(0, 0, -7))

	trend, err := svc.WeeklyTrend(context.Background(), user.ID, today)
	require.NoError(t, err)
	require.Len(t, trend.CaloriesBurned, 7)

	assert.Equal(t, 3000.0, trend.CaloriesBurned[0])
	assert.Equal(t, 9000.0, trend.CaloriesBurned[6])
	for i := 1; i < 6; i++ {
		assert.Zero(t, trend.CaloriesBurned[i])
	}
}

func TestDashboard_CombinesSummaryAndTrend(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "dashboard@test.com")
	svc := NewDashboardService(db)

	today := time.Now()
	addTestWorkout(t, db, user.ID, "Legs", 9000, today)
	addTestWorkout(t, db, user.ID, "Back", 1000, today)

	resp, err := svc.Dashboard(context.Background(), user.ID, today)
	require.NoError(t, err)

	assert.Equal(t, 10000.0, resp.TotalCaloriesBurnt)
	assert.Equal(t, int64(2), resp.TotalWorkouts)
	assert.Equal(t, 5000.0, resp.AvgCaloriesBurntPerWorkout)
	assert.Len(t, resp.PieChartData, 2)
	assert.Len(t, resp.TotalWeeksCaloriesBurnt.Weeks, 7)
	assert.Equal(t, 10000.0, resp.TotalWeeksCaloriesBurnt.CaloriesBurned[6])
}
