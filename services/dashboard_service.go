package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/mayank7tyagi/FitJourney-App/models"
	"github.com/mayank7tyagi/FitJourney-App/utils"
)

type DashboardService struct{ db *gorm.DB }

func NewDashboardService(db *gorm.DB) *DashboardService { return &DashboardService{db: db} }

// PieChartEntry is one category slice of the daily breakdown. Entries are
// sorted by label and ids follow that order, so the same record set always
// yields the same ids.
type PieChartEntry struct {
	ID    int     `json:"id"`
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

type WeeklyCalories struct {
	Weeks          []string  `json:"weeks"`
	CaloriesBurned []float64 `json:"caloriesBurned"`
}

type DaySummary struct {
	TotalCaloriesBurnt         float64         `json:"totalCaloriesBurnt"`
	TotalWorkouts              int64           `json:"totalWorkouts"`
	AvgCaloriesBurntPerWorkout float64         `json:"avgCaloriesBurntPerWorkout"`
	CategoryBreakdown          []PieChartEntry `json:"categoryBreakdown"`
}

type DashboardResponse struct {
	TotalCaloriesBurnt         float64         `json:"totalCaloriesBurnt"`
	TotalWorkouts              int64           `json:"totalWorkouts"`
	AvgCaloriesBurntPerWorkout float64         `json:"avgCaloriesBurntPerWorkout"`
	TotalWeeksCaloriesBurnt    WeeklyCalories  `json:"totalWeeksCaloriesBurnt"`
	PieChartData               []PieChartEntry `json:"pieChartData"`
}

// DailySummary aggregates one user's records over [startOfDay, endOfDay).
func (s *DashboardService) DailySummary(ctx context.Context, userID uint, day time.Time) (*DaySummary, error) {
	start := dayStart(day)
	end := start.AddDate(0, 0, 1)
	window := s.db.WithContext(ctx).
		Model(&models.Workout{}).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end)

	var total float64
	if err := window.Session(&gorm.Session{}).
		Select("COALESCE(SUM(calories_burned), 0)").
		Scan(&total).Error; err != nil {
		return nil, utils.NewInternalError(err)
	}

	var count int64
	if err := window.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return nil, utils.NewInternalError(err)
	}

	var avg float64
	if count > 0 {
		avg = total / float64(count)
	}

	breakdown := []PieChartEntry{}
	var groups []struct {
		Label string
		Value float64
	}
	if err := window.Session(&gorm.Session{}).
		Select("category AS label, SUM(calories_burned) AS value").
		Group("category").
		Order("category ASC").
		Scan(&groups).Error; err != nil {
		return nil, utils.NewInternalError(err)
	}
	for i, g := range groups {
		breakdown = append(breakdown, PieChartEntry{ID: i, Value: g.Value, Label: g.Label})
	}

	return &DaySummary{
		TotalCaloriesBurnt:         total,
		TotalWorkouts:              count,
		AvgCaloriesBurntPerWorkout: avg,
		CategoryBreakdown:          breakdown,
	}, nil
}

// WeeklyTrend returns calorie totals for the 7 days ending at endDay, oldest
// first. Each day is its own windowed query, so every figure is
// self-consistent even while other days are being written to. Days without
// records report 0.
func (s *DashboardService) WeeklyTrend(ctx context.Context, userID uint, endDay time.Time) (*WeeklyCalories, error) {
	trend := &WeeklyCalories{
		Weeks:          make([]string, 0, 7),
		CaloriesBurned: make([]float64, 0, 7),
	}

	for i := 6; i >= 0; i-- {
		day := dayStart(endDay).AddDate(0, 0, -i)
		end := day.AddDate(0, 0, 1)

		var total float64
		if err := s.db.WithContext(ctx).
			Model(&models.Workout{}).
			Where("user_id = ? AND date >= ? AND date < ?", userID, day, end).
			Select("COALESCE(SUM(calories_burned), 0)").
			Scan(&total).Error; err != nil {
			return nil, utils.NewInternalError(err)
		}

		trend.Weeks = append(trend.Weeks, fmt.Sprintf("%dth", day.Day()))
		trend.CaloriesBurned = append(trend.CaloriesBurned, total)
	}

	return trend, nil
}

// Dashboard assembles today's summary and the 7-day trend for the dashboard
// view. Everything is recomputed from stored records on every call.
func (s *DashboardService) Dashboard(ctx context.Context, userID uint, day time.Time) (*DashboardResponse, error) {
	summary, err := s.DailySummary(ctx, userID, day)
	if err != nil {
		return nil, err
	}

	trend, err := s.WeeklyTrend(ctx, userID, day)
	if err != nil {
		return nil, err
	}

	return &DashboardResponse{
		TotalCaloriesBurnt:         summary.TotalCaloriesBurnt,
		TotalWorkouts:              summary.TotalWorkouts,
		AvgCaloriesBurntPerWorkout: summary.AvgCaloriesBurntPerWorkout,
		TotalWeeksCaloriesBurnt:    *trend,
		PieChartData:               summary.CategoryBreakdown,
	}, nil
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
