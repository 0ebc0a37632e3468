package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/mayank7tyagi/FitJourney-App/models"
	"github.com/mayank7tyagi/FitJourney-App/utils"
)

type WorkoutService struct{ db *gorm.DB }

func NewWorkoutService(db *gorm.DB) *WorkoutService { return &WorkoutService{db: db} }

// AddWorkouts parses a shorthand submission and persists every resulting
// record in one transaction. The whole submission is validated before
// anything is written, so a malformed block never leaves partial records
// behind.
func (s *WorkoutService) AddWorkouts(ctx context.Context, userID uint, workoutString string) ([]models.Workout, error) {
	if strings.TrimSpace(workoutString) == "" {
		return nil, utils.NewValidationError("Workout string is missing")
	}

	workouts, err := ParseWorkoutString(workoutString)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	for i := range workouts {
		workouts[i].UserID = userID
		workouts[i].Date = now
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range workouts {
			if err := tx.Create(&workouts[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.NewValidationError("Duplicate workout record")
		}
		logrus.WithError(err).WithField("userID", userID).Error("persisting workouts failed")
		return nil, utils.NewInternalError(err)
	}

	return workouts, nil
}

// WorkoutsByDate returns a user's records for one calendar day plus their
// summed calories.
func (s *WorkoutService) WorkoutsByDate(ctx context.Context, userID uint, date time.Time) ([]models.Workout, float64, error) {
	start := dayStart(date)
	end := start.AddDate(0, 0, 1)

	workouts := []models.Workout{}
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("date ASC").
		Find(&workouts).Error; err != nil {
		return nil, 0, utils.NewInternalError(err)
	}

	var total float64
	for _, w := range workouts {
		total += w.CaloriesBurned
	}
	return workouts, total, nil
}
