package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mayank7tyagi/FitJourney-App/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Workout{}))
	return db
}

func newTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{Email: email, Password: "x", Name: "Test User"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func addTestWorkout(t *testing.T, db *gorm.DB, userID uint, category string, calories float64, date time.Time) {
	t.Helper()

	require.NoError(t, db.Create(&models.Workout{
		UserID:         userID,
		Category:       category,
		WorkoutName:    "Test",
		Sets:           1,
		Reps:           1,
		Weight:         1,
		Duration:       1,
		CaloriesBurned: calories,
		Date:           date,
	}).Error)
}
