package models

import (
	"time"

	"gorm.io/gorm"
)

// Workout is one logged exercise. CaloriesBurned is always recomputed
// server-side from Weight and Duration, never taken from input. Records are
// append-only; there are no update or delete endpoints.
type Workout struct {
	gorm.Model
	UserID         uint      `gorm:"index;not null" json:"-"`
	Category       string    `gorm:"not null" json:"category"`
	WorkoutName    string    `gorm:"not null" json:"workoutName"`
	Sets           int       `json:"sets"`
	Reps           int       `json:"reps"`
	Weight         float64   `json:"weight"`   // kg
	Duration       float64   `json:"duration"` // minutes
	CaloriesBurned float64   `json:"caloriesBurned"`
	Date           time.Time `gorm:"index;not null" json:"date"`
}
