package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mayank7tyagi/FitJourney-App/services"
	"github.com/mayank7tyagi/FitJourney-App/utils"
)

type WorkoutController struct {
	workouts *services.WorkoutService
	users    *services.UserService
}

func NewWorkoutController(workouts *services.WorkoutService, users *services.UserService) *WorkoutController {
	return &WorkoutController{workouts: workouts, users: users}
}

type AddWorkoutInput struct {
	WorkoutString string `json:"workoutString"`
}

func (wc *WorkoutController) AddWorkout(c *gin.Context) {
	userID := currentUserID(c)
	if _, err := wc.users.FindByID(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	var input AddWorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil || input.WorkoutString == "" {
		respondError(c, utils.NewValidationError("Workout string is missing"))
		return
	}

	workouts, err := wc.workouts.AddWorkouts(c.Request.Context(), userID, input.WorkoutString)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Workouts added successfully",
		"workouts": workouts,
	})
}

func (wc *WorkoutController) GetWorkoutsByDate(c *gin.Context) {
	userID := currentUserID(c)
	if _, err := wc.users.FindByID(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			respondError(c, utils.NewValidationError("Invalid date, expected YYYY-MM-DD"))
			return
		}
		date = parsed
	}

	workouts, total, err := wc.workouts.WorkoutsByDate(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"todaysWorkouts":     workouts,
		"totalCaloriesBurnt": total,
	})
}
