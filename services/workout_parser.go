package services

import (
	"math"
	"strconv"
	"strings"

	"github.com/mayank7tyagi/FitJourney-App/models"
	"github.com/mayank7tyagi/FitJourney-App/utils"
)

// The workout shorthand: blocks are separated by ';', and every block is one
// workout. A block holds five line-break-separated parts in fixed order:
//
//	#Legs
//	@Squats
//	*4sets12reps
//	*60kg
//	*30min
//
// Each field line carries a single leading tag character which is stripped
// before the value is read.

// ParseWorkoutString tokenizes and parses a full submission into draft
// records with calories attached. Any malformed block fails the whole
// submission; nothing is returned for partial parses.
func ParseWorkoutString(raw string) ([]models.Workout, error) {
	lines := strings.Split(raw, ";")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	categories := 0
	for _, line := range lines {
		if strings.HasPrefix(line, "#") {
			categories++
		}
	}
	if categories == 0 {
		return nil, utils.NewValidationError("No categories found in workout string")
	}

	var workouts []models.Workout
	for i, line := range lines {
		count := i + 1
		if !strings.HasPrefix(line, "#") {
			return nil, utils.NewValidationError("Workout string is missing for %dth workout", count)
		}

		parts := strings.Split(line, "\n")
		for j := range parts {
			parts[j] = strings.TrimSpace(parts[j])
		}
		if len(parts) < 5 {
			return nil, utils.NewValidationError("Workout string is missing for %dth workout", count)
		}

		workout, err := parseWorkoutParts(parts, count)
		if err != nil {
			return nil, err
		}

		workout.Category = strings.TrimSpace(strings.TrimPrefix(parts[0], "#"))
		workout.CaloriesBurned = CalculateCaloriesBurnt(workout)
		workouts = append(workouts, *workout)
	}

	return workouts, nil
}

// parseWorkoutParts reads the four fixed-position field lines of one block.
// Every numeric field must parse and fall in its domain (positive sets and
// reps, non-negative weight and duration); a bad value fails the block
// instead of carrying NaN or a negative calorie figure into the record.
func parseWorkoutParts(parts []string, count int) (*models.Workout, error) {
	name := stripTag(parts[1])
	if name == "" {
		return nil, utils.NewValidationError("Please enter in proper format for %dth workout", count)
	}

	setsReps := strings.SplitN(parts[2], "sets", 2)
	if len(setsReps) != 2 {
		return nil, utils.NewValidationError("Please enter in proper format for %dth workout", count)
	}
	sets, err := strconv.Atoi(stripTag(setsReps[0]))
	if err != nil || sets <= 0 {
		return nil, utils.NewValidationError("Please enter in proper format for %dth workout", count)
	}
	reps, err := strconv.Atoi(strings.TrimSpace(strings.SplitN(setsReps[1], "reps", 2)[0]))
	if err != nil || reps <= 0 {
		return nil, utils.NewValidationError("Please enter in proper format for %dth workout", count)
	}

	weight, err := strconv.ParseFloat(stripTag(strings.SplitN(parts[3], "kg", 2)[0]), 64)
	if err != nil || weight < 0 {
		return nil, utils.NewValidationError("Please enter in proper format for %dth workout", count)
	}

	duration, err := strconv.ParseFloat(stripTag(strings.SplitN(parts[4], "min", 2)[0]), 64)
	if err != nil || duration < 0 {
		return nil, utils.NewValidationError("Please enter in proper format for %dth workout", count)
	}

	return &models.Workout{
		WorkoutName: name,
		Sets:        sets,
		Reps:        reps,
		Weight:      weight,
		Duration:    duration,
	}, nil
}

// stripTag drops the single leading tag character ('@', '*', ...) and
// surrounding whitespace.
func stripTag(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return strings.TrimSpace(s[1:])
}

// CalculateCaloriesBurnt derives energy expenditure from duration and weight.
// Both are truncated to whole numbers first; the fractional loss is intended.
func CalculateCaloriesBurnt(workout *models.Workout) float64 {
	const caloriesBurntPerMinute = 5
	return math.Floor(workout.Duration) * caloriesBurntPerMinute * math.Floor(workout.Weight)
}
