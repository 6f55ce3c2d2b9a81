package service

import (
	"context"
	"math"
)

// foodSuggestionCount сколько продуктов предлагать при недоборе калорий
const foodSuggestionCount = 5

// FoodSuggestion продукт и граммовка, закрывающая остаток калорий
type FoodSuggestion struct {
	Name  string
	Grams float64
}

// WorkoutSuggestion тренировка и минуты, сжигающие перебор
type WorkoutSuggestion struct {
	Name    string
	Minutes float64
}

// Recommendation рекомендации по остатку калорий.
// При недоборе заполнен Foods, при переборе Workout, при точном
// попадании в норму оба пустые.
type Recommendation struct {
	CaloriesLeft float64
	Foods        []FoodSuggestion
	Workout      *WorkoutSuggestion
}

// Recommend строит рекомендации: остаток = норма - (потреблено - сожжено)
func (t *HealthTracker) Recommend(ctx context.Context, userID int64) (Recommendation, error) {
	profile, err := t.repo.Get(ctx, userID)
	if err != nil {
		return Recommendation{}, err
	}

	left := float64(profile.CalorieGoal) - (profile.LoggedCalories - profile.BurnedCalories)
	rec := Recommendation{CaloriesLeft: left}

	switch {
	case left > 0:
		for _, food := range t.catalog.TopFoods(foodSuggestionCount) {
			if food.KcalPer100g <= 0 {
				continue
			}
			rec.Foods = append(rec.Foods, FoodSuggestion{
				Name:  food.Name,
				Grams: left / food.KcalPer100g * 100,
			})
		}
	case left < 0:
		excess := math.Abs(left)
		for _, w := range t.catalog.Workouts() {
			if w.KcalPerMinute <= 0 {
				continue
			}
			rec.Workout = &WorkoutSuggestion{
				Name:    w.Name,
				Minutes: excess / w.KcalPerMinute,
			}
			break
		}
	}
	return rec, nil
}
