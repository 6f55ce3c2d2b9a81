// Package service содержит доменную логику трекера: расчет норм,
// накопление дневных счетчиков и производные отчеты.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ivanoskov/health_bot/internal/catalog"
	"github.com/ivanoskov/health_bot/internal/model"
	"github.com/ivanoskov/health_bot/internal/repository"
)

// TemperatureService отдает текущую температуру города; ok=false — неизвестна
type TemperatureService interface {
	CurrentTemperature(ctx context.Context, city string) (float64, bool)
}

// HealthTracker сервис учета воды, еды и тренировок
type HealthTracker struct {
	repo    repository.ProfileRepository
	weather TemperatureService
	catalog *catalog.Catalog
}

func NewHealthTracker(repo repository.ProfileRepository, weather TemperatureService, cat *catalog.Catalog) *HealthTracker {
	return &HealthTracker{
		repo:    repo,
		weather: weather,
		catalog: cat,
	}
}

// ProfileDraft ответы диалога настройки профиля до коммита
type ProfileDraft struct {
	WeightKg        float64
	HeightCm        float64
	Age             int
	Sex             model.Sex
	ActivityMinutes int
	City            string
}

// CreateProfile создает (или полностью заменяет) профиль: считает нормы
// по анкете и обнуляет все счетчики. Норма калорий после этого не меняется.
func (t *HealthTracker) CreateProfile(ctx context.Context, userID int64, draft ProfileDraft) (model.UserProfile, Temperature, error) {
	temp := t.lookupTemperature(ctx, draft.City)

	profile := model.UserProfile{
		UserID:          userID,
		WeightKg:        draft.WeightKg,
		HeightCm:        draft.HeightCm,
		Age:             draft.Age,
		Sex:             draft.Sex,
		ActivityMinutes: draft.ActivityMinutes,
		City:            draft.City,
		WaterGoalL:      WaterGoal(draft.WeightKg, draft.ActivityMinutes, temp),
		CalorieGoal:     CalorieGoal(draft.WeightKg, draft.HeightCm, draft.Age, draft.ActivityMinutes, draft.Sex),
		WaterHistory:    []model.WaterLogEntry{},
		CreatedAt:       time.Now(),
	}

	if err := t.repo.Save(ctx, &profile); err != nil {
		return model.UserProfile{}, temp, fmt.Errorf("failed to save profile: %w", err)
	}
	return profile, temp, nil
}

// Profile снимок профиля пользователя
func (t *HealthTracker) Profile(ctx context.Context, userID int64) (model.UserProfile, error) {
	return t.repo.Get(ctx, userID)
}

// LogWater добавляет выпитую воду и дописывает запись в историю
func (t *HealthTracker) LogWater(ctx context.Context, userID int64, amountML float64) (model.UserProfile, error) {
	entry := model.WaterLogEntry{
		AmountML: amountML,
		LoggedAt: time.Now(),
	}
	entry.GenerateID()

	return t.repo.Update(ctx, userID, func(p *model.UserProfile) {
		p.LoggedWaterML += amountML
		p.WaterHistory = append(p.WaterHistory, entry)
	})
}

// FindFood ищет продукт в справочнике (точно, затем нечетко)
func (t *HealthTracker) FindFood(name string) (catalog.FoodItem, bool) {
	return t.catalog.LookupFood(name)
}

// LogFood добавляет съеденные калории: граммы/100 × ккал на 100 г.
// Возвращает обновленный профиль и добавленные калории.
func (t *HealthTracker) LogFood(ctx context.Context, userID int64, grams, kcalPer100g float64) (model.UserProfile, float64, error) {
	added := grams / 100 * kcalPer100g
	profile, err := t.repo.Update(ctx, userID, func(p *model.UserProfile) {
		p.LoggedCalories += added
	})
	return profile, added, err
}

// WorkoutTypes список тренировок справочника в фиксированном порядке
func (t *HealthTracker) WorkoutTypes() []catalog.WorkoutItem {
	return t.catalog.Workouts()
}

// WorkoutRate расход калорий в минуту для типа тренировки
func (t *HealthTracker) WorkoutRate(name string) (float64, bool) {
	return t.catalog.WorkoutRate(name)
}

// LogWorkout единственная точка коммита тренировки: добавляет сожженные
// калории и минуты, затем один раз пересчитывает норму воды от суммарной
// активности (базовая + все тренировки) и свежей температуры.
// Норма калорий не трогается.
func (t *HealthTracker) LogWorkout(ctx context.Context, userID int64, workoutType string, minutes int, burnedKcal float64) (model.UserProfile, error) {
	current, err := t.repo.Get(ctx, userID)
	if err != nil {
		return model.UserProfile{}, err
	}
	temp := t.lookupTemperature(ctx, current.City)

	profile, err := t.repo.Update(ctx, userID, func(p *model.UserProfile) {
		p.BurnedCalories += burnedKcal
		p.WorkoutMinutes += minutes
		p.WaterGoalL = WaterGoal(p.WeightKg, p.TotalActivityMinutes(), temp)
	})
	if err != nil {
		return model.UserProfile{}, err
	}

	slog.Info("workout logged",
		"user", userID,
		"type", workoutType,
		"minutes", minutes,
		"burned_kcal", burnedKcal,
		"water_goal_l", profile.WaterGoalL)
	return profile, nil
}

func (t *HealthTracker) lookupTemperature(ctx context.Context, city string) Temperature {
	celsius, ok := t.weather.CurrentTemperature(ctx, city)
	if !ok {
		return Temperature{}
	}
	return Temperature{Celsius: celsius, Known: true}
}
