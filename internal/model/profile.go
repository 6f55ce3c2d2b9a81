package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Sex определяет пол пользователя для расчета BMR
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// ParseSex разбирает пользовательский ввод пола (без учета регистра)
func ParseSex(text string) (Sex, error) {
	switch Sex(strings.ToLower(strings.TrimSpace(text))) {
	case SexMale:
		return SexMale, nil
	case SexFemale:
		return SexFemale, nil
	}
	return "", fmt.Errorf("unknown sex %q", text)
}

// WaterLogEntry одна запись о выпитой воде
type WaterLogEntry struct {
	ID       string    `json:"id"`
	AmountML float64   `json:"amount_ml"`
	LoggedAt time.Time `json:"logged_at"`
}

// GenerateID генерирует новый UUID для записи, если он еще не установлен
func (e *WaterLogEntry) GenerateID() {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
}

// UserProfile профиль пользователя с дневными счетчиками.
//
// WaterGoalL пересчитывается при изменении суммарной активности,
// CalorieGoal фиксируется при создании профиля и больше не меняется.
// Счетчики только растут; сбрасываются только заменой профиля.
type UserProfile struct {
	UserID int64 `json:"user_id"`

	WeightKg        float64 `json:"weight_kg"`
	HeightCm        float64 `json:"height_cm"`
	Age             int     `json:"age"`
	Sex             Sex     `json:"sex"`
	ActivityMinutes int     `json:"activity_minutes"` // базовая активность в день
	City            string  `json:"city"`

	WaterGoalL  float64 `json:"water_goal_l"`
	CalorieGoal int     `json:"calorie_goal"`

	LoggedWaterML  float64         `json:"logged_water_ml"`
	LoggedCalories float64         `json:"logged_calories"`
	BurnedCalories float64         `json:"burned_calories"`
	WorkoutMinutes int             `json:"workout_minutes"`
	WaterHistory   []WaterLogEntry `json:"water_history"`

	CreatedAt time.Time `json:"created_at"`
}

// TotalActivityMinutes суммарная активность: базовая плюс залогированные тренировки
func (p *UserProfile) TotalActivityMinutes() int {
	return p.ActivityMinutes + p.WorkoutMinutes
}

// Clone возвращает копию профиля с независимой историей воды
func (p *UserProfile) Clone() UserProfile {
	cp := *p
	cp.WaterHistory = make([]WaterLogEntry, len(p.WaterHistory))
	copy(cp.WaterHistory, p.WaterHistory)
	return cp
}
