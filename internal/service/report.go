package service

import (
	"context"
	"math"
	"strings"

	"github.com/ivanoskov/health_bot/internal/model"
)

// ProgressReport производные показатели дня для одного профиля.
// Баланс = потреблено - сожжено; осталось = max(норма - баланс, 0).
type ProgressReport struct {
	WaterDrunkML float64
	WaterGoalML  float64
	WaterLeftML  float64
	WaterPercent float64

	CalorieGoal      int
	CaloriesConsumed float64
	CaloriesBurned   float64
	CaloriesBalance  float64
	CaloriesLeft     float64
	CaloriesPercent  float64
}

// Progress отчет о прогрессе пользователя за день
func (t *HealthTracker) Progress(ctx context.Context, userID int64) (ProgressReport, error) {
	profile, err := t.repo.Get(ctx, userID)
	if err != nil {
		return ProgressReport{}, err
	}
	return BuildProgressReport(profile), nil
}

// BuildProgressReport считает производные показатели по снимку профиля
func BuildProgressReport(p model.UserProfile) ProgressReport {
	goalML := p.WaterGoalL * 1000
	balance := p.LoggedCalories - p.BurnedCalories

	return ProgressReport{
		WaterDrunkML: p.LoggedWaterML,
		WaterGoalML:  goalML,
		WaterLeftML:  math.Max(goalML-p.LoggedWaterML, 0),
		WaterPercent: ProgressPercent(p.LoggedWaterML, goalML),

		CalorieGoal:      p.CalorieGoal,
		CaloriesConsumed: p.LoggedCalories,
		CaloriesBurned:   p.BurnedCalories,
		CaloriesBalance:  balance,
		CaloriesLeft:     math.Max(float64(p.CalorieGoal)-balance, 0),
		CaloriesPercent:  ProgressPercent(p.LoggedCalories, float64(p.CalorieGoal)),
	}
}

const progressBarCells = 10

// ProgressBar текстовый прогресс-бар из 10 ячеек: [▓▓▓░░░░░░░]
func ProgressBar(percent float64) string {
	filled := int(progressBarCells * math.Min(percent, 100) / 100)
	return "[" + strings.Repeat("▓", filled) + strings.Repeat("░", progressBarCells-filled) + "]"
}
