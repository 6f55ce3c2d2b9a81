package service

import (
	"math"

	"github.com/ivanoskov/health_bot/internal/model"
)

// Temperature результат запроса погоды; Known=false означает,
// что температуру узнать не удалось
type Temperature struct {
	Celsius float64
	Known   bool
}

// WaterGoal дневная норма воды в литрах.
// База 30 мл/кг, плюс 0.5 л за каждые 30 минут активности,
// плюс поправка на жару выше 25°C.
func WaterGoal(weightKg float64, activityMinutes int, temp Temperature) float64 {
	base := weightKg * 0.03
	activity := float64(activityMinutes) / 30 * 0.5
	heat := 0.0
	if temp.Known && temp.Celsius > 25 {
		heat = (temp.Celsius - 25) * 0.02
	}
	return math.Round((base+activity+heat)*100) / 100
}

// CalorieGoal дневная норма калорий: BMR по Миффлину-Сан Жеору
// плюс бонус за активность, не больше 400 ккал
func CalorieGoal(weightKg, heightCm float64, ageYears, activityMinutes int, sex model.Sex) int {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	if sex == model.SexMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	bonus := math.Min(float64(activityMinutes)/30*50, 400)
	return int(bmr + bonus)
}

// ProgressPercent процент выполнения цели; не обрезается сверху
func ProgressPercent(done, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	return done / goal * 100
}
