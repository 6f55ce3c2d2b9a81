package dialog

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ivanoskov/health_bot/internal/catalog"
	"github.com/ivanoskov/health_bot/internal/model"
	"github.com/ivanoskov/health_bot/internal/service"
)

const genericErrorText = "Что-то пошло не так, попробуйте еще раз"

// otherWorkoutType ветка тренировки с ручным вводом калорий
const otherWorkoutType = "другое"

// HandleText продвигает активный диалог пользователя на один шаг.
// Текст без активной сессии молча игнорируется. Непригодный ввод
// приводит к повторному вопросу, шаг не меняется и сессия не сбрасывается.
func (m *Manager) HandleText(ctx context.Context, userID int64, text string) []Reply {
	defer m.lockUser(userID)()

	s := m.getSession(userID)
	if s == nil {
		return nil
	}

	switch s.step {
	case stepProfileWeight:
		value, ok := parsePositiveFloat(text)
		if !ok {
			return []Reply{textReply("Введите вес числом, например: 70")}
		}
		s.profile.WeightKg = value
		s.step = stepProfileHeight
		return []Reply{textReply("Введите рост (в см):")}

	case stepProfileHeight:
		value, ok := parsePositiveFloat(text)
		if !ok {
			return []Reply{textReply("Введите рост числом, например: 175")}
		}
		s.profile.HeightCm = value
		s.step = stepProfileAge
		return []Reply{textReply("Введите возраст:")}

	case stepProfileAge:
		value, ok := parsePositiveInt(text)
		if !ok {
			return []Reply{textReply("Введите возраст числом, например: 30")}
		}
		s.profile.Age = value
		s.step = stepProfileSex
		return []Reply{textReply("Укажите пол (male / female):")}

	case stepProfileSex:
		sex, err := model.ParseSex(text)
		if err != nil {
			return []Reply{textReply("Введите: male или female")}
		}
		s.profile.Sex = sex
		s.step = stepProfileActivity
		return []Reply{textReply("Сколько минут активности в день?")}

	case stepProfileActivity:
		value, ok := parseNonNegativeInt(text)
		if !ok {
			return []Reply{textReply("Введите минуты активности числом, например: 30")}
		}
		s.profile.ActivityMinutes = value
		s.step = stepProfileCity
		return []Reply{textReply("Введите город:")}

	case stepProfileCity:
		city := strings.TrimSpace(text)
		if city == "" {
			return []Reply{textReply("Введите название города")}
		}
		s.profile.City = city
		return m.commitProfile(ctx, userID, s)

	case stepWaterAmount:
		amount, ok := parsePositiveFloat(text)
		if !ok {
			return []Reply{textReply("Пожалуйста, введите число в мл, например: 250")}
		}
		return m.commitWater(ctx, userID, amount)

	case stepFoodName:
		return m.resolveFood(s, text)

	case stepFoodAmount:
		grams, ok := parsePositiveFloat(text)
		if !ok {
			return []Reply{textReply("Сколько грамм? Например: 120")}
		}
		return m.commitFood(ctx, userID, s, grams)

	case stepWorkoutType:
		s.workoutType = strings.ToLower(strings.TrimSpace(text))
		s.step = stepWorkoutMinutes
		return []Reply{textReply("Сколько минут вы тренировались?")}

	case stepWorkoutMinutes:
		minutes, ok := parsePositiveInt(text)
		if !ok {
			return []Reply{textReply("Введите число минут")}
		}
		s.workoutMinutes = minutes

		if strings.Contains(s.workoutType, otherWorkoutType) {
			s.step = stepWorkoutCalories
			return []Reply{textReply("Сколько примерно калорий сожгли?")}
		}
		rate, known := m.tracker.WorkoutRate(s.workoutType)
		if !known {
			s.step = stepWorkoutCalories
			return []Reply{textReply("Не нашел этот тип. Сколько примерно калорий сожгли?")}
		}
		return m.commitWorkout(ctx, userID, s, rate*float64(minutes))

	case stepWorkoutCalories:
		burned, ok := parsePositiveFloat(text)
		if !ok {
			return []Reply{textReply("Введите число калорий")}
		}
		return m.commitWorkout(ctx, userID, s, burned)
	}

	return nil
}

// commitProfile терминальный шаг настройки: считаем нормы и создаем профиль
func (m *Manager) commitProfile(ctx context.Context, userID int64, s *session) []Reply {
	profile, temp, err := m.tracker.CreateProfile(ctx, userID, s.profile)
	if err != nil {
		slog.Error("failed to create profile", "user", userID, "error", err)
		m.clearSession(userID)
		return []Reply{textReply(genericErrorText)}
	}
	m.clearSession(userID)
	m.dialogCompleted(dialogProfile)

	tempText := "город не найден, без учета температуры"
	if temp.Known {
		tempText = fmt.Sprintf("%.1f°C", temp.Celsius)
	}
	return []Reply{textReply(fmt.Sprintf(
		"Температура: %s\n"+
			"Норма воды: %.2f л\n"+
			"Норма калорий: %d ккал",
		tempText, profile.WaterGoalL, profile.CalorieGoal))}
}

func (m *Manager) commitWater(ctx context.Context, userID int64, amountML float64) []Reply {
	profile, err := m.tracker.LogWater(ctx, userID, amountML)
	if err != nil {
		slog.Error("failed to log water", "user", userID, "error", err)
		m.clearSession(userID)
		return []Reply{textReply(genericErrorText)}
	}
	m.clearSession(userID)
	m.dialogCompleted(dialogWater)

	report := service.BuildProgressReport(profile)
	return []Reply{textReply(fmt.Sprintf(
		"Выпито: %.0f / %.0f мл\nОсталось: %.0f мл",
		report.WaterDrunkML, report.WaterGoalML, report.WaterLeftML))}
}

// resolveFood фиксирует калорийность на шаге названия, до вопроса о граммах.
// Ненайденный продукт не ошибка: подставляется средняя калорийность.
func (m *Manager) resolveFood(s *session, text string) []Reply {
	name := strings.TrimSpace(text)

	var replies []Reply
	food, found := m.tracker.FindFood(name)
	if !found {
		replies = append(replies, textReply(fmt.Sprintf(
			"Не нашел «%s». Использую среднее: %.0f ккал/100г",
			name, catalog.DefaultFoodCalories)))
		food = catalog.FoodItem{Name: name, KcalPer100g: catalog.DefaultFoodCalories}
	}

	s.foodName = food.Name
	s.foodKcalPer100g = food.KcalPer100g
	s.step = stepFoodAmount

	replies = append(replies, textReply(fmt.Sprintf(
		"%s - %.0f ккал/100г. Сколько грамм?", food.Name, food.KcalPer100g)))
	return replies
}

func (m *Manager) commitFood(ctx context.Context, userID int64, s *session, grams float64) []Reply {
	profile, added, err := m.tracker.LogFood(ctx, userID, grams, s.foodKcalPer100g)
	if err != nil {
		slog.Error("failed to log food", "user", userID, "error", err)
		m.clearSession(userID)
		return []Reply{textReply(genericErrorText)}
	}
	m.clearSession(userID)
	m.dialogCompleted(dialogFood)
	slog.Info("food logged", "user", userID, "food", s.foodName, "grams", grams, "kcal", added)

	report := service.BuildProgressReport(profile)
	leftToGoal := float64(report.CalorieGoal) - report.CaloriesConsumed
	if leftToGoal < 0 {
		leftToGoal = 0
	}
	caption := fmt.Sprintf(
		"Суммарно: %.0f / %d ккал\n"+
			"Осталось: %.0f ккал\n"+
			"Выполнено: %.1f%%\n\n%s",
		report.CaloriesConsumed, report.CalorieGoal,
		leftToGoal,
		report.CaloriesPercent,
		calorieBucket(report.CaloriesPercent))

	photo, err := m.charts.CalorieProgress(report.CaloriesConsumed, leftToGoal, float64(report.CalorieGoal))
	if err != nil {
		slog.Warn("calorie chart rendering failed", "user", userID, "error", err)
		return []Reply{textReply(caption)}
	}
	return []Reply{{Text: caption, Photo: photo, PhotoName: "calories_graph.png"}}
}

// commitWorkout терминальный шаг тренировки: единственное место, где
// добавляются минуты и пересчитывается норма воды
func (m *Manager) commitWorkout(ctx context.Context, userID int64, s *session, burnedKcal float64) []Reply {
	profile, err := m.tracker.LogWorkout(ctx, userID, s.workoutType, s.workoutMinutes, burnedKcal)
	if err != nil {
		slog.Error("failed to log workout", "user", userID, "error", err)
		m.clearSession(userID)
		return []Reply{textReply(genericErrorText)}
	}
	m.clearSession(userID)
	m.dialogCompleted(dialogWorkout)

	report := service.BuildProgressReport(profile)
	return []Reply{textReply(fmt.Sprintf(
		"🏋️‍♂️ %s %d мин = %.0f ккал\n\n"+
			"Прогресс:\n"+
			"Калории осталось: %.0f ккал\n"+
			"Воды осталось: %.0f мл (%.1f%%)\n"+
			"Норма воды обновлена: %.1f л",
		s.workoutType, s.workoutMinutes, burnedKcal,
		report.CaloriesLeft,
		report.WaterLeftML, report.WaterPercent,
		profile.WaterGoalL))}
}

func waterBucket(percent float64) string {
	switch {
	case percent >= 100:
		return "Отлично! Вы выполнили норму!"
	case percent >= 75:
		return "Почти у цели!"
	case percent >= 50:
		return "Продолжайте в том же духе!"
	default:
		return "Еще есть что пить!"
	}
}

func calorieBucket(percent float64) string {
	switch {
	case percent >= 100:
		return "Вы достигли нормы калорий!"
	case percent >= 75:
		return "Почти у цели :)"
	case percent >= 50:
		return "Неплохо, продолжайте!"
	default:
		return "Еще есть место для еды!"
	}
}

func parsePositiveFloat(text string) (float64, bool) {
	value, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(text, ",", ".")), 64)
	if err != nil || value <= 0 {
		return 0, false
	}
	return value, true
}

func parsePositiveInt(text string) (int, bool) {
	value, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || value <= 0 {
		return 0, false
	}
	return value, true
}

func parseNonNegativeInt(text string) (int, bool) {
	value, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || value < 0 {
		return 0, false
	}
	return value, true
}
