package dialog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ivanoskov/health_bot/internal/repository"
	"github.com/ivanoskov/health_bot/internal/service"
)

const helpText = "Запустите команду /set_profile\n\n" +
	"Доступные команды:\n" +
	"/set_profile - настройка профиля\n" +
	"/log_water - записать воду\n" +
	"/log_food - записать еду\n" +
	"/log_workout - записать тренировку\n" +
	"/water_graph - график прогресса по воде\n" +
	"/check_progress - общий прогресс\n" +
	"/recommend - рекомендации"

const setupHint = "Сначала установите профиль: /set_profile"

// HandleCommand обрабатывает команду пользователя. Команда, открывающая
// диалог, затирает текущую сессию; незнакомые команды игнорируются.
func (m *Manager) HandleCommand(ctx context.Context, userID int64, command string) []Reply {
	defer m.lockUser(userID)()

	switch command {
	case "start":
		return []Reply{{Text: helpText, ShowMenu: true}}

	case "set_profile":
		m.startSession(userID, stepProfileWeight)
		return []Reply{textReply("Введите вес (в кг):")}

	case "log_water":
		if reply, ok := m.requireProfile(ctx, userID); !ok {
			return reply
		}
		m.startSession(userID, stepWaterAmount)
		return []Reply{textReply("Введите количество воды в мл:")}

	case "log_food":
		if reply, ok := m.requireProfile(ctx, userID); !ok {
			return reply
		}
		m.startSession(userID, stepFoodName)
		return []Reply{textReply("Что съели?")}

	case "log_workout":
		if reply, ok := m.requireProfile(ctx, userID); !ok {
			return reply
		}
		m.startSession(userID, stepWorkoutType)
		return []Reply{textReply("Какой тип? Пропишите слово: " + m.workoutTypesLine())}

	case "water_graph":
		if reply, ok := m.requireProfile(ctx, userID); !ok {
			return reply
		}
		return m.waterGraph(ctx, userID)

	case "check_progress":
		if reply, ok := m.requireProfile(ctx, userID); !ok {
			return reply
		}
		return m.checkProgress(ctx, userID)

	case "recommend":
		if reply, ok := m.requireProfile(ctx, userID); !ok {
			return reply
		}
		return m.recommend(ctx, userID)
	}

	return nil
}

// requireProfile проверяет, что профиль создан; иначе подсказывает настройку
func (m *Manager) requireProfile(ctx context.Context, userID int64) ([]Reply, bool) {
	_, err := m.tracker.Profile(ctx, userID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return []Reply{textReply(setupHint)}, false
	}
	if err != nil {
		slog.Error("failed to load profile", "user", userID, "error", err)
		return []Reply{textReply(genericErrorText)}, false
	}
	return nil, true
}

func (m *Manager) workoutTypesLine() string {
	names := make([]string, 0, len(m.tracker.WorkoutTypes())+1)
	for _, w := range m.tracker.WorkoutTypes() {
		names = append(names, w.Name)
	}
	names = append(names, otherWorkoutType)
	return strings.Join(names, ", ")
}

func (m *Manager) waterGraph(ctx context.Context, userID int64) []Reply {
	report, err := m.tracker.Progress(ctx, userID)
	if err != nil {
		slog.Error("failed to build water graph", "user", userID, "error", err)
		return []Reply{textReply(genericErrorText)}
	}

	caption := fmt.Sprintf(
		"Прогресс по воде\n\n"+
			"Выпито: %.0f мл (%.1f л)\n"+
			"Цель: %.0f мл (%.1f л)\n"+
			"Осталось: %.0f мл (%.1f л)\n"+
			"Выполнено: %.1f%%\n\n%s",
		report.WaterDrunkML, report.WaterDrunkML/1000,
		report.WaterGoalML, report.WaterGoalML/1000,
		report.WaterLeftML, report.WaterLeftML/1000,
		report.WaterPercent,
		waterBucket(report.WaterPercent))

	photo, err := m.charts.WaterProgress(report.WaterDrunkML/1000, report.WaterLeftML/1000, report.WaterGoalML/1000)
	if err != nil {
		slog.Warn("water chart rendering failed", "user", userID, "error", err)
		return []Reply{textReply(caption)}
	}
	return []Reply{{Text: caption, Photo: photo, PhotoName: "water_graph.png"}}
}

func (m *Manager) checkProgress(ctx context.Context, userID int64) []Reply {
	report, err := m.tracker.Progress(ctx, userID)
	if err != nil {
		slog.Error("failed to build progress report", "user", userID, "error", err)
		return []Reply{textReply(genericErrorText)}
	}

	var b strings.Builder
	fmt.Fprintf(&b,
		"Прогресс\n\n"+
			"Вода:\n"+
			"- Выпито: %.0f мл из %.0f мл\n"+
			"- Осталось: %.0f мл\n\n"+
			"Калории:\n"+
			"- Потреблено: %.0f ккал из %d ккал\n"+
			"- Сожжено: %.0f ккал\n"+
			"- Баланс: %.0f ккал\n"+
			"- До цели осталось: %.0f ккал\n\n",
		report.WaterDrunkML, report.WaterGoalML,
		report.WaterLeftML,
		report.CaloriesConsumed, report.CalorieGoal,
		report.CaloriesBurned,
		report.CaloriesBalance,
		report.CaloriesLeft)

	fmt.Fprintf(&b, "Вода: %s %.1f%%\n", service.ProgressBar(report.WaterPercent), report.WaterPercent)
	fmt.Fprintf(&b, "Калории: %s %.1f%%\n\n", service.ProgressBar(report.CaloriesPercent), report.CaloriesPercent)

	if report.WaterPercent >= 100 {
		b.WriteString("Норма воды выполнена!\n")
	} else if report.WaterPercent < 50 {
		b.WriteString("Выпейте еще воды!\n")
	}

	if report.CaloriesBalance > float64(report.CalorieGoal) {
		fmt.Fprintf(&b, "Превышение: %.0f ккал\n", report.CaloriesBalance-float64(report.CalorieGoal))
	} else if report.CaloriesLeft > 0 {
		fmt.Fprintf(&b, "Можно съесть еще %.0f ккал\n", report.CaloriesLeft)
	}

	return []Reply{textReply(b.String())}
}

func (m *Manager) recommend(ctx context.Context, userID int64) []Reply {
	rec, err := m.tracker.Recommend(ctx, userID)
	if err != nil {
		slog.Error("failed to build recommendation", "user", userID, "error", err)
		return []Reply{textReply(genericErrorText)}
	}

	var b strings.Builder
	b.WriteString("Рекомендации\n\n")
	switch {
	case rec.CaloriesLeft > 0:
		fmt.Fprintf(&b, "Можно съесть еще %.0f ккал\n", rec.CaloriesLeft)
		for _, food := range rec.Foods {
			fmt.Fprintf(&b, "• %s: %.0fг\n", food.Name, food.Grams)
		}
	case rec.CaloriesLeft < 0:
		fmt.Fprintf(&b, "Переели на %.0f ккал\n", -rec.CaloriesLeft)
		if rec.Workout != nil {
			fmt.Fprintf(&b, "• %s: %.0f мин\n", rec.Workout.Name, rec.Workout.Minutes)
		}
	default:
		b.WriteString("Вы в норме!")
	}

	return []Reply{textReply(b.String())}
}
