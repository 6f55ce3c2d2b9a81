package service

import (
	"testing"

	"github.com/ivanoskov/health_bot/internal/model"
)

func TestBuildProgressReport(t *testing.T) {
	profile := model.UserProfile{
		WaterGoalL:     2.5,
		CalorieGoal:    2000,
		LoggedWaterML:  1500,
		LoggedCalories: 1800,
		BurnedCalories: 300,
	}

	report := BuildProgressReport(profile)

	if report.WaterGoalML != 2500 {
		t.Errorf("WaterGoalML = %v, want 2500", report.WaterGoalML)
	}
	if report.WaterLeftML != 1000 {
		t.Errorf("WaterLeftML = %v, want 1000", report.WaterLeftML)
	}
	if report.WaterPercent != 60 {
		t.Errorf("WaterPercent = %v, want 60", report.WaterPercent)
	}
	if report.CaloriesBalance != 1500 {
		t.Errorf("CaloriesBalance = %v, want 1500 (consumed - burned)", report.CaloriesBalance)
	}
	if report.CaloriesLeft != 500 {
		t.Errorf("CaloriesLeft = %v, want 500 (goal - balance)", report.CaloriesLeft)
	}
	if report.CaloriesPercent != 90 {
		t.Errorf("CaloriesPercent = %v, want 90", report.CaloriesPercent)
	}
}

func TestBuildProgressReportLeftNeverNegative(t *testing.T) {
	profile := model.UserProfile{
		WaterGoalL:     2.0,
		CalorieGoal:    1500,
		LoggedWaterML:  3000,
		LoggedCalories: 2500,
	}

	report := BuildProgressReport(profile)
	if report.WaterLeftML != 0 {
		t.Errorf("WaterLeftML = %v, want 0", report.WaterLeftML)
	}
	if report.CaloriesLeft != 0 {
		t.Errorf("CaloriesLeft = %v, want 0", report.CaloriesLeft)
	}
	// Проценты не обрезаются: по ним выбирается текст прогресса
	if report.WaterPercent != 150 {
		t.Errorf("WaterPercent = %v, want 150", report.WaterPercent)
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
		want    string
	}{
		{"empty", 0, "[░░░░░░░░░░]"},
		{"rounds down", 37, "[▓▓▓░░░░░░░]"},
		{"half", 50, "[▓▓▓▓▓░░░░░]"},
		{"full", 100, "[▓▓▓▓▓▓▓▓▓▓]"},
		{"capped above 100", 250, "[▓▓▓▓▓▓▓▓▓▓]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProgressBar(tt.percent); got != tt.want {
				t.Errorf("ProgressBar(%v) = %s, want %s", tt.percent, got, tt.want)
			}
		})
	}
}
