package service

import (
	"context"
	"testing"

	"github.com/ivanoskov/health_bot/internal/catalog"
	"github.com/ivanoskov/health_bot/internal/model"
	"github.com/ivanoskov/health_bot/internal/repository"
)

// fakeWeather всегда отдает одну и ту же температуру
type fakeWeather struct {
	temp  float64
	known bool
}

func (f *fakeWeather) CurrentTemperature(ctx context.Context, city string) (float64, bool) {
	return f.temp, f.known
}

func newTestTracker(t *testing.T, w *fakeWeather) (*HealthTracker, *repository.MemoryRepository) {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	repo := repository.NewMemoryRepository()
	return NewHealthTracker(repo, w, cat), repo
}

func testDraft() ProfileDraft {
	return ProfileDraft{
		WeightKg:        70,
		HeightCm:        175,
		Age:             30,
		Sex:             model.SexMale,
		ActivityMinutes: 30,
		City:            "Тестоград",
	}
}

func TestCreateProfile(t *testing.T) {
	tracker, _ := newTestTracker(t, &fakeWeather{known: false})
	ctx := context.Background()

	profile, temp, err := tracker.CreateProfile(ctx, 1, testDraft())
	if err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}
	if temp.Known {
		t.Error("temperature should be unknown")
	}
	if profile.WaterGoalL != 2.6 {
		t.Errorf("WaterGoalL = %v, want 2.6", profile.WaterGoalL)
	}
	if profile.CalorieGoal != 1698 {
		t.Errorf("CalorieGoal = %d, want 1698", profile.CalorieGoal)
	}
	if profile.LoggedWaterML != 0 || profile.LoggedCalories != 0 || profile.BurnedCalories != 0 || profile.WorkoutMinutes != 0 {
		t.Errorf("accumulators must start at zero: %+v", profile)
	}
	if len(profile.WaterHistory) != 0 {
		t.Errorf("water history must start empty, got %d entries", len(profile.WaterHistory))
	}
}

func TestCreateProfileReplacesCounters(t *testing.T) {
	tracker, _ := newTestTracker(t, &fakeWeather{known: false})
	ctx := context.Background()

	if _, _, err := tracker.CreateProfile(ctx, 1, testDraft()); err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}
	if _, err := tracker.LogWater(ctx, 1, 500); err != nil {
		t.Fatalf("LogWater: %v", err)
	}

	profile, _, err := tracker.CreateProfile(ctx, 1, testDraft())
	if err != nil {
		t.Fatalf("CreateProfile (replace): %v", err)
	}
	if profile.LoggedWaterML != 0 || len(profile.WaterHistory) != 0 {
		t.Errorf("profile replacement must reset accumulators: %+v", profile)
	}
}

func TestLogWaterAccumulates(t *testing.T) {
	tracker, _ := newTestTracker(t, &fakeWeather{known: false})
	ctx := context.Background()

	if _, _, err := tracker.CreateProfile(ctx, 1, testDraft()); err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}

	amounts := []float64{250, 330, 120.5, 500}
	var sum float64
	var last model.UserProfile
	for _, amount := range amounts {
		p, err := tracker.LogWater(ctx, 1, amount)
		if err != nil {
			t.Fatalf("LogWater(%v): %v", amount, err)
		}
		sum += amount
		last = p
	}

	if last.LoggedWaterML != sum {
		t.Errorf("LoggedWaterML = %v, want %v", last.LoggedWaterML, sum)
	}
	if len(last.WaterHistory) != len(amounts) {
		t.Fatalf("WaterHistory length = %d, want %d", len(last.WaterHistory), len(amounts))
	}
	for i, entry := range last.WaterHistory {
		if entry.AmountML != amounts[i] {
			t.Errorf("WaterHistory[%d] = %v, want %v (order must be preserved)", i, entry.AmountML, amounts[i])
		}
		if entry.ID == "" {
			t.Errorf("WaterHistory[%d] has no ID", i)
		}
	}
}

func TestLogWaterWithoutProfile(t *testing.T) {
	tracker, _ := newTestTracker(t, &fakeWeather{known: false})
	if _, err := tracker.LogWater(context.Background(), 42, 250); err != repository.ErrProfileNotFound {
		t.Errorf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestLogFood(t *testing.T) {
	tracker, _ := newTestTracker(t, &fakeWeather{known: false})
	ctx := context.Background()

	if _, _, err := tracker.CreateProfile(ctx, 1, testDraft()); err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}

	// 200 г по 52 ккал/100г
	profile, added, err := tracker.LogFood(ctx, 1, 200, 52)
	if err != nil {
		t.Fatalf("LogFood: %v", err)
	}
	if added != 104 {
		t.Errorf("added = %v, want 104", added)
	}
	if profile.LoggedCalories != 104 {
		t.Errorf("LoggedCalories = %v, want 104", profile.LoggedCalories)
	}
}

func TestLogWorkoutRecomputesWaterGoalOnce(t *testing.T) {
	tracker, _ := newTestTracker(t, &fakeWeather{known: false})
	ctx := context.Background()

	if _, _, err := tracker.CreateProfile(ctx, 1, testDraft()); err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}

	profile, err := tracker.LogWorkout(ctx, 1, "бег", 30, 300)
	if err != nil {
		t.Fatalf("LogWorkout: %v", err)
	}
	if profile.BurnedCalories != 300 {
		t.Errorf("BurnedCalories = %v, want 300", profile.BurnedCalories)
	}
	if profile.WorkoutMinutes != 30 {
		t.Errorf("WorkoutMinutes = %v, want 30 (minutes must be added exactly once)", profile.WorkoutMinutes)
	}
	// 70*0.03 + (30+30)/30*0.5 = 3.1
	if profile.WaterGoalL != 3.1 {
		t.Errorf("WaterGoalL = %v, want 3.1 (recomputed from total activity)", profile.WaterGoalL)
	}
	if profile.CalorieGoal != 1698 {
		t.Errorf("CalorieGoal = %d, want 1698 (frozen at profile creation)", profile.CalorieGoal)
	}
}

func TestLogWorkoutUsesFreshTemperature(t *testing.T) {
	w := &fakeWeather{known: false}
	tracker, _ := newTestTracker(t, w)
	ctx := context.Background()

	if _, _, err := tracker.CreateProfile(ctx, 1, testDraft()); err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}

	// К моменту тренировки погода стала известна и жаркой
	w.temp = 30
	w.known = true

	profile, err := tracker.LogWorkout(ctx, 1, "йога", 30, 90)
	if err != nil {
		t.Fatalf("LogWorkout: %v", err)
	}
	// 2.1 + 1.0 + 5*0.02 = 3.2
	if profile.WaterGoalL != 3.2 {
		t.Errorf("WaterGoalL = %v, want 3.2 (heat term from fresh lookup)", profile.WaterGoalL)
	}
}

func TestFindFood(t *testing.T) {
	tracker, _ := newTestTracker(t, &fakeWeather{known: false})

	food, found := tracker.FindFood("яблоко")
	if !found || food.KcalPer100g != 52 {
		t.Errorf("FindFood(яблоко) = %+v, %v; want 52 kcal, true", food, found)
	}
	if _, found := tracker.FindFood("телепорт"); found {
		t.Error("FindFood(телепорт) must not match anything")
	}
}
