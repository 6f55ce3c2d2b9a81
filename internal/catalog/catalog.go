// Package catalog содержит локальные справочники: калорийность продуктов
// и расход калорий по типам тренировок.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// similarityCutoff минимальная схожесть названия для нечеткого совпадения
const similarityCutoff = 0.6

// DefaultFoodCalories подставляется, когда продукт не найден в справочнике
const DefaultFoodCalories = 100.0

// FoodItem продукт со средней калорийностью на 100 г
type FoodItem struct {
	Name        string  `yaml:"name"`
	KcalPer100g float64 `yaml:"kcal_per_100g"`
}

// WorkoutItem тип тренировки с расходом калорий в минуту
type WorkoutItem struct {
	Name          string  `yaml:"name"`
	KcalPerMinute float64 `yaml:"kcal_per_minute"`
}

// Catalog справочник продуктов и тренировок с сохранением порядка записей
type Catalog struct {
	foods    []FoodItem
	workouts []WorkoutItem
	byName   map[string]int
}

type catalogFile struct {
	Foods    []FoodItem    `yaml:"foods"`
	Workouts []WorkoutItem `yaml:"workouts"`
}

// Load разбирает встроенный справочник
func Load() (*Catalog, error) {
	return parse(catalogYAML)
}

func parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(f.Foods) == 0 || len(f.Workouts) == 0 {
		return nil, fmt.Errorf("catalog is incomplete: %d foods, %d workouts", len(f.Foods), len(f.Workouts))
	}

	c := &Catalog{
		foods:    f.Foods,
		workouts: f.Workouts,
		byName:   make(map[string]int, len(f.Foods)),
	}
	for i, food := range f.Foods {
		c.byName[normalize(food.Name)] = i
	}
	return c, nil
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// LookupFood ищет продукт сначала по точному совпадению, затем по самому
// близкому названию со схожестью не ниже порога. Возвращает false, если
// ничего подходящего нет.
func (c *Catalog) LookupFood(name string) (FoodItem, bool) {
	query := normalize(name)
	if query == "" {
		return FoodItem{}, false
	}

	if i, ok := c.byName[query]; ok {
		return c.foods[i], true
	}

	bestScore := 0.0
	bestIndex := -1
	for i, food := range c.foods {
		score := similarity(query, normalize(food.Name))
		if score > bestScore {
			bestScore = score
			bestIndex = i
		}
	}
	if bestIndex >= 0 && bestScore >= similarityCutoff {
		return c.foods[bestIndex], true
	}
	return FoodItem{}, false
}

// similarity схожесть строк: 1 - расстояние Левенштейна / длину большей строки
func similarity(a, b string) float64 {
	la := len([]rune(a))
	lb := len([]rune(b))
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}

// TopFoods первые n продуктов справочника в исходном порядке
func (c *Catalog) TopFoods(n int) []FoodItem {
	if n > len(c.foods) {
		n = len(c.foods)
	}
	out := make([]FoodItem, n)
	copy(out, c.foods[:n])
	return out
}

// Workouts все типы тренировок в исходном порядке
func (c *Catalog) Workouts() []WorkoutItem {
	out := make([]WorkoutItem, len(c.workouts))
	copy(out, c.workouts)
	return out
}

// WorkoutRate расход калорий в минуту для типа тренировки
func (c *Catalog) WorkoutRate(name string) (float64, bool) {
	query := normalize(name)
	for _, w := range c.workouts {
		if normalize(w.Name) == query {
			return w.KcalPerMinute, true
		}
	}
	return 0, false
}
