// Package charts рендерит картинки прогресса для отправки в чат.
package charts

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Generator генерирует графики прогресса
type Generator struct{}

// NewGenerator создает новый генератор графиков
func NewGenerator() *Generator {
	return &Generator{}
}

// WaterProgress график "выпито/осталось" в литрах
func (g *Generator) WaterProgress(drunkL, leftL, goalL float64) ([]byte, error) {
	return g.renderBarPair(
		barValue{label: fmt.Sprintf("Выпито: %.1f л", drunkL), value: drunkL, color: chart.ColorBlue},
		barValue{label: fmt.Sprintf("Осталось: %.1f л", leftL), value: leftL, color: chart.ColorAlternateGray},
		"Прогресс по воде",
		goalL,
	)
}

// CalorieProgress график "съедено/осталось" в ккал
func (g *Generator) CalorieProgress(consumedKcal, leftKcal, goalKcal float64) ([]byte, error) {
	return g.renderBarPair(
		barValue{label: fmt.Sprintf("Съедено: %.0f ккал", consumedKcal), value: consumedKcal, color: chart.ColorGreen},
		barValue{label: fmt.Sprintf("Осталось: %.0f ккал", leftKcal), value: leftKcal, color: chart.ColorOrange},
		"Прогресс по калориям",
		goalKcal,
	)
}

type barValue struct {
	label string
	value float64
	color drawing.Color
}

// renderBarPair пара столбцов done/left; ось масштабируется от цели с
// запасом 20%, чтобы перевыполнение не упиралось в край
func (g *Generator) renderBarPair(done, left barValue, title string, axisGoal float64) ([]byte, error) {
	axisMax := axisGoal * 1.2
	if done.value > axisMax {
		axisMax = done.value * 1.1
	}
	if axisMax <= 0 {
		axisMax = 1
	}

	graph := chart.BarChart{
		Title: title,
		TitleStyle: chart.Style{
			FontSize:  14,
			FontColor: chart.ColorBlack,
		},
		Width:    700,
		Height:   400,
		BarWidth: 80,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: axisMax,
			},
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		},
		Bars: []chart.Value{
			{
				Label: done.label,
				Value: done.value,
				Style: chart.Style{
					StrokeColor: done.color,
					FillColor:   done.color.WithAlpha(180),
					FontSize:    12,
					FontColor:   chart.ColorBlack,
				},
			},
			{
				Label: left.label,
				Value: left.value,
				Style: chart.Style{
					StrokeColor: left.color,
					FillColor:   left.color.WithAlpha(180),
					FontSize:    12,
					FontColor:   chart.ColorBlack,
				},
			},
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render %s chart: %w", title, err)
	}
	return buffer.Bytes(), nil
}
