// Package weather получает текущую температуру города через OpenWeather.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// Client клиент OpenWeather. Любой сбой (сеть, не найден город, битый
// ответ) превращается в "температура неизвестна", наружу ошибки не выходят.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewClientWithBaseURL используется в тестах для подмены эндпоинта
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

type weatherResponse struct {
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
}

// CurrentTemperature температура в городе в °C; ok=false, если узнать не удалось
func (c *Client) CurrentTemperature(ctx context.Context, city string) (float64, bool) {
	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return 0, false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		slog.Debug("weather lookup failed", "city", city, "error", err)
		return 0, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Debug("weather lookup failed", "city", city, "status", resp.StatusCode)
		return 0, false
	}

	var body weatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		slog.Debug("weather response malformed", "city", city, "error", fmt.Errorf("decode: %w", err))
		return 0, false
	}
	return body.Main.Temp, true
}
