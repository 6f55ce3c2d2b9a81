package main

import (
	"io"
	"log"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ivanoskov/health_bot/internal/bot"
	"github.com/ivanoskov/health_bot/internal/catalog"
	"github.com/ivanoskov/health_bot/internal/charts"
	"github.com/ivanoskov/health_bot/internal/config"
	"github.com/ivanoskov/health_bot/internal/dialog"
	"github.com/ivanoskov/health_bot/internal/repository"
	"github.com/ivanoskov/health_bot/internal/service"
	"github.com/ivanoskov/health_bot/internal/weather"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	cat, err := catalog.Load()
	if err != nil {
		log.Fatal(err)
	}

	repo := repository.NewMemoryRepository()
	tracker := service.NewHealthTracker(repo, weather.NewClient(cfg.WeatherAPIKey), cat)
	dialogs := dialog.NewManager(tracker, charts.NewGenerator())
	metrics := bot.NewMetrics(func() float64 { return float64(repo.Count()) })
	dialogs.NotifyCompletions(func(name string) {
		metrics.DialogsCompleted.WithLabelValues(name).Inc()
	})

	b, err := bot.NewBot(cfg.TelegramToken, dialogs, metrics)
	if err != nil {
		log.Fatal(err)
	}

	// Эндпоинт для внешнего мониторинга, метрики и резервный webhook-вход
	go func() {
		mux := http.NewServeMux()
		mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("Bot is alive!"))
		})
		mux.Handle("/metrics", promhttp.Handler())
		mux.HandleFunc("/webhook", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			body, err := io.ReadAll(r.Body)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			if err := b.HandleWebhook(body); err != nil {
				slog.Error("webhook processing failed", "error", err)
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.WriteHeader(http.StatusOK)
		})

		slog.Info("liveness server started", "port", cfg.Port)
		if err := http.ListenAndServe(":"+cfg.Port, mux); err != nil {
			log.Fatal(err)
		}
	}()

	if err := b.Start(); err != nil {
		log.Fatal(err)
	}
}
