package bot

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics метрики Prometheus транспортного слоя
type Metrics struct {
	MessagesProcessed prometheus.Counter
	CommandsProcessed *prometheus.CounterVec
	DialogsCompleted  *prometheus.CounterVec
	ErrorsTotal       prometheus.Counter
	UsersTotal        prometheus.GaugeFunc
}

// NewMetrics регистрирует метрики; usersCount отдает текущее число профилей
func NewMetrics(usersCount func() float64) *Metrics {
	return &Metrics{
		MessagesProcessed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "health_bot_messages_processed_total",
			Help: "Total number of processed messages",
		}),

		CommandsProcessed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "health_bot_commands_processed_total",
			Help: "Total number of processed commands",
		}, []string{"command"}),

		DialogsCompleted: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "health_bot_dialogs_completed_total",
			Help: "Total number of completed dialogs by type",
		}, []string{"dialog"}),

		ErrorsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "health_bot_errors_total",
			Help: "Total number of errors",
		}),

		UsersTotal: promauto.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "health_bot_users_total",
			Help: "Number of users with a completed profile",
		}, usersCount),
	}
}
