// Package dialog реализует пошаговые диалоги бота: настройку профиля,
// запись воды, еды и тренировок. Состояние диалога живет только здесь;
// профили принадлежат репозиторию и связаны с сессией лишь ID пользователя.
package dialog

import (
	"sync"

	"github.com/ivanoskov/health_bot/internal/service"
)

// Step шаг активного диалога
type Step int

const (
	stepProfileWeight Step = iota + 1
	stepProfileHeight
	stepProfileAge
	stepProfileSex
	stepProfileActivity
	stepProfileCity

	stepWaterAmount

	stepFoodName
	stepFoodAmount

	stepWorkoutType
	stepWorkoutMinutes
	stepWorkoutCalories
)

// session транзитное состояние одного диалога. Ответы копятся здесь и
// попадают в профиль только на терминальном шаге.
type session struct {
	step Step

	profile service.ProfileDraft

	foodName        string
	foodKcalPer100g float64

	workoutType    string
	workoutMinutes int
}

// Reply исходящее сообщение; транспорт решает, как его доставить
type Reply struct {
	Text      string
	Photo     []byte
	PhotoName string
	ShowMenu  bool
}

func textReply(text string) Reply {
	return Reply{Text: text}
}

// ChartRenderer рисует картинки прогресса для терминальных шагов
type ChartRenderer interface {
	WaterProgress(drunkL, leftL, goalL float64) ([]byte, error)
	CalorieProgress(consumedKcal, leftKcal, goalKcal float64) ([]byte, error)
}

// Названия диалогов для наблюдателя завершений
const (
	dialogProfile = "profile"
	dialogWater   = "water"
	dialogFood    = "food"
	dialogWorkout = "workout"
)

// Manager владеет сессиями диалогов и сериализует обработку сообщений
// по пользователю: два сообщения одного пользователя никогда не
// выполняются параллельно, разные пользователи друг друга не ждут.
type Manager struct {
	tracker *service.HealthTracker
	charts  ChartRenderer

	onCompleted func(dialog string)

	mu       sync.Mutex
	sessions map[int64]*session
	locks    map[int64]*sync.Mutex
}

func NewManager(tracker *service.HealthTracker, charts ChartRenderer) *Manager {
	return &Manager{
		tracker:  tracker,
		charts:   charts,
		sessions: make(map[int64]*session),
		locks:    make(map[int64]*sync.Mutex),
	}
}

// NotifyCompletions регистрирует наблюдателя успешно завершенных диалогов.
// Вызывается до запуска бота; транспорт вешает сюда свои метрики.
func (m *Manager) NotifyCompletions(fn func(dialog string)) {
	m.onCompleted = fn
}

func (m *Manager) dialogCompleted(name string) {
	if m.onCompleted != nil {
		m.onCompleted(name)
	}
}

// lockUser берет персональный мьютекс пользователя на время обработки
func (m *Manager) lockUser(userID int64) func() {
	m.mu.Lock()
	lock, ok := m.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[userID] = lock
	}
	m.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

func (m *Manager) getSession(userID int64) *session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[userID]
}

// startSession открывает новый диалог; активный диалог затирается
func (m *Manager) startSession(userID int64, step Step) *session {
	s := &session{step: step}
	m.mu.Lock()
	m.sessions[userID] = s
	m.mu.Unlock()
	return s
}

func (m *Manager) clearSession(userID int64) {
	m.mu.Lock()
	delete(m.sessions, userID)
	m.mu.Unlock()
}
