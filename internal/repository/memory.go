package repository

import (
	"context"
	"sync"

	"github.com/ivanoskov/health_bot/internal/model"
)

// MemoryRepository хранит профили в памяти процесса.
// Записи живут до перезапуска; удаления и TTL нет.
type MemoryRepository struct {
	mu       sync.RWMutex
	profiles map[int64]*model.UserProfile
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		profiles: make(map[int64]*model.UserProfile),
	}
}

func (r *MemoryRepository) Save(ctx context.Context, profile *model.UserProfile) error {
	cp := profile.Clone()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[profile.UserID] = &cp
	return nil
}

func (r *MemoryRepository) Get(ctx context.Context, userID int64) (model.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[userID]
	if !ok {
		return model.UserProfile{}, ErrProfileNotFound
	}
	return p.Clone(), nil
}

// Update применяет fn под общим мьютексом: read-modify-write для счетчиков
// одного пользователя не перемешивается с другими мутациями
func (r *MemoryRepository) Update(ctx context.Context, userID int64, fn func(*model.UserProfile)) (model.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.profiles[userID]
	if !ok {
		return model.UserProfile{}, ErrProfileNotFound
	}
	fn(p)
	return p.Clone(), nil
}

// Count текущее число профилей, для метрик
func (r *MemoryRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.profiles)
}
