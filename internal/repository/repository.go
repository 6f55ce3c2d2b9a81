package repository

import (
	"context"
	"errors"

	"github.com/ivanoskov/health_bot/internal/model"
)

// ErrProfileNotFound возвращается, когда профиль пользователя еще не создан
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository хранилище профилей пользователей.
// Get и Update возвращают копии: вызывающий код никогда не держит
// ссылку на хранимую запись.
type ProfileRepository interface {
	// Save создает или полностью заменяет профиль пользователя
	Save(ctx context.Context, profile *model.UserProfile) error
	// Get возвращает снимок профиля или ErrProfileNotFound
	Get(ctx context.Context, userID int64) (model.UserProfile, error)
	// Update атомарно применяет fn к хранимому профилю и возвращает
	// снимок результата
	Update(ctx context.Context, userID int64, fn func(*model.UserProfile)) (model.UserProfile, error)
}
