package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
)

const keyPrefix = "booking_session:"

// Store хранилище снимков сессий бронирования в Redis
// Снимок пишется один раз при старте сессии и далее только читается
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore создает хранилище сессий
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Save сохраняет снимок, присваивая ему новый ID, если он не задан
func (s *Store) Save(ctx context.Context, snapshot *domain.SessionSnapshot) (*domain.SessionSnapshot, error) {
	if snapshot.ID == "" {
		snapshot.ID = uuid.NewString()
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}

	if err := s.client.Set(ctx, key(snapshot.ID), data, s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("%w: Save - set %s: %v", ErrStore, snapshot.ID, err)
	}

	return snapshot, nil
}

// Get получает снимок сессии по ID
func (s *Store) Get(ctx context.Context, id string) (*domain.SessionSnapshot, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrSessionNotFound
	}

	data, err := s.client.Get(ctx, key(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - get %s: %v", ErrStore, id, err)
	}

	var snapshot domain.SessionSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return &snapshot, nil
}

// Delete удаляет сессию
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("%w: Delete - del %s: %v", ErrStore, id, err)
	}
	return nil
}

func key(id string) string {
	return keyPrefix + id
}
