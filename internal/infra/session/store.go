// Package session хранилище сессий в Redis
// Сессия - непрозрачный токен (uuid), привязанный к ID пользователя с TTL
package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// Store хранилище сессий поверх Redis
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore создает новое хранилище сессий
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Create создает новую сессию для пользователя и возвращает её токен
func (s *Store) Create(ctx context.Context, userID int64) (string, error) {
	token := uuid.NewString()

	err := s.client.Set(ctx, keyPrefix+token, strconv.FormatInt(userID, 10), s.ttl).Err()
	if err != nil {
		return "", fmt.Errorf("%w: Create - set session: %v", ErrInternal, err)
	}

	return token, nil
}

// Get возвращает ID пользователя по токену сессии
// Продлевает TTL сессии при каждом обращении (sliding expiration)
func (s *Store) Get(ctx context.Context, token string) (int64, error) {
	val, err := s.client.GetEx(ctx, keyPrefix+token, s.ttl).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrSessionNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: Get - get session: %v", ErrInternal, err)
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: Get - malformed session value: %v", ErrInternal, err)
	}

	return userID, nil
}

// Delete удаляет сессию (логаут)
// Удаление несуществующей сессии не считается ошибкой
func (s *Store) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("%w: Delete - delete session: %v", ErrInternal, err)
	}
	return nil
}
