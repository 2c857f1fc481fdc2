// Package kv хранилище состояния консоли (выбранная дата, фильтры, токен)
package kv

import (
	"context"
	"errors"
)

// ErrKeyNotFound возвращается, когда ключ отсутствует
var ErrKeyNotFound = errors.New("kv: key not found")

// Store хранилище ключ-значение состояния консоли
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
