package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("session.store: session not found")

	// ErrInternal возвращается при ошибках работы с Redis
	ErrInternal = errors.New("session.store: internal error")
)
