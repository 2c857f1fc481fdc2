package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверной паре email/пароль
	// Не раскрывает, что именно не совпало
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserInactive возвращается при попытке входа отключённого сотрудника
	ErrUserInactive = errors.New("user is inactive")

	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("session not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
