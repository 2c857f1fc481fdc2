package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SPA-AdminService/internal/domain"
	"github.com/m04kA/SPA-AdminService/internal/infra/session"
	userRepo "github.com/m04kA/SPA-AdminService/internal/infra/storage/user"
	"github.com/m04kA/SPA-AdminService/internal/service/auth/models"
)

// Service сервис аутентификации сотрудников
// Сессия - непрозрачный токен в Redis, пароли хранятся как bcrypt-хэши
type Service struct {
	userRepo UserRepository
	sessions SessionStore
	logger   Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(userRepo UserRepository, sessions SessionStore, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		sessions: sessions,
		logger:   logger,
	}
}

// Login проверяет учётные данные и создает сессию
// Неверный email и неверный пароль дают одну и ту же ошибку
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	if email == "" || req.Password == "" {
		s.logger.Warn("Login: email and password are required")
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	s.logger.Info("Login: attempt for email=%s", email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: email=%s not found", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for email=%s", email)
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		s.logger.Warn("Login: user id=%d is inactive", user.ID)
		return nil, ErrUserInactive
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		s.logger.Error("Login: failed to create session for user id=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Login - session error: %v", ErrInternal, err)
	}

	s.logger.Info("Login: user id=%d logged in", user.ID)
	return &models.LoginResponse{
		Token: token,
		User:  models.FromDomainUser(user),
	}, nil
}

// Logout удаляет сессию
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("%w: token is required", ErrInvalidInput)
	}

	if err := s.sessions.Delete(ctx, token); err != nil {
		s.logger.Error("Logout: failed to delete session: %v", err)
		return fmt.Errorf("%w: Logout - session error: %v", ErrInternal, err)
	}

	s.logger.Info("Logout: session deleted")
	return nil
}

// Authenticate возвращает сотрудника по токену сессии
// Используется middleware для защищённых маршрутов
func (s *Service) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}

	userID, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("Authenticate: session store error: %v", err)
		return nil, fmt.Errorf("%w: Authenticate - session error: %v", ErrInternal, err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Authenticate: user id=%d from session not found", userID)
			return nil, ErrSessionNotFound
		}
		s.logger.Error("Authenticate: repository error for user id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Authenticate - repository error: %v", ErrInternal, err)
	}

	if !user.IsActive {
		s.logger.Warn("Authenticate: user id=%d is inactive", userID)
		return nil, ErrSessionNotFound
	}

	return user, nil
}
