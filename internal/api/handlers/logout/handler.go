package logout

import (
	"net/http"
	"strings"

	"github.com/m04kA/SPA-AdminService/internal/api/handlers"
	"github.com/m04kA/SPA-AdminService/internal/api/middleware"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/logout
// Логаут идемпотентен: отсутствующая или истёкшая сессия не считается ошибкой
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := extractToken(r)
	if token != "" {
		if err := h.service.Logout(r.Context(), token); err != nil {
			h.logger.Error("POST /auth/logout - Failed to logout: %v", err)
			handlers.RespondInternalError(w)
			return
		}
	}

	// Гасим cookie вне зависимости от исхода
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	h.logger.Info("POST /auth/logout - Session closed")
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// extractToken извлекает токен сессии из запроса
func extractToken(r *http.Request) string {
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	return ""
}
