// Package console клиентская часть административной консоли:
// шлюз к REST API, хранилище списка записей и диспетчер действий
package console

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/m04kA/SPA-AdminService/internal/console/kv"
)

const defaultRequestTimeout = 10 * time.Second

// ключ токена сессии в локальном key-value хранилище
const sessionTokenKey = "session_token"

var (
	// ErrRequestTimeout возвращается, когда запрос к API не уложился в таймаут
	ErrRequestTimeout = errors.New("console: request timed out")

	// ErrUnauthorized возвращается при истёкшей или отсутствующей сессии
	ErrUnauthorized = errors.New("console: unauthorized")
)

// APIError ошибка, возвращённая API с телом
type APIError struct {
	StatusCode int
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("console: api error %d: %s", e.StatusCode, e.Message)
}

// Client HTTP шлюз к API консоли
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string

	// sessions локальное хранилище токена сессии (опционально);
	// позволяет консоли пережить перезапуск без повторного входа
	sessions kv.Store
}

// NewClient создает новый клиент API
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// NewClientWithSessionStore создает клиент, сохраняющий токен сессии
// в локальном key-value хранилище
func NewClientWithSessionStore(baseURL string, timeout time.Duration, sessions kv.Store) *Client {
	c := NewClient(baseURL, timeout)
	c.sessions = sessions
	return c
}

// SetToken устанавливает токен сессии для последующих запросов
// и сохраняет его в локальном хранилище, если оно подключено
func (c *Client) SetToken(ctx context.Context, token string) error {
	c.token = token

	if c.sessions != nil {
		if err := c.sessions.Set(ctx, sessionTokenKey, token); err != nil {
			return fmt.Errorf("console: save session token: %w", err)
		}
	}

	return nil
}

// RestoreSession восстанавливает токен сессии из локального хранилища
// Возвращает false, если сохранённой сессии нет
func (c *Client) RestoreSession(ctx context.Context) (bool, error) {
	if c.sessions == nil {
		return false, nil
	}

	token, err := c.sessions.Get(ctx, sessionTokenKey)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("console: restore session token: %w", err)
	}

	c.token = token
	return true, nil
}

// ClearSession сбрасывает токен сессии и удаляет его из локального хранилища
func (c *Client) ClearSession(ctx context.Context) error {
	c.token = ""

	if c.sessions != nil {
		if err := c.sessions.Delete(ctx, sessionTokenKey); err != nil && !errors.Is(err, kv.ErrKeyNotFound) {
			return fmt.Errorf("console: clear session token: %w", err)
		}
	}

	return nil
}

// ListAppointments получает записи с фильтрацией
func (c *Client) ListAppointments(ctx context.Context, query url.Values) ([]Appointment, error) {
	var list appointmentList
	if err := c.do(ctx, http.MethodGet, "/api/v1/appointments", query, nil, &list); err != nil {
		return nil, err
	}
	return list.Appointments, nil
}

// GetActions получает снимок доступных действий по записи
func (c *Client) GetActions(ctx context.Context, appointmentID int64) (*ActionsSnapshot, error) {
	var snapshot ActionsSnapshot
	path := "/api/v1/appointments/" + strconv.FormatInt(appointmentID, 10) + "/actions"
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// GetAvailableSlots получает доступные слоты на дату
// selected - текущий выбор формы, сервер сбрасывает его при недоступности
func (c *Client) GetAvailableSlots(ctx context.Context, date string, selected string) (*AvailableSlots, error) {
	query := url.Values{}
	query.Set("date", date)
	if selected != "" {
		query.Set("selected", selected)
	}

	var slots AvailableSlots
	if err := c.do(ctx, http.MethodGet, "/api/v1/slots/available", query, nil, &slots); err != nil {
		return nil, err
	}
	return &slots, nil
}

// ListOrders получает заказы с фильтрацией
func (c *Client) ListOrders(ctx context.Context, query url.Values) ([]Order, error) {
	var list orderList
	if err := c.do(ctx, http.MethodGet, "/api/v1/orders", query, nil, &list); err != nil {
		return nil, err
	}
	return list.Orders, nil
}

// DeliverOrder отмечает заказ выданным
func (c *Client) DeliverOrder(ctx context.Context, orderID int64) error {
	return c.orderTransition(ctx, orderID, "deliver", nil)
}

// CancelOrder отменяет заказ с указанием причины
func (c *Client) CancelOrder(ctx context.Context, orderID int64, reason string) error {
	body := map[string]string{"cancellationReason": reason}
	return c.orderTransition(ctx, orderID, "cancel", body)
}

// PayOrder проводит оплату заказа
func (c *Client) PayOrder(ctx context.Context, orderID int64) error {
	return c.orderTransition(ctx, orderID, "pay", nil)
}

// orderTransition выполняет переход статуса заказа
func (c *Client) orderTransition(ctx context.Context, orderID int64, action string, body interface{}) error {
	path := "/api/v1/orders/" + strconv.FormatInt(orderID, 10) + "/" + action
	return c.do(ctx, http.MethodPut, path, nil, body, nil)
}

// Confirm подтверждает запись
func (c *Client) Confirm(ctx context.Context, appointmentID int64) error {
	return c.transition(ctx, appointmentID, "confirm", nil)
}

// Complete завершает запись
func (c *Client) Complete(ctx context.Context, appointmentID int64) error {
	return c.transition(ctx, appointmentID, "complete", nil)
}

// Cancel отменяет запись с указанием причины
func (c *Client) Cancel(ctx context.Context, appointmentID int64, reason string) error {
	body := map[string]string{"cancellationReason": reason}
	return c.transition(ctx, appointmentID, "cancel", body)
}

// Pay проводит оплату записи
func (c *Client) Pay(ctx context.Context, appointmentID int64) error {
	return c.transition(ctx, appointmentID, "pay", nil)
}

// transition выполняет переход статуса записи
func (c *Client) transition(ctx context.Context, appointmentID int64, action string, body interface{}) error {
	path := "/api/v1/appointments/" + strconv.FormatInt(appointmentID, 10) + "/" + action
	return c.do(ctx, http.MethodPut, path, nil, body, nil)
}

// do выполняет запрос к API и декодирует ответ
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, dst interface{}) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("console: marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return fmt.Errorf("console: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		// Сервис принимает токен и в cookie, и в заголовке; отправляем оба
		req.Header.Set("Authorization", "Bearer "+c.token)
		req.AddCookie(&http.Cookie{Name: "session_token", Value: c.token})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Таймаут отличаем от прочих сетевых ошибок: по нему интерфейс
		// показывает отдельное сообщение и предлагает повтор
		if isTimeout(err) {
			return ErrRequestTimeout
		}
		return fmt.Errorf("console: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// Сессия истекла - сохранённый токен больше не пригодится
		if c.sessions != nil {
			_ = c.sessions.Delete(ctx, sessionTokenKey)
		}
		c.token = ""
		return ErrUnauthorized
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		// Тело ошибки может отсутствовать, код статуса достаточен
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		return apiErr
	}

	if dst != nil {
		if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
			return fmt.Errorf("console: decode response: %w", err)
		}
	}

	return nil
}

// isTimeout проверяет, является ли ошибка таймаутом
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var timeoutErr interface{ Timeout() bool }
	return errors.As(err, &timeoutErr) && timeoutErr.Timeout()
}
