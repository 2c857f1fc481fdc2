package console

import (
	"context"
	"net/url"
	"sync"
	"time"
)

// FetchFunc загружает актуальный снимок списка
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// ListStore хранилище списка для экрана консоли
//
// Обновление работает по принципу fetch-and-replace: список целиком
// заменяется ответом сервера, локальные правки отдельных элементов не
// делаются. Повторное обновление во время запроса не запускается, а
// номер поколения защищает от применения устаревшего ответа
type ListStore[T any] struct {
	fetch FetchFunc[T]

	mu         sync.Mutex
	items      []T
	generation uint64
	inFlight   bool
}

// NewListStore создает новое хранилище списка
func NewListStore[T any](fetch FetchFunc[T]) *ListStore[T] {
	return &ListStore[T]{fetch: fetch}
}

// NewAppointmentListStore создает хранилище записей, привязанное к клиенту API
func NewAppointmentListStore(client *Client, query url.Values) *ListStore[Appointment] {
	return NewListStore(func(ctx context.Context) ([]Appointment, error) {
		return client.ListAppointments(ctx, query)
	})
}

// NewOrderListStore создает хранилище заказов, привязанное к клиенту API
func NewOrderListStore(client *Client, query url.Values) *ListStore[Order] {
	return NewListStore(func(ctx context.Context) ([]Order, error) {
		return client.ListOrders(ctx, query)
	})
}

// Items возвращает текущий список
func (s *ListStore[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]T, len(s.items))
	copy(items, s.items)
	return items
}

// Generation возвращает номер поколения списка
// Меняется при каждой успешной замене списка
func (s *ListStore[T]) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// SetFetch меняет источник списка (например, при смене фильтра по дате)
// Текущий список очищается, ответ на запрос со старым фильтром будет отброшен
func (s *ListStore[T]) SetFetch(fetch FetchFunc[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetch = fetch
	s.items = nil
	s.generation++
}

// Refresh загружает список заново и заменяет его целиком
// Если обновление уже идёт, повторный вызов ничего не делает
func (s *ListStore[T]) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil
	}
	s.inFlight = true
	fetch := s.fetch
	startGeneration := s.generation
	s.mu.Unlock()

	items, err := fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false

	if err != nil {
		return err
	}

	// Пока шёл запрос, список мог смениться; устаревший ответ не применяем
	if s.generation != startGeneration {
		return nil
	}

	s.items = items
	s.generation++
	return nil
}

// Poll периодически обновляет список, пока контекст не отменён
// Ошибки отдельных обновлений не прерывают опрос
func (s *ListStore[T]) Poll(ctx context.Context, interval time.Duration, onError func(error)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Refresh(ctx); err != nil && onError != nil {
				onError(err)
			}
		}
	}
}
