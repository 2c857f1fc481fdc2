package console

import (
	"context"
	"time"
)

// Countdown посекундный пересчёт обратного отсчёта для открытой записи
// Работает, пока не отменён контекст; на каждом тике вызывает callback
// с текущим моментом времени
type Countdown struct {
	interval time.Duration
}

// NewCountdown создает отсчёт с посекундным тиком
func NewCountdown() *Countdown {
	return &Countdown{interval: time.Second}
}

// Run запускает отсчёт и блокируется до отмены контекста
// Первый вызов callback происходит сразу, без ожидания первого тика
func (c *Countdown) Run(ctx context.Context, onTick func(now time.Time)) {
	onTick(time.Now())

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			onTick(now)
		}
	}
}
