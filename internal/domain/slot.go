package domain

import (
	"time"

	"github.com/m04kA/SPA-AdminService/pkg/types"
)

// SlotCatalogue фиксированный дневной каталог времён начала слотов
// Не хранится в БД - доступные слоты пересчитываются от каталога на каждую дату
type SlotCatalogue struct {
	times []types.TimeString
}

// NewSlotCatalogue создает каталог из упорядоченного списка времён
func NewSlotCatalogue(times []types.TimeString) SlotCatalogue {
	copied := make([]types.TimeString, len(times))
	copy(copied, times)
	return SlotCatalogue{times: copied}
}

// DefaultSlotCatalogue возвращает каталог по умолчанию (две смены с обеденным перерывом)
func DefaultSlotCatalogue() SlotCatalogue {
	return NewSlotCatalogue(DefaultSlotTimes)
}

// Times возвращает полный каталог слотов
func (c SlotCatalogue) Times() []types.TimeString {
	out := make([]types.TimeString, len(c.times))
	copy(out, c.times)
	return out
}

// Contains возвращает true, если время есть в каталоге
func (c SlotCatalogue) Contains(t types.TimeString) bool {
	for _, s := range c.times {
		if s == t {
			return true
		}
	}
	return false
}

// Bookable возвращает подпоследовательность каталога, доступную для записи
// на указанную дату при текущем времени now.
//
// Правила (в порядке приоритета):
//  1. Дата строго раньше сегодняшней (сравнение только дат) - пусто.
//  2. Дата сегодняшняя - действует часовой запас: minBookingHour = час(now)+1;
//     слоты с часом меньше minBookingHour отбрасываются; слот с часом, равным
//     minBookingHour, отбрасывается, если его минуты <= минут(now).
//  3. Дата строго позже сегодняшней - весь каталог.
//
// Граничный случай правила 2 сохранён как в исходной консоли: при now=14:00
// слот 15:00 уже недоступен (0 <= 0), хотя до него ровно час.
func (c SlotCatalogue) Bookable(date time.Time, now time.Time) []types.TimeString {
	if IsDateInPast(date, now) {
		return []types.TimeString{}
	}

	if !IsSameDay(date, now) {
		return c.Times()
	}

	minBookingHour := now.Hour() + 1

	available := make([]types.TimeString, 0, len(c.times))
	for _, slot := range c.times {
		hour := slot.Hour()
		if hour < 0 {
			continue
		}
		if hour < minBookingHour {
			continue
		}
		if hour == minBookingHour && slot.Minute() <= now.Minute() {
			continue
		}
		available = append(available, slot)
	}

	return available
}

// IsSameDay проверяет, что две даты относятся к одному и тому же дню
func IsSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func IsDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
