package console

import (
	"context"
	"errors"
	"fmt"
)

// Action действие над записью
type Action string

const (
	ActionConfirm  Action = "confirm"
	ActionComplete Action = "complete"
	ActionCancel   Action = "cancel"
	ActionPay      Action = "pay"
	ActionDeliver  Action = "deliver"
)

// Сообщения уведомлений
const (
	msgActionDone     = "готово"
	msgActionTimeout  = "сервер не ответил, попробуйте ещё раз"
	msgSessionExpired = "сессия истекла, войдите заново"
	msgActionPrompt   = "выполнить действие?"
	msgCancelPrompt   = "укажите причину отмены"
)

// ErrUnknownAction возвращается для неизвестного действия
var ErrUnknownAction = errors.New("console: unknown action")

// ActionClient часть клиента API, выполняющая переходы статусов
type ActionClient interface {
	Confirm(ctx context.Context, appointmentID int64) error
	Complete(ctx context.Context, appointmentID int64) error
	Cancel(ctx context.Context, appointmentID int64, reason string) error
	Pay(ctx context.Context, appointmentID int64) error
}

// Prompter запрашивает у пользователя подтверждение с вводом текста
// Возвращает введённый текст и false, если пользователь отказался
type Prompter interface {
	Prompt(message string) (string, bool)
}

// Notifier показывает пользователю результат действия
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Dispatcher выполняет действия над записями и обновляет список
//
// После успешного действия список перечитывается с сервера целиком, а не
// правится локально: сервер - единственный источник истины по статусам
type Dispatcher struct {
	client   ActionClient
	store    *ListStore[Appointment]
	prompter Prompter
	notifier Notifier
	logger   Logger
}

// NewDispatcher создает новый диспетчер действий
func NewDispatcher(client ActionClient, store *ListStore[Appointment], prompter Prompter, notifier Notifier, logger Logger) *Dispatcher {
	return &Dispatcher{
		client:   client,
		store:    store,
		prompter: prompter,
		notifier: notifier,
		logger:   logger,
	}
}

// Dispatch выполняет действие над записью
// Каждое действие сначала подтверждается пользователем; для отмены
// подтверждением служит ввод причины. Отказ пользователя
// не считается ошибкой и не трогает список
func (d *Dispatcher) Dispatch(ctx context.Context, action Action, appointmentID int64) error {
	var err error

	switch action {
	case ActionConfirm:
		if !d.confirmAction(action, appointmentID) {
			return nil
		}
		err = d.client.Confirm(ctx, appointmentID)

	case ActionComplete:
		if !d.confirmAction(action, appointmentID) {
			return nil
		}
		err = d.client.Complete(ctx, appointmentID)

	case ActionPay:
		if !d.confirmAction(action, appointmentID) {
			return nil
		}
		err = d.client.Pay(ctx, appointmentID)

	case ActionCancel:
		reason, ok := d.prompter.Prompt(msgCancelPrompt)
		if !ok {
			d.logger.Info("Dispatch: cancel declined by user, appointment_id=%d", appointmentID)
			return nil
		}
		err = d.client.Cancel(ctx, appointmentID, reason)

	default:
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	if err != nil {
		d.notifyError(action, appointmentID, err)
		return err
	}

	d.notifier.Success(msgActionDone)

	// Ошибка обновления не отменяет уже выполненное действие
	if refreshErr := d.store.Refresh(ctx); refreshErr != nil {
		d.logger.Warn("Dispatch: refresh after %s failed: %v", action, refreshErr)
	}

	return nil
}

// confirmAction запрашивает у пользователя подтверждение действия
// Возвращает false, если пользователь отказался
func (d *Dispatcher) confirmAction(action Action, appointmentID int64) bool {
	if _, ok := d.prompter.Prompt(msgActionPrompt); !ok {
		d.logger.Info("Dispatch: %s declined by user, appointment_id=%d", action, appointmentID)
		return false
	}
	return true
}

// notifyError показывает пользователю понятное сообщение об ошибке
func (d *Dispatcher) notifyError(action Action, appointmentID int64, err error) {
	d.logger.Warn("Dispatch: %s failed for appointment_id=%d: %v", action, appointmentID, err)
	notifyActionError(d.notifier, err)
}

// OrderActionClient часть клиента API, выполняющая переходы статусов заказов
type OrderActionClient interface {
	DeliverOrder(ctx context.Context, orderID int64) error
	CancelOrder(ctx context.Context, orderID int64, reason string) error
	PayOrder(ctx context.Context, orderID int64) error
}

// OrderDispatcher выполняет действия над заказами и обновляет их список
// Устроен так же, как Dispatcher для записей
type OrderDispatcher struct {
	client   OrderActionClient
	store    *ListStore[Order]
	prompter Prompter
	notifier Notifier
	logger   Logger
}

// NewOrderDispatcher создает новый диспетчер действий над заказами
func NewOrderDispatcher(client OrderActionClient, store *ListStore[Order], prompter Prompter, notifier Notifier, logger Logger) *OrderDispatcher {
	return &OrderDispatcher{
		client:   client,
		store:    store,
		prompter: prompter,
		notifier: notifier,
		logger:   logger,
	}
}

// Dispatch выполняет действие над заказом
// Каждое действие сначала подтверждается пользователем; для отмены
// подтверждением служит ввод причины. Отказ пользователя
// не считается ошибкой и не трогает список
func (d *OrderDispatcher) Dispatch(ctx context.Context, action Action, orderID int64) error {
	var err error

	switch action {
	case ActionDeliver:
		if !d.confirmAction(action, orderID) {
			return nil
		}
		err = d.client.DeliverOrder(ctx, orderID)

	case ActionPay:
		if !d.confirmAction(action, orderID) {
			return nil
		}
		err = d.client.PayOrder(ctx, orderID)

	case ActionCancel:
		reason, ok := d.prompter.Prompt(msgCancelPrompt)
		if !ok {
			d.logger.Info("Dispatch: order cancel declined by user, order_id=%d", orderID)
			return nil
		}
		err = d.client.CancelOrder(ctx, orderID, reason)

	default:
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	if err != nil {
		d.logger.Warn("Dispatch: %s failed for order_id=%d: %v", action, orderID, err)
		notifyActionError(d.notifier, err)
		return err
	}

	d.notifier.Success(msgActionDone)

	// Ошибка обновления не отменяет уже выполненное действие
	if refreshErr := d.store.Refresh(ctx); refreshErr != nil {
		d.logger.Warn("Dispatch: refresh after %s failed: %v", action, refreshErr)
	}

	return nil
}

// confirmAction запрашивает у пользователя подтверждение действия
// Возвращает false, если пользователь отказался
func (d *OrderDispatcher) confirmAction(action Action, orderID int64) bool {
	if _, ok := d.prompter.Prompt(msgActionPrompt); !ok {
		d.logger.Info("Dispatch: %s declined by user, order_id=%d", action, orderID)
		return false
	}
	return true
}

// notifyActionError показывает пользователю понятное сообщение об ошибке
func notifyActionError(notifier Notifier, err error) {
	var apiErr *APIError

	switch {
	case errors.Is(err, ErrRequestTimeout):
		notifier.Error(msgActionTimeout)

	case errors.Is(err, ErrUnauthorized):
		notifier.Error(msgSessionExpired)

	case errors.As(err, &apiErr):
		// Сервер присылает готовое сообщение на русском
		notifier.Error(apiErr.Message)

	default:
		notifier.Error(err.Error())
	}
}
