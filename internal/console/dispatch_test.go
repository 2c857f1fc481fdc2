package console

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Фейки ---

type fakeActionClient struct {
	confirmed []int64
	completed []int64
	cancelled []int64
	paid      []int64
	reasons   []string

	err error
}

func (f *fakeActionClient) Confirm(ctx context.Context, appointmentID int64) error {
	f.confirmed = append(f.confirmed, appointmentID)
	return f.err
}

func (f *fakeActionClient) Complete(ctx context.Context, appointmentID int64) error {
	f.completed = append(f.completed, appointmentID)
	return f.err
}

func (f *fakeActionClient) Cancel(ctx context.Context, appointmentID int64, reason string) error {
	f.cancelled = append(f.cancelled, appointmentID)
	f.reasons = append(f.reasons, reason)
	return f.err
}

func (f *fakeActionClient) Pay(ctx context.Context, appointmentID int64) error {
	f.paid = append(f.paid, appointmentID)
	return f.err
}

type fakePrompter struct {
	text string
	ok   bool

	prompts []string
}

func (f *fakePrompter) Prompt(message string) (string, bool) {
	f.prompts = append(f.prompts, message)
	return f.text, f.ok
}

type fakeNotifier struct {
	successes []string
	errors    []string
}

func (f *fakeNotifier) Success(message string) { f.successes = append(f.successes, message) }
func (f *fakeNotifier) Error(message string)   { f.errors = append(f.errors, message) }

func newDispatcherForTest(client *fakeActionClient, prompter *fakePrompter, notifier *fakeNotifier) (*Dispatcher, *countingStore[Appointment]) {
	store := &countingStore[Appointment]{}
	d := NewDispatcher(client, store.listStore(), prompter, notifier, noopLogger{})
	return d, store
}

// countingStore считает обновления списка через fetch
type countingStore[T any] struct {
	refreshes int
	store     *ListStore[T]
}

func (c *countingStore[T]) listStore() *ListStore[T] {
	c.store = NewListStore(func(ctx context.Context) ([]T, error) {
		c.refreshes++
		return nil, nil
	})
	return c.store
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

// --- Тесты ---

func TestDispatcher_Dispatch_Confirm_Success(t *testing.T) {
	ctx := context.Background()
	client := &fakeActionClient{}
	prompter := &fakePrompter{ok: true}
	notifier := &fakeNotifier{}
	d, store := newDispatcherForTest(client, prompter, notifier)

	err := d.Dispatch(ctx, ActionConfirm, 42)

	require.NoError(t, err)
	assert.Equal(t, []string{msgActionPrompt}, prompter.prompts)
	assert.Equal(t, []int64{42}, client.confirmed)
	assert.Equal(t, []string{msgActionDone}, notifier.successes)
	assert.Equal(t, 1, store.refreshes)
}

func TestDispatcher_Dispatch_Declined_NoSideEffects(t *testing.T) {
	ctx := context.Background()

	// Отказ от подтверждения любого действия не доходит до шлюза
	for _, action := range []Action{ActionConfirm, ActionComplete, ActionPay} {
		client := &fakeActionClient{}
		prompter := &fakePrompter{ok: false}
		notifier := &fakeNotifier{}
		d, store := newDispatcherForTest(client, prompter, notifier)

		err := d.Dispatch(ctx, action, 42)

		require.NoError(t, err, "action %s", action)
		assert.Equal(t, []string{msgActionPrompt}, prompter.prompts, "action %s", action)
		assert.Empty(t, client.confirmed, "action %s", action)
		assert.Empty(t, client.completed, "action %s", action)
		assert.Empty(t, client.paid, "action %s", action)
		assert.Empty(t, notifier.successes, "action %s", action)
		assert.Empty(t, notifier.errors, "action %s", action)
		assert.Equal(t, 0, store.refreshes, "action %s", action)
	}
}

func TestDispatcher_Dispatch_Cancel_PromptsReason(t *testing.T) {
	ctx := context.Background()
	client := &fakeActionClient{}
	prompter := &fakePrompter{text: "Клиент заболел", ok: true}
	notifier := &fakeNotifier{}
	d, store := newDispatcherForTest(client, prompter, notifier)

	err := d.Dispatch(ctx, ActionCancel, 7)

	require.NoError(t, err)
	assert.Equal(t, []string{msgCancelPrompt}, prompter.prompts)
	assert.Equal(t, []int64{7}, client.cancelled)
	assert.Equal(t, []string{"Клиент заболел"}, client.reasons)
	assert.Equal(t, 1, store.refreshes)
}

func TestDispatcher_Dispatch_Cancel_Declined(t *testing.T) {
	ctx := context.Background()
	client := &fakeActionClient{}
	prompter := &fakePrompter{ok: false}
	notifier := &fakeNotifier{}
	d, store := newDispatcherForTest(client, prompter, notifier)

	err := d.Dispatch(ctx, ActionCancel, 7)

	require.NoError(t, err)
	assert.Empty(t, client.cancelled)
	assert.Empty(t, notifier.successes)
	assert.Empty(t, notifier.errors)
	assert.Equal(t, 0, store.refreshes)
}

func TestDispatcher_Dispatch_APIError_ShowsServerMessage(t *testing.T) {
	ctx := context.Background()
	client := &fakeActionClient{err: &APIError{StatusCode: 409, Message: "запись нельзя подтвердить в текущем статусе"}}
	notifier := &fakeNotifier{}
	d, store := newDispatcherForTest(client, &fakePrompter{ok: true}, notifier)

	err := d.Dispatch(ctx, ActionConfirm, 42)

	require.Error(t, err)
	assert.Equal(t, []string{"запись нельзя подтвердить в текущем статусе"}, notifier.errors)
	assert.Empty(t, notifier.successes)
	assert.Equal(t, 0, store.refreshes)
}

func TestDispatcher_Dispatch_Timeout(t *testing.T) {
	ctx := context.Background()
	client := &fakeActionClient{err: ErrRequestTimeout}
	notifier := &fakeNotifier{}
	d, _ := newDispatcherForTest(client, &fakePrompter{ok: true}, notifier)

	err := d.Dispatch(ctx, ActionPay, 42)

	require.ErrorIs(t, err, ErrRequestTimeout)
	assert.Equal(t, []string{msgActionTimeout}, notifier.errors)
}

func TestDispatcher_Dispatch_Unauthorized(t *testing.T) {
	ctx := context.Background()
	client := &fakeActionClient{err: ErrUnauthorized}
	notifier := &fakeNotifier{}
	d, _ := newDispatcherForTest(client, &fakePrompter{ok: true}, notifier)

	err := d.Dispatch(ctx, ActionComplete, 42)

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, []string{msgSessionExpired}, notifier.errors)
}

func TestDispatcher_Dispatch_UnknownAction(t *testing.T) {
	ctx := context.Background()
	client := &fakeActionClient{}
	d, store := newDispatcherForTest(client, &fakePrompter{}, &fakeNotifier{})

	err := d.Dispatch(ctx, Action("archive"), 42)

	assert.ErrorIs(t, err, ErrUnknownAction)
	assert.Equal(t, 0, store.refreshes)
}

type fakeOrderClient struct {
	delivered []int64
	cancelled []int64
	paid      []int64
	reasons   []string

	err error
}

func (f *fakeOrderClient) DeliverOrder(ctx context.Context, orderID int64) error {
	f.delivered = append(f.delivered, orderID)
	return f.err
}

func (f *fakeOrderClient) CancelOrder(ctx context.Context, orderID int64, reason string) error {
	f.cancelled = append(f.cancelled, orderID)
	f.reasons = append(f.reasons, reason)
	return f.err
}

func (f *fakeOrderClient) PayOrder(ctx context.Context, orderID int64) error {
	f.paid = append(f.paid, orderID)
	return f.err
}

func TestOrderDispatcher_Dispatch_Deliver_Success(t *testing.T) {
	ctx := context.Background()
	client := &fakeOrderClient{}
	prompter := &fakePrompter{ok: true}
	notifier := &fakeNotifier{}
	store := &countingStore[Order]{}
	d := NewOrderDispatcher(client, store.listStore(), prompter, notifier, noopLogger{})

	err := d.Dispatch(ctx, ActionDeliver, 15)

	require.NoError(t, err)
	assert.Equal(t, []string{msgActionPrompt}, prompter.prompts)
	assert.Equal(t, []int64{15}, client.delivered)
	assert.Equal(t, []string{msgActionDone}, notifier.successes)
	assert.Equal(t, 1, store.refreshes)
}

func TestOrderDispatcher_Dispatch_Declined_NoSideEffects(t *testing.T) {
	ctx := context.Background()

	for _, action := range []Action{ActionDeliver, ActionPay} {
		client := &fakeOrderClient{}
		prompter := &fakePrompter{ok: false}
		notifier := &fakeNotifier{}
		store := &countingStore[Order]{}
		d := NewOrderDispatcher(client, store.listStore(), prompter, notifier, noopLogger{})

		err := d.Dispatch(ctx, action, 15)

		require.NoError(t, err, "action %s", action)
		assert.Equal(t, []string{msgActionPrompt}, prompter.prompts, "action %s", action)
		assert.Empty(t, client.delivered, "action %s", action)
		assert.Empty(t, client.paid, "action %s", action)
		assert.Empty(t, notifier.successes, "action %s", action)
		assert.Empty(t, notifier.errors, "action %s", action)
		assert.Equal(t, 0, store.refreshes, "action %s", action)
	}
}

func TestOrderDispatcher_Dispatch_Cancel_Declined(t *testing.T) {
	ctx := context.Background()
	client := &fakeOrderClient{}
	store := &countingStore[Order]{}
	d := NewOrderDispatcher(client, store.listStore(), &fakePrompter{ok: false}, &fakeNotifier{}, noopLogger{})

	err := d.Dispatch(ctx, ActionCancel, 15)

	require.NoError(t, err)
	assert.Empty(t, client.cancelled)
	assert.Equal(t, 0, store.refreshes)
}

func TestOrderDispatcher_Dispatch_UnknownAction(t *testing.T) {
	ctx := context.Background()
	client := &fakeOrderClient{}
	store := &countingStore[Order]{}
	d := NewOrderDispatcher(client, store.listStore(), &fakePrompter{}, &fakeNotifier{}, noopLogger{})

	// Подтверждение - действие записи, не заказа
	err := d.Dispatch(ctx, ActionConfirm, 15)

	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestDispatcher_Dispatch_RefreshErrorDoesNotFailAction(t *testing.T) {
	ctx := context.Background()
	client := &fakeActionClient{}
	notifier := &fakeNotifier{}

	store := NewListStore(func(ctx context.Context) ([]Appointment, error) {
		return nil, errors.New("connection refused")
	})
	d := NewDispatcher(client, store, &fakePrompter{ok: true}, notifier, noopLogger{})

	err := d.Dispatch(ctx, ActionConfirm, 42)

	require.NoError(t, err)
	assert.Equal(t, []string{msgActionDone}, notifier.successes)
}
