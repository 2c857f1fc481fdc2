package orders

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SPA-AdminService/internal/domain"
	orderRepo "github.com/m04kA/SPA-AdminService/internal/infra/storage/order"
	"github.com/m04kA/SPA-AdminService/internal/service/orders/models"
	"github.com/m04kA/SPA-AdminService/pkg/ptr"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeOrderRepo struct {
	orders map[int64]*domain.Order
	nextID int64
}

func newFakeRepo(orders ...*domain.Order) *fakeOrderRepo {
	m := make(map[int64]*domain.Order, len(orders))
	var maxID int64
	for _, o := range orders {
		m[o.ID] = o
		if o.ID > maxID {
			maxID = o.ID
		}
	}
	return &fakeOrderRepo{orders: m, nextID: maxID}
}

func (r *fakeOrderRepo) Create(_ context.Context, o *domain.Order) (*domain.Order, error) {
	r.nextID++
	o.ID = r.nextID
	r.orders[o.ID] = o
	return o, nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, orderRepo.ErrOrderNotFound
	}
	return o, nil
}

func (r *fakeOrderRepo) GetWithFilter(_ context.Context, filter domain.OrdersFilter) ([]*domain.Order, error) {
	var result []*domain.Order
	for _, o := range r.orders {
		if filter.Status != nil && o.Status != *filter.Status {
			continue
		}
		result = append(result, o)
	}
	return result, nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id int64, status domain.OrderStatus) error {
	o, ok := r.orders[id]
	if !ok {
		return orderRepo.ErrOrderNotFound
	}
	o.Status = status
	return nil
}

func (r *fakeOrderRepo) Cancel(_ context.Context, id int64, reason string) error {
	o, ok := r.orders[id]
	if !ok {
		return orderRepo.ErrOrderNotFound
	}
	o.Status = domain.OrderStatusCancelled
	o.CancellationReason = &reason
	return nil
}

func testOrder(id int64, status domain.OrderStatus) *domain.Order {
	return &domain.Order{
		ID:           id,
		Number:       "f6e9a1c2-0000-0000-0000-000000000000",
		CustomerName: "Анна Смирнова",
		TotalPrice:   2500,
		ItemsCount:   2,
		Status:       status,
	}
}

func TestCreate(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, noopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateOrderRequest{
		CustomerName: "Анна Смирнова",
		TotalPrice:   2500,
		ItemsCount:   2,
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.OrderStatusPending), resp.Status)
	assert.NotEmpty(t, resp.Number)
	assert.True(t, resp.Actions.CanDeliver)
	assert.True(t, resp.Actions.CanCancel)
	assert.False(t, resp.Actions.CanPay)
}

func TestCreate_InvalidInput(t *testing.T) {
	svc := NewService(newFakeRepo(), noopLogger{})

	tests := []struct {
		name string
		req  *models.CreateOrderRequest
	}{
		{"empty customer name", &models.CreateOrderRequest{TotalPrice: 100, ItemsCount: 1}},
		{"negative price", &models.CreateOrderRequest{CustomerName: "Анна", TotalPrice: -1, ItemsCount: 1}},
		{"zero items", &models.CreateOrderRequest{CustomerName: "Анна", TotalPrice: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestDeliver(t *testing.T) {
	repo := newFakeRepo(testOrder(1, domain.OrderStatusPending))
	svc := NewService(repo, noopLogger{})

	err := svc.Deliver(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusDelivered, repo.orders[1].Status)
}

func TestDeliver_WrongStatus(t *testing.T) {
	for _, status := range []domain.OrderStatus{
		domain.OrderStatusDelivered, domain.OrderStatusCancelled, domain.OrderStatusPaid,
	} {
		repo := newFakeRepo(testOrder(1, status))
		svc := NewService(repo, noopLogger{})

		err := svc.Deliver(context.Background(), 1)
		assert.ErrorIs(t, err, ErrCannotDeliver, "status=%s", status)
	}
}

func TestCancel(t *testing.T) {
	repo := newFakeRepo(testOrder(1, domain.OrderStatusPending))
	svc := NewService(repo, noopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelOrderRequest{CancellationReason: "нет в наличии"})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, repo.orders[1].Status)
}

func TestCancel_DeliveredRejected(t *testing.T) {
	repo := newFakeRepo(testOrder(1, domain.OrderStatusDelivered))
	svc := NewService(repo, noopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelOrderRequest{CancellationReason: "нет в наличии"})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestPay(t *testing.T) {
	repo := newFakeRepo(testOrder(1, domain.OrderStatusDelivered))
	svc := NewService(repo, noopLogger{})

	err := svc.Pay(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPaid, repo.orders[1].Status)
}

func TestPay_PendingRejected(t *testing.T) {
	repo := newFakeRepo(testOrder(1, domain.OrderStatusPending))
	svc := NewService(repo, noopLogger{})

	err := svc.Pay(context.Background(), 1)
	assert.ErrorIs(t, err, ErrCannotPay)
}

func TestList_FilterByStatus(t *testing.T) {
	repo := newFakeRepo(
		testOrder(1, domain.OrderStatusPending),
		testOrder(2, domain.OrderStatusPaid),
	)
	svc := NewService(repo, noopLogger{})

	resp, err := svc.List(context.Background(), &models.ListOrdersRequest{Status: ptr.Ptr("paid")})
	require.NoError(t, err)
	require.Len(t, resp.Orders, 1)
	assert.Equal(t, int64(2), resp.Orders[0].ID)
}

func TestList_InvalidStatus(t *testing.T) {
	svc := NewService(newFakeRepo(), noopLogger{})

	_, err := svc.List(context.Background(), &models.ListOrdersRequest{Status: ptr.Ptr("shipped")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), noopLogger{})

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
