package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SPA-AdminService/internal/domain"
	orderRepo "github.com/m04kA/SPA-AdminService/internal/infra/storage/order"
	"github.com/m04kA/SPA-AdminService/internal/service/orders/models"
)

// Service сервис для работы с заказами товаров
// Статусы заказов проще записей: pending -> delivered -> paid, отмена только
// из pending; запаса времени у заказов нет
type Service struct {
	orderRepo OrderRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса заказов
func NewService(orderRepo OrderRepository, logger Logger) *Service {
	return &Service{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// Create создает новый заказ
// Номер заказа генерируется сервисом
func (s *Service) Create(ctx context.Context, req *models.CreateOrderRequest) (*models.OrderResponse, error) {
	s.logger.Info("Create: creating order for customer=%s, items=%d", req.CustomerName, req.ItemsCount)

	if strings.TrimSpace(req.CustomerName) == "" {
		s.logger.Warn("Create: customerName is required")
		return nil, fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if req.TotalPrice < 0 {
		s.logger.Warn("Create: totalPrice must be non-negative")
		return nil, fmt.Errorf("%w: totalPrice must be non-negative", ErrInvalidInput)
	}
	if req.ItemsCount <= 0 {
		s.logger.Warn("Create: itemsCount must be positive")
		return nil, fmt.Errorf("%w: itemsCount must be positive", ErrInvalidInput)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		s.logger.Warn("Create: notes are too long")
		return nil, fmt.Errorf("%w: notes are too long (max %d)", ErrInvalidInput, domain.MaxNotesLength)
	}

	order := &domain.Order{
		Number:       uuid.NewString(),
		CustomerName: req.CustomerName,
		TotalPrice:   req.TotalPrice,
		ItemsCount:   req.ItemsCount,
		Status:       domain.OrderStatusPending,
		Notes:        req.Notes,
	}

	created, err := s.orderRepo.Create(ctx, order)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created order id=%d, number=%s", created.ID, created.Number)
	return models.FromDomainOrder(created), nil
}

// GetByID получает заказ по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.OrderResponse, error) {
	s.logger.Info("GetByID: fetching order id=%d", id)

	order, err := s.getOrder(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainOrder(order), nil
}

// List получает заказы с фильтрацией по периоду и статусу
func (s *Service) List(ctx context.Context, req *models.ListOrdersRequest) (*models.OrderListResponse, error) {
	s.logger.Info("List: fetching orders, status=%v", req.Status)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	orders, err := s.orderRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d orders", len(orders))
	return models.FromDomainOrderList(orders), nil
}

// Deliver отмечает заказ доставленным (pending -> delivered)
func (s *Service) Deliver(ctx context.Context, id int64) error {
	s.logger.Info("Deliver: delivering order id=%d", id)

	order, err := s.getOrder(ctx, "Deliver", id)
	if err != nil {
		return err
	}

	if !order.CanDeliver() {
		s.logger.Warn("Deliver: order id=%d cannot be delivered, status=%s", id, order.Status)
		return ErrCannotDeliver
	}

	if err := s.updateStatus(ctx, "Deliver", id, domain.OrderStatusDelivered); err != nil {
		return err
	}

	s.logger.Info("Deliver: successfully delivered order id=%d", id)
	return nil
}

// Cancel отменяет заказ
// Отмена доступна только из статуса pending
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelOrderRequest) error {
	s.logger.Info("Cancel: cancelling order id=%d", id)

	reason := strings.TrimSpace(req.CancellationReason)
	if reason == "" {
		s.logger.Warn("Cancel: cancellation reason is required for order id=%d", id)
		return fmt.Errorf("%w: cancellation reason is required", ErrInvalidInput)
	}

	order, err := s.getOrder(ctx, "Cancel", id)
	if err != nil {
		return err
	}

	if !order.CanCancel() {
		s.logger.Warn("Cancel: order id=%d cannot be cancelled, status=%s", id, order.Status)
		return ErrCannotCancel
	}

	if err := s.orderRepo.Cancel(ctx, id, reason); err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			s.logger.Warn("Cancel: order id=%d not found during cancellation", id)
			return ErrOrderNotFound
		}
		s.logger.Error("Cancel: repository error for order id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled order id=%d", id)
	return nil
}

// Pay проводит оплату заказа (delivered -> paid)
func (s *Service) Pay(ctx context.Context, id int64) error {
	s.logger.Info("Pay: paying order id=%d", id)

	order, err := s.getOrder(ctx, "Pay", id)
	if err != nil {
		return err
	}

	if !order.CanPay() {
		s.logger.Warn("Pay: order id=%d cannot be paid, status=%s", id, order.Status)
		return ErrCannotPay
	}

	if err := s.updateStatus(ctx, "Pay", id, domain.OrderStatusPaid); err != nil {
		return err
	}

	s.logger.Info("Pay: successfully paid order id=%d", id)
	return nil
}

// Вспомогательные методы

// getOrder получает заказ с маппингом ошибок репозитория
func (s *Service) getOrder(ctx context.Context, op string, id int64) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			s.logger.Warn("%s: order id=%d not found", op, id)
			return nil, ErrOrderNotFound
		}
		s.logger.Error("%s: repository error for order id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return order, nil
}

// updateStatus обновляет статус заказа с маппингом ошибок репозитория
func (s *Service) updateStatus(ctx context.Context, op string, id int64, status domain.OrderStatus) error {
	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			s.logger.Warn("%s: order id=%d not found during update", op, id)
			return ErrOrderNotFound
		}
		s.logger.Error("%s: repository error for order id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return nil
}
