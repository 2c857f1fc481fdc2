package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SPA-AdminService/internal/domain"
	serviceRepo "github.com/m04kA/SPA-AdminService/internal/infra/storage/service"
	userRepo "github.com/m04kA/SPA-AdminService/internal/infra/storage/user"
)

// UseCase use case для создания записи на услуги
type UseCase struct {
	appointmentRepo      AppointmentRepository
	serviceRepo          ServiceRepository
	userRepo             UserRepository
	txManager            TransactionManager
	catalogue            domain.SlotCatalogue
	maxConcurrentPerSlot int
	timeProvider         TimeProvider
	logger               Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	catalogue domain.SlotCatalogue,
	maxConcurrentPerSlot int,
	logger Logger,
) *UseCase {
	if maxConcurrentPerSlot <= 0 {
		maxConcurrentPerSlot = domain.DefaultMaxConcurrentPerSlot
	}
	return &UseCase{
		appointmentRepo:      appointmentRepo,
		serviceRepo:          serviceRepo,
		userRepo:             userRepo,
		txManager:            txManager,
		catalogue:            catalogue,
		maxConcurrentPerSlot: maxConcurrentPerSlot,
		timeProvider:         &RealTimeProvider{},
		logger:               logger,
	}
}

// Execute выполняет use case создания записи
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: customer=%s, date=%s, time=%s, services=%v",
		req.CustomerName, req.Date.Format(domain.DateFormat), req.StartTime, req.ServiceIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем слот: каталог, дата, запас времени на сегодня
	if err := validateSlot(uc.catalogue, req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateAppointment: slot validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем услуги (порядок сохраняется)
	services, err := uc.serviceRepo.GetByIDs(ctx, req.ServiceIDs)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: one of services %v not found", req.ServiceIDs)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get services %v: %v", req.ServiceIDs, err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	// 5. Считаем суммарную длительность и стоимость, собираем названия
	totalDuration := 0
	totalPrice := 0.0
	serviceNames := make([]string, 0, len(services))
	for _, svc := range services {
		totalDuration += svc.DurationMinutes
		totalPrice += svc.Price
		serviceNames = append(serviceNames, svc.Name)
	}

	// 6. Проверяем мастера, если он указан
	var staffName *string
	if req.StaffID != nil {
		staff, err := uc.userRepo.GetByID(ctx, *req.StaffID)
		if err != nil {
			if errors.Is(err, userRepo.ErrUserNotFound) {
				uc.logger.Warn("CreateAppointment: staff id=%d not found", *req.StaffID)
				return nil, ErrStaffNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get staff id=%d: %v", *req.StaffID, err)
			return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
		}
		if !staff.CanBeAssigned() {
			uc.logger.Warn("CreateAppointment: staff id=%d cannot take appointments", *req.StaffID)
			return nil, ErrStaffNotAssignable
		}
		staffName = &staff.Name
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 7. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Получаем все активные записи на эту дату с блокировкой (FOR UPDATE)
		filter := domain.AppointmentsFilter{
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false, // Только активные записи
		}

		appointments, err := uc.appointmentRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 7.2. Проверяем занятость кабинетов на слот
		overlappingCount, err := countOverlappingAppointments(req.StartTime, totalDuration, appointments)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to count overlapping appointments: %v", err)
			return fmt.Errorf("%w: failed to count overlapping appointments: %v", ErrInternal, err)
		}

		// Если maxConcurrentPerSlot = 3, то допустимо overlappingCount = 0, 1, 2
		if overlappingCount >= uc.maxConcurrentPerSlot {
			uc.logger.Warn("CreateAppointment: slot not available, %d/%d rooms taken",
				overlappingCount, uc.maxConcurrentPerSlot)
			return ErrSlotNotAvailable
		}

		uc.logger.Info("CreateAppointment: slot available, %d/%d rooms taken",
			overlappingCount, uc.maxConcurrentPerSlot)

		// 7.3. Проверяем, что у мастера нет пересекающейся записи
		if req.StaffID != nil {
			busy, err := staffHasConflict(*req.StaffID, req.StartTime, totalDuration, appointments)
			if err != nil {
				uc.logger.Error("CreateAppointment: failed to check staff conflicts: %v", err)
				return fmt.Errorf("%w: failed to check staff conflicts: %v", ErrInternal, err)
			}
			if busy {
				uc.logger.Warn("CreateAppointment: staff id=%d is busy at %s", *req.StaffID, req.StartTime)
				return ErrStaffBusy
			}
		}

		// 7.4. Создаем запись с денормализацией данных услуг
		appt := &domain.Appointment{
			CustomerName:    req.CustomerName,
			CustomerPhone:   req.CustomerPhone,
			StaffID:         req.StaffID,
			AppointmentDate: req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: totalDuration,
			Status:          domain.StatusPending,
			TotalPrice:      totalPrice,
			// Денормализация данных услуг и мастера
			ServiceIDs:   req.ServiceIDs,
			ServiceNames: serviceNames,
			StaffName:    staffName,
			// Заметки
			Notes: req.Notes,
		}

		// 7.5. Сохраняем запись
		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	// Конвертируем в response
	return &Response{
		ID:              result.ID,
		CustomerName:    result.CustomerName,
		CustomerPhone:   result.CustomerPhone,
		StaffID:         result.StaffID,
		AppointmentDate: result.AppointmentDate,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		TotalPrice:      result.TotalPrice,
		ServiceIDs:      result.ServiceIDs,
		ServiceNames:    result.ServiceNames,
		StaffName:       result.StaffName,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
