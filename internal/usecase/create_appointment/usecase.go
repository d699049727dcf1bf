package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	apptRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
)

// UseCase use case для создания записи на приём
// Единственная точка, где принимается решение о допустимости записи
// и задаётся порядок побочных эффектов
type UseCase struct {
	appointmentRepo  AppointmentRepository
	notificationRepo NotificationRepository
	cache            CacheProvider
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	notificationRepo NotificationRepository,
	cache CacheProvider,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		notificationRepo: notificationRepo,
		cache:            cache,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания записи
//
// Порядок проверок фиксирован: нормализация даты, дата в прошлом,
// запись к самому себе, рабочие часы, занятость слота. Первая
// сработавшая проверка определяет возвращаемую ошибку.
//
// Проверка занятости и вставка выполняются в сериализуемой транзакции;
// уникальный индекс (provider_id, date) в БД закрывает гонку
// check-then-create при конкурентных запросах.
//
// Побочные эффекты после успешного создания (уведомление провайдеру,
// инвалидация кеша списка записей за день) выполняются best-effort:
// их ошибки логируются и не откатывают созданную запись.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: provider=%s, user=%s, date=%s",
		req.ProviderID, req.UserID, req.Date.Format("2006-01-02 15:04"))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализуем дату к началу часа - канонический момент записи
	appointmentDate := domain.StartOfHour(req.Date)

	// 3. Дата не должна быть в прошлом
	now := uc.timeProvider.Now()
	if err := validateNotPast(appointmentDate, now); err != nil {
		uc.logger.Warn("CreateAppointment: date %s is in the past (now=%s)",
			appointmentDate.Format("2006-01-02 15:04"), now.Format("2006-01-02 15:04"))
		return nil, err
	}

	// 4. Запись к самому себе запрещена
	if err := validateNotSelf(req); err != nil {
		uc.logger.Warn("CreateAppointment: user=%s tried to book himself", req.UserID)
		return nil, err
	}

	// 5. Час начала слота должен попадать в рабочее окно
	if err := validateBusinessHours(appointmentDate); err != nil {
		uc.logger.Warn("CreateAppointment: hour=%d is outside business hours", appointmentDate.Hour())
		return nil, err
	}

	// 6. Проверяем занятость слота и создаем запись в сериализуемой транзакции
	var created *domain.Appointment
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.appointmentRepo.FindByDate(txCtx, appointmentDate, req.ProviderID)
		if err != nil && !errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			uc.logger.Error("CreateAppointment: failed to check slot: %v", err)
			return fmt.Errorf("%w: failed to check slot: %v", ErrStorage, err)
		}
		if existing != nil {
			uc.logger.Warn("CreateAppointment: slot provider=%s date=%s already booked",
				req.ProviderID, appointmentDate.Format("2006-01-02 15:04"))
			return ErrSlotAlreadyBooked
		}

		created, err = uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			ProviderID: req.ProviderID,
			UserID:     req.UserID,
			Date:       appointmentDate,
		})
		if err != nil {
			// Конкурентный запрос успел занять слот между проверкой и вставкой
			if errors.Is(err, apptRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: slot provider=%s date=%s taken concurrently",
					req.ProviderID, appointmentDate.Format("2006-01-02 15:04"))
				return ErrSlotAlreadyBooked
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrStorage, err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", created.ID)

	// 7. Побочные эффекты: уведомление провайдеру, затем инвалидация кеша
	uc.notifyProvider(ctx, created)
	uc.invalidateProviderCache(ctx, created)

	return fromDomain(created), nil
}

// notifyProvider создает уведомление провайдеру о новой записи
// Ошибка не прерывает операцию: запись уже создана
func (uc *UseCase) notifyProvider(ctx context.Context, appt *domain.Appointment) {
	_, err := uc.notificationRepo.Create(ctx, &domain.Notification{
		RecipientID: appt.ProviderID.String(),
		Content:     notificationContent(appt.Date),
	})
	if err != nil {
		uc.logger.Warn("CreateAppointment: failed to create notification for provider=%s: %v",
			appt.ProviderID, err)
	}
}

// invalidateProviderCache сбрасывает кеш списка записей провайдера за день
// Ошибка не прерывает операцию: кеш доедет по TTL
func (uc *UseCase) invalidateProviderCache(ctx context.Context, appt *domain.Appointment) {
	key := domain.ProviderAppointmentsCacheKey(appt.ProviderID, appt.Date)
	if err := uc.cache.Invalidate(ctx, key); err != nil {
		uc.logger.Warn("CreateAppointment: failed to invalidate cache key=%s: %v", key, err)
	}
}
