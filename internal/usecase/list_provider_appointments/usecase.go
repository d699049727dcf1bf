package list_provider_appointments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	cacheRedis "github.com/m04kA/SMC-AppointmentService/internal/infra/cache/redis"
)

// cacheTTL время жизни закешированного списка записей за день
const cacheTTL = 24 * time.Hour

// UseCase use case получения списка записей провайдера за день
// Читает через кеш: ключ дневной гранулярности, его инвалидирует
// сценарий создания записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	cache           CacheProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	cache CacheProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		cache:           cache,
		logger:          logger,
	}
}

// Execute возвращает записи провайдера за календарный день
// Ошибки кеша не фатальны: чтение деградирует до похода в хранилище
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ListProviderAppointments: validation failed: %v", err)
		return nil, err
	}

	key := domain.ProviderAppointmentsCacheKey(req.ProviderID, req.Day)

	if items, ok := uc.fromCache(ctx, key); ok {
		uc.logger.Info("ListProviderAppointments: cache hit key=%s (%d appointments)", key, len(items))
		return &Response{Appointments: items}, nil
	}

	appointments, err := uc.appointmentRepo.ListByProviderAndDay(ctx, req.ProviderID, req.Day)
	if err != nil {
		uc.logger.Error("ListProviderAppointments: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrStorage, err)
	}

	items := fromDomainList(appointments)
	uc.saveToCache(ctx, key, items)

	uc.logger.Info("ListProviderAppointments: provider=%s day=%s, %d appointments",
		req.ProviderID, req.Day.Format(domain.DateFormat), len(items))
	return &Response{Appointments: items}, nil
}

// fromCache пытается прочитать список из кеша
func (uc *UseCase) fromCache(ctx context.Context, key string) ([]Appointment, bool) {
	raw, err := uc.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cacheRedis.ErrCacheMiss) {
			uc.logger.Warn("ListProviderAppointments: cache read failed key=%s: %v", key, err)
		}
		return nil, false
	}

	var items []Appointment
	if err := json.Unmarshal(raw, &items); err != nil {
		// Повреждённое значение трактуем как промах
		uc.logger.Warn("ListProviderAppointments: corrupted cache value key=%s: %v", key, err)
		return nil, false
	}
	return items, true
}

// saveToCache сохраняет список в кеш (best-effort)
func (uc *UseCase) saveToCache(ctx context.Context, key string, items []Appointment) {
	raw, err := json.Marshal(items)
	if err != nil {
		uc.logger.Warn("ListProviderAppointments: failed to marshal cache value key=%s: %v", key, err)
		return
	}
	if err := uc.cache.Save(ctx, key, raw, cacheTTL); err != nil {
		uc.logger.Warn("ListProviderAppointments: cache write failed key=%s: %v", key, err)
	}
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProviderID == uuid.Nil {
		return fmt.Errorf("%w: providerID is required", ErrInvalidInput)
	}
	if req.Day.IsZero() {
		return fmt.Errorf("%w: day is required", ErrInvalidInput)
	}
	return nil
}
