package create_appointment

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	apptRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
)

// callLog общий журнал вызовов для проверки порядка побочных эффектов
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, name)
}

func (l *callLog) snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

// fakeAppointmentRepo in-memory репозиторий записей
// Уникальность (provider, date) обеспечивается атомарно внутри Create,
// как это делает уникальный индекс в реальной БД
type fakeAppointmentRepo struct {
	mu           sync.Mutex
	appointments map[string]*domain.Appointment

	findErr   error
	createErr error
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: make(map[string]*domain.Appointment)}
}

func slotKey(providerID uuid.UUID, date time.Time) string {
	return fmt.Sprintf("%s|%s", providerID, date.UTC().Format(time.RFC3339))
}

func (f *fakeAppointmentRepo) FindByDate(_ context.Context, date time.Time, providerID uuid.UUID) (*domain.Appointment, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	appt, ok := f.appointments[slotKey(providerID, date)]
	if !ok {
		return nil, apptRepo.ErrAppointmentNotFound
	}
	copied := *appt
	return &copied, nil
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	key := slotKey(appt.ProviderID, appt.Date)
	if _, exists := f.appointments[key]; exists {
		return nil, apptRepo.ErrSlotTaken
	}

	created := *appt
	created.ID = uuid.New()
	created.CreatedAt = time.Now().UTC()
	created.UpdatedAt = created.CreatedAt
	f.appointments[key] = &created

	copied := created
	return &copied, nil
}

func (f *fakeAppointmentRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.appointments)
}

// fakeNotificationRepo in-memory репозиторий уведомлений
type fakeNotificationRepo struct {
	mu      sync.Mutex
	created []*domain.Notification

	createErr error
	log       *callLog
}

func (f *fakeNotificationRepo) Create(_ context.Context, notification *domain.Notification) (*domain.Notification, error) {
	if f.log != nil {
		f.log.add("notification.create")
	}
	if f.createErr != nil {
		return nil, f.createErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	copied := *notification
	f.created = append(f.created, &copied)
	return &copied, nil
}

func (f *fakeNotificationRepo) all() []*domain.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*domain.Notification(nil), f.created...)
}

// fakeCacheProvider запоминает инвалидированные ключи
type fakeCacheProvider struct {
	mu          sync.Mutex
	invalidated []string

	invalidateErr error
	log           *callLog
}

func (f *fakeCacheProvider) Invalidate(_ context.Context, key string) error {
	if f.log != nil {
		f.log.add("cache.invalidate")
	}
	if f.invalidateErr != nil {
		return f.invalidateErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.invalidated = append(f.invalidated, key)
	return nil
}

func (f *fakeCacheProvider) keys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.invalidated...)
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// stubTimeProvider фиксированное "сейчас" для тестов
type stubTimeProvider struct {
	now time.Time
}

func (p *stubTimeProvider) Now() time.Time {
	return p.now
}

// nopLogger логгер-заглушка
type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
