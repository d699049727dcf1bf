package list_provider_appointments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	cacheRedis "github.com/m04kA/SMC-AppointmentService/internal/infra/cache/redis"
)

var testProviderID = uuid.MustParse("7f2b3c44-9c1a-4e05-8f2e-3f3c3f6a1b2d")

type fakeRepo struct {
	appointments []*domain.Appointment
	err          error
	calls        int
}

func (f *fakeRepo) ListByProviderAndDay(_ context.Context, _ uuid.UUID, _ time.Time) ([]*domain.Appointment, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.appointments, nil
}

type fakeCache struct {
	values map[string][]byte
	getErr error
	setErr error

	savedKey string
	savedTTL time.Duration
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[string][]byte)}
}

func (f *fakeCache) Get(_ context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	value, ok := f.values[key]
	if !ok {
		return nil, cacheRedis.ErrCacheMiss
	}
	return value, nil
}

func (f *fakeCache) Save(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.values[key] = value
	f.savedKey = key
	f.savedTTL = ttl
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testAppointments() []*domain.Appointment {
	return []*domain.Appointment{
		{
			ID:         uuid.New(),
			ProviderID: testProviderID,
			UserID:     uuid.New(),
			Date:       time.Date(2020, time.May, 10, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:         uuid.New(),
			ProviderID: testProviderID,
			UserID:     uuid.New(),
			Date:       time.Date(2020, time.May, 10, 14, 0, 0, 0, time.UTC),
		},
	}
}

func TestExecute_CacheMiss(t *testing.T) {
	repo := &fakeRepo{appointments: testAppointments()}
	cache := newFakeCache()
	uc := NewUseCase(repo, cache, nopLogger{})

	day := time.Date(2020, time.May, 10, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{ProviderID: testProviderID, Day: day})

	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 2)
	assert.Equal(t, 1, repo.calls)

	// Список сохранён в кеш под дневным ключом
	assert.Equal(t, "provider-appointments:"+testProviderID.String()+":2020-5-10", cache.savedKey)
	assert.Equal(t, 24*time.Hour, cache.savedTTL)

	var cached []Appointment
	require.NoError(t, json.Unmarshal(cache.values[cache.savedKey], &cached))
	assert.Len(t, cached, 2)
}

func TestExecute_CacheHit(t *testing.T) {
	repo := &fakeRepo{appointments: testAppointments()}
	cache := newFakeCache()
	uc := NewUseCase(repo, cache, nopLogger{})

	day := time.Date(2020, time.May, 10, 0, 0, 0, 0, time.UTC)

	// Первый вызов прогревает кеш, второй не должен трогать хранилище
	_, err := uc.Execute(context.Background(), &Request{ProviderID: testProviderID, Day: day})
	require.NoError(t, err)

	resp, err := uc.Execute(context.Background(), &Request{ProviderID: testProviderID, Day: day})
	require.NoError(t, err)

	assert.Len(t, resp.Appointments, 2)
	assert.Equal(t, 1, repo.calls)
}

func TestExecute_CacheReadFailureFallsBackToStorage(t *testing.T) {
	repo := &fakeRepo{appointments: testAppointments()}
	cache := newFakeCache()
	cache.getErr = errors.New("redis unavailable")
	uc := NewUseCase(repo, cache, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ProviderID: testProviderID,
		Day:        time.Date(2020, time.May, 10, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 2)
	assert.Equal(t, 1, repo.calls)
}

func TestExecute_CorruptedCacheValueFallsBackToStorage(t *testing.T) {
	repo := &fakeRepo{appointments: testAppointments()}
	cache := newFakeCache()
	uc := NewUseCase(repo, cache, nopLogger{})

	day := time.Date(2020, time.May, 10, 0, 0, 0, 0, time.UTC)
	key := domain.ProviderAppointmentsCacheKey(testProviderID, day)
	cache.values[key] = []byte("{not json")

	resp, err := uc.Execute(context.Background(), &Request{ProviderID: testProviderID, Day: day})

	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 2)
	assert.Equal(t, 1, repo.calls)
}

func TestExecute_StorageFailure(t *testing.T) {
	repo := &fakeRepo{err: errors.New("connection reset")}
	uc := NewUseCase(repo, newFakeCache(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ProviderID: testProviderID,
		Day:        time.Date(2020, time.May, 10, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrStorage)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, newFakeCache(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Day: time.Date(2020, time.May, 10, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
