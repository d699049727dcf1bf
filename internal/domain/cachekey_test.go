package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestProviderAppointmentsCacheKey(t *testing.T) {
	providerID := uuid.MustParse("7f2b3c44-9c1a-4e05-8f2e-3f3c3f6a1b2d")

	t.Run("формат ключа: namespace, provider, дата без ведущих нулей", func(t *testing.T) {
		date := time.Date(2020, time.May, 3, 14, 0, 0, 0, time.UTC)

		key := ProviderAppointmentsCacheKey(providerID, date)

		assert.Equal(t, "provider-appointments:7f2b3c44-9c1a-4e05-8f2e-3f3c3f6a1b2d:2020-5-3", key)
	})

	t.Run("гранулярность ключа - день: разные часы дают один ключ", func(t *testing.T) {
		morning := time.Date(2020, time.May, 10, 9, 0, 0, 0, time.UTC)
		evening := time.Date(2020, time.May, 10, 18, 0, 0, 0, time.UTC)

		assert.Equal(t,
			ProviderAppointmentsCacheKey(providerID, morning),
			ProviderAppointmentsCacheKey(providerID, evening),
		)
	})

	t.Run("разные провайдеры дают разные ключи", func(t *testing.T) {
		date := time.Date(2020, time.May, 10, 9, 0, 0, 0, time.UTC)
		otherID := uuid.MustParse("11111111-2222-3333-4444-555555555555")

		assert.NotEqual(t,
			ProviderAppointmentsCacheKey(providerID, date),
			ProviderAppointmentsCacheKey(otherID, date),
		)
	})
}
