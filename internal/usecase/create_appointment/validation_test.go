package create_appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateRequest(t *testing.T) {
	validDate := time.Date(2020, time.May, 11, 13, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		req     *Request
		wantErr bool
	}{
		{
			name:    "корректный запрос",
			req:     &Request{ProviderID: testProviderID, UserID: testUserID, Date: validDate},
			wantErr: false,
		},
		{
			name:    "нет providerID",
			req:     &Request{UserID: testUserID, Date: validDate},
			wantErr: true,
		},
		{
			name:    "нет userID",
			req:     &Request{ProviderID: testProviderID, Date: validDate},
			wantErr: true,
		},
		{
			name:    "нулевая дата",
			req:     &Request{ProviderID: testProviderID, UserID: testUserID},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateRequest(tc.req)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateNotPast(t *testing.T) {
	now := time.Date(2020, time.May, 10, 12, 0, 0, 0, time.UTC)

	assert.ErrorIs(t, validateNotPast(now.Add(-time.Hour), now), ErrPastDate)
	assert.NoError(t, validateNotPast(now, now)) // текущий час ещё допустим
	assert.NoError(t, validateNotPast(now.Add(time.Hour), now))
}

func TestValidateNotSelf(t *testing.T) {
	assert.ErrorIs(t, validateNotSelf(&Request{
		ProviderID: testProviderID,
		UserID:     testProviderID,
	}), ErrSelfBooking)

	assert.NoError(t, validateNotSelf(&Request{
		ProviderID: testProviderID,
		UserID:     testUserID,
	}))
}

func TestNotificationContent(t *testing.T) {
	content := notificationContent(time.Date(2020, time.December, 3, 9, 0, 0, 0, time.UTC))
	assert.Equal(t, "Новая запись на 3 декабря в 09:00", content)
}
