package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfHour(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}

	got := StartOfHour(time.Date(2020, time.May, 10, 13, 45, 31, 999, loc))

	assert.Equal(t, time.Date(2020, time.May, 10, 13, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}

func TestInBusinessHours(t *testing.T) {
	cases := []struct {
		hour int
		want bool
	}{
		{hour: 0, want: false},
		{hour: 7, want: false},
		{hour: 8, want: true},
		{hour: 12, want: true},
		{hour: 18, want: true},
		{hour: 19, want: true}, // верхняя граница включительно
		{hour: 20, want: false},
		{hour: 23, want: false},
	}

	for _, tc := range cases {
		date := time.Date(2020, time.May, 11, tc.hour, 0, 0, 0, time.UTC)
		assert.Equal(t, tc.want, InBusinessHours(date), "hour=%d", tc.hour)
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2020, time.May, 10, 8, 0, 0, 0, time.UTC)
	b := time.Date(2020, time.May, 10, 19, 0, 0, 0, time.UTC)
	c := time.Date(2020, time.May, 11, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, c))
}
