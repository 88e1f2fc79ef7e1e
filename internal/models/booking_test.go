package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStayNights(t *testing.T) {
	checkIn := time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		checkOut time.Time
		want     int
	}{
		{"two full days", checkIn.AddDate(0, 0, 2), 2},
		{"single night", checkIn.AddDate(0, 0, 1), 1},
		{"zero duration floors at one", checkIn, 1},
		{"thirty hours rounds down to one", checkIn.Add(30 * time.Hour), 1},
		{"thirty-six hours rounds up to two", checkIn.Add(36 * time.Hour), 2},
		{"late checkout stays at two", checkIn.Add(48*time.Hour + 11*time.Hour), 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StayNights(checkIn, tc.checkOut))
		})
	}
}
