package service

import (
	"context"
	"testing"
	"time"

	"github.com/harborview/hotel-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetGuest_ProjectionsFromBookings(t *testing.T) {
	nextStay := time.Date(2026, 12, 20, 0, 0, 0, 0, time.UTC)
	lastRoom := "Ocean View Loft"

	guestRepo := &mockGuestRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.GuestProfile, error) {
			return &models.GuestProfile{ID: id, Email: "maria@example.com", TotalStays: 3}, nil
		},
		nextCheckInFn: func(ctx context.Context, guestID uint, after time.Time) (*time.Time, error) {
			return &nextStay, nil
		},
		lastRoomTypeFn: func(ctx context.Context, guestID uint) (*string, error) {
			return &lastRoom, nil
		},
	}
	bookingRepo := &mockBookingRepo{
		findByGuestIDFn: func(ctx context.Context, guestID uint) ([]models.Booking, error) {
			return []models.Booking{{ID: 1, GuestID: guestID}, {ID: 2, GuestID: guestID}}, nil
		},
	}

	detail, err := NewGuestService(guestRepo, bookingRepo).GetGuest(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, uint(7), detail.Profile.ID)
	require.NotNil(t, detail.NextStayAt)
	assert.Equal(t, nextStay, *detail.NextStayAt)
	require.NotNil(t, detail.LastRoomType)
	assert.Equal(t, "Ocean View Loft", *detail.LastRoomType)
	assert.Len(t, detail.History, 2)
}

// With no completed stays the last room type falls back to the stored
// preference on the profile.
func TestGetGuest_LastRoomTypeFallsBackToPreference(t *testing.T) {
	preferred := "Twin Suite"
	guestRepo := &mockGuestRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.GuestProfile, error) {
			return &models.GuestProfile{ID: id, PreferredRoomType: &preferred}, nil
		},
	}

	detail, err := NewGuestService(guestRepo, &mockBookingRepo{}).GetGuest(context.Background(), 7)

	require.NoError(t, err)
	assert.Nil(t, detail.NextStayAt)
	require.NotNil(t, detail.LastRoomType)
	assert.Equal(t, "Twin Suite", *detail.LastRoomType)
}

func TestGetGuest_NotFound(t *testing.T) {
	svc := NewGuestService(&mockGuestRepo{}, &mockBookingRepo{})

	_, err := svc.GetGuest(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}
