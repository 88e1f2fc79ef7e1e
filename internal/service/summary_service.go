package service

import (
	"context"
	"fmt"
	"time"

	"github.com/harborview/hotel-backend/internal/models"
	"github.com/harborview/hotel-backend/internal/repository"
)

type SummaryService interface {
	SummaryRefresher
	Buckets(ctx context.Context) ([]models.SalesSummary, error)
}

type summaryService struct {
	bookingRepo repository.BookingRepository
	summaryRepo repository.SummaryRepository
}

func NewSummaryService(bookingRepo repository.BookingRepository, summaryRepo repository.SummaryRepository) SummaryService {
	return &summaryService{bookingRepo: bookingRepo, summaryRepo: summaryRepo}
}

// Refresh fully recomputes every window bucket from a single pass over the
// booking table. Being a recompute rather than an incremental counter, it is
// idempotent and safe to run concurrently; the last writer wins per window
// and windows are independent.
func (s *summaryService) Refresh(ctx context.Context, reference time.Time) error {
	for _, window := range []models.SummaryWindow{
		models.WindowDaily, models.WindowWeekly, models.WindowMonthly, models.WindowYearly,
	} {
		start, end := WindowRange(window, reference)

		total, err := s.bookingRepo.SumReceivedPayments(ctx, start, end)
		if err != nil {
			return fmt.Errorf("sum payments for %s window: %w", window, err)
		}

		bucket := &models.SalesSummary{
			Window:      window,
			PeriodStart: start,
			PeriodEnd:   end,
			TotalAmount: total,
			UpdatedAt:   time.Now(),
		}
		if err := s.summaryRepo.Upsert(ctx, bucket); err != nil {
			return fmt.Errorf("upsert %s bucket: %w", window, err)
		}
	}
	return nil
}

func (s *summaryService) Buckets(ctx context.Context) ([]models.SalesSummary, error) {
	return s.summaryRepo.FindAll(ctx)
}

// WindowRange returns the trailing [start, end) range for a window kind.
// Ranges trail the reference instant; they are not calendar-aligned.
func WindowRange(window models.SummaryWindow, reference time.Time) (time.Time, time.Time) {
	end := reference
	switch window {
	case models.WindowDaily:
		return end.Add(-24 * time.Hour), end
	case models.WindowWeekly:
		return end.AddDate(0, 0, -7), end
	case models.WindowMonthly:
		return end.AddDate(0, -1, 0), end
	case models.WindowYearly:
		return end.AddDate(-1, 0, 0), end
	default:
		return end.Add(-24 * time.Hour), end
	}
}
