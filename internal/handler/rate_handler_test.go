package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/harborview/hotel-backend/internal/models"
	"github.com/harborview/hotel-backend/internal/pricing"
	"github.com/harborview/hotel-backend/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuote_Returns200(t *testing.T) {
	e := newTestEcho()
	svc := &mockRateService{
		quoteFn: func(ctx context.Context, roomTypeID *uint, roomTypeName string, in, out time.Time) (*service.QuoteResult, error) {
			assert.Nil(t, roomTypeID)
			assert.Equal(t, "Deluxe King", roomTypeName)
			return &service.QuoteResult{
				RoomType: &models.RoomType{ID: 1, Name: "Deluxe King", BaseRate: decimal.NewFromInt(9200)},
				CheckIn:  in,
				CheckOut: out,
				Quote: pricing.Quote{
					Nights:    2,
					BaseRate:  decimal.NewFromInt(9200),
					BaseTotal: decimal.NewFromInt(18400),
					Total:     decimal.NewFromInt(24400),
					Nightly: []pricing.Night{
						{Date: "2026-10-10", BaseRate: decimal.NewFromInt(9200), FinalRate: decimal.NewFromInt(12200)},
						{Date: "2026-10-11", BaseRate: decimal.NewFromInt(9200), FinalRate: decimal.NewFromInt(12200)},
					},
					AppliedRuleIDs: []uint{7},
				},
				AppliedRules: []models.RateRule{{
					ID:              7,
					RoomTypeID:      1,
					Name:            "Festival Surcharge",
					AdjustmentKind:  models.AdjustmentFlat,
					AdjustmentValue: decimal.NewFromInt(3000),
					StartDate:       time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
					EndDate:         time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC),
					Active:          true,
				}},
			}, nil
		},
	}

	body := `{"roomType": "Deluxe King", "checkIn": "2026-10-10", "checkOut": "2026-10-12"}`
	rec := call(e, NewRateHandler(svc).Quote, http.MethodPost, "/api/rates/quote", body, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.EqualValues(t, 2, resp["nights"])
	assert.Equal(t, "24400", resp["total"])

	applied, ok := resp["appliedRules"].([]any)
	require.True(t, ok)
	require.Len(t, applied, 1)
	rule := applied[0].(map[string]any)
	assert.Equal(t, "Festival Surcharge", rule["name"])
	assert.Equal(t, "2026-10-01", rule["startDate"])
}

func TestQuote_UnknownRoomTypeReturns404(t *testing.T) {
	e := newTestEcho()
	svc := &mockRateService{
		quoteFn: func(ctx context.Context, roomTypeID *uint, roomTypeName string, in, out time.Time) (*service.QuoteResult, error) {
			return nil, service.ErrNotFound
		},
	}

	body := `{"roomType": "Penthouse", "checkIn": "2026-10-10", "checkOut": "2026-10-12"}`
	rec := call(e, NewRateHandler(svc).Quote, http.MethodPost, "/api/rates/quote", body, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListRoomTypes_Returns200(t *testing.T) {
	e := newTestEcho()
	svc := &mockRateService{
		listRoomTypesFn: func(ctx context.Context) ([]models.RoomType, error) {
			return []models.RoomType{
				{ID: 1, Name: "Deluxe King", BaseRate: decimal.NewFromInt(9200), Sleeps: 2},
				{ID: 2, Name: "Twin Suite", BaseRate: decimal.NewFromInt(8400), Sleeps: 3},
			}, nil
		},
	}

	rec := call(e, NewRateHandler(svc).ListRoomTypes, http.MethodGet, "/api/public/room-types", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Deluxe King", resp[0]["name"])
	assert.Equal(t, "9200", resp[0]["baseRate"])
}

func TestCreateRule_Returns201(t *testing.T) {
	e := newTestEcho()
	svc := &mockRateService{
		createRuleFn: func(ctx context.Context, rule *models.RateRule) error {
			assert.Equal(t, uint(1), rule.RoomTypeID)
			assert.Equal(t, models.AdjustmentFlat, rule.AdjustmentKind)
			assert.True(t, rule.Active)
			rule.ID = 7
			return nil
		},
	}

	body := `{
		"name": "Festival Surcharge",
		"adjustmentKind": "flat",
		"adjustmentValue": 3000,
		"startDate": "2026-10-01",
		"endDate": "2026-10-31"
	}`
	rec := call(e, NewRateHandler(svc).CreateRule, http.MethodPost, "/api/room-types/1/rates", body, map[string]string{"id": "1"})

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.EqualValues(t, 7, resp["id"])
}

func TestCreateRule_ValidationErrorReturns400(t *testing.T) {
	e := newTestEcho()
	svc := &mockRateService{
		createRuleFn: func(ctx context.Context, rule *models.RateRule) error {
			return service.ErrValidation
		},
	}

	body := `{
		"name": "ab",
		"adjustmentKind": "flat",
		"adjustmentValue": 3000,
		"startDate": "2026-10-01",
		"endDate": "2026-10-31"
	}`
	rec := call(e, NewRateHandler(svc).CreateRule, http.MethodPost, "/api/room-types/1/rates", body, map[string]string{"id": "1"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
