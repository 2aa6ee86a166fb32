package handler

import (
	"testing"
	"time"

	"backend/internal/app/billing"
	"backend/internal/app/ds"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCanPayForOneTime(t *testing.T) {
	now := day(2026, time.March, 10)

	past := &ds.ServiceRequest{
		SubscriptionType: ds.SubscriptionOneTime,
		Date:             day(2026, time.March, 9),
	}
	err := canPayFor(past, now)
	var invalidErr *billing.InvalidRequestError
	require.ErrorAs(t, err, &invalidErr)

	// День записи ещё можно оплатить
	today := &ds.ServiceRequest{
		SubscriptionType: ds.SubscriptionOneTime,
		Date:             day(2026, time.March, 10),
	}
	assert.NoError(t, canPayFor(today, now))
}

func TestCanPayForMonthly(t *testing.T) {
	now := day(2026, time.March, 10)
	option := &ds.SubscriptionOption{Duration: billing.MonthlyDuration}

	active := &ds.ServiceRequest{
		SubscriptionType:   ds.SubscriptionMonthly,
		Date:               day(2026, time.March, 1),
		SubscriptionOption: option,
	}
	assert.NoError(t, canPayFor(active, now))

	// Подписка закончилась больше 30 дней назад
	expired := &ds.ServiceRequest{
		SubscriptionType:   ds.SubscriptionMonthly,
		Date:               day(2026, time.January, 1),
		SubscriptionOption: option,
	}
	var invalidErr *billing.InvalidRequestError
	require.ErrorAs(t, canPayFor(expired, now), &invalidErr)
}

func TestOfferToDTO(t *testing.T) {
	optionID := uint(7)
	offer := ds.Offer{
		ID:                   3,
		Name:                 "Весенняя скидка",
		Price:                decimal.NewFromInt(15),
		ExpiryDate:           day(2026, time.April, 30),
		SubscriptionOptionID: &optionID,
	}

	result := offerToDTO(offer)
	assert.Equal(t, uint(3), result.ID)
	assert.Equal(t, "2026-04-30", result.ExpiryDate)
	require.NotNil(t, result.SubscriptionOptionID)
	assert.Equal(t, optionID, *result.SubscriptionOptionID)
}
