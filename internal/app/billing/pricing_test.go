package billing

import (
	"testing"
	"time"

	"backend/internal/app/ds"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func optionPtr(id uint) *uint { return &id }

func TestBestDiscount(t *testing.T) {
	today := date(2026, 8, 29)

	t.Run("empty set", func(t *testing.T) {
		assert.True(t, BestDiscount(nil, today).IsZero())
	})

	t.Run("all expired", func(t *testing.T) {
		offers := []ds.Offer{
			{Price: dec("10.00"), ExpiryDate: date(2026, 8, 28)},
			{Price: dec("25.00"), ExpiryDate: date(2025, 1, 1)},
		}
		assert.True(t, BestDiscount(offers, today).IsZero())
	})

	t.Run("maximum among valid", func(t *testing.T) {
		offers := []ds.Offer{
			{Price: dec("5.00"), ExpiryDate: date(2026, 9, 10)},
			{Price: dec("15.00"), ExpiryDate: date(2026, 8, 29)}, // истекает сегодня - ещё действует
			{Price: dec("7.50"), ExpiryDate: date(2026, 12, 31)},
		}
		assert.True(t, BestDiscount(offers, today).Equal(dec("15.00")))
	})

	t.Run("adding expired offer does not change result", func(t *testing.T) {
		offers := []ds.Offer{
			{Price: dec("5.00"), ExpiryDate: date(2026, 9, 10)},
		}
		before := BestDiscount(offers, today)

		offers = append(offers, ds.Offer{Price: dec("99.00"), ExpiryDate: date(2026, 8, 28)})
		assert.True(t, BestDiscount(offers, today).Equal(before))
	})

	t.Run("ties resolve to shared value", func(t *testing.T) {
		offers := []ds.Offer{
			{Price: dec("10.00"), ExpiryDate: date(2026, 9, 1)},
			{Price: dec("10.00"), ExpiryDate: date(2026, 10, 1)},
		}
		assert.True(t, BestDiscount(offers, today).Equal(dec("10.00")))
	})
}

func TestRequestPrice_OneTime(t *testing.T) {
	today := date(2026, 8, 29)
	service := &ds.Service{ID: 1, Name: "Комплексная мойка", Price: dec("100.00")}

	// Акции к разовой заявке не применяются
	offers := []ds.Offer{{Price: dec("50.00"), ExpiryDate: date(2026, 12, 31)}}

	price, err := RequestPrice(ds.SubscriptionOneTime, service, nil, offers, today)
	require.NoError(t, err)
	assert.True(t, price.Equal(dec("100.00")))
}

func TestRequestPrice_Monthly(t *testing.T) {
	today := date(2026, 8, 29)
	service := &ds.Service{ID: 1, Price: dec("100.00")}
	option := &ds.SubscriptionOption{ID: 7, Price: dec("90.00"), Duration: 30, ServiceID: 1}

	t.Run("option price minus best discount", func(t *testing.T) {
		offers := []ds.Offer{
			{Price: dec("10.00"), ExpiryDate: today, SubscriptionOptionID: optionPtr(7)},
		}
		price, err := RequestPrice(ds.SubscriptionMonthly, service, option, offers, today)
		require.NoError(t, err)
		assert.True(t, price.Equal(dec("80.00")))
	})

	t.Run("no valid offers means list price", func(t *testing.T) {
		price, err := RequestPrice(ds.SubscriptionMonthly, service, option, nil, today)
		require.NoError(t, err)
		assert.True(t, price.Equal(dec("90.00")))
	})

	t.Run("discount above list price clamps to zero", func(t *testing.T) {
		offers := []ds.Offer{{Price: dec("120.00"), ExpiryDate: date(2026, 12, 31)}}
		price, err := RequestPrice(ds.SubscriptionMonthly, service, option, offers, today)
		require.NoError(t, err)
		assert.True(t, price.IsZero())
		assert.False(t, price.IsNegative())
	})

	t.Run("missing option fails", func(t *testing.T) {
		_, err := RequestPrice(ds.SubscriptionMonthly, service, nil, nil, today)
		var invalidErr *InvalidRequestError
		require.ErrorAs(t, err, &invalidErr)
	})

	t.Run("wrong duration fails", func(t *testing.T) {
		weekly := &ds.SubscriptionOption{ID: 8, Price: dec("30.00"), Duration: 7}
		_, err := RequestPrice(ds.SubscriptionMonthly, service, weekly, nil, today)
		var invalidErr *InvalidRequestError
		require.ErrorAs(t, err, &invalidErr)
	})

	t.Run("idempotent on same inputs", func(t *testing.T) {
		offers := []ds.Offer{{Price: dec("10.00"), ExpiryDate: today}}
		first, err := RequestPrice(ds.SubscriptionMonthly, service, option, offers, today)
		require.NoError(t, err)
		second, err := RequestPrice(ds.SubscriptionMonthly, service, option, offers, today)
		require.NoError(t, err)
		assert.True(t, first.Equal(second))
	})
}

func TestRequestPrice_UnknownType(t *testing.T) {
	_, err := RequestPrice("weekly", &ds.Service{}, nil, nil, date(2026, 8, 29))
	var invalidErr *InvalidRequestError
	require.ErrorAs(t, err, &invalidErr)
}

func TestEndDate(t *testing.T) {
	scheduled := date(2026, 9, 1)

	t.Run("one-time is the scheduled date", func(t *testing.T) {
		end, err := EndDate(ds.SubscriptionOneTime, scheduled, nil)
		require.NoError(t, err)
		assert.Equal(t, scheduled, end)
	})

	t.Run("monthly is scheduled date plus 30 days", func(t *testing.T) {
		option := &ds.SubscriptionOption{Duration: 30}
		end, err := EndDate(ds.SubscriptionMonthly, scheduled, option)
		require.NoError(t, err)
		assert.Equal(t, date(2026, 10, 1), end)
	})

	t.Run("monthly without option fails", func(t *testing.T) {
		_, err := EndDate(ds.SubscriptionMonthly, scheduled, nil)
		var invalidErr *InvalidRequestError
		require.ErrorAs(t, err, &invalidErr)
	})

	t.Run("monthly with wrong duration fails", func(t *testing.T) {
		option := &ds.SubscriptionOption{Duration: 90}
		_, err := EndDate(ds.SubscriptionMonthly, scheduled, option)
		var invalidErr *InvalidRequestError
		require.ErrorAs(t, err, &invalidErr)
	})
}
