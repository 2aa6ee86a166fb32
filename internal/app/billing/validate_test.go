package billing

import (
	"testing"
	"time"

	"backend/internal/app/ds"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequest_Schedule(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.Local)

	t.Run("past date fails", func(t *testing.T) {
		err := ValidateRequest(ds.SubscriptionOneTime, nil, now.AddDate(0, 0, -1), nil, now)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Empty(t, vErr.Suggestions)
	})

	t.Run("exactly now fails", func(t *testing.T) {
		err := ValidateRequest(ds.SubscriptionOneTime, nil, now, nil, now)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("tomorrow succeeds", func(t *testing.T) {
		err := ValidateRequest(ds.SubscriptionOneTime, nil, now.AddDate(0, 0, 1), nil, now)
		require.NoError(t, err)
	})
}

func TestValidateRequest_Monthly(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.Local)
	future := now.AddDate(0, 0, 1)
	catalog := []ds.SubscriptionOption{
		{ID: 1, Name: "Месяц стандарт", Duration: 30},
		{ID: 2, Name: "Месяц премиум", Duration: 30},
	}

	t.Run("missing option fails with catalog suggestions", func(t *testing.T) {
		err := ValidateRequest(ds.SubscriptionMonthly, nil, future, catalog, now)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Len(t, vErr.Suggestions, 2)
	})

	t.Run("wrong duration fails", func(t *testing.T) {
		weekly := &ds.SubscriptionOption{ID: 3, Duration: 7}
		err := ValidateRequest(ds.SubscriptionMonthly, weekly, future, catalog, now)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Empty(t, vErr.Suggestions)
	})

	t.Run("30 day option succeeds", func(t *testing.T) {
		option := &ds.SubscriptionOption{ID: 1, Duration: 30}
		require.NoError(t, ValidateRequest(ds.SubscriptionMonthly, option, future, catalog, now))
	})
}

func TestValidateRequest_OneTime(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.Local)
	future := now.AddDate(0, 0, 1)

	t.Run("option must be absent", func(t *testing.T) {
		option := &ds.SubscriptionOption{ID: 1, Duration: 30}
		err := ValidateRequest(ds.SubscriptionOneTime, option, future, nil, now)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("without option succeeds", func(t *testing.T) {
		require.NoError(t, ValidateRequest(ds.SubscriptionOneTime, nil, future, nil, now))
	})
}

func TestValidateRequest_UnknownType(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.Local)
	err := ValidateRequest("yearly", nil, now.AddDate(0, 0, 1), nil, now)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestCombineDateTime(t *testing.T) {
	d := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	clock := time.Date(0, 1, 1, 14, 30, 0, 0, time.UTC)

	combined := CombineDateTime(d, clock)
	assert.Equal(t, 2026, combined.Year())
	assert.Equal(t, time.September, combined.Month())
	assert.Equal(t, 1, combined.Day())
	assert.Equal(t, 14, combined.Hour())
	assert.Equal(t, 30, combined.Minute())
}
