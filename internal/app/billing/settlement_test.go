package billing

import (
	"testing"

	"backend/internal/app/ds"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payments(amounts ...string) []ds.Payment {
	result := make([]ds.Payment, 0, len(amounts))
	for _, a := range amounts {
		result = append(result, ds.Payment{Amount: decimal.RequireFromString(a)})
	}
	return result
}

func TestSettle_NoPayments(t *testing.T) {
	s := Settle(dec("80.00"), nil)

	assert.Equal(t, StatusPending, s.Status)
	assert.True(t, s.Outstanding.Equal(dec("80.00")))
	assert.Empty(t, s.Breakdown)
}

func TestSettle_TwoPaymentsReachExactPrice(t *testing.T) {
	// Заявка на 80.00: платёж 50.00, затем 30.00
	s := Settle(dec("80.00"), payments("50.00", "30.00"))

	require.Len(t, s.Breakdown, 2)

	assert.Equal(t, StatusPending, s.Breakdown[0].Status)
	assert.True(t, s.Breakdown[0].Outstanding.Equal(dec("30.00")))

	assert.Equal(t, StatusSuccess, s.Breakdown[1].Status)
	assert.True(t, s.Breakdown[1].Outstanding.IsZero())

	assert.Equal(t, StatusSuccess, s.Status)
	assert.True(t, s.Outstanding.IsZero())
}

func TestSettle_PartialPayment(t *testing.T) {
	s := Settle(dec("100.00"), payments("20.00", "30.00"))

	assert.Equal(t, StatusPending, s.Status)
	assert.True(t, s.Outstanding.Equal(dec("50.00")))
	for _, entry := range s.Breakdown {
		assert.Equal(t, StatusPending, entry.Status)
	}
}

func TestSettle_OverpaymentWithoutExactMatch(t *testing.T) {
	// 60 + 30 = 90 перескакивает цену 80 - точного совпадения не было,
	// переплата видна как отрицательный остаток
	s := Settle(dec("80.00"), payments("60.00", "30.00"))

	assert.Equal(t, StatusPending, s.Status)
	assert.True(t, s.Outstanding.Equal(dec("-10.00")))
	assert.Equal(t, StatusPending, s.Breakdown[1].Status)
	assert.True(t, s.Breakdown[1].Outstanding.Equal(dec("-10.00")))
}

func TestSettle_SuccessIsSticky(t *testing.T) {
	// После точного совпадения статус не откатывается
	s := Settle(dec("80.00"), payments("80.00", "5.00"))

	require.Len(t, s.Breakdown, 2)
	assert.Equal(t, StatusSuccess, s.Breakdown[0].Status)
	assert.Equal(t, StatusSuccess, s.Breakdown[1].Status)
	assert.True(t, s.Breakdown[1].Outstanding.IsZero())
	assert.Equal(t, StatusSuccess, s.Status)
}

func TestSettle_TransitionHappensExactlyOnce(t *testing.T) {
	s := Settle(dec("90.00"), payments("30.00", "30.00", "30.00", "10.00"))

	transitions := 0
	prev := StatusPending
	for _, entry := range s.Breakdown {
		if prev == StatusPending && entry.Status == StatusSuccess {
			transitions++
		}
		// Успех не сменяется обратно на pending
		if prev == StatusSuccess {
			assert.Equal(t, StatusSuccess, entry.Status)
		}
		prev = entry.Status
	}
	assert.Equal(t, 1, transitions)
	assert.Equal(t, StatusSuccess, s.Breakdown[2].Status)
}

func TestSettle_RunningTotalMonotonic(t *testing.T) {
	price := dec("100.00")
	s := Settle(price, payments("10.00", "20.00", "30.00"))

	prev := price
	for _, entry := range s.Breakdown {
		// Остаток не возрастает по мере поступления платежей
		assert.True(t, entry.Outstanding.LessThanOrEqual(prev))
		prev = entry.Outstanding
	}
}

func TestSettle_ZeroPriceRequest(t *testing.T) {
	// Заявка со стоимостью 0 (скидка покрыла цену целиком) без платежей
	s := Settle(decimal.Zero, nil)
	assert.Equal(t, StatusPending, s.Status)
	assert.True(t, s.Outstanding.IsZero())
}
