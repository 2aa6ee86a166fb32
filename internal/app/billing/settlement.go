package billing

import (
	"backend/internal/app/ds"

	"github.com/shopspring/decimal"
)

// Статусы оплаты заявки
const (
	StatusPending = "pending"
	StatusSuccess = "success"
)

// PaymentEntry - строка разбивки по одному платежу
type PaymentEntry struct {
	Amount      decimal.Decimal `json:"amount"`
	Outstanding decimal.Decimal `json:"needs"`
	Status      string          `json:"status"`
}

// Settlement - сводка оплат по заявке. Хранится только список платежей,
// сводка вычисляется заново при каждом чтении.
type Settlement struct {
	Status      string          `json:"status"`
	Outstanding decimal.Decimal `json:"needs"`
	Breakdown   []PaymentEntry  `json:"payments"`
}

// Settle проходит платежи в хронологическом порядке (отсортированы
// вызывающей стороной) и накапливает сумму. Статус становится success
// на платеже, где накопленная сумма впервые точно равна стоимости
// заявки, и дальше не меняется. Переплата без точного совпадения
// остаётся pending с отрицательным остатком - она не скрывается.
func Settle(requestPrice decimal.Decimal, payments []ds.Payment) Settlement {
	result := Settlement{
		Status:      StatusPending,
		Outstanding: requestPrice,
		Breakdown:   make([]PaymentEntry, 0, len(payments)),
	}

	total := decimal.Zero
	settled := false
	for _, payment := range payments {
		total = total.Add(payment.Amount)
		if !settled && total.Equal(requestPrice) {
			settled = true
		}

		entry := PaymentEntry{Amount: payment.Amount}
		if settled {
			entry.Status = StatusSuccess
			entry.Outstanding = decimal.Zero
		} else {
			entry.Status = StatusPending
			entry.Outstanding = requestPrice.Sub(total)
		}
		result.Breakdown = append(result.Breakdown, entry)
	}

	if settled {
		result.Status = StatusSuccess
		result.Outstanding = decimal.Zero
	} else {
		result.Outstanding = requestPrice.Sub(total)
	}
	return result
}
