package billing

import (
	"time"

	"backend/internal/app/ds"

	"github.com/shopspring/decimal"
)

// Длительность месячной подписки в днях
const MonthlyDuration = 30

// BestDiscount возвращает максимальную скидку среди акций, действующих
// на дату asOf (срок действия сравнивается с точностью до дня).
// Просроченные акции не влияют на результат, пустой набор даёт ноль.
func BestDiscount(offers []ds.Offer, asOf time.Time) decimal.Decimal {
	best := decimal.Zero
	day := toDate(asOf)
	for _, offer := range offers {
		if toDate(offer.ExpiryDate).Before(day) {
			continue
		}
		if offer.Price.GreaterThan(best) {
			best = offer.Price
		}
	}
	return best
}

// RequestPrice считает стоимость заявки на момент создания.
// Разовая заявка стоит по прайсу услуги, акции к ней не применяются.
// Месячная - цена варианта подписки минус лучшая действующая скидка,
// но не ниже нуля.
func RequestPrice(subscriptionType string, service *ds.Service, option *ds.SubscriptionOption, offers []ds.Offer, asOf time.Time) (decimal.Decimal, error) {
	switch subscriptionType {
	case ds.SubscriptionOneTime:
		if service == nil {
			return decimal.Zero, &InvalidRequestError{Message: "услуга не задана для разовой заявки"}
		}
		return service.Price, nil

	case ds.SubscriptionMonthly:
		if option == nil {
			return decimal.Zero, &InvalidRequestError{Message: "вариант подписки не задан для месячной заявки"}
		}
		if option.Duration != MonthlyDuration {
			return decimal.Zero, &InvalidRequestError{Message: "длительность варианта подписки для месячной заявки должна быть 30 дней"}
		}
		price := option.Price.Sub(BestDiscount(offers, asOf))
		if price.IsNegative() {
			price = decimal.Zero
		}
		return price, nil

	default:
		return decimal.Zero, &InvalidRequestError{Message: "неверный тип подписки: " + subscriptionType}
	}
}

// EndDate возвращает дату окончания действия заявки: для разовой это
// сама запланированная дата, для месячной - дата плюс 30 дней.
func EndDate(subscriptionType string, date time.Time, option *ds.SubscriptionOption) (time.Time, error) {
	switch {
	case subscriptionType == ds.SubscriptionOneTime:
		return date, nil
	case subscriptionType == ds.SubscriptionMonthly && option != nil:
		if option.Duration != MonthlyDuration {
			return time.Time{}, &InvalidRequestError{Message: "длительность варианта подписки для месячной заявки должна быть 30 дней"}
		}
		return date.AddDate(0, 0, MonthlyDuration), nil
	default:
		return time.Time{}, &InvalidRequestError{Message: "неверный тип подписки или вариант"}
	}
}

// toDate отбрасывает время, оставляя только дату
func toDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
