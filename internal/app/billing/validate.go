package billing

import (
	"time"

	"backend/internal/app/ds"
)

// ValidateRequest проверяет кандидата заявки перед сохранением.
// Правила применяются по порядку: время строго в будущем, затем
// согласованность типа подписки и варианта. catalog - текущий список
// вариантов подписки, попадает в подсказки ошибки, когда вариант
// не указан для месячной заявки.
func ValidateRequest(subscriptionType string, option *ds.SubscriptionOption, scheduledAt time.Time, catalog []ds.SubscriptionOption, now time.Time) error {
	if !scheduledAt.After(now) {
		return &ValidationError{Message: "дата и время заявки должны быть в будущем"}
	}

	switch subscriptionType {
	case ds.SubscriptionMonthly:
		if option == nil {
			return &ValidationError{
				Message:     "для месячной заявки необходимо указать вариант подписки",
				Suggestions: catalog,
			}
		}
		if option.Duration != MonthlyDuration {
			return &ValidationError{Message: "длительность варианта подписки для месячной заявки должна быть 30 дней"}
		}
	case ds.SubscriptionOneTime:
		if option != nil {
			return &ValidationError{Message: "для разовой заявки вариант подписки должен быть пустым"}
		}
	default:
		return &ValidationError{Message: "неизвестный тип подписки: " + subscriptionType}
	}

	return nil
}

// CombineDateTime собирает дату и время заявки в один момент
func CombineDateTime(date, clock time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, time.Local)
}
