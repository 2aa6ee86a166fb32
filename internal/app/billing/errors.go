package billing

import (
	"fmt"

	"backend/internal/app/ds"
)

// Типизированные ошибки бизнес-логики. Ядро их только возвращает -
// не логирует и не гасит; слой обработчиков сопоставляет вид ошибки
// с HTTP статусом через errors.As.

// ValidationError - кандидат заявки нарушает правила планирования или
// согласованности подписки. Исправляется повторной отправкой данных.
type ValidationError struct {
	Message     string
	Suggestions []ds.SubscriptionOption // каталог вариантов, если вариант подписки не указан
}

func (e *ValidationError) Error() string { return e.Message }

// InvalidRequestError - расчёт вызван для несогласованной комбинации
// типа подписки и варианта. При прошедшей валидации недостижимо.
type InvalidRequestError struct {
	Message string
}

func (e *InvalidRequestError) Error() string { return e.Message }

// NotFoundError - сущность с указанным id не существует
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s с id=%d не найдена", e.Resource, e.ID)
}
