package repository

import (
	"backend/internal/app/billing"
	"backend/internal/app/ds"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Методы для платежей. Платежи не редактируются и не удаляются

// GetPaymentsByRequest возвращает платежи по заявке в порядке создания
func (r *Repository) GetPaymentsByRequest(requestID uint) ([]ds.Payment, error) {
	var payments []ds.Payment
	err := r.db.
		Where("service_request_id = ?", requestID).
		Order("created_at ASC, id ASC").
		Find(&payments).Error
	return payments, err
}

// CreatePayment записывает платёж в одной транзакции с проверкой заявки
func (r *Repository) CreatePayment(userID, requestID uint, amount decimal.Decimal) (*ds.Payment, error) {
	payment := &ds.Payment{
		UserID:           userID,
		ServiceRequestID: requestID,
		Amount:           amount,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&ds.ServiceRequest{}).Where("id = ?", requestID).Count(&count).Error
		if err != nil {
			return err
		}
		if count == 0 {
			return &billing.NotFoundError{Resource: "заявка", ID: requestID}
		}

		return tx.Create(payment).Error
	})
	if err != nil {
		return nil, err
	}

	return payment, nil
}
