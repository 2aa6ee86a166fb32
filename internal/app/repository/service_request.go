package repository

import (
	"backend/internal/app/billing"
	"backend/internal/app/ds"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Методы для заявок на услуги

func (r *Repository) GetServiceRequestsByUser(userID uint) ([]ds.ServiceRequest, error) {
	var requests []ds.ServiceRequest
	err := r.db.
		Preload("Service").
		Preload("SubscriptionOption").
		Preload("User").
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&requests).Error
	return requests, err
}

// GetAllServiceRequests возвращает заявки всех пользователей (для администратора)
func (r *Repository) GetAllServiceRequests() ([]ds.ServiceRequest, error) {
	var requests []ds.ServiceRequest
	err := r.db.
		Preload("Service").
		Preload("SubscriptionOption").
		Preload("User").
		Order("id DESC").
		Find(&requests).Error
	return requests, err
}

func (r *Repository) GetServiceRequestByID(id uint) (*ds.ServiceRequest, error) {
	var request ds.ServiceRequest
	err := r.db.
		Preload("Service").
		Preload("SubscriptionOption").
		Preload("User").
		First(&request, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &billing.NotFoundError{Resource: "заявка", ID: id}
		}
		return nil, err
	}
	return &request, nil
}

// CreateServiceRequest сохраняет заявку с уже рассчитанной стоимостью
func (r *Repository) CreateServiceRequest(request *ds.ServiceRequest) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&ds.Service{}).
			Where("id = ? AND is_active = ?", request.ServiceID, true).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count == 0 {
			return &billing.NotFoundError{Resource: "услуга", ID: request.ServiceID}
		}

		return tx.Create(request).Error
	})
}

// UpdateServiceRequestFields меняет расписание и данные автомобиля.
// Стоимость заявки при обновлении не пересчитывается
func (r *Repository) UpdateServiceRequestFields(
	id, userID uint,
	date, clock *time.Time,
	carBrand, carModel, carColor, carNumber *string,
) error {
	updates := map[string]interface{}{}
	if date != nil {
		updates["date"] = *date
	}
	if clock != nil {
		updates["time"] = *clock
	}
	if carBrand != nil {
		updates["car_brand"] = *carBrand
	}
	if carModel != nil {
		updates["car_model"] = *carModel
	}
	if carColor != nil {
		updates["car_color"] = *carColor
	}
	if carNumber != nil {
		updates["car_number"] = *carNumber
	}
	if len(updates) == 0 {
		return nil
	}

	result := r.db.Model(&ds.ServiceRequest{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &billing.NotFoundError{Resource: "заявка", ID: id}
	}
	return nil
}

func (r *Repository) DeleteServiceRequest(id, userID uint) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&ds.ServiceRequest{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &billing.NotFoundError{Resource: "заявка", ID: id}
	}
	return nil
}
