package repository

import (
	"backend/internal/app/billing"
	"backend/internal/app/ds"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Методы для услуг автомойки

// GetAllServices возвращает активные услуги с опциональным поиском по названию
func (r *Repository) GetAllServices(searchQuery string) ([]ds.Service, error) {
	var services []ds.Service

	query := r.db.Where("is_active = ?", true)
	if searchQuery != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(searchQuery)+"%")
	}

	err := query.Order("id").Find(&services).Error
	return services, err
}

// GetServiceByID получает услугу через курсор (raw SQL)
func (r *Repository) GetServiceByID(id uint) (*ds.Service, error) {
	service := &ds.Service{}

	sqlDB, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	row := sqlDB.QueryRow(
		"SELECT id, name, description, price, is_active FROM services WHERE id = $1 AND is_active = true",
		id,
	)

	var price string
	err = row.Scan(&service.ID, &service.Name, &service.Description, &price, &service.IsActive)
	if err != nil {
		return nil, &billing.NotFoundError{Resource: "услуга", ID: id}
	}

	service.Price, err = decimal.NewFromString(price)
	if err != nil {
		return nil, err
	}

	return service, nil
}

// GetServiceWithOptions возвращает услугу вместе с её вариантами подписки
func (r *Repository) GetServiceWithOptions(id uint) (*ds.Service, []ds.SubscriptionOption, error) {
	service, err := r.GetServiceByID(id)
	if err != nil {
		return nil, nil, err
	}

	var options []ds.SubscriptionOption
	err = r.db.Where("service_id = ?", id).Order("id").Find(&options).Error
	if err != nil {
		return nil, nil, err
	}

	return service, options, nil
}

func (r *Repository) CreateService(name, description string, price decimal.Decimal) (*ds.Service, error) {
	service := ds.Service{
		Name:        name,
		Description: description,
		Price:       price,
		IsActive:    true,
	}

	err := r.db.Create(&service).Error
	if err != nil {
		return nil, err
	}

	return &service, nil
}

func (r *Repository) UpdateService(id uint, name, description string, price *decimal.Decimal, isActive *bool) error {
	updates := map[string]interface{}{}
	if name != "" {
		updates["name"] = name
	}
	if description != "" {
		updates["description"] = description
	}
	if price != nil {
		updates["price"] = *price
	}
	if isActive != nil {
		updates["is_active"] = *isActive
	}
	if len(updates) == 0 {
		return nil
	}

	result := r.db.Model(&ds.Service{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &billing.NotFoundError{Resource: "услуга", ID: id}
	}
	return nil
}

// DeleteService выполняет логическое удаление услуги (is_active = false)
func (r *Repository) DeleteService(id uint) error {
	result := r.db.Exec("UPDATE services SET is_active = false WHERE id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &billing.NotFoundError{Resource: "услуга", ID: id}
	}
	return nil
}

// getServiceAnyStatus используется внутри репозитория, когда нужна услуга вне зависимости от is_active
func (r *Repository) getServiceAnyStatus(id uint) (*ds.Service, error) {
	var service ds.Service
	err := r.db.First(&service, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &billing.NotFoundError{Resource: "услуга", ID: id}
		}
		return nil, err
	}
	return &service, nil
}
