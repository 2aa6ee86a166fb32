package repository

import (
	"backend/internal/app/billing"
	"backend/internal/app/ds"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Методы для вариантов подписки

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)

// MakeSlug выводит slug из названия: строчные буквы, цифры и дефисы
func MakeSlug(name string) string {
	slug := strings.ToLower(name)
	slug = slugInvalidChars.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

func (r *Repository) GetSubscriptionOptions(serviceID *uint) ([]ds.SubscriptionOption, error) {
	var options []ds.SubscriptionOption

	query := r.db.Order("id")
	if serviceID != nil {
		query = query.Where("service_id = ?", *serviceID)
	}

	err := query.Find(&options).Error
	return options, err
}

func (r *Repository) GetSubscriptionOptionByID(id uint) (*ds.SubscriptionOption, error) {
	var option ds.SubscriptionOption
	err := r.db.First(&option, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &billing.NotFoundError{Resource: "вариант подписки", ID: id}
		}
		return nil, err
	}
	return &option, nil
}

func (r *Repository) GetSubscriptionOptionBySlug(slug string) (*ds.SubscriptionOption, error) {
	var option ds.SubscriptionOption
	err := r.db.Where("slug = ?", slug).First(&option).Error
	if err != nil {
		return nil, err
	}
	return &option, nil
}

// GetMonthlyCatalog возвращает варианты месячной подписки для услуги (для подсказок при валидации)
func (r *Repository) GetMonthlyCatalog(serviceID uint) ([]ds.SubscriptionOption, error) {
	var options []ds.SubscriptionOption
	err := r.db.
		Where("service_id = ? AND duration = ?", serviceID, billing.MonthlyDuration).
		Order("id").
		Find(&options).Error
	return options, err
}

func (r *Repository) CreateSubscriptionOption(option *ds.SubscriptionOption) error {
	if option.Slug == "" {
		option.Slug = MakeSlug(option.Name)
	}

	// Услуга должна существовать
	if _, err := r.getServiceAnyStatus(option.ServiceID); err != nil {
		return err
	}

	var count int64
	err := r.db.Model(&ds.SubscriptionOption{}).Where("slug = ?", option.Slug).Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("вариант подписки со slug '%s' уже существует", option.Slug)
	}

	return r.db.Create(option).Error
}

func (r *Repository) UpdateSubscriptionOption(id uint, name, description string, count, duration *int, price *decimal.Decimal) error {
	updates := map[string]interface{}{}
	if name != "" {
		updates["name"] = name
	}
	if description != "" {
		updates["description"] = description
	}
	if count != nil {
		updates["count"] = *count
	}
	if duration != nil {
		updates["duration"] = *duration
	}
	if price != nil {
		updates["price"] = *price
	}
	if len(updates) == 0 {
		return nil
	}

	result := r.db.Model(&ds.SubscriptionOption{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &billing.NotFoundError{Resource: "вариант подписки", ID: id}
	}
	return nil
}

func (r *Repository) DeleteSubscriptionOption(id uint) error {
	result := r.db.Delete(&ds.SubscriptionOption{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &billing.NotFoundError{Resource: "вариант подписки", ID: id}
	}
	return nil
}
