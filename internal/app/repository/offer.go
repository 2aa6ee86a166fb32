package repository

import (
	"backend/internal/app/billing"
	"backend/internal/app/ds"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Методы для акций (скидок)

func (r *Repository) GetOffers() ([]ds.Offer, error) {
	var offers []ds.Offer
	err := r.db.Order("id").Find(&offers).Error
	return offers, err
}

func (r *Repository) GetOfferByID(id uint) (*ds.Offer, error) {
	var offer ds.Offer
	err := r.db.First(&offer, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &billing.NotFoundError{Resource: "акция", ID: id}
		}
		return nil, err
	}
	return &offer, nil
}

// GetOffersForOption возвращает акции, привязанные к варианту подписки
func (r *Repository) GetOffersForOption(optionID uint) ([]ds.Offer, error) {
	var offers []ds.Offer
	err := r.db.Where("subscription_option_id = ?", optionID).Order("id").Find(&offers).Error
	return offers, err
}

// GetOffersForRequest возвращает акции, привязанные к заявке
func (r *Repository) GetOffersForRequest(requestID uint) ([]ds.Offer, error) {
	var offers []ds.Offer
	err := r.db.Where("service_request_id = ?", requestID).Order("id").Find(&offers).Error
	return offers, err
}

func (r *Repository) CreateOffer(offer *ds.Offer) error {
	// Связь акция-вариант подписки один к одному
	if offer.SubscriptionOptionID != nil {
		if _, err := r.GetSubscriptionOptionByID(*offer.SubscriptionOptionID); err != nil {
			return err
		}

		var count int64
		err := r.db.Model(&ds.Offer{}).
			Where("subscription_option_id = ?", *offer.SubscriptionOptionID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("для варианта подписки с id=%d уже есть акция", *offer.SubscriptionOptionID)
		}
	}

	if offer.ServiceRequestID != nil {
		if _, err := r.GetServiceRequestByID(*offer.ServiceRequestID); err != nil {
			return err
		}
	}

	return r.db.Create(offer).Error
}

func (r *Repository) UpdateOffer(id uint, name, description string, price *decimal.Decimal, expiryDate *time.Time) error {
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
	if expiryDate != nil {
		updates["expiry_date"] = *expiryDate
	}
	if len(updates) == 0 {
		return nil
	}

	result := r.db.Model(&ds.Offer{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &billing.NotFoundError{Resource: "акция", ID: id}
	}
	return nil
}

func (r *Repository) DeleteOffer(id uint) error {
	result := r.db.Delete(&ds.Offer{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &billing.NotFoundError{Resource: "акция", ID: id}
	}
	return nil
}
