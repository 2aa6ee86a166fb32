package ds

import (
	"time"

	"github.com/shopspring/decimal"
)

// 3. Акция - скидка с датой окончания. Привязывается не более чем к
// одному варианту подписки (uniqueIndex) и/или к конкретной заявке.
type Offer struct {
	ID                   uint            `gorm:"primaryKey"`
	Name                 string          `gorm:"type:varchar(255);not null"`
	Description          string          `gorm:"type:text"`
	Price                decimal.Decimal `gorm:"type:numeric(10,2);not null"` // размер скидки
	ExpiryDate           time.Time       `gorm:"type:date;not null"`
	SubscriptionOptionID *uint           `gorm:"uniqueIndex;default:null"`
	ServiceRequestID     *uint           `gorm:"index;default:null"`

	SubscriptionOption *SubscriptionOption `gorm:"foreignKey:SubscriptionOptionID"`
	ServiceRequest     *ServiceRequest     `gorm:"foreignKey:ServiceRequestID"`
}
