package ds

import (
	"time"

	"github.com/shopspring/decimal"
)

// Типы подписки заявки
const (
	SubscriptionOneTime = "one-time"
	SubscriptionMonthly = "monthly"
)

// 4. Заявка пользователя на мойку - разовая или по месячной подписке.
// RequestPrice фиксируется при создании и дальше не пересчитывается.
type ServiceRequest struct {
	ID                   uint            `gorm:"primaryKey"`
	UserID               uint            `gorm:"not null;index"`
	ServiceID            uint            `gorm:"not null"`
	SubscriptionType     string          `gorm:"type:varchar(10);not null"` // one-time, monthly
	SubscriptionOptionID *uint           `gorm:"default:null"`
	Date                 time.Time       `gorm:"type:date;not null"`
	Time                 time.Time       `gorm:"type:time;not null"`
	CarBrand             string          `gorm:"type:varchar(255)"`
	CarModel             string          `gorm:"type:varchar(255)"`
	CarColor             string          `gorm:"type:varchar(255)"`
	CarNumber            string          `gorm:"type:varchar(255)"`
	RequestPrice         decimal.Decimal `gorm:"type:numeric(10,2);not null"`

	User               User                `gorm:"foreignKey:UserID"`
	Service            Service             `gorm:"foreignKey:ServiceID"`
	SubscriptionOption *SubscriptionOption `gorm:"foreignKey:SubscriptionOptionID"`
}
